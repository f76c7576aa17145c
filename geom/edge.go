package geom

import "hash/fnv"

// EdgeFingerprint returns a symmetric identity for the unordered pair
// {a, b}: canonicalized by sorting the two point hashes before
// combining, so EdgeFingerprint(a, b) == EdgeFingerprint(b, a) always,
// per spec — a stronger guarantee than a plain sum of hashes, which is
// adequate for correctness but invites collisions on adversarial
// inputs (see DESIGN.md).
func EdgeFingerprint(a, b Point) uint64 {
	ha, hb := a.Hash(), b.Hash()
	if ha > hb {
		ha, hb = hb, ha
	}
	h := fnv.New64a()
	var buf [16]byte
	putU64(buf[0:8], ha)
	putU64(buf[8:16], hb)
	h.Write(buf[:])
	return h.Sum64()
}

func putU64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}
