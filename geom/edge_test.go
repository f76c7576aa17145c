package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngeo/polymap/geom"
)

func TestEdgeFingerprintSymmetric(t *testing.T) {
	a := geom.NewPoint(1, 2)
	b := geom.NewPoint(3, 4)
	assert.Equal(t, geom.EdgeFingerprint(a, b), geom.EdgeFingerprint(b, a))
}

func TestEdgeFingerprintDistinguishesPairs(t *testing.T) {
	a := geom.NewPoint(1, 2)
	b := geom.NewPoint(3, 4)
	c := geom.NewPoint(5, 6)
	assert.NotEqual(t, geom.EdgeFingerprint(a, b), geom.EdgeFingerprint(a, c))
}
