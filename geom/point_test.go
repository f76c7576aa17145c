package geom

import "testing"

func TestCCW(t *testing.T) {
	tests := []struct {
		a, b, c Point
		want    bool
	}{
		{NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1), true},
		{NewPoint(0, 0), NewPoint(1, 1), NewPoint(1, 0), false},
		{NewPoint(0, 0), NewPoint(1, 0), NewPoint(2, 0), false}, // collinear -> false
	}

	for _, tt := range tests {
		got := CCW(tt.a, tt.b, tt.c)
		if got != tt.want {
			t.Errorf("CCW(%v, %v, %v) = %t, want %t", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, b1, a2, b2 Point
		want           bool
	}{
		{
			name: "crossing segments",
			a1:   NewPoint(0, 0), b1: NewPoint(2, 2),
			a2: NewPoint(0, 2), b2: NewPoint(2, 0),
			want: true,
		},
		{
			name: "parallel segments",
			a1:   NewPoint(0, 0), b1: NewPoint(2, 0),
			a2: NewPoint(0, 1), b2: NewPoint(2, 1),
			want: false,
		},
		{
			name: "touching endpoints",
			a1:   NewPoint(0, 0), b1: NewPoint(1, 1),
			a2: NewPoint(1, 1), b2: NewPoint(2, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.a1, tt.b1, tt.a2, tt.b2)
			if got != tt.want {
				t.Errorf("Intersect() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestPointHashOrderIndependent(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(1, 0)
	h1 := hashPoints([]Point{a, b})
	h2 := hashPoints([]Point{b, a})
	if h1 != h2 {
		t.Errorf("hashPoints not order-independent: %d != %d", h1, h2)
	}
}

func TestPointEqualIsBitwise(t *testing.T) {
	a := NewPoint(1.0, 2.0)
	b := NewPoint(1.0, 2.0)
	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v", a, b)
	}
	c := NewPoint(1.0000001, 2.0)
	if a.Equal(c) {
		t.Errorf("expected %v to not equal %v", a, c)
	}
}
