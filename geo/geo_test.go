package geo

import (
	"math"
	"testing"
)

func TestHaversineDistanceZeroForSamePoint(t *testing.T) {
	c := Coord{13.4, 52.5}
	if d := HaversineDistance(c, c); d != 0 {
		t.Errorf("HaversineDistance(c, c) = %v; want 0", d)
	}
}

func TestHaversineDistanceKnownRoute(t *testing.T) {
	// Berlin (13.405, 52.52) to Hamburg (9.993, 53.551), roughly 255km apart.
	berlin := Coord{13.405, 52.52}
	hamburg := Coord{9.993, 53.551}

	d := HaversineDistance(berlin, hamburg)
	if d < 250000 || d > 260000 {
		t.Errorf("HaversineDistance(berlin, hamburg) = %v; want roughly 255000", d)
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := Coord{0, 0}
	b := Coord{1, 1}

	if math.Abs(HaversineDistance(a, b)-HaversineDistance(b, a)) > 1e-9 {
		t.Errorf("HaversineDistance is not symmetric: %v vs %v", HaversineDistance(a, b), HaversineDistance(b, a))
	}
}
