package vector

import (
	"errors"
	"math"
	"testing"
)

func TestCosineDistance(t *testing.T) {
	pairs := [][2][]float32{
		{{1, 2, 3}, {1, 2, 3}},
		{{1, 0, 0}, {0, 1, 0}},
		{{1, 2, 3}, {-1, -2, -3}},
		{{1, 2, 3}, {1.1, 2.1, 2.9}},
		{{1e-30, 2e-30}, {1e-30, 2e-30}},
		{{1e-30, 2e-30}, {-2e-30, 1e-30}},
		{{1e20, 2e20}, {1e20, 2e20}},
		{{1e20, 2e20}, {-1e20, -2e20}},
	}
	for _, p := range pairs {
		sim, err := CosineSimilarity(p[0], p[1])
		if err != nil {
			t.Fatalf("CosineSimilarity failed: %v", err)
		}
		dist, err := CosineDistance(p[0], p[1], MagnitudeOf32(p[0]), MagnitudeOf32(p[1]))
		if err != nil {
			t.Fatalf("CosineDistance failed: %v", err)
		}
		if math.Abs(dist-(1-sim)) > 1e-5 {
			t.Errorf("CosineDistance(%v, %v) = %v, want %v", p[0], p[1], dist, 1-sim)
		}
	}
}

func TestCosineDistance_ExtremeMagnitudes(t *testing.T) {
	testCases := []struct {
		description string
		v           []float32
	}{
		{description: "squares underflow float32", v: []float32{1e-30, 2e-30}},
		{description: "squares overflow float32", v: []float32{1e20, 2e20}},
	}
	for _, tc := range testCases {
		dist, err := CosineDistance(tc.v, tc.v, MagnitudeOf32(tc.v), MagnitudeOf32(tc.v))
		if err != nil {
			t.Fatalf("%s: CosineDistance failed: %v", tc.description, err)
		}
		if math.IsNaN(dist) || math.Abs(dist) > 1e-9 {
			t.Errorf("%s: CosineDistance(v, v) = %v, want 0", tc.description, dist)
		}
	}

	// Magnitudes supplied by the caller may be non-finite as well.
	v := []float32{1, 2, 3}
	dist, err := CosineDistance(v, v, float32(math.Inf(1)), MagnitudeOf32(v))
	if err != nil {
		t.Fatalf("CosineDistance with +Inf magnitude failed: %v", err)
	}
	if math.Abs(dist) > 1e-9 {
		t.Errorf("CosineDistance with +Inf magnitude = %v, want 0", dist)
	}
}

func TestCosineDistance_ZeroMagnitude(t *testing.T) {
	zero := []float32{0, 0, 0}
	v := []float32{1, 2, 3}
	dist, err := CosineDistance(zero, v, MagnitudeOf32(zero), MagnitudeOf32(v))
	if err != nil {
		t.Fatalf("CosineDistance failed: %v", err)
	}
	if dist != 1 {
		t.Fatalf("CosineDistance with zero vector = %v, want 1", dist)
	}
}

func TestCosineDistance_LengthMismatch(t *testing.T) {
	_, err := CosineDistance([]float32{1, 2}, []float32{1, 2, 3}, 1, 1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("CosineDistance mismatch error = %v, want ErrInvalidArgument", err)
	}
}
