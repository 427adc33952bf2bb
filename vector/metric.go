package vector

import (
	"math"

	"github.com/viant/vec/search"
)

// Magnitudes outside this range lose their squares to float32 underflow or
// overflow, so the float32 path cannot be trusted for them.
const (
	minMagnitude32 = 1.1e-19
	maxMagnitude32 = 1.8e19
)

// MagnitudeOf32 returns the float32 magnitude of v, suitable for caching
// and passing to CosineDistance.
func MagnitudeOf32(v []float32) float32 {
	return search.Float32s(v).Magnitude()
}

// CosineDistance returns 1 - cosine similarity for vectors whose magnitudes
// were computed up front with MagnitudeOf32. It works in float32 and is meant
// for repeated comparisons against the same vector.
//
// When either magnitude is zero or outside the range float32 can square, the
// distance is computed as 1 - CosineSimilarity in float64 instead, so a true
// zero vector yields distance 1.
func CosineDistance(a, b []float32, magA, magB float32) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch("cosine distance", len(a), len(b))
	}
	if !inRange32(magA) || !inRange32(magB) {
		return cosineDistance64(a, b)
	}
	d := float64(search.Float32s(a).CosineDistanceWithMagnitude(b, magA, magB))
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return cosineDistance64(a, b)
	}
	return d, nil
}

func inRange32(m float32) bool {
	return m >= minMagnitude32 && m <= maxMagnitude32
}

func cosineDistance64(a, b []float32) (float64, error) {
	sim, err := CosineSimilarity(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - sim, nil
}
