package vector

import "math"

// CosineSimilarity computes the cosine similarity between two vectors. It
// returns an error wrapping ErrInvalidArgument if the vectors have different
// lengths. When either vector has zero magnitude (including empty vectors)
// the similarity is defined as 0.
//
// The result lies in [-1, 1] up to floating-point rounding.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch("cosine similarity", len(a), len(b))
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}

// Dot returns the dot product of two vectors accumulated in float64.
func Dot(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch("dot product", len(a), len(b))
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum, nil
}

// Magnitude returns the Euclidean norm of v. An empty vector has magnitude 0.
func Magnitude(v []float32) float64 {
	var sum float64
	for _, x := range v {
		f := float64(x)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// L2Distance computes the Euclidean (L2) distance between two vectors. It
// returns an error if the vectors have different lengths.
func L2Distance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch("L2 distance", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
