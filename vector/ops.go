package vector

// Add returns the element-wise sum of a and b as a new slice.
func Add(a, b []float32) ([]float32, error) {
	if len(a) != len(b) {
		return nil, lengthMismatch("add", len(a), len(b))
	}
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Scale returns v multiplied by s as a new slice.
func Scale(v []float32, s float32) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return out
}
