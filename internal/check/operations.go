package check

import (
	"fmt"
	"slices"

	"github.com/viant/vecmath/vector"
)

// Operations checks the element-wise vector helpers against fixed values.
func Operations() []Result {
	var out []Result

	sum, err := vector.Add([]float32{1, 2, 3}, []float32{4, 5, 6})
	out = append(out, compareVector("vector addition", []float32{5, 7, 9}, sum, err))

	scaled := vector.Scale([]float32{1, 2, 3}, 2)
	out = append(out, compareVector("vector scaling", []float32{2, 4, 6}, scaled, nil))
	return out
}

func compareVector(name string, want, got []float32, err error) Result {
	res := Result{Name: name}
	switch {
	case err != nil:
		res.Detail = err.Error()
	case !slices.Equal(want, got):
		res.Detail = fmt.Sprintf("expected %v, got %v", want, got)
	default:
		res.Passed = true
	}
	return res
}
