package vector

import (
	"errors"
	"testing"
)

func equal(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAdd(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	got, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if want := []float32{5, 7, 9}; !equal(got, want) {
		t.Fatalf("Add = %v, want %v", got, want)
	}
	if !equal(a, []float32{1, 2, 3}) {
		t.Fatalf("Add modified its input: %v", a)
	}
	if _, err := Add(a, b[:2]); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Add mismatch error = %v, want ErrInvalidArgument", err)
	}
}

func TestScale(t *testing.T) {
	v := []float32{1, 2, 3}
	if got, want := Scale(v, 2), []float32{2, 4, 6}; !equal(got, want) {
		t.Fatalf("Scale = %v, want %v", got, want)
	}
	if !equal(v, []float32{1, 2, 3}) {
		t.Fatalf("Scale modified its input: %v", v)
	}
	if got := Scale(nil, 3); len(got) != 0 {
		t.Fatalf("Scale(nil) = %v, want empty", got)
	}
}
