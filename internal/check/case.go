package check

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultTolerance applies to Want when a case leaves Tolerance unset.
const DefaultTolerance = 1e-6

// ErrorInvalidArgument is the only WantError value a case may carry.
const ErrorInvalidArgument = "invalid_argument"

// Case is a single cosine similarity scenario. Exactly one of Want,
// GreaterThan or WantError must be set.
type Case struct {
	Name        string    `yaml:"name"`
	A           []float32 `yaml:"a"`
	B           []float32 `yaml:"b"`
	Want        *float64  `yaml:"want,omitempty"`
	Tolerance   float64   `yaml:"tolerance,omitempty"`
	GreaterThan *float64  `yaml:"greater_than,omitempty"`
	WantError   string    `yaml:"want_error,omitempty"`
}

// Validate reports whether the case carries exactly one expectation.
func (c *Case) Validate() error {
	if c.Name == "" {
		return errors.New("check: case name is required")
	}
	n := 0
	if c.Want != nil {
		n++
	}
	if c.GreaterThan != nil {
		n++
	}
	if c.WantError != "" {
		if c.WantError != ErrorInvalidArgument {
			return fmt.Errorf("check: case %q: unknown want_error %q", c.Name, c.WantError)
		}
		n++
	}
	if n != 1 {
		return fmt.Errorf("check: case %q: want exactly one of want, greater_than, want_error; got %d", c.Name, n)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("check: case %q: negative tolerance", c.Name)
	}
	return nil
}

func (c *Case) tolerance() float64 {
	if c.Tolerance == 0 {
		return DefaultTolerance
	}
	return c.Tolerance
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases decodes a YAML document of the form {cases: [...]} and validates
// every case in it.
func LoadCases(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file caseFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("check: empty case file")
		}
		return nil, fmt.Errorf("check: decode cases: %w", err)
	}
	if len(file.Cases) == 0 {
		return nil, errors.New("check: case file has no cases")
	}
	for i := range file.Cases {
		if err := file.Cases[i].Validate(); err != nil {
			return nil, err
		}
	}
	return file.Cases, nil
}

func ptr(v float64) *float64 { return &v }

// DefaultCases returns the reference scenarios.
func DefaultCases() []Case {
	return []Case{
		{Name: "identical vectors have similarity 1.0", A: []float32{1, 2, 3}, B: []float32{1, 2, 3}, Want: ptr(1)},
		{Name: "orthogonal vectors have similarity 0.0", A: []float32{1, 0, 0}, B: []float32{0, 1, 0}, Want: ptr(0)},
		{Name: "opposite vectors have similarity -1.0", A: []float32{1, 2, 3}, B: []float32{-1, -2, -3}, Want: ptr(-1)},
		{Name: "similar vectors have high similarity", A: []float32{1, 2, 3}, B: []float32{1.1, 2.1, 2.9}, GreaterThan: ptr(0.99)},
		{Name: "zero vector has similarity 0.0", A: []float32{0, 0, 0}, B: []float32{1, 2, 3}, Want: ptr(0)},
		{Name: "mismatched lengths are rejected", A: []float32{1, 2}, B: []float32{1, 2, 3}, WantError: ErrorInvalidArgument},
	}
}
