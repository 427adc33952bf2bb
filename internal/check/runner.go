package check

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/viant/vecmath/engine"
	"github.com/viant/vecmath/vector"
)

// Result is the outcome of one case or operation check.
type Result struct {
	Name   string
	Got    float64
	Passed bool
	// Detail explains a failure; empty when Passed.
	Detail string
}

// Report collects results in execution order.
type Report struct {
	Results []Result
}

// Failed returns the number of failed results.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// Passed reports whether every result passed.
func (r *Report) Passed() bool { return r.Failed() == 0 }

// Runner evaluates cases. When SQL is set every case is also evaluated
// through vec_cosine on an in-memory SQLite database and both answers must
// agree.
type Runner struct {
	SQL bool
}

// Run evaluates cases sequentially. It returns an error only when the SQL
// database cannot be opened or ctx is done; case failures are reported in
// the Report.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	var db *sql.DB
	if r.SQL {
		var err error
		if db, err = engine.OpenWithFunctions(":memory:"); err != nil {
			return nil, fmt.Errorf("check: open sqlite: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(1)
	}
	report := &Report{}
	for i := range cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		c := &cases[i]
		got, err := vector.CosineSimilarity(c.A, c.B)
		res := c.evaluate(got, err)
		if res.Passed && db != nil && len(c.A) > 0 && len(c.B) > 0 {
			res = c.crossCheck(ctx, db, res)
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (c *Case) evaluate(got float64, err error) Result {
	res := Result{Name: c.Name, Got: got}
	switch {
	case c.WantError != "":
		switch {
		case err == nil:
			res.Detail = fmt.Sprintf("expected %s error, got %v", c.WantError, got)
		case !errors.Is(err, vector.ErrInvalidArgument):
			res.Detail = fmt.Sprintf("expected %s error, got %v", c.WantError, err)
		default:
			res.Passed = true
		}
	case err != nil:
		res.Detail = err.Error()
	case c.GreaterThan != nil:
		res.Passed = got > *c.GreaterThan
		if !res.Passed {
			res.Detail = fmt.Sprintf("expected >%v, got %v", *c.GreaterThan, got)
		}
	default:
		res.Passed = math.Abs(got-*c.Want) <= c.tolerance()
		if !res.Passed {
			res.Detail = fmt.Sprintf("expected %v, got %v", *c.Want, got)
		}
	}
	return res
}

func (c *Case) crossCheck(ctx context.Context, db *sql.DB, res Result) Result {
	var got float64
	err := db.QueryRowContext(ctx, `SELECT vec_cosine(?, ?)`, vector.EncodeEmbedding(c.A), vector.EncodeEmbedding(c.B)).Scan(&got)
	if c.WantError != "" {
		if err == nil {
			res.Passed = false
			res.Detail = fmt.Sprintf("vec_cosine: expected %s error, got %v", c.WantError, got)
		}
		return res
	}
	if err != nil {
		res.Passed = false
		res.Detail = fmt.Sprintf("vec_cosine: %v", err)
		return res
	}
	if math.Abs(got-res.Got) > c.tolerance() {
		res.Passed = false
		res.Detail = fmt.Sprintf("vec_cosine = %v, vector.CosineSimilarity = %v", got, res.Got)
	}
	return res
}
