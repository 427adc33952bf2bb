package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/vecmath/vector"
	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterVectorFunctions registers vec_cosine and vec_l2 with the driver so
// they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
func RegisterVectorFunctions() error {
	registerOnce.Do(func() {
		if err := sqlite.RegisterDeterministicScalarFunction("vec_cosine", 2, vecCosineImpl); err != nil {
			registerErr = fmt.Errorf("engine: register vec_cosine: %w", err)
			return
		}
		if err := sqlite.RegisterDeterministicScalarFunction("vec_l2", 2, vecL2Impl); err != nil {
			registerErr = fmt.Errorf("engine: register vec_l2: %w", err)
		}
	})
	return registerErr
}

func asEmbedding(arg driver.Value) ([]float32, bool, error) {
	switch v := arg.(type) {
	case nil:
		return nil, false, nil
	case []byte:
		vec, err := vector.DecodeEmbedding(v)
		return vec, true, err
	default:
		return nil, false, fmt.Errorf("%w: unsupported argument type %T for embedding; want BLOB", vector.ErrInvalidArgument, arg)
	}
}

// binaryArgs decodes the two embedding arguments. ok is false when either is NULL.
func binaryArgs(name string, args []driver.Value) (a, b []float32, ok bool, err error) {
	if len(args) != 2 {
		return nil, nil, false, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
	}
	a, okA, err := asEmbedding(args[0])
	if err != nil {
		return nil, nil, false, fmt.Errorf("%s: %w", name, err)
	}
	b, okB, err := asEmbedding(args[1])
	if err != nil {
		return nil, nil, false, fmt.Errorf("%s: %w", name, err)
	}
	return a, b, okA && okB, nil
}

func vecCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := binaryArgs("vec_cosine", args)
	if err != nil || !ok {
		return nil, err
	}
	sim, err := vector.CosineSimilarity(a, b)
	if err != nil {
		return nil, fmt.Errorf("vec_cosine: %w", err)
	}
	return sim, nil
}

func vecL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := binaryArgs("vec_l2", args)
	if err != nil || !ok {
		return nil, err
	}
	d, err := vector.L2Distance(a, b)
	if err != nil {
		return nil, fmt.Errorf("vec_l2: %w", err)
	}
	return d, nil
}
