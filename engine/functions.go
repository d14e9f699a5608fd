package engine

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	sqlite "modernc.org/sqlite"
)

var registerOnce sync.Once

// RegisterDistanceFunctions registers knn_l2 with the driver so it is
// available on connections opened after this call. Existing open
// connections will not see it. Repeated calls are no-ops.
func RegisterDistanceFunctions() error {
	var err error
	registerOnce.Do(func() {
		err = sqlite.RegisterDeterministicScalarFunction("knn_l2", 2, knnL2Impl)
	})
	return err
}

func asFeatures(arg driver.Value) ([]float64, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeFeatures(v)
	default:
		return nil, fmt.Errorf("knn_l2: unsupported argument type %T for features; want BLOB", arg)
	}
}

func knnL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("knn_l2: expected 2 arguments, got %d", len(args))
	}
	a, err := asFeatures(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asFeatures(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("knn_l2: dim mismatch %d vs %d", len(a), len(b))
	}
	return floats.Distance(a, b, 2), nil
}

// Local copy of vector.DecodeFeatures; vector tests import this package.
func decodeFeatures(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("knn_l2: invalid features blob length %d", len(b))
	}
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v, nil
}
