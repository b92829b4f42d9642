package frozen

import (
	"math"
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow"
)

// Numeric is the set of element types an Array can hold.
type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// IndexerType returns the smallest signed integer dtype able to index n
// categories. Indexer dtypes stay signed so the -1 "missing" sentinel is
// always representable.
func IndexerType(n int) arrow.DataType {
	switch {
	case n < math.MaxInt8:
		return arrow.PrimitiveTypes.Int8
	case n < math.MaxInt16:
		return arrow.PrimitiveTypes.Int16
	case n < math.MaxInt32:
		return arrow.PrimitiveTypes.Int32
	default:
		return arrow.PrimitiveTypes.Int64
	}
}

// indexerRange returns the inclusive value range representable by an
// indexer dtype.
func indexerRange(dt arrow.DataType) (lo, hi int64) {
	switch dt.ID() {
	case arrow.INT8:
		return math.MinInt8, math.MaxInt8
	case arrow.INT16:
		return math.MinInt16, math.MaxInt16
	case arrow.INT32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

// dtypeOf maps a Numeric element type to its arrow dtype tag.
func dtypeOf[T Numeric]() arrow.DataType {
	var z T
	switch any(z).(type) {
	case int8:
		return arrow.PrimitiveTypes.Int8
	case int16:
		return arrow.PrimitiveTypes.Int16
	case int32:
		return arrow.PrimitiveTypes.Int32
	case int64:
		return arrow.PrimitiveTypes.Int64
	case uint8:
		return arrow.PrimitiveTypes.Uint8
	case uint16:
		return arrow.PrimitiveTypes.Uint16
	case uint32:
		return arrow.PrimitiveTypes.Uint32
	case uint64:
		return arrow.PrimitiveTypes.Uint64
	case float32:
		return arrow.PrimitiveTypes.Float32
	default:
		return arrow.PrimitiveTypes.Float64
	}
}

// castToBytes reinterprets a numeric slice as its native byte storage
// without copying, the same way arrow's typed traits do.
func castToBytes[T Numeric](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	var z T
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(z)))
}

// castFromBytes reinterprets byte storage as a numeric slice without
// copying. The length must align to the element width.
func castFromBytes[T Numeric](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	var z T
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/int(unsafe.Sizeof(z)))
}
