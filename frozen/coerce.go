package frozen

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Categories is the minimal view of a category collection needed to select
// an indexer dtype: only its length matters. *Sequence satisfies it.
type Categories interface {
	Len() int
}

// Coerce narrows codes to the smallest indexer dtype able to index
// categories and wraps the result as a frozen Array. The narrowed storage
// is adopted as-is; an independent duplicate is taken only when copyData is
// set. A code outside the representable range of the selected dtype fails
// with an OverflowError rather than truncating. The -1 missing sentinel is
// always in range because indexer dtypes are signed.
func Coerce(codes []int64, categories Categories, copyData bool) (*Array, error) {
	a, err := narrow(codes, IndexerType(categories.Len()))
	if err != nil {
		return nil, err
	}
	if copyData {
		a = a.Copy()
	}
	return a, nil
}

func narrow(codes []int64, dt arrow.DataType) (*Array, error) {
	lo, hi := indexerRange(dt)
	for _, c := range codes {
		if c < lo || c > hi {
			return nil, &OverflowError{Value: c, DType: dt}
		}
	}
	switch dt.ID() {
	case arrow.INT8:
		out := make([]int8, len(codes))
		for i, c := range codes {
			out[i] = int8(c)
		}
		return adopt(dt, castToBytes(out), len(out)), nil
	case arrow.INT16:
		out := make([]int16, len(codes))
		for i, c := range codes {
			out[i] = int16(c)
		}
		return adopt(dt, castToBytes(out), len(out)), nil
	case arrow.INT32:
		out := make([]int32, len(codes))
		for i, c := range codes {
			out[i] = int32(c)
		}
		return adopt(dt, castToBytes(out), len(out)), nil
	default:
		// Already the widest indexer dtype: reinterpret the caller's
		// storage without copying.
		return adopt(dt, castToBytes(codes), len(codes)), nil
	}
}

func adopt(dt arrow.DataType, b []byte, n int) *Array {
	return &Array{dtype: dt, buf: memory.NewBufferBytes(b), n: n}
}
