package bridge

import (
	"fmt"

	arrowlib "github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/VanDung-dev/HieraFrame/frozen"
)

// ToArrow wraps a frozen Array as an arrow array without copying: the
// frozen buffer is shared as the arrow values buffer. The returned array
// must be Released by the caller.
func ToArrow(a *frozen.Array) (arrowlib.Array, error) {
	if _, ok := a.DType().(arrowlib.FixedWidthDataType); !ok {
		return nil, fmt.Errorf("dtype %s is not fixed-width", a.DType())
	}
	data := array.NewData(a.DType(), a.Len(), []*memory.Buffer{nil, a.Buffer()}, nil, 0, 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

// FromArrow converts a fixed-width arrow array into a frozen Array. When
// copyData is false the arrow values buffer is adopted without copying, so
// the frozen Array stays valid only as long as the storage does. Arrays
// with nulls are rejected: a frozen code array has no validity bitmap, the
// missing sentinel is -1.
func FromArrow(arr arrowlib.Array, copyData bool) (*frozen.Array, error) {
	fw, ok := arr.DataType().(arrowlib.FixedWidthDataType)
	if !ok {
		return nil, fmt.Errorf("dtype %s is not fixed-width", arr.DataType())
	}
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("array with %d nulls cannot back a frozen Array", arr.NullN())
	}
	width := fw.BitWidth() / 8
	buf := arr.Data().Buffers()[1]
	if buf == nil {
		return nil, fmt.Errorf("array of dtype %s has no values buffer", arr.DataType())
	}
	start := arr.Data().Offset() * width
	values := buf.Bytes()[start : start+arr.Len()*width]
	return frozen.NewArrayBytes(arr.DataType(), values, copyData)
}

// SequenceToArrow builds an arrow string array from a sequence of level
// names. The returned array must be Released by the caller.
func SequenceToArrow(s *frozen.Sequence[string], mem memory.Allocator) *array.String {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	builder := array.NewStringBuilder(mem)
	defer builder.Release()

	for i := 0; i < s.Len(); i++ {
		builder.Append(s.At(i))
	}
	return builder.NewStringArray()
}

// SequenceFromArrow copies an arrow string array into a frozen Sequence.
// Null slots are rejected since a level-name sequence holds plain values.
func SequenceFromArrow(arr *array.String) (*frozen.Sequence[string], error) {
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("array with %d nulls cannot back a frozen Sequence", arr.NullN())
	}
	items := make([]string, arr.Len())
	for i := range items {
		items[i] = arr.Value(i)
	}
	return frozen.NewSequence(items...), nil
}
