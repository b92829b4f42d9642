package frozen

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/zeebo/xxh3"
)

// Array is an immutable fixed-dtype numeric array. The buffer contents and
// length never change after construction. Views returned by View share the
// refcounted buffer, which is safe because no handle can write through it.
type Array struct {
	dtype arrow.DataType
	buf   *memory.Buffer
	n     int
}

// NewArray copies values into a new frozen Array. The dtype is inferred
// from the element type.
func NewArray[T Numeric](values []T) *Array {
	src := castToBytes(values)
	buf := memory.NewResizableBuffer(memory.DefaultAllocator)
	buf.Resize(len(src))
	copy(buf.Bytes(), src)
	return &Array{dtype: dtypeOf[T](), buf: buf, n: len(values)}
}

// NewArrayBytes wraps raw native-endian storage as a frozen Array. When
// copyData is false the storage is adopted and the caller must not modify
// it afterwards; when copyData is true an independent duplicate is taken.
func NewArrayBytes(dtype arrow.DataType, data []byte, copyData bool) (*Array, error) {
	fw, ok := dtype.(arrow.FixedWidthDataType)
	if !ok {
		return nil, fmt.Errorf("dtype %s is not fixed-width: %w", dtype, ErrDTypeMismatch)
	}
	width := fw.BitWidth() / 8
	if width == 0 || len(data)%width != 0 {
		return nil, fmt.Errorf("buffer length %d does not align to dtype %s", len(data), dtype)
	}
	if copyData {
		dup := make([]byte, len(data))
		copy(dup, data)
		data = dup
	}
	return &Array{dtype: dtype, buf: memory.NewBufferBytes(data), n: len(data) / width}, nil
}

// Len returns the number of elements.
func (a *Array) Len() int { return a.n }

// DType returns the dtype tag.
func (a *Array) DType() arrow.DataType { return a.dtype }

// View returns a new immutable handle over the same storage. No copy is
// taken; the buffer is shared and reference counted.
func (a *Array) View() *Array {
	a.buf.Retain()
	return &Array{dtype: a.dtype, buf: a.buf, n: a.n}
}

// Copy returns a detached duplicate with its own storage.
func (a *Array) Copy() *Array {
	dup := make([]byte, len(a.buf.Bytes()))
	copy(dup, a.buf.Bytes())
	return &Array{dtype: a.dtype, buf: memory.NewBufferBytes(dup), n: a.n}
}

// Bytes returns a fresh copy of the raw storage. The caller owns the
// returned slice and may mutate it without affecting the Array.
func (a *Array) Bytes() []byte {
	out := make([]byte, len(a.buf.Bytes()))
	copy(out, a.buf.Bytes())
	return out
}

// Buffer returns the shared storage buffer, exposed for zero-copy interop
// the way arrow arrays expose theirs. Callers must treat it as read-only.
func (a *Array) Buffer() *memory.Buffer { return a.buf }

// Retain increases the reference count of the underlying buffer.
func (a *Array) Retain() { a.buf.Retain() }

// Release decreases the reference count of the underlying buffer.
func (a *Array) Release() { a.buf.Release() }

// Values returns a freshly copied mutable slice of the array contents. The
// element type must match the array dtype; mutating the result never
// affects the frozen source.
func Values[T Numeric](a *Array) ([]T, error) {
	if dtypeOf[T]().ID() != a.dtype.ID() {
		return nil, fmt.Errorf("requested %s values from %s array: %w",
			dtypeOf[T](), a.dtype, ErrDTypeMismatch)
	}
	out := make([]T, a.n)
	copy(out, castFromBytes[T](a.buf.Bytes()))
	return out, nil
}

// Int64 returns the element at i widened to int64. It panics if the dtype
// is not an integer type.
func (a *Array) Int64(i int) int64 {
	b := a.elem(i)
	switch a.dtype.ID() {
	case arrow.INT8:
		return int64(int8(b[0]))
	case arrow.INT16:
		return int64(int16(binary.LittleEndian.Uint16(b)))
	case arrow.INT32:
		return int64(int32(binary.LittleEndian.Uint32(b)))
	case arrow.INT64:
		return int64(binary.LittleEndian.Uint64(b))
	case arrow.UINT8:
		return int64(b[0])
	case arrow.UINT16:
		return int64(binary.LittleEndian.Uint16(b))
	case arrow.UINT32:
		return int64(binary.LittleEndian.Uint32(b))
	case arrow.UINT64:
		return int64(binary.LittleEndian.Uint64(b))
	default:
		panic(fmt.Sprintf("frozen.Array: Int64 on dtype %s", a.dtype))
	}
}

// Float64 returns the element at i as a float64, widening integer dtypes.
func (a *Array) Float64(i int) float64 {
	switch a.dtype.ID() {
	case arrow.FLOAT32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(a.elem(i))))
	case arrow.FLOAT64:
		return math.Float64frombits(binary.LittleEndian.Uint64(a.elem(i)))
	default:
		return float64(a.Int64(i))
	}
}

// Equal reports whether b has the same dtype, length and contents.
func (a *Array) Equal(b *Array) bool {
	if b == nil || !arrow.TypeEqual(a.dtype, b.dtype) || a.n != b.n {
		return false
	}
	return bytes.Equal(a.buf.Bytes(), b.buf.Bytes())
}

// Hash returns a stable 64-bit hash of the dtype tag and contents.
func (a *Array) Hash() uint64 {
	h := xxh3.New()
	h.WriteString(a.dtype.String())
	h.Write(a.buf.Bytes())
	return h.Sum64()
}

// String renders the type name, the element values and the dtype tag.
func (a *Array) String() string {
	var b strings.Builder
	b.WriteString("Array([")
	for i := 0; i < a.n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		switch a.dtype.ID() {
		case arrow.FLOAT32, arrow.FLOAT64:
			b.WriteString(strconv.FormatFloat(a.Float64(i), 'g', -1, 64))
		default:
			b.WriteString(strconv.FormatInt(a.Int64(i), 10))
		}
	}
	fmt.Fprintf(&b, "], dtype='%s')", a.dtype)
	return b.String()
}

// The mutating surface below exists only to be rejected: every call fails
// with an ImmutableError and leaves the array untouched.

// Set always fails with an ImmutableError.
func (a *Array) Set(i int, v int64) error { return a.disabled("Set") }

// Fill always fails with an ImmutableError.
func (a *Array) Fill(v int64) error { return a.disabled("Fill") }

// Put always fails with an ImmutableError.
func (a *Array) Put(indices []int, values []int64) error { return a.disabled("Put") }

// Delete always fails with an ImmutableError.
func (a *Array) Delete(i int) error { return a.disabled("Delete") }

func (a *Array) disabled(op string) error {
	return &ImmutableError{Op: op, Type: "frozen.Array"}
}

func (a *Array) elem(i int) []byte {
	w := a.width()
	return a.buf.Bytes()[i*w : (i+1)*w]
}

func (a *Array) width() int {
	return a.dtype.(arrow.FixedWidthDataType).BitWidth() / 8
}
