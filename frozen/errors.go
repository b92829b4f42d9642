package frozen

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Common errors for frozen container operations
var (
	ErrImmutable     = errors.New("frozen container does not support mutable operations")
	ErrOverflow      = errors.New("value overflows the narrowed indexer dtype")
	ErrDTypeMismatch = errors.New("dtype mismatch")
)

// ImmutableError reports a rejected in-place mutation. It carries the
// operation name and the concrete container type for diagnostics.
type ImmutableError struct {
	Op   string
	Type string
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("%s does not support mutable operation %s", e.Type, e.Op)
}

func (e *ImmutableError) Is(target error) bool { return target == ErrImmutable }

// OverflowError reports a code value that cannot be represented in the
// indexer dtype selected for a category collection.
type OverflowError struct {
	Value int64
	DType arrow.DataType
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value %d overflows indexer dtype %s", e.Value, e.DType)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }
