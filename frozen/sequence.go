package frozen

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Ordered is the read-only view shared by Sequence and plain slices.
// Equality is defined over this view, so a Sequence compares uniformly
// against another Sequence, a slice wrapped with SliceOf, or any other
// ordered collection of T.
type Ordered[T comparable] interface {
	Len() int
	At(i int) T
}

// SliceOf adapts a plain slice to the Ordered view without copying.
func SliceOf[T comparable](items []T) Ordered[T] { return sliceView[T](items) }

type sliceView[T comparable] []T

func (v sliceView[T]) Len() int   { return len(v) }
func (v sliceView[T]) At(i int) T { return v[i] }

// Sequence is an immutable ordered sequence. Element order is semantically
// significant: it encodes positional identity, such as the mapping from a
// level name to its level position. Every derivation returns a new
// instance; the receiver is never modified.
type Sequence[T comparable] struct {
	items []T
}

// NewSequence copies items into a new immutable Sequence.
func NewSequence[T comparable](items ...T) *Sequence[T] {
	s := &Sequence[T]{items: make([]T, len(items))}
	copy(s.items, items)
	return s
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return len(s.items) }

// At returns the element at position i.
func (s *Sequence[T]) At(i int) T { return s.items[i] }

// Items returns a fresh copy of the elements. The caller owns the returned
// slice and may mutate it freely.
func (s *Sequence[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Union returns a new Sequence with other concatenated to the end of s.
// Duplicates are retained.
func (s *Sequence[T]) Union(other ...T) *Sequence[T] {
	items := make([]T, 0, len(s.items)+len(other))
	items = append(items, s.items...)
	items = append(items, other...)
	return &Sequence[T]{items: items}
}

// Concat returns the same result as Union.
//
// Deprecated: Use Union. Concat exists only for callers migrating from
// concatenation-style APIs.
func (s *Sequence[T]) Concat(other ...T) *Sequence[T] { return s.Union(other...) }

// Difference returns a new Sequence with the elements of s, in original
// order, excluding any element that is a member of other. Membership is by
// equality only; no ordering of T is required.
func (s *Sequence[T]) Difference(other ...T) *Sequence[T] {
	drop := make(map[T]struct{}, len(other))
	for _, v := range other {
		drop[v] = struct{}{}
	}
	items := make([]T, 0, len(s.items))
	for _, v := range s.items {
		if _, ok := drop[v]; !ok {
			items = append(items, v)
		}
	}
	return &Sequence[T]{items: items}
}

// Slice returns a new frozen Sequence over s[i:j]. Derived values stay
// frozen; Slice never exposes the internal storage.
func (s *Sequence[T]) Slice(i, j int) *Sequence[T] {
	return NewSequence(s.items[i:j]...)
}

// Repeat returns a new Sequence with the content of s repeated n times.
// A non-positive n yields an empty Sequence.
func (s *Sequence[T]) Repeat(n int) *Sequence[T] {
	if n <= 0 {
		return &Sequence[T]{}
	}
	items := make([]T, 0, n*len(s.items))
	for i := 0; i < n; i++ {
		items = append(items, s.items...)
	}
	return &Sequence[T]{items: items}
}

// Equal reports whether s and other hold equal elements in equal order.
func (s *Sequence[T]) Equal(other Ordered[T]) bool {
	if other == nil || other.Len() != len(s.items) {
		return false
	}
	for i, v := range s.items {
		if other.At(i) != v {
			return false
		}
	}
	return true
}

// Hash returns a stable 64-bit hash of the ordered content. Two sequences
// that are Equal hash identically. Each element is framed by the length of
// its rendering so ["ab"] and ["a", "b"] hash differently.
func (s *Sequence[T]) Hash() uint64 {
	h := xxh3.New()
	var frame [8]byte
	for _, v := range s.items {
		repr := fmt.Sprintf("%v", v)
		binary.LittleEndian.PutUint64(frame[:], uint64(len(repr)))
		h.Write(frame[:])
		h.WriteString(repr)
	}
	return h.Sum64()
}

// String renders the type name and the quoted, escape-safe elements.
func (s *Sequence[T]) String() string {
	return "Sequence(" + renderItems(s.items) + ")"
}

// The mutating surface below exists only to be rejected: every call fails
// with an ImmutableError and leaves the sequence untouched.

// Set always fails with an ImmutableError.
func (s *Sequence[T]) Set(i int, v T) error { return s.disabled("Set") }

// Delete always fails with an ImmutableError.
func (s *Sequence[T]) Delete(i int) error { return s.disabled("Delete") }

// Append always fails with an ImmutableError.
func (s *Sequence[T]) Append(v T) error { return s.disabled("Append") }

// Insert always fails with an ImmutableError.
func (s *Sequence[T]) Insert(i int, v T) error { return s.disabled("Insert") }

// Extend always fails with an ImmutableError.
func (s *Sequence[T]) Extend(items ...T) error { return s.disabled("Extend") }

// Remove always fails with an ImmutableError.
func (s *Sequence[T]) Remove(v T) error { return s.disabled("Remove") }

// Sort always fails with an ImmutableError.
func (s *Sequence[T]) Sort() error { return s.disabled("Sort") }

// Pop always fails with an ImmutableError.
func (s *Sequence[T]) Pop(i int) (T, error) {
	var zero T
	return zero, s.disabled("Pop")
}

func (s *Sequence[T]) disabled(op string) error {
	return &ImmutableError{Op: op, Type: "frozen.Sequence"}
}
