package frozen

import (
	"errors"
	"math"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
)

// catCount stands in for a category collection when only its cardinality
// matters.
type catCount int

func (c catCount) Len() int { return int(c) }

func TestIndexerType(t *testing.T) {
	cases := []struct {
		n    int
		want arrow.Type
	}{
		{0, arrow.INT8},
		{3, arrow.INT8},
		{math.MaxInt8 - 1, arrow.INT8},
		{math.MaxInt8, arrow.INT16},
		{math.MaxInt16 - 1, arrow.INT16},
		{math.MaxInt16, arrow.INT32},
		{math.MaxInt32 - 1, arrow.INT32},
		{math.MaxInt32, arrow.INT64},
	}

	for _, tc := range cases {
		if got := IndexerType(tc.n); got.ID() != tc.want {
			t.Errorf("IndexerType(%d): expected %s, got %s", tc.n, tc.want, got.ID())
		}
	}
}

func TestCoerceSelectsMinimalDtype(t *testing.T) {
	categories := NewSequence("x", "y", "z")
	a, err := Coerce([]int64{0, 1, 2}, categories, false)
	if err != nil {
		t.Fatalf("Failed to coerce: %v", err)
	}

	if a.DType().ID() != arrow.INT8 {
		t.Errorf("Expected dtype int8 for 3 categories, got %s", a.DType())
	}
	for i, want := range []int64{0, 1, 2} {
		if a.Int64(i) != want {
			t.Errorf("Expected code %d at %d, got %d", want, i, a.Int64(i))
		}
	}
}

func TestCoerceOverflow(t *testing.T) {
	_, err := Coerce([]int64{300}, catCount(2), false)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("Expected ErrOverflow, got %v", err)
	}

	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("Expected *OverflowError, got %T", err)
	}
	if oe.Value != 300 {
		t.Errorf("Expected offending value 300, got %d", oe.Value)
	}
	if oe.DType.ID() != arrow.INT8 {
		t.Errorf("Expected dtype int8 in error, got %s", oe.DType)
	}
}

func TestCoerceMissingSentinel(t *testing.T) {
	a, err := Coerce([]int64{0, -1, 1}, catCount(2), false)
	if err != nil {
		t.Fatalf("Failed to coerce codes with missing sentinel: %v", err)
	}
	if a.Int64(1) != -1 {
		t.Errorf("Expected sentinel -1 preserved, got %d", a.Int64(1))
	}
}

func TestCoerceWidths(t *testing.T) {
	cases := []struct {
		ncats int
		want  arrow.Type
	}{
		{100, arrow.INT8},
		{1000, arrow.INT16},
		{100000, arrow.INT32},
		{math.MaxInt32, arrow.INT64},
	}

	for _, tc := range cases {
		a, err := Coerce([]int64{0}, catCount(tc.ncats), false)
		if err != nil {
			t.Fatalf("Failed to coerce for %d categories: %v", tc.ncats, err)
		}
		if a.DType().ID() != tc.want {
			t.Errorf("%d categories: expected dtype %s, got %s", tc.ncats, tc.want, a.DType().ID())
		}
	}
}

func TestCoerceCopyDetached(t *testing.T) {
	codes := []int64{1, 2}
	a, err := Coerce(codes, catCount(math.MaxInt32), true)
	if err != nil {
		t.Fatalf("Failed to coerce: %v", err)
	}
	codes[0] = 99
	if a.Int64(0) != 1 {
		t.Errorf("Expected copied array detached from input, got %d", a.Int64(0))
	}
}

func TestCoerceAdoptsWidestStorage(t *testing.T) {
	codes := []int64{1, 2}
	a, err := Coerce(codes, catCount(math.MaxInt32), false)
	if err != nil {
		t.Fatalf("Failed to coerce: %v", err)
	}
	codes[0] = 99
	if a.Int64(0) != 99 {
		t.Errorf("Expected int64 storage adopted without copy, got %d", a.Int64(0))
	}
}

func FuzzCoerce(f *testing.F) {
	f.Add(int64(0), int64(1), 3)
	f.Add(int64(-1), int64(126), 127)
	f.Add(int64(300), int64(0), 2)
	f.Add(int64(math.MinInt64), int64(math.MaxInt64), 1000)

	f.Fuzz(func(t *testing.T, c0, c1 int64, ncats int) {
		if ncats < 0 {
			t.Skip()
		}
		codes := []int64{c0, c1}
		a, err := Coerce(codes, catCount(ncats), true)
		if err != nil {
			var oe *OverflowError
			if !errors.As(err, &oe) {
				t.Fatalf("Expected *OverflowError, got %v", err)
			}
			lo, hi := indexerRange(IndexerType(ncats))
			if oe.Value >= lo && oe.Value <= hi {
				t.Errorf("Value %d is in range [%d, %d] but was rejected", oe.Value, lo, hi)
			}
			return
		}
		for i, c := range codes {
			if a.Int64(i) != c {
				t.Errorf("Expected code %d at %d, got %d", c, i, a.Int64(i))
			}
		}
	})
}

func BenchmarkCoerce(b *testing.B) {
	codes := make([]int64, 1024)
	for i := range codes {
		codes[i] = int64(i % 100)
	}
	categories := catCount(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Coerce(codes, categories, false); err != nil {
			b.Fatal(err)
		}
	}
}
