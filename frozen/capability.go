package frozen

// Readable is the capability surface the frozen containers implement. There
// is deliberately no writable counterpart: the mutation entry points on
// Sequence and Array exist only to fail with an ImmutableError, so no
// interface in this package can grant write access to a frozen value.
type Readable interface {
	Len() int
	Hash() uint64
	String() string
}

var (
	_ Readable = (*Sequence[string])(nil)
	_ Readable = (*Array)(nil)

	_ Ordered[string] = (*Sequence[string])(nil)
	_ Categories      = (*Sequence[string])(nil)
)
