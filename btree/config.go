package btree

const (
	// Capacity is the maximum number of elements of a plain leaf and the
	// maximum number of children of a branch.
	Capacity = 16
	// MinFill is the lower bound for the elements of a non-root leaf and the
	// children of a non-root branch.
	MinFill = Capacity / 2

	// maxDepth bounds the height of any tree: a tree of height maxDepth holds
	// at least 2·MinFill^(maxDepth-2) elements, more than fits into memory.
	maxDepth = 24
)

// Domain describes a discrete, totally ordered element type. Trees over a
// discrete domain may store dense ranges of elements as run leaves.
type Domain[E any] interface {
	// Offset returns the element n steps after first.
	Offset(first E, n int) E
	// Adjacent reports whether b immediately follows a.
	Adjacent(a, b E) bool
	// Distance returns the number of steps from first to v, with v >= first.
	Distance(first, v E) int
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type integers[T integer] struct{}

func (integers[T]) Offset(first T, n int) T { return first + T(n) }

// Adjacent does not wrap around: the maximum value has no successor.
func (integers[T]) Adjacent(a, b T) bool { return b > a && b-a == 1 }

// Distance subtracts in uint64, which is exact for v >= first in every
// integer type, including runs wider than the signed range of T.
func (integers[T]) Distance(first, v T) int { return int(uint64(v) - uint64(first)) }

// DomainOf returns the discrete domain of E, or nil if E is not one of the
// predeclared integer types.
func DomainOf[E any]() Domain[E] {
	var d any
	switch any((*E)(nil)).(type) {
	case *int:
		d = integers[int]{}
	case *int8:
		d = integers[int8]{}
	case *int16:
		d = integers[int16]{}
	case *int32:
		d = integers[int32]{}
	case *int64:
		d = integers[int64]{}
	case *uint:
		d = integers[uint]{}
	case *uint8:
		d = integers[uint8]{}
	case *uint16:
		d = integers[uint16]{}
	case *uint32:
		d = integers[uint32]{}
	case *uint64:
		d = integers[uint64]{}
	case *uintptr:
		d = integers[uintptr]{}
	default:
		return nil
	}
	return d.(Domain[E])
}

// Policy tells ordered insertion what to do with elements comparing equal to
// the new one.
type Policy uint8

const (
	// KeepExisting leaves the tree unchanged if an equal element exists.
	KeepExisting Policy = iota
	// Replace overwrites an equal element with the new one.
	Replace
	// AppendEqual inserts behind all equal elements.
	AppendEqual
	// DenseRuns behaves like KeepExisting and additionally encodes contiguous
	// values of a discrete domain as run leaves. It requires the natural
	// ordering of the domain.
	DenseRuns
)

// Outcome reports the effect of an ordered insertion.
type Outcome uint8

const (
	// Present means an equal element existed and the tree is unchanged.
	Present Outcome = iota
	// Inserted means the element was added and the tree grew by one.
	Inserted
	// Replaced means an equal element was overwritten.
	Replaced
)

func (o Outcome) String() string {
	switch o {
	case Present:
		return "present"
	case Inserted:
		return "inserted"
	case Replaced:
		return "replaced"
	}
	return "invalid outcome"
}

// placement bundles what ordered insertion needs at every level.
type placement[E any] struct {
	cmp    func(a, b E) int
	policy Policy
	dom    Domain[E] // nil unless runs are in use
}

func newPlacement[E any](cmp func(a, b E) int, policy Policy) placement[E] {
	p := placement[E]{cmp: cmp, policy: policy}
	if policy == DenseRuns {
		p.dom = DomainOf[E]()
		if p.dom == nil {
			p.policy = KeepExisting
		}
	}
	return p
}
