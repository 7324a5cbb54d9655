package distribution

import "fmt"

// BoundKind says whether a Range end exists and whether it contains its value.
type BoundKind uint8

const (
	// Unbounded means the range extends to infinity on that side.
	Unbounded BoundKind = iota
	// Inclusive ends contain their value.
	Inclusive
	// Exclusive ends do not contain their value.
	Exclusive
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Value float64
}

// Included returns an inclusive bound at v
func Included(v float64) Bound {
	return Bound{Kind: Inclusive, Value: v}
}

// Excluded returns an exclusive bound at v
func Excluded(v float64) Bound {
	return Bound{Kind: Exclusive, Value: v}
}

// Open returns an unbounded end
func Open() Bound {
	return Bound{Kind: Unbounded}
}

// IsBounded reports whether the end has a value
func (b Bound) IsBounded() bool {
	return b.Kind != Unbounded
}

func (b Bound) or(fallback float64) float64 {
	if b.Kind == Unbounded {
		return fallback
	}
	return b.Value
}

// Range is an interval of real values used as a probability query. Either end
// may be unbounded, inclusive or exclusive.
//
//	Notation     Constructor
//	[a .. b]     Between(a, b)
//	[a .. b)     Included(a), Excluded(b) via Range{}
//	(-INF .. b]  AtMost(b)
//	(-INF .. b)  LessThan(b)
//	[a .. +INF)  AtLeast(a)
//	(a .. +INF)  GreaterThan(a)
//	(-INF..+INF) All()
type Range struct {
	Lower Bound
	Upper Bound
}

// Between returns the closed range [a, b]
func Between(a, b float64) Range {
	return Range{Lower: Included(a), Upper: Included(b)}
}

// AtMost returns (-Inf, b]
func AtMost(b float64) Range {
	return Range{Lower: Open(), Upper: Included(b)}
}

// LessThan returns (-Inf, b)
func LessThan(b float64) Range {
	return Range{Lower: Open(), Upper: Excluded(b)}
}

// AtLeast returns [a, +Inf)
func AtLeast(a float64) Range {
	return Range{Lower: Included(a), Upper: Open()}
}

// GreaterThan returns (a, +Inf)
func GreaterThan(a float64) Range {
	return Range{Lower: Excluded(a), Upper: Open()}
}

// All returns the whole real line
func All() Range {
	return Range{Lower: Open(), Upper: Open()}
}

func (r Range) String() string {
	lower, upper := "(-Inf", "+Inf)"
	switch r.Lower.Kind {
	case Inclusive:
		lower = fmt.Sprintf("[%g", r.Lower.Value)
	case Exclusive:
		lower = fmt.Sprintf("(%g", r.Lower.Value)
	}
	switch r.Upper.Kind {
	case Inclusive:
		upper = fmt.Sprintf("%g]", r.Upper.Value)
	case Exclusive:
		upper = fmt.Sprintf("%g)", r.Upper.Value)
	}
	return lower + ", " + upper
}
