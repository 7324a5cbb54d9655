package integration

import (
	"errors"
	"fmt"
	gomath "math"
	"strings"
)

// DefaultWidth is the target sub-interval width used when none is given.
const DefaultWidth = 0.05

// Rule selects how samples are placed and weighted inside the partition.
type Rule int

const (
	// Midpoint sums f at the centre of each sub-interval.
	Midpoint Rule = iota
	// Trapezoid averages f at both edges of each sub-interval.
	Trapezoid
)

// Rules lists every supported rule in declaration order.
var Rules = []Rule{Midpoint, Trapezoid}

// String returns the lower-case rule name
func (r Rule) String() string {
	switch r {
	case Midpoint:
		return "midpoint"
	case Trapezoid:
		return "trapezoid"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// ParseRule maps a rule name to its Rule, ignoring case.
func ParseRule(name string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "midpoint", "mid":
		return Midpoint, nil
	case "trapezoid", "trapezoidal", "trap":
		return Trapezoid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
}

var (
	ErrUnknownRule      = errors.New("unknown integration rule")
	ErrNonPositiveWidth = errors.New("width must be positive and finite")
	ErrEmptyInterval    = errors.New("interval has zero length")
	ErrNonFinite        = errors.New("interval bounds must be finite")
)

// Interval is a pair of finite bounds. Start may be greater than End.
type Interval struct {
	Start float64
	End   float64
}

// Length returns |End - Start|
func (iv Interval) Length() float64 {
	return gomath.Abs(iv.End - iv.Start)
}

// Lower returns the smaller bound
func (iv Interval) Lower() float64 {
	return gomath.Min(iv.Start, iv.End)
}

// Upper returns the larger bound
func (iv Interval) Upper() float64 {
	return gomath.Max(iv.Start, iv.End)
}

// Reversed reports whether Start lies above End.
func (iv Interval) Reversed() bool {
	return iv.Start > iv.End
}

// Partition returns the number of sub-intervals and their actual width for a
// target width. The actual width divides the interval exactly and is never
// larger than width. When the count is negative, NaN or does not fit in an
// int, Partition returns 0 and a NaN width.
func Partition(iv Interval, width float64) (int, float64) {
	length := iv.Length()
	n := gomath.Ceil(length / width)
	if !(n >= 0 && n < gomath.MaxInt) {
		return 0, gomath.NaN()
	}
	return int(n), length / n
}

// Validate reports why (iv, width) would yield a meaningless integral.
// Integrate itself never calls it.
func Validate(iv Interval, width float64) error {
	if gomath.IsNaN(iv.Start) || gomath.IsInf(iv.Start, 0) ||
		gomath.IsNaN(iv.End) || gomath.IsInf(iv.End, 0) {
		return ErrNonFinite
	}
	if gomath.IsNaN(width) || gomath.IsInf(width, 0) || width <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositiveWidth, width)
	}
	if iv.Length() == 0 {
		return ErrEmptyInterval
	}
	return nil
}

// Integrate approximates the integral of f over iv using rule with sub-intervals
// no wider than width. A reversed interval is integrated over its absolute span
// and the result is the same as for the ordered interval. Samples are taken
// left to right. An unknown rule or an unusable partition yields NaN.
func Integrate(rule Rule, f func(float64) float64, iv Interval, width float64) float64 {
	n, h := Partition(iv, width)
	if gomath.IsNaN(h) {
		return gomath.NaN()
	}
	lo, hi := iv.Lower(), iv.Upper()

	switch rule {
	case Midpoint:
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += f(lo + (float64(i)+0.5)*h)
		}
		return sum * h
	case Trapezoid:
		first := f(lo)
		interior := 0.0
		for i := 1; i < n; i++ {
			interior += f(lo + float64(i)*h)
		}
		return (first + 2*interior + f(hi)) * h / 2
	default:
		return gomath.NaN()
	}
}

// MidpointIntegral approximates the integral of f over iv with the midpoint rule and DefaultWidth.
func MidpointIntegral(f func(float64) float64, iv Interval) float64 {
	return Integrate(Midpoint, f, iv, DefaultWidth)
}

// MidpointWidth approximates the integral of f over iv with the midpoint rule.
// Smaller widths give better approximations.
func MidpointWidth(f func(float64) float64, iv Interval, width float64) float64 {
	return Integrate(Midpoint, f, iv, width)
}

// TrapezoidIntegral approximates the integral of f over iv with the trapezoid rule and DefaultWidth.
func TrapezoidIntegral(f func(float64) float64, iv Interval) float64 {
	return Integrate(Trapezoid, f, iv, DefaultWidth)
}

// TrapezoidWidth approximates the integral of f over iv with the trapezoid rule.
func TrapezoidWidth(f func(float64) float64, iv Interval, width float64) float64 {
	return Integrate(Trapezoid, f, iv, width)
}

// Integrator carries a default width per rule. The zero value uses DefaultWidth
// for every rule.
type Integrator struct {
	Widths map[Rule]float64
}

// NewIntegrator creates an integrator with the given midpoint and trapezoid defaults.
// Non-positive values fall back to DefaultWidth.
func NewIntegrator(midpoint, trapezoid float64) *Integrator {
	return &Integrator{Widths: map[Rule]float64{
		Midpoint:  midpoint,
		Trapezoid: trapezoid,
	}}
}

// Width returns the default width configured for rule
func (in *Integrator) Width(rule Rule) float64 {
	if in != nil {
		if w, ok := in.Widths[rule]; ok && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// Integrate integrates f over iv with the rule's configured width
func (in *Integrator) Integrate(rule Rule, f func(float64) float64, iv Interval) float64 {
	return Integrate(rule, f, iv, in.Width(rule))
}
