package value

import (
	"math"
	"strconv"
	"strings"

	admerrors "github.com/jacoelho/adm/errors"
)

type floatRange struct {
	name   string
	min    float64
	max    float64
	hasMin bool
	hasMax bool
}

func (r floatRange) expected() string {
	switch {
	case r.hasMin && r.hasMax:
		return "[" + formatFloat(r.min) + ", " + formatFloat(r.max) + "]"
	case r.hasMin:
		return ">= " + formatFloat(r.min)
	case r.hasMax:
		return "<= " + formatFloat(r.max)
	default:
		return "finite number"
	}
}

func (r floatRange) check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return admerrors.ValueFormat(formatFloat(v), r.name+" must be finite", r.expected())
	}
	if (r.hasMin && v < r.min) || (r.hasMax && v > r.max) {
		return admerrors.ValueFormat(formatFloat(v), r.name+" out of range", r.expected())
	}
	return nil
}

type floatDomain interface {
	floatRange() floatRange
}

// Float is a float64 restricted to the range of its domain D.
type Float[D floatDomain] struct {
	v float64
}

func newFloat[D floatDomain](v float64) (Float[D], error) {
	var d D
	if err := d.floatRange().check(v); err != nil {
		return Float[D]{}, err
	}
	return Float[D]{v: v}, nil
}

func parseFloat[D floatDomain](text string) (Float[D], error) {
	var d D
	r := d.floatRange()
	v, err := ParseNumber(text, r.name)
	if err != nil {
		return Float[D]{}, err
	}
	f, err := newFloat[D](v)
	if err != nil {
		if e, ok := admerrors.AsError(err); ok {
			e.Actual = text
		}
		return Float[D]{}, err
	}
	return f, nil
}

func mustFloat[D floatDomain](v float64) Float[D] {
	f, err := newFloat[D](v)
	if err != nil {
		panic(err)
	}
	return f
}

// Float64 returns the underlying number.
func (f Float[D]) Float64() float64 {
	return f.v
}

// String returns the shortest text that parses back to the same number.
func (f Float[D]) String() string {
	return formatFloat(f.v)
}

// ParseNumber parses a decimal number, naming the field in the error.
func ParseNumber(text, name string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, admerrors.ValueFormat(text, name+" is empty", "decimal number")
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, admerrors.ValueFormat(text, name+" is not a number", "decimal number")
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func atLeast(name string, min float64) floatRange {
	return floatRange{name: name, min: min, hasMin: true}
}

func between(name string, min, max float64) floatRange {
	return floatRange{name: name, min: min, max: max, hasMin: true, hasMax: true}
}

func unbounded(name string) floatRange {
	return floatRange{name: name}
}
