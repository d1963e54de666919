package value

import (
	"math"

	admerrors "github.com/jacoelho/adm/errors"
)

// GainUnit selects how the number of a Gain is interpreted.
type GainUnit uint8

const (
	GainLinear GainUnit = iota
	GainDB
)

var gainUnitNames = []string{"linear", "dB"}

// ParseGainUnit parses a gainUnit attribute. Unknown units fail with ErrUnexpectedUnit.
func ParseGainUnit(text string) (GainUnit, error) {
	if u, ok := lookupName[GainUnit](gainUnitNames, text); ok {
		return u, nil
	}
	return 0, &admerrors.Error{
		Code:     admerrors.ErrUnexpectedUnit,
		Message:  "unexpected gainUnit",
		Actual:   text,
		Expected: gainUnitNames,
	}
}

func (u GainUnit) String() string {
	return nameOf(gainUnitNames, u)
}

// Gain is a level stored in the unit it was written in.
// Gains in different units compare through their linear equivalent.
type Gain struct {
	v    float64
	unit GainUnit
}

// GainFromLinear builds a linear gain.
func GainFromLinear(v float64) (Gain, error) {
	if err := unbounded("gain").check(v); err != nil {
		return Gain{}, err
	}
	return Gain{v: v, unit: GainLinear}, nil
}

// GainFromDB builds a gain in decibels.
func GainFromDB(v float64) (Gain, error) {
	if err := unbounded("gain").check(v); err != nil {
		return Gain{}, err
	}
	return Gain{v: v, unit: GainDB}, nil
}

// MustGainFromLinear is like GainFromLinear but panics on invalid input.
func MustGainFromLinear(v float64) Gain {
	g, err := GainFromLinear(v)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseGain parses the text of a gain element in the given unit.
func ParseGain(text string, unit GainUnit) (Gain, error) {
	v, err := ParseNumber(text, "gain")
	if err != nil {
		return Gain{}, err
	}
	switch unit {
	case GainLinear:
		return GainFromLinear(v)
	case GainDB:
		return GainFromDB(v)
	default:
		return Gain{}, admerrors.Newf(admerrors.ErrUnexpectedUnit, "unexpected gain unit %d", unit)
	}
}

// Unit returns the unit the gain was written in.
func (g Gain) Unit() GainUnit {
	return g.unit
}

// Value returns the number in the gain's own unit.
func (g Gain) Value() float64 {
	return g.v
}

// Linear returns the linear equivalent of the gain.
func (g Gain) Linear() float64 {
	if g.unit == GainDB {
		return math.Pow(10, g.v/20)
	}
	return g.v
}

// DB returns the decibel equivalent of the gain.
func (g Gain) DB() float64 {
	if g.unit == GainDB {
		return g.v
	}
	return 20 * math.Log10(g.v)
}

// Equivalent reports whether both gains have the same linear value.
func (g Gain) Equivalent(other Gain) bool {
	a, b := g.Linear(), other.Linear()
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// String returns the number in the gain's own unit.
func (g Gain) String() string {
	return formatFloat(g.v)
}
