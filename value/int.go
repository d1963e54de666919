package value

import (
	"strconv"
	"strings"

	admerrors "github.com/jacoelho/adm/errors"
)

type intRange struct {
	name   string
	min    int
	max    int
	hasMin bool
	hasMax bool
}

func (r intRange) expected() string {
	switch {
	case r.hasMin && r.hasMax:
		return "integer in [" + strconv.Itoa(r.min) + ", " + strconv.Itoa(r.max) + "]"
	case r.hasMin:
		return "integer >= " + strconv.Itoa(r.min)
	default:
		return "integer"
	}
}

func (r intRange) check(v int) error {
	if (r.hasMin && v < r.min) || (r.hasMax && v > r.max) {
		return admerrors.ValueFormat(strconv.Itoa(v), r.name+" out of range", r.expected())
	}
	return nil
}

type intDomain interface {
	intRange() intRange
}

// Int is an integer restricted to the range of its domain D.
type Int[D intDomain] struct {
	v int
}

func newInt[D intDomain](v int) (Int[D], error) {
	var d D
	if err := d.intRange().check(v); err != nil {
		return Int[D]{}, err
	}
	return Int[D]{v: v}, nil
}

func parseInt[D intDomain](text string) (Int[D], error) {
	var d D
	r := d.intRange()
	v, err := ParseInteger(text, r.name)
	if err != nil {
		return Int[D]{}, err
	}
	i, err := newInt[D](v)
	if err != nil {
		if e, ok := admerrors.AsError(err); ok {
			e.Actual = text
		}
		return Int[D]{}, err
	}
	return i, nil
}

func mustInt[D intDomain](v int) Int[D] {
	i, err := newInt[D](v)
	if err != nil {
		panic(err)
	}
	return i
}

// Int returns the underlying integer.
func (i Int[D]) Int() int {
	return i.v
}

// String returns the decimal text of the integer.
func (i Int[D]) String() string {
	return strconv.Itoa(i.v)
}

// ParseInteger parses a decimal integer, naming the field in the error.
func ParseInteger(text, name string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, admerrors.ValueFormat(text, name+" is empty", "integer")
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, admerrors.ValueFormat(text, name+" is not an integer", "integer")
	}
	return v, nil
}

type importanceDomain struct{}

func (importanceDomain) intRange() intRange {
	return intRange{name: "importance", min: 0, max: 10, hasMin: true, hasMax: true}
}

// Importance ranks an element from 0 (least) to 10 (most important).
type Importance = Int[importanceDomain]

// NewImportance validates v as an Importance.
func NewImportance(v int) (Importance, error) { return newInt[importanceDomain](v) }

// ParseImportance parses text as an Importance.
func ParseImportance(text string) (Importance, error) { return parseInt[importanceDomain](text) }

// MustImportance is like NewImportance but panics on invalid input.
func MustImportance(v int) Importance { return mustInt[importanceDomain](v) }

type orderDomain struct{}

func (orderDomain) intRange() intRange { return intRange{name: "order", hasMin: true} }

// Order is the order of a HOA component.
type Order = Int[orderDomain]

// NewOrder validates v as an Order.
func NewOrder(v int) (Order, error) { return newInt[orderDomain](v) }

// ParseOrder parses text as an Order.
func ParseOrder(text string) (Order, error) { return parseInt[orderDomain](text) }

// MustOrder is like NewOrder but panics on invalid input.
func MustOrder(v int) Order { return mustInt[orderDomain](v) }

type degreeDomain struct{}

func (degreeDomain) intRange() intRange { return intRange{name: "degree"} }

// Degree is the degree of a HOA component; it may be negative.
type Degree = Int[degreeDomain]

// NewDegree validates v as a Degree.
func NewDegree(v int) (Degree, error) { return newInt[degreeDomain](v) }

// ParseDegree parses text as a Degree.
func ParseDegree(text string) (Degree, error) { return parseInt[degreeDomain](text) }

// MustDegree is like NewDegree but panics on invalid input.
func MustDegree(v int) Degree { return mustInt[degreeDomain](v) }

type sampleRateDomain struct{}

func (sampleRateDomain) intRange() intRange { return intRange{name: "sampleRate", min: 1, hasMin: true} }

// SampleRate is a track sample rate in Hz.
type SampleRate = Int[sampleRateDomain]

// NewSampleRate validates v as a SampleRate.
func NewSampleRate(v int) (SampleRate, error) { return newInt[sampleRateDomain](v) }

// ParseSampleRate parses text as a SampleRate.
func ParseSampleRate(text string) (SampleRate, error) { return parseInt[sampleRateDomain](text) }

type bitDepthDomain struct{}

func (bitDepthDomain) intRange() intRange { return intRange{name: "bitDepth", min: 1, hasMin: true} }

// BitDepth is a track sample size in bits.
type BitDepth = Int[bitDepthDomain]

// NewBitDepth validates v as a BitDepth.
func NewBitDepth(v int) (BitDepth, error) { return newInt[bitDepthDomain](v) }

// ParseBitDepth parses text as a BitDepth.
func ParseBitDepth(text string) (BitDepth, error) { return parseInt[bitDepthDomain](text) }
