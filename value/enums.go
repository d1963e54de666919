package value

import (
	"fmt"
	"strconv"
	"strings"

	admerrors "github.com/jacoelho/adm/errors"
)

// TypeDescriptor is the typeDefinition of pack, channel, stream and track formats.
type TypeDescriptor uint16

const (
	TypeDirectSpeakers TypeDescriptor = 0x0001
	TypeMatrix         TypeDescriptor = 0x0002
	TypeObjects        TypeDescriptor = 0x0003
	TypeHOA            TypeDescriptor = 0x0004
	TypeBinaural       TypeDescriptor = 0x0005
)

var typeDefinitions = map[TypeDescriptor]string{
	TypeDirectSpeakers: "DirectSpeakers",
	TypeMatrix:         "Matrix",
	TypeObjects:        "Objects",
	TypeHOA:            "HOA",
	TypeBinaural:       "Binaural",
}

var typeDefinitionNames = []string{"DirectSpeakers", "Matrix", "Objects", "HOA", "Binaural"}

// TypeFromCode validates the numeric type code embedded in identifiers.
func TypeFromCode(code uint16) (TypeDescriptor, error) {
	t := TypeDescriptor(code)
	if _, ok := typeDefinitions[t]; !ok {
		return 0, admerrors.ValueFormat(fmt.Sprintf("%04X", code), "unknown type descriptor", "0001", "0002", "0003", "0004", "0005")
	}
	return t, nil
}

// ParseTypeLabel parses a typeLabel attribute such as "0003".
func ParseTypeLabel(text string) (TypeDescriptor, error) {
	code, err := parseLabel(text, "typeLabel")
	if err != nil {
		return 0, err
	}
	t, err := TypeFromCode(code)
	if err != nil {
		if e, ok := admerrors.AsError(err); ok {
			e.Actual = text
		}
		return 0, err
	}
	return t, nil
}

// ParseTypeDefinition parses a typeDefinition attribute such as "Objects".
func ParseTypeDefinition(text string) (TypeDescriptor, error) {
	for t, name := range typeDefinitions {
		if name == text {
			return t, nil
		}
	}
	return 0, admerrors.ValueFormat(text, "unknown typeDefinition", typeDefinitionNames...)
}

// Label returns the four digit typeLabel.
func (t TypeDescriptor) Label() string {
	return fmt.Sprintf("%04X", uint16(t))
}

// Definition returns the typeDefinition name.
func (t TypeDescriptor) Definition() string {
	if name, ok := typeDefinitions[t]; ok {
		return name
	}
	return "unknown(" + t.Label() + ")"
}

func (t TypeDescriptor) String() string {
	return t.Definition()
}

// FormatDescriptor is the formatDefinition of stream and track formats.
type FormatDescriptor uint16

// FormatPCM is the only format defined for stream and track formats.
const FormatPCM FormatDescriptor = 0x0001

// ParseFormatLabel parses a formatLabel attribute such as "0001".
func ParseFormatLabel(text string) (FormatDescriptor, error) {
	code, err := parseLabel(text, "formatLabel")
	if err != nil {
		return 0, err
	}
	if FormatDescriptor(code) != FormatPCM {
		return 0, admerrors.ValueFormat(text, "unknown formatLabel", "0001")
	}
	return FormatPCM, nil
}

// ParseFormatDefinition parses a formatDefinition attribute such as "PCM".
func ParseFormatDefinition(text string) (FormatDescriptor, error) {
	if text != "PCM" {
		return 0, admerrors.ValueFormat(text, "unknown formatDefinition", "PCM")
	}
	return FormatPCM, nil
}

// Label returns the four digit formatLabel.
func (f FormatDescriptor) Label() string {
	return fmt.Sprintf("%04X", uint16(f))
}

// Definition returns the formatDefinition name.
func (f FormatDescriptor) Definition() string {
	if f == FormatPCM {
		return "PCM"
	}
	return "unknown(" + f.Label() + ")"
}

func (f FormatDescriptor) String() string {
	return f.Definition()
}

func parseLabel(text, name string) (uint16, error) {
	if len(text) != 4 {
		return 0, admerrors.ValueFormat(text, name+" must have four hex digits", "hhhh")
	}
	v, err := strconv.ParseUint(text, 16, 16)
	if err != nil {
		return 0, admerrors.ValueFormat(text, name+" is not hexadecimal", "hhhh")
	}
	return uint16(v), nil
}

type named interface {
	~uint8
}

func lookupName[T named](names []string, text string) (T, bool) {
	for i, name := range names {
		if name == text {
			return T(i), true
		}
	}
	return 0, false
}

func nameOf[T named](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "invalid(" + strconv.Itoa(int(v)) + ")"
}

// Axis is the coordinate marker of position and offset children.
type Axis uint8

const (
	AxisAzimuth Axis = iota
	AxisElevation
	AxisDistance
	AxisX
	AxisY
	AxisZ
)

var axisNames = []string{"azimuth", "elevation", "distance", "X", "Y", "Z"}

// ParseAxis parses a coordinate attribute. Unknown axes fail with ErrInvalidCoordinate.
func ParseAxis(text string) (Axis, error) {
	if a, ok := lookupName[Axis](axisNames, text); ok {
		return a, nil
	}
	return 0, &admerrors.Error{
		Code:     admerrors.ErrInvalidCoordinate,
		Message:  "invalid coordinate attribute",
		Actual:   text,
		Expected: axisNames,
	}
}

// Cartesian reports whether the axis belongs to the cartesian system.
func (a Axis) Cartesian() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

func (a Axis) String() string {
	return nameOf(axisNames, a)
}

// Bound selects the minimum or maximum of a ranged coordinate or gain.
type Bound uint8

const (
	BoundMin Bound = iota
	BoundMax
)

var boundNames = []string{"min", "max"}

// ParseBound parses a bound attribute.
func ParseBound(text string) (Bound, error) {
	if b, ok := lookupName[Bound](boundNames, text); ok {
		return b, nil
	}
	return 0, admerrors.ValueFormat(text, "invalid bound", boundNames...)
}

func (b Bound) String() string {
	return nameOf(boundNames, b)
}

// HorizontalEdge locks an azimuth or X coordinate to a screen edge.
type HorizontalEdge uint8

const (
	EdgeLeft HorizontalEdge = iota
	EdgeRight
)

var horizontalEdgeNames = []string{"left", "right"}

// ParseHorizontalEdge parses a screenEdgeLock on an azimuth or X child.
func ParseHorizontalEdge(text string) (HorizontalEdge, error) {
	if e, ok := lookupName[HorizontalEdge](horizontalEdgeNames, text); ok {
		return e, nil
	}
	return 0, admerrors.ValueFormat(text, "invalid horizontal screenEdgeLock", horizontalEdgeNames...)
}

func (e HorizontalEdge) String() string {
	return nameOf(horizontalEdgeNames, e)
}

// VerticalEdge locks an elevation or Y coordinate to a screen edge.
type VerticalEdge uint8

const (
	EdgeTop VerticalEdge = iota
	EdgeBottom
)

var verticalEdgeNames = []string{"top", "bottom"}

// ParseVerticalEdge parses a screenEdgeLock on an elevation or Y child.
func ParseVerticalEdge(text string) (VerticalEdge, error) {
	if e, ok := lookupName[VerticalEdge](verticalEdgeNames, text); ok {
		return e, nil
	}
	return 0, admerrors.ValueFormat(text, "invalid vertical screenEdgeLock", verticalEdgeNames...)
}

func (e VerticalEdge) String() string {
	return nameOf(verticalEdgeNames, e)
}

// Normalization is the HOA component normalization scheme.
type Normalization uint8

const (
	NormalizationSN3D Normalization = iota
	NormalizationN3D
	NormalizationFuMa
)

var normalizationNames = []string{"SN3D", "N3D", "FuMa"}

// ParseNormalization parses a normalization attribute or element.
func ParseNormalization(text string) (Normalization, error) {
	if n, ok := lookupName[Normalization](normalizationNames, strings.TrimSpace(text)); ok {
		return n, nil
	}
	return 0, admerrors.ValueFormat(text, "invalid normalization", normalizationNames...)
}

func (n Normalization) String() string {
	return nameOf(normalizationNames, n)
}

// ParseBool parses the boolean forms used in ADM documents.
func ParseBool(text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, admerrors.ValueFormat(text, "invalid boolean", "0", "1", "true", "false")
	}
}

// FormatBool renders a boolean the way ADM documents spell it.
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
