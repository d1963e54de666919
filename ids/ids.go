// Package ids implements the structured identifiers of ADM elements.
//
// An ID combines the element kind, an optional type descriptor (pack, channel,
// block, stream and track formats), a numeric value and an optional sub-index
// (block and track formats). IDs are comparable and can be used as map keys.
package ids

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/value"
)

// Kind is the element kind an identifier belongs to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindProgramme
	KindContent
	KindObject
	KindPackFormat
	KindChannelFormat
	KindBlockFormat
	KindStreamFormat
	KindTrackFormat
	KindTrackUID
)

type layout struct {
	prefix     string
	element    string
	valueWidth int
	subWidth   int
	typed      bool
}

var layouts = [...]layout{
	KindProgramme:     {prefix: "APR", element: "audioProgramme", valueWidth: 4},
	KindContent:       {prefix: "ACO", element: "audioContent", valueWidth: 4},
	KindObject:        {prefix: "AO", element: "audioObject", valueWidth: 4},
	KindPackFormat:    {prefix: "AP", element: "audioPackFormat", valueWidth: 4, typed: true},
	KindChannelFormat: {prefix: "AC", element: "audioChannelFormat", valueWidth: 4, typed: true},
	KindBlockFormat:   {prefix: "AB", element: "audioBlockFormat", valueWidth: 4, subWidth: 8, typed: true},
	KindStreamFormat:  {prefix: "AS", element: "audioStreamFormat", valueWidth: 4, typed: true},
	KindTrackFormat:   {prefix: "AT", element: "audioTrackFormat", valueWidth: 4, subWidth: 2, typed: true},
	KindTrackUID:      {prefix: "ATU", element: "audioTrackUID", valueWidth: 8},
}

func (k Kind) layout() (layout, bool) {
	if k == KindInvalid || int(k) >= len(layouts) {
		return layout{}, false
	}
	return layouts[k], true
}

// Element returns the markup element name of the kind.
func (k Kind) Element() string {
	if l, ok := k.layout(); ok {
		return l.element
	}
	return "invalid"
}

// Prefix returns the identifier prefix of the kind, such as "AO".
func (k Kind) Prefix() string {
	if l, ok := k.layout(); ok {
		return l.prefix
	}
	return ""
}

// Typed reports whether identifiers of the kind embed a type descriptor.
func (k Kind) Typed() bool {
	l, ok := k.layout()
	return ok && l.typed
}

func (k Kind) String() string {
	return k.Element()
}

// Kinds lists every element kind in document order.
func Kinds() []Kind {
	return []Kind{
		KindProgramme, KindContent, KindObject, KindPackFormat, KindChannelFormat,
		KindBlockFormat, KindStreamFormat, KindTrackFormat, KindTrackUID,
	}
}

// ID identifies an element. The zero Value marks a placeholder that still
// needs an identifier assigned.
type ID struct {
	Kind  Kind
	Type  value.TypeDescriptor
	Value uint32
	Sub   uint32
}

// Programme returns the identifier APR_vvvv.
func Programme(v uint32) ID { return ID{Kind: KindProgramme, Value: v} }

// Content returns the identifier ACO_vvvv.
func Content(v uint32) ID { return ID{Kind: KindContent, Value: v} }

// Object returns the identifier AO_vvvv.
func Object(v uint32) ID { return ID{Kind: KindObject, Value: v} }

// PackFormat returns the identifier AP_ttttvvvv.
func PackFormat(t value.TypeDescriptor, v uint32) ID {
	return ID{Kind: KindPackFormat, Type: t, Value: v}
}

// ChannelFormat returns the identifier AC_ttttvvvv.
func ChannelFormat(t value.TypeDescriptor, v uint32) ID {
	return ID{Kind: KindChannelFormat, Type: t, Value: v}
}

// BlockFormat returns the identifier AB_ttttvvvv_ssssssss.
func BlockFormat(t value.TypeDescriptor, v, sub uint32) ID {
	return ID{Kind: KindBlockFormat, Type: t, Value: v, Sub: sub}
}

// StreamFormat returns the identifier AS_ttttvvvv.
func StreamFormat(t value.TypeDescriptor, v uint32) ID {
	return ID{Kind: KindStreamFormat, Type: t, Value: v}
}

// TrackFormat returns the identifier AT_ttttvvvv_ss.
func TrackFormat(t value.TypeDescriptor, v, sub uint32) ID {
	return ID{Kind: KindTrackFormat, Type: t, Value: v, Sub: sub}
}

// TrackUID returns the identifier ATU_vvvvvvvv.
func TrackUID(v uint32) ID { return ID{Kind: KindTrackUID, Value: v} }

// Placeholder returns an unassigned identifier of kind k.
func Placeholder(k Kind) ID { return ID{Kind: k} }

// IsPlaceholder reports whether the identifier still needs a value.
func (id ID) IsPlaceholder() bool {
	return id.Value == 0
}

// Parse decodes text as an identifier of kind k.
func Parse(k Kind, text string) (ID, error) {
	l, ok := k.layout()
	if !ok {
		return ID{}, admerrors.Newf(admerrors.ErrValueFormat, "unknown identifier kind %d", k)
	}
	shape := shapeOf(l)
	invalid := func(msg string) (ID, error) {
		return ID{}, admerrors.ValueFormat(text, msg, shape)
	}

	body, ok := strings.CutPrefix(text, l.prefix+"_")
	if !ok {
		return invalid("invalid " + l.element + " identifier prefix")
	}
	main, sub, hasSub := strings.Cut(body, "_")
	if hasSub != (l.subWidth > 0) {
		return invalid("invalid " + l.element + " identifier shape")
	}

	id := ID{Kind: k}
	if l.typed {
		if len(main) != 8 {
			return invalid("invalid " + l.element + " identifier length")
		}
		code, err := parseHex(main[:4])
		if err != nil {
			return invalid("invalid " + l.element + " identifier type")
		}
		t, err := value.TypeFromCode(uint16(code))
		if err != nil {
			return invalid("unknown " + l.element + " identifier type")
		}
		id.Type = t
		main = main[4:]
	}
	if len(main) != l.valueWidth {
		return invalid("invalid " + l.element + " identifier length")
	}
	v, err := parseHex(main)
	if err != nil {
		return invalid("invalid " + l.element + " identifier value")
	}
	if v == 0 {
		return invalid(l.element + " identifier value must not be zero")
	}
	id.Value = v
	if hasSub {
		if len(sub) != l.subWidth {
			return invalid("invalid " + l.element + " identifier index length")
		}
		s, err := parseHex(sub)
		if err != nil {
			return invalid("invalid " + l.element + " identifier index")
		}
		id.Sub = s
	}
	return id, nil
}

// ParseAny decodes text as an identifier of whichever kind its prefix names.
func ParseAny(text string) (ID, error) {
	prefix, _, ok := strings.Cut(text, "_")
	if ok {
		for _, k := range Kinds() {
			if k.Prefix() == prefix {
				return Parse(k, text)
			}
		}
	}
	return ID{}, admerrors.ValueFormat(text, "unknown identifier prefix", "APR", "ACO", "AO", "AP", "AC", "AB", "AS", "AT", "ATU")
}

// MustParse is like ParseAny but panics on invalid input.
func MustParse(text string) ID {
	id, err := ParseAny(text)
	if err != nil {
		panic(err)
	}
	return id
}

func parseHex(text string) (uint32, error) {
	v, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func shapeOf(l layout) string {
	var b strings.Builder
	b.WriteString(l.prefix)
	b.WriteByte('_')
	if l.typed {
		b.WriteString("tttt")
	}
	b.WriteString(strings.Repeat("v", l.valueWidth))
	if l.subWidth > 0 {
		b.WriteByte('_')
		b.WriteString(strings.Repeat("s", l.subWidth))
	}
	return b.String()
}

// String renders the canonical text form; Parse(id.Kind, id.String()) == id.
func (id ID) String() string {
	l, ok := id.Kind.layout()
	if !ok {
		return "invalid"
	}
	var b strings.Builder
	b.WriteString(l.prefix)
	b.WriteByte('_')
	if l.typed {
		fmt.Fprintf(&b, "%04X", uint16(id.Type))
	}
	fmt.Fprintf(&b, "%0*X", l.valueWidth, id.Value)
	if l.subWidth > 0 {
		fmt.Fprintf(&b, "_%0*X", l.subWidth, id.Sub)
	}
	return b.String()
}

// Compare orders identifiers by kind, type, value and sub-index.
func Compare(a, b ID) int {
	return cmp.Or(
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.Type, b.Type),
		cmp.Compare(a.Value, b.Value),
		cmp.Compare(a.Sub, b.Sub),
	)
}

// CheckType verifies that explicit typeLabel and typeDefinition attributes
// agree with each other and with the type embedded in id.
func CheckType(id ID, typeLabel, typeDefinition *value.TypeDescriptor) error {
	if typeLabel != nil && typeDefinition != nil && *typeLabel != *typeDefinition {
		return &admerrors.Error{
			Code:     admerrors.ErrTypeMismatch,
			Message:  "typeLabel and typeDefinition do not match",
			Actual:   typeDefinition.Definition(),
			Expected: []string{typeLabel.Definition()},
		}
	}
	for _, explicit := range []*value.TypeDescriptor{typeLabel, typeDefinition} {
		if explicit != nil && *explicit != id.Type {
			return &admerrors.Error{
				Code:     admerrors.ErrTypeMismatch,
				Message:  "type of " + id.String() + " does not match its type attributes",
				Actual:   explicit.Definition(),
				Expected: []string{id.Type.Definition()},
			}
		}
	}
	return nil
}
