// Package xmlwrite serializes a document graph as ADM XML.
package xmlwrite

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/internal/idassign"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

// Structure selects the elements wrapped around audioFormatExtended.
type Structure uint8

const (
	// StructureEBUCore writes ebuCoreMain/coreMetadata/format/audioFormatExtended.
	StructureEBUCore Structure = iota
	// StructureITU writes ituADM/coreMetadata/format/audioFormatExtended.
	StructureITU
	// StructureBare writes audioFormatExtended as the document element.
	StructureBare
)

var structureNames = []string{"ebucore", "itu", "bare"}

// ParseStructure parses a structure name as used in configuration files.
func ParseStructure(text string) (Structure, error) {
	for i, name := range structureNames {
		if name == text {
			return Structure(i), nil
		}
	}
	return 0, fmt.Errorf("unknown structure %q (want ebucore, itu or bare)", text)
}

func (s Structure) String() string {
	if int(s) < len(structureNames) {
		return structureNames[s]
	}
	return fmt.Sprintf("structure(%d)", s)
}

// Options controls serialization.
type Options struct {
	Structure Structure
	// DefaultValues writes optional fields that are unset with their
	// default values.
	DefaultValues bool
	// CommonDefinitions also writes elements whose identifiers belong to
	// the common definitions range.
	CommonDefinitions bool
}

type wrapper struct {
	name  string
	attrs []xml.Attr
}

func wrappers(s Structure) []wrapper {
	switch s {
	case StructureITU:
		return []wrapper{
			{name: "ituADM", attrs: []xml.Attr{attr("xmlns", "urn:metadata-schema:adm")}},
			{name: "coreMetadata"},
			{name: "format"},
		}
	case StructureBare:
		return nil
	default:
		return []wrapper{
			{name: "ebuCoreMain", attrs: []xml.Attr{
				attr("xmlns:dc", "http://purl.org/dc/elements/1.1/"),
				attr("xmlns", "urn:ebu:metadata-schema:ebuCore_2014"),
				attr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance"),
				attr("schema", "EBU_CORE_20140201.xsd"),
				attr("xml:lang", "en"),
			}},
			{name: "coreMetadata"},
			{name: "format"},
		}
	}
}

// Write encodes doc to w.
func Write(w io.Writer, doc *document.Document, opts Options) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	e := &encoder{enc: xml.NewEncoder(w), defaults: opts.DefaultValues}
	e.enc.Indent("", "  ")

	outer := wrappers(opts.Structure)
	for _, wr := range outer {
		e.open(wr.name, wr.attrs...)
	}
	e.open("audioFormatExtended")
	for _, el := range doc.Elements() {
		if !opts.CommonDefinitions && idassign.IsCommonDefinition(el.ID()) {
			continue
		}
		e.element(el)
	}
	e.close("audioFormatExtended")
	for i := len(outer) - 1; i >= 0; i-- {
		e.close(outer[i].name)
	}
	if e.err != nil {
		return e.err
	}
	if err := e.enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// encoder wraps xml.Encoder and keeps the first error; later calls are
// no-ops once it is set.
type encoder struct {
	enc      *xml.Encoder
	defaults bool
	err      error
}

func (e *encoder) token(t xml.Token) {
	if e.err != nil {
		return
	}
	e.err = e.enc.EncodeToken(t)
}

func (e *encoder) open(name string, attrs ...xml.Attr) {
	e.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (e *encoder) close(name string) {
	e.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (e *encoder) leaf(name, text string, attrs ...xml.Attr) {
	e.open(name, attrs...)
	if text != "" {
		e.token(xml.CharData(text))
	}
	e.close(name)
}

func attr(name, v string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: v}
}

// fallback returns v, or def when v is unset and default values are written.
func fallback[T any](e *encoder, v *T, def T) *T {
	if v == nil && e.defaults {
		return &def
	}
	return v
}

func appendAttr[T fmt.Stringer](attrs []xml.Attr, name string, v *T) []xml.Attr {
	if v == nil {
		return attrs
	}
	return append(attrs, attr(name, (*v).String()))
}

func appendBoolAttr(attrs []xml.Attr, name string, v *bool) []xml.Attr {
	if v == nil {
		return attrs
	}
	return append(attrs, attr(name, value.FormatBool(*v)))
}

func appendStringAttr(attrs []xml.Attr, name string, v *string) []xml.Attr {
	if v == nil {
		return attrs
	}
	return append(attrs, attr(name, *v))
}

func optionalLeaf[T fmt.Stringer](e *encoder, name string, v *T) {
	if v != nil {
		e.leaf(name, (*v).String())
	}
}

func boolLeaf(e *encoder, name string, v *bool) {
	if v != nil {
		e.leaf(name, value.FormatBool(*v))
	}
}

func gainLeaf(e *encoder, name string, g *value.Gain, attrs ...xml.Attr) {
	if g == nil {
		return
	}
	if g.Unit() == value.GainDB {
		attrs = append(attrs, attr("gainUnit", value.GainDB.String()))
	}
	e.leaf(name, g.String(), attrs...)
}

func labels(e *encoder, name string, list []model.Label) {
	for _, l := range list {
		e.leaf(name, l.Value, appendAttr(nil, "language", l.Language)...)
	}
}
