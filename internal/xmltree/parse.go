package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode"

	admerrors "github.com/jacoelho/adm/errors"
)

// Parse builds a node tree from XML input.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{root: InvalidNode}
	if err := ParseInto(r, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Limits bounds the shape of parsed input. Zero fields are unlimited.
type Limits struct {
	MaxDepth int
	MaxAttrs int
}

// ParseInto builds a node tree into an existing document, replacing its content.
func ParseInto(r io.Reader, doc *Document) error {
	return ParseIntoLimited(r, doc, Limits{})
}

// ParseIntoLimited is ParseInto with input limits. Exceeding a limit fails
// with ErrXMLParse at the offending element.
func ParseIntoLimited(r io.Reader, doc *Document, limits Limits) (err error) {
	if doc == nil {
		return fmt.Errorf("nil XML document")
	}

	doc.reset()
	defer func() {
		if err != nil {
			doc.reset()
		}
	}()

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader
	stack := make([]NodeID, 0, 16)
	var attrsScratch []Attr
	rootClosed := false
	for {
		line, _ := decoder.InputPos()
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return syntaxError(err, line)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return admerrors.Newf(admerrors.ErrXMLParse, "unexpected element %s after document end", t.Name.Local).WithLine(line)
			}
			if limits.MaxDepth > 0 && len(stack) >= limits.MaxDepth {
				return admerrors.Newf(admerrors.ErrXMLParse, "element %s exceeds max depth %d", t.Name.Local, limits.MaxDepth).WithLine(line)
			}
			if limits.MaxAttrs > 0 && len(t.Attr) > limits.MaxAttrs {
				return admerrors.Newf(admerrors.ErrXMLParse, "element %s exceeds max attributes %d", t.Name.Local, limits.MaxAttrs).WithLine(line)
			}
			parent := InvalidNode
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			attrsScratch = attrsScratch[:0]
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
					continue
				}
				attrsScratch = append(attrsScratch, Attr{local: attr.Name.Local, value: attr.Value})
			}
			id := doc.addNode(t.Name.Local, attrsScratch, parent, line)
			if parent == InvalidNode {
				doc.root = id
			}
			stack = append(stack, id)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && doc.root != InvalidNode {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(t) {
					return admerrors.New(admerrors.ErrXMLParse, "unexpected character data outside root element").WithLine(line)
				}
				continue
			}
			id := stack[len(stack)-1]
			doc.nodes[id].text = append(doc.nodes[id].text, t...)
		}
	}

	if doc.root == InvalidNode {
		return admerrors.New(admerrors.ErrEmptyDocument, "xml document is empty").Wrap(io.ErrUnexpectedEOF)
	}

	doc.buildChildren()
	return nil
}

func syntaxError(err error, line int) error {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		line = syntax.Line
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return admerrors.New(admerrors.ErrXMLParse, "unexpected end of xml input").WithLine(line).Wrap(err)
	}
	return admerrors.New(admerrors.ErrXMLParse, "malformed xml").WithLine(line).Wrap(err)
}

func isIgnorableOutsideRoot(data []byte) bool {
	for _, r := range string(data) {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
