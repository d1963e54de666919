// Package adm reads and writes Audio Definition Model (ITU-R BS.2076)
// metadata.
//
// Parsing builds a typed, fully linked element graph from ADM XML. Every
// failure is reported as a single *errors.Error carrying a code, the
// offending element and the input line.
package adm

import (
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/adm/document"
	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/internal/commondefs"
	"github.com/jacoelho/adm/internal/ingest"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/internal/xmlwrite"
)

// Parse reads an ADM document.
func Parse(r io.Reader, opts ParserOptions) (*document.Document, error) {
	doc := document.New()
	if err := ParseInto(r, doc, opts); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseFile reads an ADM document from a file path.
func ParseFile(path string, opts ParserOptions) (doc *document.Document, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open adm file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close adm file %s: %w", path, closeErr)
		}
	}()

	doc, err = Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// ParseInto reads an ADM document into doc, which may already hold elements.
// Input may reference elements already in doc. On error doc is left partially
// populated and must be discarded.
func ParseInto(r io.Reader, doc *document.Document, opts ParserOptions) error {
	if r == nil {
		return admerrors.New(admerrors.ErrXMLParse, "nil reader")
	}
	if doc == nil {
		return fmt.Errorf("parse adm: nil document")
	}
	limits, err := opts.limits()
	if err != nil {
		return err
	}

	tree := xmltree.Acquire()
	defer xmltree.Release(tree)
	if err := xmltree.ParseIntoLimited(r, tree, limits); err != nil {
		return err
	}

	if opts.commonDefinitions && !doc.Has(commondefs.Mono) {
		if err := commondefs.Load(doc); err != nil {
			return err
		}
	}
	return ingest.Ingest(tree, doc, ingest.Options{
		RecursiveRootSearch: opts.recursiveRootSearch,
		Logger:              opts.logger,
	})
}

// Write serializes doc as ADM XML.
func Write(w io.Writer, doc *document.Document, opts WriterOptions) error {
	if doc == nil {
		return fmt.Errorf("write adm: nil document")
	}
	return xmlwrite.Write(w, doc, opts.resolved())
}

// WriteFile serializes doc to a file path, replacing any existing file.
func WriteFile(path string, doc *document.Document, opts WriterOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create adm file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close adm file %s: %w", path, closeErr)
		}
	}()
	return Write(f, doc, opts)
}
