package adm

import (
	"fmt"
	"log/slog"

	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/internal/xmlwrite"
)

// Structure selects the elements wrapped around audioFormatExtended when
// writing.
type Structure = xmlwrite.Structure

const (
	// StructureEBUCore writes ebuCoreMain/coreMetadata/format/audioFormatExtended.
	StructureEBUCore = xmlwrite.StructureEBUCore
	// StructureITU writes ituADM/coreMetadata/format/audioFormatExtended.
	StructureITU = xmlwrite.StructureITU
	// StructureBare writes audioFormatExtended as the document element.
	// Reading it back requires recursive root search.
	StructureBare = xmlwrite.StructureBare
)

// ParseStructure parses ebucore, itu or bare.
func ParseStructure(text string) (Structure, error) {
	return xmlwrite.ParseStructure(text)
}

const (
	defaultXMLMaxDepth = 256
	defaultXMLMaxAttrs = 256
)

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved(fallback int) int {
	if !o.set || o.value == 0 {
		return fallback
	}
	return o.value
}

// ParserOptions configures parsing. The zero value is valid.
type ParserOptions struct {
	recursiveRootSearch bool
	commonDefinitions   bool
	logger              *slog.Logger
	maxDepth            intOption
	maxAttrs            intOption
}

// NewParserOptions returns a default, valid parser options value.
func NewParserOptions() ParserOptions {
	return ParserOptions{}
}

// WithRecursiveRootSearch controls whether audioFormatExtended may appear at
// any depth instead of only under ebuCoreMain or ituADM.
func (o ParserOptions) WithRecursiveRootSearch(value bool) ParserOptions {
	o.recursiveRootSearch = value
	return o
}

// WithCommonDefinitions controls whether the common definitions are added to
// the document before parsing, so input may reference them without declaring
// them.
func (o ParserOptions) WithCommonDefinitions(value bool) ParserOptions {
	o.commonDefinitions = value
	return o
}

// WithLogger sets the logger used for debug diagnostics. Nil discards them.
func (o ParserOptions) WithLogger(logger *slog.Logger) ParserOptions {
	o.logger = logger
	return o
}

// WithMaxDepth sets the XML element depth limit (0 uses default).
func (o ParserOptions) WithMaxDepth(value int) ParserOptions {
	o.maxDepth = intOption{value: value, set: true}
	return o
}

// WithMaxAttrs sets the per-element XML attribute limit (0 uses default).
func (o ParserOptions) WithMaxAttrs(value int) ParserOptions {
	o.maxAttrs = intOption{value: value, set: true}
	return o
}

// RecursiveRootSearch reports the configured root search strategy.
func (o ParserOptions) RecursiveRootSearch() bool { return o.recursiveRootSearch }

// CommonDefinitions reports whether common definitions are loaded.
func (o ParserOptions) CommonDefinitions() bool { return o.commonDefinitions }

// Validate validates parser options values.
func (o ParserOptions) Validate() error {
	_, err := o.limits()
	return err
}

func (o ParserOptions) limits() (xmltree.Limits, error) {
	if o.maxDepth.value < 0 {
		return xmltree.Limits{}, fmt.Errorf("xml max depth must be >= 0")
	}
	if o.maxAttrs.value < 0 {
		return xmltree.Limits{}, fmt.Errorf("xml max attrs must be >= 0")
	}
	return xmltree.Limits{
		MaxDepth: o.maxDepth.resolved(defaultXMLMaxDepth),
		MaxAttrs: o.maxAttrs.resolved(defaultXMLMaxAttrs),
	}, nil
}

// WriterOptions configures serialization. The zero value writes the EBU Core
// structure without default values.
type WriterOptions struct {
	defaultValues     bool
	structure         Structure
	commonDefinitions bool
}

// NewWriterOptions returns a default, valid writer options value.
func NewWriterOptions() WriterOptions {
	return WriterOptions{}
}

// WithDefaultValues controls whether unset optional fields are written with
// their default values.
func (o WriterOptions) WithDefaultValues(value bool) WriterOptions {
	o.defaultValues = value
	return o
}

// WithStructure selects the wrapper elements.
func (o WriterOptions) WithStructure(value Structure) WriterOptions {
	o.structure = value
	return o
}

// WithCommonDefinitions controls whether common definitions held by the
// document are written too.
func (o WriterOptions) WithCommonDefinitions(value bool) WriterOptions {
	o.commonDefinitions = value
	return o
}

// Structure reports the configured wrapper structure.
func (o WriterOptions) Structure() Structure { return o.structure }

// DefaultValues reports whether default values are written.
func (o WriterOptions) DefaultValues() bool { return o.defaultValues }

func (o WriterOptions) resolved() xmlwrite.Options {
	return xmlwrite.Options{
		Structure:         o.structure,
		DefaultValues:     o.defaultValues,
		CommonDefinitions: o.commonDefinitions,
	}
}
