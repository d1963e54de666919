// Package commondefs seeds documents with the common definitions: the
// DirectSpeakers pack, channel, stream and track formats that documents may
// reference without declaring.
package commondefs

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/ingest"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/value"
)

//go:embed common_definitions.xml
var source []byte

// Pack formats provided by Load.
var (
	Mono     = ids.PackFormat(value.TypeDirectSpeakers, 0x0001)
	Stereo   = ids.PackFormat(value.TypeDirectSpeakers, 0x0002)
	Surround = ids.PackFormat(value.TypeDirectSpeakers, 0x0003)
)

// Load adds the common definitions to doc. It fails with ErrDuplicateID when
// doc already holds any of them.
func Load(doc *document.Document) error {
	tree := xmltree.Acquire()
	defer xmltree.Release(tree)

	if err := xmltree.ParseInto(bytes.NewReader(source), tree); err != nil {
		return fmt.Errorf("parse common definitions: %w", err)
	}
	if err := ingest.Ingest(tree, doc, ingest.Options{}); err != nil {
		return fmt.Errorf("load common definitions: %w", err)
	}
	return nil
}
