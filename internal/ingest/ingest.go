// Package ingest builds a document graph from an ADM node tree.
//
// Elements are read in a single pass over the children of the
// audioFormatExtended root. References are queued while reading and linked
// once every element is known, so they may point forwards and form cycles.
package ingest

import (
	"context"
	"log/slog"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/bind"
	"github.com/jacoelho/adm/internal/resolve"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
)

// Options configures one ingestion.
type Options struct {
	// RecursiveRootSearch selects FindRootRecursive instead of FindRootStrict.
	RecursiveRootSearch bool
	// Logger receives debug events. Nil disables logging.
	Logger *slog.Logger
}

// builder is the state of one ingestion call.
type builder struct {
	doc    *document.Document
	queue  *resolve.Queue
	logger *slog.Logger
}

// element parses one child of the root. Unknown children yield nil.
func (b *builder) element(n xmltree.Node) (model.Element, error) {
	switch n.Name() {
	case "audioProgramme":
		return built(b.programme(n))
	case "audioContent":
		return built(b.content(n))
	case "audioObject":
		return built(b.object(n))
	case "audioTrackUID":
		return built(b.trackUID(n))
	case "audioPackFormat":
		return built(b.packFormat(n))
	case "audioChannelFormat":
		return built(b.channelFormat(n))
	case "audioStreamFormat":
		return built(b.streamFormat(n))
	case "audioTrackFormat":
		return built(b.trackFormat(n))
	}
	return nil, nil
}

func built[T model.Element](el T, err error) (model.Element, error) {
	if err != nil {
		return nil, err
	}
	return el, nil
}

// Ingest adds every element under the ADM root of tree to doc and links
// their references. On error doc may hold a partial graph and must be
// discarded.
func Ingest(tree *xmltree.Document, doc *document.Document, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	root, err := LocateRoot(tree, opts.RecursiveRootSearch)
	if err != nil {
		return err
	}
	logger.Debug("located root", "recursive", opts.RecursiveRootSearch, "line", root.Line())

	b := &builder{doc: doc, queue: resolve.NewQueue(), logger: logger}
	before := doc.Len()
	for _, child := range root.Children() {
		el, err := b.element(child)
		if err != nil {
			return err
		}
		if el == nil {
			continue
		}
		if err := doc.Add(el); err != nil {
			return admerrors.AtLine(err, child.Name(), child.Line())
		}
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, kind := range ids.Kinds() {
			if n := doc.Count(kind); n > 0 {
				logger.Debug("elements", "kind", kind.Element(), "count", n)
			}
		}
		for _, role := range model.Roles() {
			if n := len(b.queue.Pending(role)); n > 0 {
				logger.Debug("pending references", "role", role.String(), "count", n)
			}
		}
	}
	if err := b.queue.Resolve(doc); err != nil {
		return err
	}
	logger.Debug("references resolved", "elements", doc.Len()-before, "references", b.queue.Len())
	return nil
}

// header reads the identifier and name attributes shared by every element
// and rejects identifiers already present in the graph.
func (b *builder) header(n xmltree.Node, kind ids.Kind) (ids.ID, string, error) {
	element := kind.Element()
	idAttr, nameAttr := element+"ID", element+"Name"
	if kind == ids.KindTrackUID {
		idAttr, nameAttr = "UID", ""
	}
	id, err := bind.RequiredAttr(n, idAttr, func(text string) (ids.ID, error) {
		return ids.Parse(kind, text)
	})
	if err != nil {
		return ids.ID{}, "", err
	}
	if b.doc.Has(id) {
		return ids.ID{}, "", admerrors.Newf(admerrors.ErrDuplicateID, "duplicate identifier %s", id).
			WithElement(element + "/@" + idAttr).
			WithLine(n.Line())
	}
	var name string
	if nameAttr != "" {
		name, err = bind.RequiredAttr(n, nameAttr, bind.Identity)
		if err != nil {
			return ids.ID{}, "", err
		}
	}
	return id, name, nil
}

// refs queues every reference element name of n under role.
func (b *builder) refs(n xmltree.Node, source model.Element, role model.Role) error {
	refs, err := bind.Refs(n, role.RefElement(), role.Target())
	if err != nil {
		return err
	}
	b.queue.AddRefs(source, role, refs)
	return nil
}

// ref queues the first reference element of n under a single-valued role.
func (b *builder) ref(n xmltree.Node, source model.Element, role model.Role) error {
	refs, err := bind.Refs(n, role.RefElement(), role.Target())
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		b.queue.AddRefs(source, role, refs[:1])
	}
	return nil
}

// firstErr returns the first non-nil error in argument order.
func firstErr(steps ...error) error {
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}
