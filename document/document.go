// Package document holds the graph of ADM elements.
//
// A Document owns its elements, indexes them by identifier and keeps each
// kind in insertion order. It has no internal locking; callers sharing a
// Document between goroutines must synchronize access themselves.
package document

import (
	"fmt"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/idassign"
	"github.com/jacoelho/adm/model"
)

// Document is the owning container of ADM elements.
type Document struct {
	byID   map[ids.ID]model.Element
	byKind map[ids.Kind][]model.Element
	alloc  *idassign.Allocator
}

// New returns an empty document.
func New() *Document {
	return &Document{
		byID:   make(map[ids.ID]model.Element),
		byKind: make(map[ids.Kind][]model.Element),
		alloc:  idassign.NewAllocator(),
	}
}

// Add inserts el. An element with a placeholder identifier is given the next
// free identifier of its kind; a collision with an existing identifier fails
// with ErrDuplicateID.
func (d *Document) Add(el model.Element) error {
	if el == nil {
		return fmt.Errorf("add nil element")
	}
	if el.ID().IsPlaceholder() {
		id, err := d.alloc.Next(el.ID())
		if err != nil {
			return err
		}
		el.SetID(id)
	}
	id := el.ID()
	if existing, ok := d.byID[id]; ok {
		if existing == el {
			return nil
		}
		return &admerrors.Error{
			Code:    admerrors.ErrDuplicateID,
			Message: "duplicate identifier " + id.String(),
			Element: id.Kind.Element(),
			Actual:  id.String(),
		}
	}
	d.byID[id] = el
	d.byKind[id.Kind] = append(d.byKind[id.Kind], el)
	d.alloc.Reserve(id)
	if ch, ok := el.(*model.ChannelFormat); ok {
		idassign.AssignBlocks(ch)
	}
	return nil
}

// Has reports whether an element with id exists.
func (d *Document) Has(id ids.ID) bool {
	_, ok := d.byID[id]
	return ok
}

// Lookup returns the element with id or fails with ErrNotFound.
func (d *Document) Lookup(id ids.ID) (model.Element, error) {
	el, ok := d.byID[id]
	if !ok {
		return nil, &admerrors.Error{
			Code:    admerrors.ErrNotFound,
			Message: "no element with identifier " + id.String(),
			Actual:  id.String(),
		}
	}
	return el, nil
}

// AllOfKind returns the elements of kind in insertion order.
// The returned slice must not be modified.
func (d *Document) AllOfKind(kind ids.Kind) []model.Element {
	return d.byKind[kind]
}

// Elements returns every element, kinds in document order and each kind in
// insertion order.
func (d *Document) Elements() []model.Element {
	out := make([]model.Element, 0, len(d.byID))
	for _, kind := range ids.Kinds() {
		out = append(out, d.byKind[kind]...)
	}
	return out
}

// Len returns the number of elements.
func (d *Document) Len() int {
	return len(d.byID)
}

// Count returns the number of elements of kind.
func (d *Document) Count(kind ids.Kind) int {
	return len(d.byKind[kind])
}

// Reassign renumbers every element except common definitions and rebuilds
// the index.
func (d *Document) Reassign() error {
	elements := d.Elements()
	if err := idassign.Reassign(elements); err != nil {
		return err
	}
	d.byID = make(map[ids.ID]model.Element, len(elements))
	d.alloc = idassign.NewAllocator()
	for _, el := range elements {
		if _, dup := d.byID[el.ID()]; dup {
			return fmt.Errorf("reassign produced duplicate identifier %s", el.ID())
		}
		d.byID[el.ID()] = el
		d.alloc.Reserve(el.ID())
	}
	return nil
}

func ofKind[T model.Element](d *Document, kind ids.Kind) []T {
	list := d.byKind[kind]
	out := make([]T, 0, len(list))
	for _, el := range list {
		out = append(out, el.(T))
	}
	return out
}

// Programmes returns the programmes in insertion order.
func (d *Document) Programmes() []*model.Programme {
	return ofKind[*model.Programme](d, ids.KindProgramme)
}

// Contents returns the contents in insertion order.
func (d *Document) Contents() []*model.Content {
	return ofKind[*model.Content](d, ids.KindContent)
}

// Objects returns the objects in insertion order.
func (d *Document) Objects() []*model.Object {
	return ofKind[*model.Object](d, ids.KindObject)
}

// PackFormats returns the pack formats in insertion order.
func (d *Document) PackFormats() []*model.PackFormat {
	return ofKind[*model.PackFormat](d, ids.KindPackFormat)
}

// ChannelFormats returns the channel formats in insertion order.
func (d *Document) ChannelFormats() []*model.ChannelFormat {
	return ofKind[*model.ChannelFormat](d, ids.KindChannelFormat)
}

// StreamFormats returns the stream formats in insertion order.
func (d *Document) StreamFormats() []*model.StreamFormat {
	return ofKind[*model.StreamFormat](d, ids.KindStreamFormat)
}

// TrackFormats returns the track formats in insertion order.
func (d *Document) TrackFormats() []*model.TrackFormat {
	return ofKind[*model.TrackFormat](d, ids.KindTrackFormat)
}

// TrackUIDs returns the track UIDs in insertion order.
func (d *Document) TrackUIDs() []*model.TrackUID {
	return ofKind[*model.TrackUID](d, ids.KindTrackUID)
}

// LookupAs returns the element with id as type T.
func LookupAs[T model.Element](d *Document, id ids.ID) (T, error) {
	var zero T
	el, err := d.Lookup(id)
	if err != nil {
		return zero, err
	}
	typed, ok := el.(T)
	if !ok {
		return zero, fmt.Errorf("element %s is %T, not %T", id, el, zero)
	}
	return typed, nil
}
