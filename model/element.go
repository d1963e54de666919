// Package model defines the ADM elements held by a document.
//
// Required fields (identifier and name) are fixed by the constructors.
// Optional fields are exported and nil when absent. References to other
// elements are attached through Attach or the typed Add/Set methods once
// their targets exist.
package model

import "github.com/jacoelho/adm/ids"

// Element is implemented by the eight top-level ADM element kinds.
type Element interface {
	ID() ids.ID
	// SetID replaces the identifier. Elements already held by a document
	// must be renumbered through the document so its index stays valid.
	SetID(ids.ID)
	Name() string
	element()
}

type base struct {
	id   ids.ID
	name string
}

func (b *base) ID() ids.ID {
	return b.id
}

func (b *base) SetID(id ids.ID) {
	b.id.Type = id.Type
	b.id.Value = id.Value
	b.id.Sub = id.Sub
}

func (b *base) Name() string {
	return b.name
}

func (b *base) element() {}

func newBase(kind ids.Kind, id ids.ID, name string) base {
	id.Kind = kind
	return base{id: id, name: name}
}

// appendUnique appends el unless an element with the same identifier is
// already present. Placeholder identifiers are compared by pointer.
func appendUnique[T Element](list []T, el T) []T {
	for _, existing := range list {
		if Element(existing) == Element(el) {
			return list
		}
		if !el.ID().IsPlaceholder() && existing.ID() == el.ID() {
			return list
		}
	}
	return append(list, el)
}
