// Package resolve links elements by identifier once a whole document has
// been read, so references may point forwards or backwards.
package resolve

import (
	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/bind"
	"github.com/jacoelho/adm/model"
)

// Pending is a reference read from the document and not yet linked.
type Pending struct {
	Source model.Element
	Role   model.Role
	Target ids.ID
	Line   int
}

// Queue holds pending references grouped by role.
type Queue struct {
	byRole [][]Pending
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{byRole: make([][]Pending, len(model.Roles()))}
}

// Add records one reference.
func (q *Queue) Add(source model.Element, role model.Role, target ids.ID, line int) {
	q.byRole[role] = append(q.byRole[role], Pending{Source: source, Role: role, Target: target, Line: line})
}

// AddRefs records every reference in refs under role.
func (q *Queue) AddRefs(source model.Element, role model.Role, refs []bind.Ref) {
	for _, ref := range refs {
		q.Add(source, role, ref.ID, ref.Line)
	}
}

// Len returns the number of pending references.
func (q *Queue) Len() int {
	n := 0
	for _, list := range q.byRole {
		n += len(list)
	}
	return n
}

// Pending returns the references recorded under role in insertion order.
func (q *Queue) Pending(role model.Role) []Pending {
	return q.byRole[role]
}

// Reset drops every pending reference and keeps the allocated storage.
func (q *Queue) Reset() {
	for i := range q.byRole {
		clear(q.byRole[i])
		q.byRole[i] = q.byRole[i][:0]
	}
}

// Resolve links every pending reference against doc, one role at a time in
// model.Roles order. The first reference whose target is absent stops
// resolution with ErrDanglingReference.
func (q *Queue) Resolve(doc *document.Document) error {
	for _, role := range model.Roles() {
		for _, p := range q.byRole[role] {
			if err := link(doc, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResolveAll is like Resolve but keeps going after a dangling reference and
// returns every failure.
func (q *Queue) ResolveAll(doc *document.Document) []error {
	var errs []error
	for _, role := range model.Roles() {
		for _, p := range q.byRole[role] {
			if err := link(doc, p); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

func link(doc *document.Document, p Pending) error {
	target, err := doc.Lookup(p.Target)
	if err != nil {
		return &admerrors.Error{
			Err:     err,
			Code:    admerrors.ErrDanglingReference,
			Message: p.Source.ID().String() + " references unknown " + p.Role.Target().Element() + " (" + p.Role.String() + ")",
			Element: p.Source.ID().Kind.Element() + "/" + p.Role.RefElement(),
			Actual:  p.Target.String(),
			Line:    p.Line,
		}
	}
	if err := model.Attach(p.Source, p.Role, target); err != nil {
		return admerrors.New(admerrors.ErrTypeMismatch, "reference has the wrong element type").
			Wrap(err).
			WithElement(p.Source.ID().Kind.Element() + "/" + p.Role.RefElement()).
			WithLine(p.Line)
	}
	return nil
}
