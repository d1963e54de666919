// Package bind locates attributes and child elements of a node, parses them
// into validated values and stores them on a target.
//
// Every failure is annotated with the element path and source line of the
// node that caused it.
package bind

import (
	"strings"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/xmltree"
)

// Parser validates text.
type Parser[T any] func(text string) (T, error)

// NodeParser builds a value from a whole element.
type NodeParser[T any] func(n xmltree.Node) (T, error)

// Combiner folds several same-named elements into one value.
type Combiner[T any] func(nodes []xmltree.Node) (T, error)

func attrPath(n xmltree.Node, name string) string {
	return n.Name() + "/@" + name
}

func locate(err error, path string, line int) error {
	return admerrors.AtLine(err, path, line)
}

// Missing reports an absent required attribute or element of n.
func Missing(n xmltree.Node, name string) error {
	return admerrors.Newf(admerrors.ErrMissingAttribute, "missing %s", name).
		WithElement(n.Name()).
		WithLine(n.Line())
}

// RequiredAttr parses the attribute name of n.
func RequiredAttr[T any](n xmltree.Node, name string, parse Parser[T]) (T, error) {
	var zero T
	text, ok := n.Attr(name)
	if !ok {
		return zero, Missing(n, "attribute "+name)
	}
	v, err := parse(text)
	if err != nil {
		return zero, locate(err, attrPath(n, name), n.Line())
	}
	return v, nil
}

// OptionalAttr parses the attribute name of n into target when present.
func OptionalAttr[T any](n xmltree.Node, name string, parse Parser[T], target **T) error {
	text, ok := n.Attr(name)
	if !ok {
		return nil
	}
	v, err := parse(text)
	if err != nil {
		return locate(err, attrPath(n, name), n.Line())
	}
	*target = &v
	return nil
}

// Text adapts a text parser to the trimmed character data of an element.
func Text[T any](parse Parser[T]) NodeParser[T] {
	return func(n xmltree.Node) (T, error) {
		return parse(strings.TrimSpace(n.Text()))
	}
}

// String returns the trimmed character data of an element.
func String(n xmltree.Node) (string, error) {
	return strings.TrimSpace(n.Text()), nil
}

// Identity accepts any text unchanged.
func Identity(text string) (string, error) {
	return text, nil
}

func parseChild[T any](child xmltree.Node, parse NodeParser[T]) (T, error) {
	v, err := parse(child)
	if err != nil {
		var zero T
		parent := child.Parent().Name()
		path := child.Name()
		if parent != "" {
			path = parent + "/" + child.Name()
		}
		return zero, locate(err, path, child.Line())
	}
	return v, nil
}

// OptionalElement parses the first child named name into target when present.
func OptionalElement[T any](n xmltree.Node, name string, parse NodeParser[T], target **T) error {
	child := n.FirstChildNamed(name)
	if !child.Valid() {
		return nil
	}
	v, err := parseChild(child, parse)
	if err != nil {
		return err
	}
	*target = &v
	return nil
}

// RequiredElement parses the first child named name.
func RequiredElement[T any](n xmltree.Node, name string, parse NodeParser[T]) (T, error) {
	child := n.FirstChildNamed(name)
	if !child.Valid() {
		var zero T
		return zero, Missing(n, "element "+name)
	}
	return parseChild(child, parse)
}

// RepeatedElements appends every child named name to target in document order.
func RepeatedElements[T any](n xmltree.Node, name string, parse NodeParser[T], target *[]T) error {
	for _, child := range n.ChildrenNamed(name) {
		v, err := parseChild(child, parse)
		if err != nil {
			return err
		}
		*target = append(*target, v)
	}
	return nil
}

// MultiElement folds all children named name, including none, through combine.
func MultiElement[T any](n xmltree.Node, name string, combine Combiner[T]) (T, error) {
	v, err := combine(n.ChildrenNamed(name))
	if err != nil {
		var zero T
		return zero, locate(err, n.Name()+"/"+name, n.Line())
	}
	return v, nil
}

// OptionalMultiElement folds the children named name into target when there
// is at least one.
func OptionalMultiElement[T any](n xmltree.Node, name string, combine Combiner[T], target **T) error {
	children := n.ChildrenNamed(name)
	if len(children) == 0 {
		return nil
	}
	v, err := combine(children)
	if err != nil {
		return locate(err, n.Name()+"/"+name, n.Line())
	}
	*target = &v
	return nil
}

// Ref is an identifier read from a reference element.
type Ref struct {
	ID   ids.ID
	Line int
}

// Refs parses every child named name as an identifier of kind.
func Refs(n xmltree.Node, name string, kind ids.Kind) ([]Ref, error) {
	children := n.ChildrenNamed(name)
	if len(children) == 0 {
		return nil, nil
	}
	out := make([]Ref, 0, len(children))
	for _, child := range children {
		id, err := parseChild(child, Text(func(text string) (ids.ID, error) {
			return ids.Parse(kind, text)
		}))
		if err != nil {
			return nil, err
		}
		out = append(out, Ref{ID: id, Line: child.Line()})
	}
	return out, nil
}
