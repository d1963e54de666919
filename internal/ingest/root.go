package ingest

import (
	"slices"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/internal/xmltree"
)

const rootElement = "audioFormatExtended"

// wrapper elements accepted as the document element by FindRootStrict.
var wrapperElements = []string{"ebuCoreMain", "ituADM"}

// FindRootStrict expects the fixed path
// ebuCoreMain/coreMetadata/format/audioFormatExtended, or the same path
// under ituADM, with exactly one element at each step.
func FindRootStrict(doc *xmltree.Document) (xmltree.Node, bool) {
	node := doc.Root()
	if !node.Valid() || !slices.Contains(wrapperElements, node.Name()) {
		return xmltree.Node{}, false
	}
	for _, step := range []string{"coreMetadata", "format", rootElement} {
		children := node.ChildrenNamed(step)
		if len(children) != 1 {
			return xmltree.Node{}, false
		}
		node = children[0]
	}
	return node, true
}

// FindRootRecursive returns the first audioFormatExtended element in
// depth-first document order, at any depth.
func FindRootRecursive(doc *xmltree.Document) (xmltree.Node, bool) {
	root := doc.Root()
	if !root.Valid() {
		return xmltree.Node{}, false
	}
	stack := []xmltree.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Name() == rootElement {
			return n, true
		}
		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return xmltree.Node{}, false
}

// LocateRoot selects a strategy and reports ErrEmptyDocument or
// ErrRootNotFound when it finds nothing.
func LocateRoot(doc *xmltree.Document, recursive bool) (xmltree.Node, error) {
	if doc == nil || !doc.Root().Valid() {
		return xmltree.Node{}, admerrors.New(admerrors.ErrEmptyDocument, "xml document is empty")
	}
	find := FindRootStrict
	if recursive {
		find = FindRootRecursive
	}
	node, ok := find(doc)
	if !ok {
		return xmltree.Node{}, admerrors.New(admerrors.ErrRootNotFound, rootElement+" node not found").
			WithElement(doc.Root().Name()).
			WithLine(doc.Root().Line())
	}
	return node, nil
}
