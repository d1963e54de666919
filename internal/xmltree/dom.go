// Package xmltree is the node tree the ADM ingestion reads from.
//
// Nodes live in a compact arena owned by Document. Element and attribute
// names are matched by local name only; namespace prefixes used by EBU Core
// and ITU wrappers are ignored.
package xmltree

// NodeID identifies a node in the document arena.
type NodeID int

// InvalidNode represents an invalid node reference.
const InvalidNode NodeID = -1

// Document is a compact arena for parsed XML.
type Document struct {
	nodes    []node
	attrs    []Attr
	children []NodeID
	root     NodeID
}

type node struct {
	local       string
	text        []byte
	attrsOff    int
	attrsLen    int
	childrenOff int
	childrenLen int
	index       int
	parent      NodeID
	line        int
}

// Attr exposes attribute name and value.
type Attr struct {
	local string
	value string
}

func (a Attr) Name() string {
	return a.local
}

func (a Attr) Value() string {
	return a.value
}

func (d *Document) reset() {
	if d == nil {
		return
	}
	d.nodes = d.nodes[:0]
	d.attrs = d.attrs[:0]
	d.children = d.children[:0]
	d.root = InvalidNode
}

func (d *Document) validNode(id NodeID) bool {
	return d != nil && id >= 0 && int(id) < len(d.nodes)
}

// Root returns the document element.
func (d *Document) Root() Node {
	if d == nil {
		return Node{}
	}
	return d.node(d.root)
}

// Len reports the number of element nodes.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.nodes)
}

func (d *Document) node(id NodeID) Node {
	if !d.validNode(id) {
		return Node{}
	}
	return Node{doc: d, id: id}
}

func (d *Document) addNode(local string, attrs []Attr, parent NodeID, line int) NodeID {
	id := NodeID(len(d.nodes))
	off := len(d.attrs)
	d.attrs = append(d.attrs, attrs...)
	d.nodes = append(d.nodes, node{
		local:    local,
		attrsOff: off,
		attrsLen: len(attrs),
		parent:   parent,
		line:     line,
	})
	return id
}

// buildChildren lays out child lists contiguously. Nodes are numbered in
// document order, so one forward pass keeps siblings ordered.
func (d *Document) buildChildren() {
	counts := make([]int, len(d.nodes))
	for i := range d.nodes {
		if p := d.nodes[i].parent; p != InvalidNode {
			counts[p]++
		}
	}
	off := 0
	for i := range d.nodes {
		d.nodes[i].childrenOff = off
		d.nodes[i].childrenLen = 0
		off += counts[i]
	}
	if cap(d.children) < off {
		d.children = make([]NodeID, off)
	} else {
		d.children = d.children[:off]
	}
	for i := range d.nodes {
		p := d.nodes[i].parent
		if p == InvalidNode {
			continue
		}
		parent := &d.nodes[p]
		d.nodes[i].index = parent.childrenLen
		d.children[parent.childrenOff+parent.childrenLen] = NodeID(i)
		parent.childrenLen++
	}
}

// Node is a handle to an element in a Document. The zero Node is invalid;
// every accessor on it returns a zero value.
type Node struct {
	doc *Document
	id  NodeID
}

// Valid reports whether n refers to an element.
func (n Node) Valid() bool {
	return n.doc.validNode(n.id)
}

// Name returns the local element name.
func (n Node) Name() string {
	if !n.Valid() {
		return ""
	}
	return n.doc.nodes[n.id].local
}

// Line returns the source line of the element start tag.
func (n Node) Line() int {
	if !n.Valid() {
		return 0
	}
	return n.doc.nodes[n.id].line
}

// Attrs returns a read-only view of the element attributes.
// The returned slice aliases the document arena; do not modify or retain it.
func (n Node) Attrs() []Attr {
	if !n.Valid() {
		return nil
	}
	nd := n.doc.nodes[n.id]
	if nd.attrsLen == 0 {
		return nil
	}
	return n.doc.attrs[nd.attrsOff : nd.attrsOff+nd.attrsLen]
}

// Attr returns the value of the attribute with the given local name.
func (n Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs() {
		if attr.local == name {
			return attr.value, true
		}
	}
	return "", false
}

// Text returns the character data directly under the element.
func (n Node) Text() string {
	if !n.Valid() {
		return ""
	}
	return string(n.doc.nodes[n.id].text)
}

func (n Node) childIDs() []NodeID {
	if !n.Valid() {
		return nil
	}
	nd := n.doc.nodes[n.id]
	if nd.childrenLen == 0 {
		return nil
	}
	return n.doc.children[nd.childrenOff : nd.childrenOff+nd.childrenLen]
}

// Children returns the child elements in document order.
func (n Node) Children() []Node {
	ids := n.childIDs()
	if len(ids) == 0 {
		return nil
	}
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{doc: n.doc, id: id}
	}
	return out
}

// ChildrenNamed returns the child elements with the given local name.
func (n Node) ChildrenNamed(name string) []Node {
	var out []Node
	for _, id := range n.childIDs() {
		if n.doc.nodes[id].local == name {
			out = append(out, Node{doc: n.doc, id: id})
		}
	}
	return out
}

// FirstChild returns the first child element, or an invalid Node.
func (n Node) FirstChild() Node {
	ids := n.childIDs()
	if len(ids) == 0 {
		return Node{}
	}
	return Node{doc: n.doc, id: ids[0]}
}

// FirstChildNamed returns the first child element with the given local name.
func (n Node) FirstChildNamed(name string) Node {
	for _, id := range n.childIDs() {
		if n.doc.nodes[id].local == name {
			return Node{doc: n.doc, id: id}
		}
	}
	return Node{}
}

// NextSibling returns the following sibling element, or an invalid Node.
func (n Node) NextSibling() Node {
	parent := n.Parent()
	if !parent.Valid() {
		return Node{}
	}
	siblings := parent.childIDs()
	next := n.doc.nodes[n.id].index + 1
	if next >= len(siblings) {
		return Node{}
	}
	return Node{doc: n.doc, id: siblings[next]}
}

// Parent returns the parent element, or an invalid Node for the root.
func (n Node) Parent() Node {
	if !n.Valid() {
		return Node{}
	}
	return n.doc.node(n.doc.nodes[n.id].parent)
}
