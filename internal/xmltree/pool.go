package xmltree

import "sync"

const (
	maxPooledNodeEntries  = 1 << 15
	maxPooledAttrEntries  = 1 << 15
	maxPooledChildEntries = 1 << 16
)

var documentPool = sync.Pool{
	New: func() any {
		return &Document{root: InvalidNode}
	},
}

// Acquire returns a reusable document arena.
// The caller owns the document until it is released back to the pool.
func Acquire() *Document {
	doc := documentPool.Get().(*Document)
	doc.reset()
	return doc
}

// Release returns a document to the pool. Nodes obtained from it must not be
// used afterwards.
func Release(doc *Document) {
	if doc == nil {
		return
	}
	doc.reset()
	if cap(doc.nodes) > maxPooledNodeEntries {
		doc.nodes = nil
	}
	if cap(doc.attrs) > maxPooledAttrEntries {
		doc.attrs = nil
	}
	if cap(doc.children) > maxPooledChildEntries {
		doc.children = nil
	}
	documentPool.Put(doc)
}
