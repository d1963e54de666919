package model

import (
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/value"
)

// Programme is an audioProgramme: a complete mix made of contents.
type Programme struct {
	base
	Language        *value.Language
	Start           *value.Timecode
	End             *value.Timecode
	MaxDuckingDepth *value.MaxDuckingDepth
	Loudness        []LoudnessMetadata
	ReferenceScreen *ReferenceScreen
	Labels          []Label

	contents []*Content
}

// NewProgramme returns a programme; pass ids.Programme(0) to have an
// identifier assigned when it is added to a document.
func NewProgramme(id ids.ID, name string) *Programme {
	return &Programme{base: newBase(ids.KindProgramme, id, name)}
}

// Contents returns the referenced contents in reference order.
func (p *Programme) Contents() []*Content {
	return p.contents
}

// AddContent references c.
func (p *Programme) AddContent(c *Content) {
	p.contents = appendUnique(p.contents, c)
}

// Content is an audioContent: a group of objects such as dialogue or music.
type Content struct {
	base
	Language *value.Language
	Loudness []LoudnessMetadata
	Kind     *value.ContentKind
	Labels   []Label

	objects []*Object
}

// NewContent returns a content element.
func NewContent(id ids.ID, name string) *Content {
	return &Content{base: newBase(ids.KindContent, id, name)}
}

// Objects returns the referenced objects in reference order.
func (c *Content) Objects() []*Object {
	return c.objects
}

// AddObject references o.
func (c *Content) AddObject(o *Object) {
	c.objects = appendUnique(c.objects, o)
}
