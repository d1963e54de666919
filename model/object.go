package model

import (
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/value"
)

// Object is an audioObject: the link between content and formats.
type Object struct {
	base
	Start                    *value.Timecode
	Duration                 *value.Timecode
	Dialogue                 *value.DialogueKind
	Importance               *value.Importance
	Interact                 *bool
	DisableDucking           *bool
	Interaction              *ObjectInteraction
	Labels                   []Label
	ComplementaryGroupLabels []Label
	Gain                     *value.Gain
	HeadLocked               *bool
	PositionOffset           PositionOffset
	Mute                     *bool

	objects       []*Object
	complementary []*Object
	packFormats   []*PackFormat
	trackUIDs     []*TrackUID
}

// NewObject returns an object.
func NewObject(id ids.ID, name string) *Object {
	return &Object{base: newBase(ids.KindObject, id, name)}
}

// Objects returns the nested objects.
func (o *Object) Objects() []*Object { return o.objects }

// AddObject nests child under o.
func (o *Object) AddObject(child *Object) { o.objects = appendUnique(o.objects, child) }

// Complementary returns the objects that are alternatives to o.
func (o *Object) Complementary() []*Object { return o.complementary }

// AddComplementary marks other as an alternative to o.
func (o *Object) AddComplementary(other *Object) {
	o.complementary = appendUnique(o.complementary, other)
}

// PackFormats returns the referenced pack formats.
func (o *Object) PackFormats() []*PackFormat { return o.packFormats }

// AddPackFormat references p.
func (o *Object) AddPackFormat(p *PackFormat) { o.packFormats = appendUnique(o.packFormats, p) }

// TrackUIDs returns the referenced track UIDs.
func (o *Object) TrackUIDs() []*TrackUID { return o.trackUIDs }

// AddTrackUID references t.
func (o *Object) AddTrackUID(t *TrackUID) { o.trackUIDs = appendUnique(o.trackUIDs, t) }

// ObjectInteraction describes how a listener may change an object.
type ObjectInteraction struct {
	OnOff            bool
	GainInteract     *bool
	PositionInteract *bool
	GainRange        *GainInteractionRange
	PositionRange    *PositionInteractionRange
}

// GainInteractionRange bounds user gain changes.
type GainInteractionRange struct {
	Min *value.Gain
	Max *value.Gain
}

// PositionInteractionRange bounds user position changes per axis.
type PositionInteractionRange struct {
	Azimuth   Bounds[value.Azimuth]
	Elevation Bounds[value.Elevation]
	Distance  Bounds[value.Distance]
	X         Bounds[value.X]
	Y         Bounds[value.Y]
	Z         Bounds[value.Z]
}
