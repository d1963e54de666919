package model

import (
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/value"
)

// BlockFormat is one time-bounded parameter set of a channel format:
// *DirectSpeakersBlock, *ObjectsBlock, *HOABlock or *BinauralBlock.
type BlockFormat interface {
	Type() value.TypeDescriptor
	Timing() *BlockTiming
	blockFormat()
}

// BlockTiming carries the fields shared by every block format. ID is a
// placeholder until assigned.
type BlockTiming struct {
	ID       ids.ID
	Rtime    *value.Timecode
	Duration *value.Timecode
}

// Timing returns the shared block fields.
func (t *BlockTiming) Timing() *BlockTiming {
	return t
}

// DirectSpeakersBlock positions a loudspeaker feed.
type DirectSpeakersBlock struct {
	BlockTiming
	Position            Position
	SpeakerLabels       []string
	HeadLocked          *bool
	HeadphoneVirtualise *HeadphoneVirtualise
	Gain                *value.Gain
	Importance          *value.Importance
}

// NewDirectSpeakersBlock returns a block at the given speaker position.
func NewDirectSpeakersBlock(position Position) *DirectSpeakersBlock {
	return &DirectSpeakersBlock{Position: position}
}

func (*DirectSpeakersBlock) Type() value.TypeDescriptor { return value.TypeDirectSpeakers }
func (*DirectSpeakersBlock) blockFormat()               {}

// ChannelLock snaps an object to the nearest loudspeaker.
type ChannelLock struct {
	Flag        bool
	MaxDistance *value.MaxDistance
}

// ObjectDivergence spreads an object into virtual sources.
type ObjectDivergence struct {
	Value         value.Divergence
	AzimuthRange  *value.AzimuthRange
	PositionRange *value.PositionRange
}

// JumpPosition controls interpolation between consecutive blocks.
type JumpPosition struct {
	Flag                bool
	InterpolationLength *value.InterpolationLength
}

// ObjectsBlock positions a rendered object.
type ObjectsBlock struct {
	BlockTiming
	// Cartesian is the explicit cartesian flag. When present it always
	// agrees with the shape of Position.
	Cartesian           *bool
	Position            Position
	Width               *value.Width
	Height              *value.Height
	Depth               *value.Depth
	Gain                *value.Gain
	Diffuse             *value.Diffuse
	ChannelLock         *ChannelLock
	ObjectDivergence    *ObjectDivergence
	JumpPosition        *JumpPosition
	ScreenRef           *bool
	Importance          *value.Importance
	HeadLocked          *bool
	HeadphoneVirtualise *HeadphoneVirtualise
}

// NewObjectsBlock returns a block at the given position.
func NewObjectsBlock(position Position) *ObjectsBlock {
	if position == nil {
		position = &SphericalPosition{}
	}
	return &ObjectsBlock{Position: position}
}

func (*ObjectsBlock) Type() value.TypeDescriptor { return value.TypeObjects }
func (*ObjectsBlock) blockFormat()               {}

// HOABlock describes one ambisonic component.
type HOABlock struct {
	BlockTiming
	Order               *value.Order
	Degree              *value.Degree
	NfcRefDist          *value.NfcRefDist
	ScreenRef           *bool
	Normalization       *value.Normalization
	Equation            *string
	HeadLocked          *bool
	HeadphoneVirtualise *HeadphoneVirtualise
	Gain                *value.Gain
	Importance          *value.Importance
}

func (*HOABlock) Type() value.TypeDescriptor { return value.TypeHOA }
func (*HOABlock) blockFormat()               {}

// BinauralBlock describes a binaural signal.
type BinauralBlock struct {
	BlockTiming
	Gain       *value.Gain
	Importance *value.Importance
}

func (*BinauralBlock) Type() value.TypeDescriptor { return value.TypeBinaural }
func (*BinauralBlock) blockFormat()               {}
