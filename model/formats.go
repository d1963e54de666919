package model

import (
	"fmt"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/value"
)

// PackFormat is an audioPackFormat grouping channel formats.
type PackFormat struct {
	base
	Importance       *value.Importance
	AbsoluteDistance *value.AbsoluteDistance
	// HOA is non-nil exactly when the pack format type is HOA.
	HOA *HOAPack

	channelFormats []*ChannelFormat
	packFormats    []*PackFormat
}

// HOAPack carries the parameters specific to HOA pack formats.
type HOAPack struct {
	Normalization *value.Normalization
	ScreenRef     *bool
	NfcRefDist    *value.NfcRefDist
}

// NewPackFormat returns a pack format whose type is taken from id.
func NewPackFormat(id ids.ID, name string) *PackFormat {
	p := &PackFormat{base: newBase(ids.KindPackFormat, id, name)}
	if id.Type == value.TypeHOA {
		p.HOA = &HOAPack{}
	}
	return p
}

// Type returns the type embedded in the identifier.
func (p *PackFormat) Type() value.TypeDescriptor { return p.id.Type }

// ChannelFormats returns the referenced channel formats.
func (p *PackFormat) ChannelFormats() []*ChannelFormat { return p.channelFormats }

// AddChannelFormat references c.
func (p *PackFormat) AddChannelFormat(c *ChannelFormat) {
	p.channelFormats = appendUnique(p.channelFormats, c)
}

// PackFormats returns the nested pack formats.
func (p *PackFormat) PackFormats() []*PackFormat { return p.packFormats }

// AddPackFormat nests child under p.
func (p *PackFormat) AddPackFormat(child *PackFormat) {
	p.packFormats = appendUnique(p.packFormats, child)
}

// ChannelFormat is an audioChannelFormat with its block formats.
type ChannelFormat struct {
	base
	Frequency *Frequency

	blocks []BlockFormat
}

// NewChannelFormat returns a channel format whose type is taken from id.
func NewChannelFormat(id ids.ID, name string) *ChannelFormat {
	return &ChannelFormat{base: newBase(ids.KindChannelFormat, id, name)}
}

// Type returns the type embedded in the identifier.
func (c *ChannelFormat) Type() value.TypeDescriptor { return c.id.Type }

// Blocks returns the block formats in time order of insertion.
func (c *ChannelFormat) Blocks() []BlockFormat { return c.blocks }

// AddBlock appends b. The block variant must match the channel type.
func (c *ChannelFormat) AddBlock(b BlockFormat) error {
	if b.Type() != c.Type() {
		return &admerrors.Error{
			Code:     admerrors.ErrTypeMismatch,
			Message:  fmt.Sprintf("%s block format added to %s", b.Type().Definition(), c.id),
			Actual:   b.Type().Definition(),
			Expected: []string{c.Type().Definition()},
		}
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// StreamFormat is an audioStreamFormat describing how a channel or pack is carried.
type StreamFormat struct {
	base
	Format value.FormatDescriptor

	channelFormat *ChannelFormat
	packFormat    *PackFormat
	trackFormats  []*TrackFormat
}

// NewStreamFormat returns a stream format.
func NewStreamFormat(id ids.ID, name string, format value.FormatDescriptor) *StreamFormat {
	return &StreamFormat{base: newBase(ids.KindStreamFormat, id, name), Format: format}
}

// Type returns the type embedded in the identifier.
func (s *StreamFormat) Type() value.TypeDescriptor { return s.id.Type }

// ChannelFormat returns the carried channel format, if any.
func (s *StreamFormat) ChannelFormat() *ChannelFormat { return s.channelFormat }

// SetChannelFormat references c.
func (s *StreamFormat) SetChannelFormat(c *ChannelFormat) { s.channelFormat = c }

// PackFormat returns the carried pack format, if any.
func (s *StreamFormat) PackFormat() *PackFormat { return s.packFormat }

// SetPackFormat references p.
func (s *StreamFormat) SetPackFormat(p *PackFormat) { s.packFormat = p }

// TrackFormats returns the track formats making up the stream.
func (s *StreamFormat) TrackFormats() []*TrackFormat { return s.trackFormats }

// AddTrackFormat references t.
func (s *StreamFormat) AddTrackFormat(t *TrackFormat) {
	s.trackFormats = appendUnique(s.trackFormats, t)
}

// TrackFormat is an audioTrackFormat.
type TrackFormat struct {
	base
	Format value.FormatDescriptor

	streamFormat *StreamFormat
}

// NewTrackFormat returns a track format.
func NewTrackFormat(id ids.ID, name string, format value.FormatDescriptor) *TrackFormat {
	return &TrackFormat{base: newBase(ids.KindTrackFormat, id, name), Format: format}
}

// Type returns the type embedded in the identifier.
func (t *TrackFormat) Type() value.TypeDescriptor { return t.id.Type }

// StreamFormat returns the referenced stream format, if any.
func (t *TrackFormat) StreamFormat() *StreamFormat { return t.streamFormat }

// SetStreamFormat references s.
func (t *TrackFormat) SetStreamFormat(s *StreamFormat) { t.streamFormat = s }

// TrackUID is an audioTrackUID identifying one track in a file.
type TrackUID struct {
	base
	SampleRate *value.SampleRate
	BitDepth   *value.BitDepth

	trackFormat   *TrackFormat
	channelFormat *ChannelFormat
	packFormat    *PackFormat
}

// NewTrackUID returns a track UID. Track UIDs have no name.
func NewTrackUID(id ids.ID) *TrackUID {
	return &TrackUID{base: newBase(ids.KindTrackUID, id, "")}
}

// TrackFormat returns the referenced track format, if any.
func (t *TrackUID) TrackFormat() *TrackFormat { return t.trackFormat }

// SetTrackFormat references f.
func (t *TrackUID) SetTrackFormat(f *TrackFormat) { t.trackFormat = f }

// ChannelFormat returns the referenced channel format, if any.
func (t *TrackUID) ChannelFormat() *ChannelFormat { return t.channelFormat }

// SetChannelFormat references c.
func (t *TrackUID) SetChannelFormat(c *ChannelFormat) { t.channelFormat = c }

// PackFormat returns the referenced pack format, if any.
func (t *TrackUID) PackFormat() *PackFormat { return t.packFormat }

// SetPackFormat references p.
func (t *TrackUID) SetPackFormat(p *PackFormat) { t.packFormat = p }
