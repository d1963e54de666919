// Package idassign allocates and renumbers element identifiers.
//
// Values below 0x1000 of pack, channel, stream and track formats belong to
// the common definitions and are never handed out or renumbered.
package idassign

import (
	"fmt"
	"slices"

	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

const (
	firstUserValue  = 0x1001
	commonDefsLimit = 0x1000
)

type key struct {
	kind ids.Kind
	typ  value.TypeDescriptor
}

// Allocator hands out identifier values not yet used in a document.
type Allocator struct {
	used map[key]map[uint32]struct{}
	next map[key]uint32
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{
		used: make(map[key]map[uint32]struct{}),
		next: make(map[key]uint32),
	}
}

func keyOf(id ids.ID) key {
	return key{kind: id.Kind, typ: id.Type}
}

// Reserve marks the value of id as taken.
func (a *Allocator) Reserve(id ids.ID) {
	if id.IsPlaceholder() {
		return
	}
	k := keyOf(id)
	set := a.used[k]
	if set == nil {
		set = make(map[uint32]struct{})
		a.used[k] = set
	}
	set[id.Value] = struct{}{}
}

// Free releases the value of id.
func (a *Allocator) Free(id ids.ID) {
	if set := a.used[keyOf(id)]; set != nil {
		delete(set, id.Value)
	}
}

// Next returns an unused identifier of the kind and type of template.
// Track formats are given sub-index 1.
func (a *Allocator) Next(template ids.ID) (ids.ID, error) {
	k := keyOf(template)
	limit := uint32(0xFFFF)
	start := uint32(firstUserValue)
	if k.kind == ids.KindTrackUID {
		limit = 0xFFFFFFFF
		start = 1
	}
	v := max(a.next[k], start)
	for {
		if _, taken := a.used[k][v]; !taken {
			break
		}
		if v == limit {
			return ids.ID{}, fmt.Errorf("no free %s identifier", k.kind.Element())
		}
		v++
	}
	id := ids.ID{Kind: k.kind, Type: k.typ, Value: v}
	if k.kind == ids.KindTrackFormat {
		id.Sub = 1
	}
	a.Reserve(id)
	if v < limit {
		a.next[k] = v + 1
	}
	return id, nil
}

// IsCommonDefinition reports whether id is reserved for common definitions.
func IsCommonDefinition(id ids.ID) bool {
	return id.Kind.Typed() && id.Value > 0 && id.Value < commonDefsLimit
}

// AssignBlocks gives every placeholder block of ch an identifier derived from
// the channel identifier and the block position.
func AssignBlocks(ch *model.ChannelFormat) {
	for i, b := range ch.Blocks() {
		timing := b.Timing()
		if timing.ID.IsPlaceholder() {
			timing.ID = blockID(ch, i)
		}
	}
}

func blockID(ch *model.ChannelFormat, index int) ids.ID {
	id := ch.ID()
	return ids.BlockFormat(id.Type, id.Value, uint32(index+1))
}

// Reassign renumbers elements canonically in the order given, which should
// be document order. Common definitions keep their identifiers. Track
// formats take the value of the stream format that lists them and block
// formats take the value of their channel.
func Reassign(elements []model.Element) error {
	alloc := NewAllocator()
	for _, el := range elements {
		if IsCommonDefinition(el.ID()) {
			alloc.Reserve(el.ID())
		}
	}

	var tracks []*model.TrackFormat
	var streams []*model.StreamFormat
	for _, kind := range ids.Kinds() {
		for _, el := range elements {
			if el.ID().Kind != kind || IsCommonDefinition(el.ID()) {
				continue
			}
			switch e := el.(type) {
			case *model.TrackFormat:
				tracks = append(tracks, e)
				continue
			case *model.StreamFormat:
				streams = append(streams, e)
			}
			id, err := alloc.Next(ids.ID{Kind: kind, Type: el.ID().Type})
			if err != nil {
				return err
			}
			el.SetID(id)
		}
	}

	for _, s := range streams {
		alloc.Reserve(ids.TrackFormat(s.Type(), s.ID().Value, 0))
	}
	done := make(map[*model.TrackFormat]bool, len(tracks))
	taken := make(map[ids.ID]bool, len(tracks))
	assign := func(t *model.TrackFormat, s *model.StreamFormat) error {
		for sub := uint32(1); sub <= 0xFF; sub++ {
			id := ids.TrackFormat(t.Type(), s.ID().Value, sub)
			if !taken[id] {
				t.SetID(id)
				taken[id] = true
				done[t] = true
				return nil
			}
		}
		return fmt.Errorf("no free %s identifier for %s", ids.KindTrackFormat.Element(), s.ID())
	}
	for _, s := range streams {
		for _, t := range s.TrackFormats() {
			if done[t] || !slices.Contains(tracks, t) {
				continue
			}
			if err := assign(t, s); err != nil {
				return err
			}
		}
	}
	for _, t := range tracks {
		if done[t] {
			continue
		}
		if s := t.StreamFormat(); s != nil && slices.Contains(streams, s) {
			if err := assign(t, s); err != nil {
				return err
			}
			continue
		}
		id, err := alloc.Next(ids.ID{Kind: ids.KindTrackFormat, Type: t.Type()})
		if err != nil {
			return err
		}
		t.SetID(id)
	}

	for _, el := range elements {
		ch, ok := el.(*model.ChannelFormat)
		if !ok || IsCommonDefinition(ch.ID()) {
			continue
		}
		for i, b := range ch.Blocks() {
			b.Timing().ID = blockID(ch, i)
		}
	}
	return nil
}
