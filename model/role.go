package model

import (
	"fmt"

	"github.com/jacoelho/adm/ids"
)

// Role names one kind of reference between elements.
type Role uint8

const (
	RoleProgrammeContent Role = iota
	RoleContentObject
	RoleObjectObject
	RoleObjectComplementary
	RoleObjectPackFormat
	RoleObjectTrackUID
	RoleTrackUIDTrackFormat
	RoleTrackUIDChannelFormat
	RoleTrackUIDPackFormat
	RolePackFormatChannelFormat
	RolePackFormatPackFormat
	RoleTrackFormatStreamFormat
	RoleStreamFormatChannelFormat
	RoleStreamFormatPackFormat
	RoleStreamFormatTrackFormat
	roleCount
)

type roleInfo struct {
	name   string
	ref    string
	source ids.Kind
	target ids.Kind
	multi  bool
}

var roles = [roleCount]roleInfo{
	RoleProgrammeContent:          {"programmeContent", "audioContentIDRef", ids.KindProgramme, ids.KindContent, true},
	RoleContentObject:             {"contentObject", "audioObjectIDRef", ids.KindContent, ids.KindObject, true},
	RoleObjectObject:              {"objectObject", "audioObjectIDRef", ids.KindObject, ids.KindObject, true},
	RoleObjectComplementary:       {"objectComplementary", "audioComplementaryObjectIDRef", ids.KindObject, ids.KindObject, true},
	RoleObjectPackFormat:          {"objectPackFormat", "audioPackFormatIDRef", ids.KindObject, ids.KindPackFormat, true},
	RoleObjectTrackUID:            {"objectTrackUID", "audioTrackUIDRef", ids.KindObject, ids.KindTrackUID, true},
	RoleTrackUIDTrackFormat:       {"trackUIDTrackFormat", "audioTrackFormatIDRef", ids.KindTrackUID, ids.KindTrackFormat, false},
	RoleTrackUIDChannelFormat:     {"trackUIDChannelFormat", "audioChannelFormatIDRef", ids.KindTrackUID, ids.KindChannelFormat, false},
	RoleTrackUIDPackFormat:        {"trackUIDPackFormat", "audioPackFormatIDRef", ids.KindTrackUID, ids.KindPackFormat, false},
	RolePackFormatChannelFormat:   {"packFormatChannelFormat", "audioChannelFormatIDRef", ids.KindPackFormat, ids.KindChannelFormat, true},
	RolePackFormatPackFormat:      {"packFormatPackFormat", "audioPackFormatIDRef", ids.KindPackFormat, ids.KindPackFormat, true},
	RoleTrackFormatStreamFormat:   {"trackFormatStreamFormat", "audioStreamFormatIDRef", ids.KindTrackFormat, ids.KindStreamFormat, false},
	RoleStreamFormatChannelFormat: {"streamFormatChannelFormat", "audioChannelFormatIDRef", ids.KindStreamFormat, ids.KindChannelFormat, false},
	RoleStreamFormatPackFormat:    {"streamFormatPackFormat", "audioPackFormatIDRef", ids.KindStreamFormat, ids.KindPackFormat, false},
	RoleStreamFormatTrackFormat:   {"streamFormatTrackFormat", "audioTrackFormatIDRef", ids.KindStreamFormat, ids.KindTrackFormat, true},
}

// Roles lists every role in resolution order: single-kind chains first,
// then the fan-out and fan-in roles of the format elements.
func Roles() []Role {
	out := make([]Role, roleCount)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

func (r Role) String() string {
	if r >= roleCount {
		return fmt.Sprintf("role(%d)", r)
	}
	return roles[r].name
}

// RefElement returns the name of the child element carrying the reference.
func (r Role) RefElement() string { return roles[r].ref }

// Source returns the kind of the referring element.
func (r Role) Source() ids.Kind { return roles[r].source }

// Target returns the kind of the referenced element.
func (r Role) Target() ids.Kind { return roles[r].target }

// Multi reports whether the role holds several targets. Single-valued roles
// keep the last target attached.
func (r Role) Multi() bool { return roles[r].multi }

// Attach records target under role on source.
func Attach(source Element, role Role, target Element) error {
	ok := false
	switch role {
	case RoleProgrammeContent:
		s, sok := source.(*Programme)
		t, tok := target.(*Content)
		if ok = sok && tok; ok {
			s.AddContent(t)
		}
	case RoleContentObject:
		s, sok := source.(*Content)
		t, tok := target.(*Object)
		if ok = sok && tok; ok {
			s.AddObject(t)
		}
	case RoleObjectObject:
		s, sok := source.(*Object)
		t, tok := target.(*Object)
		if ok = sok && tok; ok {
			s.AddObject(t)
		}
	case RoleObjectComplementary:
		s, sok := source.(*Object)
		t, tok := target.(*Object)
		if ok = sok && tok; ok {
			s.AddComplementary(t)
		}
	case RoleObjectPackFormat:
		s, sok := source.(*Object)
		t, tok := target.(*PackFormat)
		if ok = sok && tok; ok {
			s.AddPackFormat(t)
		}
	case RoleObjectTrackUID:
		s, sok := source.(*Object)
		t, tok := target.(*TrackUID)
		if ok = sok && tok; ok {
			s.AddTrackUID(t)
		}
	case RoleTrackUIDTrackFormat:
		s, sok := source.(*TrackUID)
		t, tok := target.(*TrackFormat)
		if ok = sok && tok; ok {
			s.SetTrackFormat(t)
		}
	case RoleTrackUIDChannelFormat:
		s, sok := source.(*TrackUID)
		t, tok := target.(*ChannelFormat)
		if ok = sok && tok; ok {
			s.SetChannelFormat(t)
		}
	case RoleTrackUIDPackFormat:
		s, sok := source.(*TrackUID)
		t, tok := target.(*PackFormat)
		if ok = sok && tok; ok {
			s.SetPackFormat(t)
		}
	case RolePackFormatChannelFormat:
		s, sok := source.(*PackFormat)
		t, tok := target.(*ChannelFormat)
		if ok = sok && tok; ok {
			s.AddChannelFormat(t)
		}
	case RolePackFormatPackFormat:
		s, sok := source.(*PackFormat)
		t, tok := target.(*PackFormat)
		if ok = sok && tok; ok {
			s.AddPackFormat(t)
		}
	case RoleTrackFormatStreamFormat:
		s, sok := source.(*TrackFormat)
		t, tok := target.(*StreamFormat)
		if ok = sok && tok; ok {
			s.SetStreamFormat(t)
		}
	case RoleStreamFormatChannelFormat:
		s, sok := source.(*StreamFormat)
		t, tok := target.(*ChannelFormat)
		if ok = sok && tok; ok {
			s.SetChannelFormat(t)
		}
	case RoleStreamFormatPackFormat:
		s, sok := source.(*StreamFormat)
		t, tok := target.(*PackFormat)
		if ok = sok && tok; ok {
			s.SetPackFormat(t)
		}
	case RoleStreamFormatTrackFormat:
		s, sok := source.(*StreamFormat)
		t, tok := target.(*TrackFormat)
		if ok = sok && tok; ok {
			s.AddTrackFormat(t)
		}
	}
	if !ok {
		return fmt.Errorf("cannot attach %T to %T as %s", target, source, role)
	}
	return nil
}

// Edge is one resolved reference.
type Edge struct {
	Role   Role
	Target Element
}

// Edges returns the resolved outgoing references of el in role order.
func Edges(el Element) []Edge {
	var out []Edge
	add := func(role Role, targets ...Element) {
		for _, t := range targets {
			out = append(out, Edge{Role: role, Target: t})
		}
	}
	switch e := el.(type) {
	case *Programme:
		add(RoleProgrammeContent, elements(e.contents)...)
	case *Content:
		add(RoleContentObject, elements(e.objects)...)
	case *Object:
		add(RoleObjectObject, elements(e.objects)...)
		add(RoleObjectComplementary, elements(e.complementary)...)
		add(RoleObjectPackFormat, elements(e.packFormats)...)
		add(RoleObjectTrackUID, elements(e.trackUIDs)...)
	case *TrackUID:
		add(RoleTrackUIDTrackFormat, optional(e.trackFormat)...)
		add(RoleTrackUIDChannelFormat, optional(e.channelFormat)...)
		add(RoleTrackUIDPackFormat, optional(e.packFormat)...)
	case *PackFormat:
		add(RolePackFormatChannelFormat, elements(e.channelFormats)...)
		add(RolePackFormatPackFormat, elements(e.packFormats)...)
	case *TrackFormat:
		add(RoleTrackFormatStreamFormat, optional(e.streamFormat)...)
	case *StreamFormat:
		add(RoleStreamFormatChannelFormat, optional(e.channelFormat)...)
		add(RoleStreamFormatPackFormat, optional(e.packFormat)...)
		add(RoleStreamFormatTrackFormat, elements(e.trackFormats)...)
	}
	return out
}

func elements[T Element](list []T) []Element {
	out := make([]Element, len(list))
	for i, el := range list {
		out[i] = el
	}
	return out
}

func optional[T interface {
	Element
	comparable
}](el T) []Element {
	var zero T
	if el == zero {
		return nil
	}
	return []Element{el}
}
