// Package dump renders a document graph as plain data for export and
// comparison.
package dump

import (
	"fmt"
	"strconv"

	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

// Graph is a snapshot of a document. Two documents describe the same graph
// exactly when their snapshots are deeply equal.
type Graph struct {
	Elements []Element `yaml:"elements" json:"elements"`
}

// Element is one element of the graph with its fields rendered as text.
type Element struct {
	ID         string              `yaml:"id" json:"id"`
	Kind       string              `yaml:"kind" json:"kind"`
	Name       string              `yaml:"name,omitempty" json:"name,omitempty"`
	Fields     map[string]string   `yaml:"fields,omitempty" json:"fields,omitempty"`
	References map[string][]string `yaml:"references,omitempty" json:"references,omitempty"`
	Blocks     []Block             `yaml:"blocks,omitempty" json:"blocks,omitempty"`
}

// Block is one block format of a channel format.
type Block struct {
	ID     string            `yaml:"id" json:"id"`
	Fields map[string]string `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Snapshot captures doc in kind order, then insertion order.
func Snapshot(doc *document.Document) Graph {
	var g Graph
	for _, el := range doc.Elements() {
		g.Elements = append(g.Elements, snapshotElement(el))
	}
	return g
}

// Find returns the snapshot of the element with the given identifier.
func (g Graph) Find(id string) (Element, bool) {
	for _, el := range g.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

func snapshotElement(el model.Element) Element {
	out := Element{
		ID:   el.ID().String(),
		Kind: el.ID().Kind.Element(),
		Name: el.Name(),
	}
	f := fields{}
	switch e := el.(type) {
	case *model.Programme:
		set(f, "language", e.Language)
		set(f, "start", e.Start)
		set(f, "end", e.End)
		set(f, "maxDuckingDepth", e.MaxDuckingDepth)
		f.loudness("loudness", e.Loudness)
		if e.ReferenceScreen != nil {
			f["referenceScreen"] = "1"
		}
		f.labels("label", e.Labels)
	case *model.Content:
		set(f, "language", e.Language)
		f.loudness("loudness", e.Loudness)
		if e.Kind != nil {
			f["dialogue"] = e.Kind.Dialogue().String()
			f[e.Kind.Dialogue().KindAttribute()] = strconv.Itoa(e.Kind.Kind())
		}
		f.labels("label", e.Labels)
	case *model.Object:
		f.object(e)
	case *model.PackFormat:
		f["type"] = e.Type().Definition()
		set(f, "importance", e.Importance)
		set(f, "absoluteDistance", e.AbsoluteDistance)
		if e.HOA != nil {
			set(f, "normalization", e.HOA.Normalization)
			setBool(f, "screenRef", e.HOA.ScreenRef)
			set(f, "nfcRefDist", e.HOA.NfcRefDist)
		}
	case *model.ChannelFormat:
		f["type"] = e.Type().Definition()
		if e.Frequency != nil {
			set(f, "frequency.lowPass", e.Frequency.LowPass)
			set(f, "frequency.highPass", e.Frequency.HighPass)
		}
		for _, b := range e.Blocks() {
			out.Blocks = append(out.Blocks, snapshotBlock(b))
		}
	case *model.StreamFormat:
		f["format"] = e.Format.Definition()
	case *model.TrackFormat:
		f["format"] = e.Format.Definition()
	case *model.TrackUID:
		set(f, "sampleRate", e.SampleRate)
		set(f, "bitDepth", e.BitDepth)
	}
	if len(f) > 0 {
		out.Fields = f
	}
	for _, edge := range model.Edges(el) {
		if out.References == nil {
			out.References = make(map[string][]string)
		}
		role := edge.Role.String()
		out.References[role] = append(out.References[role], edge.Target.ID().String())
	}
	return out
}

type fields map[string]string

func set[T fmt.Stringer](f fields, key string, v *T) {
	if v != nil {
		f[key] = (*v).String()
	}
}

func setBool(f fields, key string, v *bool) {
	if v != nil {
		f[key] = value.FormatBool(*v)
	}
}

func setBounds[T fmt.Stringer](f fields, key string, b model.Bounds[T]) {
	set(f, key+".min", b.Min)
	set(f, key+".max", b.Max)
}

func setGain(f fields, key string, g *value.Gain) {
	if g != nil {
		f[key] = g.String() + " " + g.Unit().String()
	}
}

func (f fields) labels(key string, list []model.Label) {
	for i, l := range list {
		k := key + "." + strconv.Itoa(i)
		f[k] = l.Value
		set(f, k+".language", l.Language)
	}
}

func (f fields) loudness(key string, list []model.LoudnessMetadata) {
	for i, l := range list {
		k := key + "." + strconv.Itoa(i) + "."
		before := len(f)
		setString(f, k+"method", l.Method)
		setString(f, k+"recType", l.RecType)
		setString(f, k+"correctionType", l.CorrectionType)
		set(f, k+"integratedLoudness", l.IntegratedLoudness)
		set(f, k+"loudnessRange", l.LoudnessRange)
		set(f, k+"maxTruePeak", l.MaxTruePeak)
		set(f, k+"maxMomentary", l.MaxMomentary)
		set(f, k+"maxShortTerm", l.MaxShortTerm)
		set(f, k+"dialogueLoudness", l.DialogueLoudness)
		if len(f) == before {
			f[key+"."+strconv.Itoa(i)] = ""
		}
	}
}

func setString(f fields, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}

func (f fields) object(o *model.Object) {
	set(f, "start", o.Start)
	set(f, "duration", o.Duration)
	set(f, "dialogue", o.Dialogue)
	set(f, "importance", o.Importance)
	setBool(f, "interact", o.Interact)
	setBool(f, "disableDucking", o.DisableDucking)
	setGain(f, "gain", o.Gain)
	setBool(f, "headLocked", o.HeadLocked)
	setBool(f, "mute", o.Mute)
	f.labels("label", o.Labels)
	f.labels("complementaryGroupLabel", o.ComplementaryGroupLabels)
	switch off := o.PositionOffset.(type) {
	case *model.SphericalOffset:
		set(f, "positionOffset.azimuth", off.Azimuth)
		set(f, "positionOffset.elevation", off.Elevation)
		set(f, "positionOffset.distance", off.Distance)
	case *model.CartesianOffset:
		set(f, "positionOffset.X", off.X)
		set(f, "positionOffset.Y", off.Y)
		set(f, "positionOffset.Z", off.Z)
	}
	if i := o.Interaction; i != nil {
		f["interaction.onOff"] = value.FormatBool(i.OnOff)
		setBool(f, "interaction.gain", i.GainInteract)
		setBool(f, "interaction.position", i.PositionInteract)
		if r := i.GainRange; r != nil {
			setGain(f, "interaction.gainRange.min", r.Min)
			setGain(f, "interaction.gainRange.max", r.Max)
		}
		if r := i.PositionRange; r != nil {
			setBounds(f, "interaction.positionRange.azimuth", r.Azimuth)
			setBounds(f, "interaction.positionRange.elevation", r.Elevation)
			setBounds(f, "interaction.positionRange.distance", r.Distance)
			setBounds(f, "interaction.positionRange.X", r.X)
			setBounds(f, "interaction.positionRange.Y", r.Y)
			setBounds(f, "interaction.positionRange.Z", r.Z)
		}
	}
}
