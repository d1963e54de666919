package xmlwrite

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/disambig"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

func (e *encoder) element(el model.Element) {
	switch v := el.(type) {
	case *model.Programme:
		e.programme(v)
	case *model.Content:
		e.content(v)
	case *model.Object:
		e.object(v)
	case *model.PackFormat:
		e.packFormat(v)
	case *model.ChannelFormat:
		e.channelFormat(v)
	case *model.StreamFormat:
		e.streamFormat(v)
	case *model.TrackFormat:
		e.trackFormat(v)
	case *model.TrackUID:
		e.trackUID(v)
	}
}

func header(el model.Element) []xml.Attr {
	kind := el.ID().Kind
	if kind == ids.KindTrackUID {
		return []xml.Attr{attr("UID", el.ID().String())}
	}
	return []xml.Attr{
		attr(kind.Element()+"ID", el.ID().String()),
		attr(kind.Element()+"Name", el.Name()),
	}
}

// references writes one IDRef child per resolved reference, in role order.
func (e *encoder) references(el model.Element) {
	for _, edge := range model.Edges(el) {
		e.leaf(edge.Role.RefElement(), edge.Target.ID().String())
	}
}

func (e *encoder) programme(p *model.Programme) {
	name := ids.KindProgramme.Element()
	attrs := header(p)
	attrs = appendAttr(attrs, "audioProgrammeLanguage", p.Language)
	attrs = appendAttr(attrs, "start", p.Start)
	attrs = appendAttr(attrs, "end", p.End)
	attrs = appendAttr(attrs, "maxDuckingDepth", p.MaxDuckingDepth)
	e.open(name, attrs...)
	labels(e, "audioProgrammeLabel", p.Labels)
	e.references(p)
	for _, l := range p.Loudness {
		e.loudness(l)
	}
	if p.ReferenceScreen != nil {
		e.leaf("audioProgrammeReferenceScreen", "")
	}
	e.close(name)
}

func (e *encoder) content(c *model.Content) {
	name := ids.KindContent.Element()
	attrs := appendAttr(header(c), "audioContentLanguage", c.Language)
	e.open(name, attrs...)
	labels(e, "audioContentLabel", c.Labels)
	e.references(c)
	for _, l := range c.Loudness {
		e.loudness(l)
	}
	if c.Kind != nil {
		d := c.Kind.Dialogue()
		e.leaf("dialogue", d.String(), attr(d.KindAttribute(), strconv.Itoa(c.Kind.Kind())))
	}
	e.close(name)
}

func (e *encoder) loudness(l model.LoudnessMetadata) {
	var attrs []xml.Attr
	attrs = appendStringAttr(attrs, "loudnessMethod", l.Method)
	attrs = appendStringAttr(attrs, "loudnessRecType", l.RecType)
	attrs = appendStringAttr(attrs, "loudnessCorrectionType", l.CorrectionType)
	e.open("loudnessMetadata", attrs...)
	optionalLeaf(e, "integratedLoudness", l.IntegratedLoudness)
	optionalLeaf(e, "loudnessRange", l.LoudnessRange)
	optionalLeaf(e, "maxTruePeak", l.MaxTruePeak)
	optionalLeaf(e, "maxMomentary", l.MaxMomentary)
	optionalLeaf(e, "maxShortTerm", l.MaxShortTerm)
	optionalLeaf(e, "dialogueLoudness", l.DialogueLoudness)
	e.close("loudnessMetadata")
}

func (e *encoder) object(o *model.Object) {
	name := ids.KindObject.Element()
	attrs := header(o)
	attrs = appendAttr(attrs, "start", fallback(e, o.Start, value.MustTimecode(0)))
	attrs = appendAttr(attrs, "duration", o.Duration)
	attrs = appendAttr(attrs, "dialogue", o.Dialogue)
	attrs = appendAttr(attrs, "importance", fallback(e, o.Importance, value.MustImportance(10)))
	attrs = appendBoolAttr(attrs, "interact", fallback(e, o.Interact, false))
	attrs = appendBoolAttr(attrs, "disableDucking", fallback(e, o.DisableDucking, false))
	e.open(name, attrs...)
	labels(e, "audioObjectLabel", o.Labels)
	labels(e, "audioComplementaryObjectGroupLabel", o.ComplementaryGroupLabels)
	e.references(o)
	if o.Interaction != nil {
		e.interaction(o.Interaction)
	}
	gainLeaf(e, "gain", fallback(e, o.Gain, value.MustGainFromLinear(1)))
	boolLeaf(e, "headLocked", fallback(e, o.HeadLocked, false))
	e.positionOffset(o.PositionOffset)
	boolLeaf(e, "mute", fallback(e, o.Mute, false))
	e.close(name)
}

func (e *encoder) positionOffset(off model.PositionOffset) {
	switch p := off.(type) {
	case *model.SphericalOffset:
		offsetLeaf(e, value.AxisAzimuth, p.Azimuth)
		offsetLeaf(e, value.AxisElevation, p.Elevation)
		offsetLeaf(e, value.AxisDistance, p.Distance)
	case *model.CartesianOffset:
		offsetLeaf(e, value.AxisX, p.X)
		offsetLeaf(e, value.AxisY, p.Y)
		offsetLeaf(e, value.AxisZ, p.Z)
	}
}

func offsetLeaf[T fmt.Stringer](e *encoder, axis value.Axis, v *T) {
	if v != nil {
		e.leaf("positionOffset", (*v).String(), attr("coordinate", axis.String()))
	}
}

func (e *encoder) interaction(i *model.ObjectInteraction) {
	attrs := []xml.Attr{attr("onOffInteract", value.FormatBool(i.OnOff))}
	attrs = appendBoolAttr(attrs, "gainInteract", i.GainInteract)
	attrs = appendBoolAttr(attrs, "positionInteract", i.PositionInteract)
	e.open("audioObjectInteraction", attrs...)
	if r := i.GainRange; r != nil {
		gainLeaf(e, "gainInteractionRange", r.Min, attr("bound", value.BoundMin.String()))
		gainLeaf(e, "gainInteractionRange", r.Max, attr("bound", value.BoundMax.String()))
	}
	if r := i.PositionRange; r != nil {
		interactionBounds(e, value.AxisAzimuth, r.Azimuth)
		interactionBounds(e, value.AxisElevation, r.Elevation)
		interactionBounds(e, value.AxisDistance, r.Distance)
		interactionBounds(e, value.AxisX, r.X)
		interactionBounds(e, value.AxisY, r.Y)
		interactionBounds(e, value.AxisZ, r.Z)
	}
	e.close("audioObjectInteraction")
}

func interactionBounds[T fmt.Stringer](e *encoder, axis value.Axis, b model.Bounds[T]) {
	coordinate := attr("coordinate", axis.String())
	if b.Min != nil {
		e.leaf("positionInteractionRange", (*b.Min).String(), coordinate, attr("bound", value.BoundMin.String()))
	}
	if b.Max != nil {
		e.leaf("positionInteractionRange", (*b.Max).String(), coordinate, attr("bound", value.BoundMax.String()))
	}
}

func typeAttrs(attrs []xml.Attr, t value.TypeDescriptor) []xml.Attr {
	return append(attrs, attr("typeLabel", t.Label()), attr("typeDefinition", t.Definition()))
}

func formatAttrs(attrs []xml.Attr, f value.FormatDescriptor) []xml.Attr {
	return append(attrs, attr("formatLabel", f.Label()), attr("formatDefinition", f.Definition()))
}

func (e *encoder) packFormat(p *model.PackFormat) {
	name := ids.KindPackFormat.Element()
	attrs := typeAttrs(header(p), p.Type())
	attrs = appendAttr(attrs, "importance", p.Importance)
	attrs = appendAttr(attrs, "absoluteDistance", p.AbsoluteDistance)
	if p.HOA != nil {
		attrs = appendAttr(attrs, "normalization", p.HOA.Normalization)
		attrs = appendBoolAttr(attrs, "screenRef", p.HOA.ScreenRef)
		attrs = appendAttr(attrs, "nfcRefDist", p.HOA.NfcRefDist)
	}
	e.open(name, attrs...)
	e.references(p)
	e.close(name)
}

func (e *encoder) channelFormat(c *model.ChannelFormat) {
	name := ids.KindChannelFormat.Element()
	e.open(name, typeAttrs(header(c), c.Type())...)
	if f := c.Frequency; f != nil {
		if f.LowPass != nil {
			e.leaf("frequency", f.LowPass.String(), attr("typeDefinition", disambig.FrequencyType(false)))
		}
		if f.HighPass != nil {
			e.leaf("frequency", f.HighPass.String(), attr("typeDefinition", disambig.FrequencyType(true)))
		}
	}
	for _, b := range c.Blocks() {
		e.block(b)
	}
	e.close(name)
}

func (e *encoder) streamFormat(s *model.StreamFormat) {
	name := ids.KindStreamFormat.Element()
	e.open(name, formatAttrs(header(s), s.Format)...)
	e.references(s)
	e.close(name)
}

func (e *encoder) trackFormat(t *model.TrackFormat) {
	name := ids.KindTrackFormat.Element()
	e.open(name, formatAttrs(header(t), t.Format)...)
	e.references(t)
	e.close(name)
}

func (e *encoder) trackUID(t *model.TrackUID) {
	name := ids.KindTrackUID.Element()
	attrs := header(t)
	attrs = appendAttr(attrs, "sampleRate", t.SampleRate)
	attrs = appendAttr(attrs, "bitDepth", t.BitDepth)
	e.open(name, attrs...)
	e.references(t)
	e.close(name)
}
