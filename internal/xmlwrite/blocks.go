package xmlwrite

import (
	"encoding/xml"
	"fmt"

	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

const blockElement = "audioBlockFormat"

func timingAttrs(t *model.BlockTiming) []xml.Attr {
	var attrs []xml.Attr
	if !t.ID.IsPlaceholder() {
		attrs = append(attrs, attr("audioBlockFormatID", t.ID.String()))
	}
	attrs = appendAttr(attrs, "rtime", t.Rtime)
	return appendAttr(attrs, "duration", t.Duration)
}

func (e *encoder) block(b model.BlockFormat) {
	e.open(blockElement, timingAttrs(b.Timing())...)
	switch blk := b.(type) {
	case *model.DirectSpeakersBlock:
		e.directSpeakersBlock(blk)
	case *model.ObjectsBlock:
		e.objectsBlock(blk)
	case *model.HOABlock:
		e.hoaBlock(blk)
	case *model.BinauralBlock:
		gainLeaf(e, "gain", fallback(e, blk.Gain, value.MustGainFromLinear(1)))
		optionalLeaf(e, "importance", fallback(e, blk.Importance, value.MustImportance(10)))
	}
	e.close(blockElement)
}

func (e *encoder) directSpeakersBlock(blk *model.DirectSpeakersBlock) {
	for _, label := range blk.SpeakerLabels {
		e.leaf("speakerLabel", label)
	}
	e.position(blk.Position)
	boolLeaf(e, "headLocked", fallback(e, blk.HeadLocked, false))
	e.headphoneVirtualise(blk.HeadphoneVirtualise)
	gainLeaf(e, "gain", fallback(e, blk.Gain, value.MustGainFromLinear(1)))
	optionalLeaf(e, "importance", fallback(e, blk.Importance, value.MustImportance(10)))
}

func (e *encoder) objectsBlock(blk *model.ObjectsBlock) {
	cartesian := blk.Cartesian
	if cartesian == nil && e.defaults && blk.Position != nil {
		shape := blk.Position.IsCartesian()
		cartesian = &shape
	}
	boolLeaf(e, "cartesian", cartesian)
	e.position(blk.Position)
	optionalLeaf(e, "width", fallback(e, blk.Width, value.MustWidth(0)))
	optionalLeaf(e, "height", fallback(e, blk.Height, value.MustHeight(0)))
	optionalLeaf(e, "depth", fallback(e, blk.Depth, value.MustDepth(0)))
	gainLeaf(e, "gain", fallback(e, blk.Gain, value.MustGainFromLinear(1)))
	optionalLeaf(e, "diffuse", fallback(e, blk.Diffuse, value.MustDiffuse(0)))
	if lock := fallback(e, blk.ChannelLock, model.ChannelLock{}); lock != nil {
		e.leaf("channelLock", value.FormatBool(lock.Flag), appendAttr(nil, "maxDistance", lock.MaxDistance)...)
	}
	if div := fallback(e, blk.ObjectDivergence, model.ObjectDivergence{}); div != nil {
		attrs := appendAttr(nil, "azimuthRange", div.AzimuthRange)
		attrs = appendAttr(attrs, "positionRange", div.PositionRange)
		e.leaf("objectDivergence", div.Value.String(), attrs...)
	}
	if jump := fallback(e, blk.JumpPosition, model.JumpPosition{}); jump != nil {
		e.leaf("jumpPosition", value.FormatBool(jump.Flag), appendAttr(nil, "interpolationLength", jump.InterpolationLength)...)
	}
	boolLeaf(e, "screenRef", fallback(e, blk.ScreenRef, false))
	optionalLeaf(e, "importance", fallback(e, blk.Importance, value.MustImportance(10)))
	boolLeaf(e, "headLocked", fallback(e, blk.HeadLocked, false))
	e.headphoneVirtualise(blk.HeadphoneVirtualise)
}

func (e *encoder) hoaBlock(blk *model.HOABlock) {
	optionalLeaf(e, "order", blk.Order)
	optionalLeaf(e, "degree", blk.Degree)
	optionalLeaf(e, "nfcRefDist", fallback(e, blk.NfcRefDist, value.MustNfcRefDist(0)))
	boolLeaf(e, "screenRef", fallback(e, blk.ScreenRef, false))
	optionalLeaf(e, "normalization", fallback(e, blk.Normalization, value.NormalizationSN3D))
	if blk.Equation != nil {
		e.leaf("equation", *blk.Equation)
	}
	boolLeaf(e, "headLocked", fallback(e, blk.HeadLocked, false))
	e.headphoneVirtualise(blk.HeadphoneVirtualise)
	gainLeaf(e, "gain", fallback(e, blk.Gain, value.MustGainFromLinear(1)))
	optionalLeaf(e, "importance", fallback(e, blk.Importance, value.MustImportance(10)))
}

func (e *encoder) headphoneVirtualise(h *model.HeadphoneVirtualise) {
	if h == nil {
		return
	}
	attrs := appendBoolAttr(nil, "bypass", h.Bypass)
	attrs = appendAttr(attrs, "DRR", h.DRR)
	e.leaf("headphoneVirtualise", "", attrs...)
}

func (e *encoder) position(p model.Position) {
	switch pos := p.(type) {
	case *model.SphericalPosition:
		h := appendAttr(nil, "screenEdgeLock", pos.ScreenEdgeLock.Horizontal)
		v := appendAttr(nil, "screenEdgeLock", pos.ScreenEdgeLock.Vertical)
		coordinate(e, value.AxisAzimuth, pos.Azimuth, pos.AzimuthBounds, h)
		coordinate(e, value.AxisElevation, pos.Elevation, pos.ElevationBounds, v)
		coordinate(e, value.AxisDistance, fallback(e, pos.Distance, value.MustDistance(1)), pos.DistanceBounds, nil)
	case *model.CartesianPosition:
		h := appendAttr(nil, "screenEdgeLock", pos.ScreenEdgeLock.Horizontal)
		v := appendAttr(nil, "screenEdgeLock", pos.ScreenEdgeLock.Vertical)
		coordinate(e, value.AxisX, pos.X, pos.XBounds, h)
		coordinate(e, value.AxisY, pos.Y, pos.YBounds, v)
		coordinate(e, value.AxisZ, pos.Z, pos.ZBounds, nil)
	}
}

// coordinate writes the base value of one axis followed by its bounds.
// The screen edge lock only applies to the base value.
func coordinate[T fmt.Stringer](e *encoder, axis value.Axis, v *T, b model.Bounds[T], lock []xml.Attr) {
	c := attr("coordinate", axis.String())
	if v != nil {
		e.leaf("position", (*v).String(), append([]xml.Attr{c}, lock...)...)
	}
	if b.Min != nil {
		e.leaf("position", (*b.Min).String(), c, attr("bound", value.BoundMin.String()))
	}
	if b.Max != nil {
		e.leaf("position", (*b.Max).String(), c, attr("bound", value.BoundMax.String()))
	}
}
