package dump

import (
	"strconv"

	"github.com/jacoelho/adm/model"
)

func snapshotBlock(b model.BlockFormat) Block {
	out := Block{ID: b.Timing().ID.String()}
	f := fields{}
	set(f, "rtime", b.Timing().Rtime)
	set(f, "duration", b.Timing().Duration)
	switch blk := b.(type) {
	case *model.DirectSpeakersBlock:
		for i, label := range blk.SpeakerLabels {
			f["speakerLabel."+strconv.Itoa(i)] = label
		}
		f.position(blk.Position)
		setBool(f, "headLocked", blk.HeadLocked)
		f.headphoneVirtualise(blk.HeadphoneVirtualise)
		setGain(f, "gain", blk.Gain)
		set(f, "importance", blk.Importance)
	case *model.ObjectsBlock:
		setBool(f, "cartesian", blk.Cartesian)
		f.position(blk.Position)
		set(f, "width", blk.Width)
		set(f, "height", blk.Height)
		set(f, "depth", blk.Depth)
		setGain(f, "gain", blk.Gain)
		set(f, "diffuse", blk.Diffuse)
		if c := blk.ChannelLock; c != nil {
			setBool(f, "channelLock", &c.Flag)
			set(f, "channelLock.maxDistance", c.MaxDistance)
		}
		if d := blk.ObjectDivergence; d != nil {
			set(f, "objectDivergence", &d.Value)
			set(f, "objectDivergence.azimuthRange", d.AzimuthRange)
			set(f, "objectDivergence.positionRange", d.PositionRange)
		}
		if j := blk.JumpPosition; j != nil {
			setBool(f, "jumpPosition", &j.Flag)
			set(f, "jumpPosition.interpolationLength", j.InterpolationLength)
		}
		setBool(f, "screenRef", blk.ScreenRef)
		set(f, "importance", blk.Importance)
		setBool(f, "headLocked", blk.HeadLocked)
		f.headphoneVirtualise(blk.HeadphoneVirtualise)
	case *model.HOABlock:
		set(f, "order", blk.Order)
		set(f, "degree", blk.Degree)
		set(f, "nfcRefDist", blk.NfcRefDist)
		setBool(f, "screenRef", blk.ScreenRef)
		set(f, "normalization", blk.Normalization)
		setString(f, "equation", blk.Equation)
		setBool(f, "headLocked", blk.HeadLocked)
		f.headphoneVirtualise(blk.HeadphoneVirtualise)
		setGain(f, "gain", blk.Gain)
		set(f, "importance", blk.Importance)
	case *model.BinauralBlock:
		setGain(f, "gain", blk.Gain)
		set(f, "importance", blk.Importance)
	}
	if len(f) > 0 {
		out.Fields = f
	}
	return out
}

func (f fields) headphoneVirtualise(h *model.HeadphoneVirtualise) {
	if h == nil {
		return
	}
	f["headphoneVirtualise"] = "1"
	setBool(f, "headphoneVirtualise.bypass", h.Bypass)
	set(f, "headphoneVirtualise.DRR", h.DRR)
}

func (f fields) position(p model.Position) {
	switch pos := p.(type) {
	case *model.SphericalPosition:
		f["position"] = "spherical"
		set(f, "position.azimuth", pos.Azimuth)
		setBounds(f, "position.azimuth", pos.AzimuthBounds)
		set(f, "position.elevation", pos.Elevation)
		setBounds(f, "position.elevation", pos.ElevationBounds)
		set(f, "position.distance", pos.Distance)
		setBounds(f, "position.distance", pos.DistanceBounds)
		set(f, "position.screenEdgeLock.horizontal", pos.ScreenEdgeLock.Horizontal)
		set(f, "position.screenEdgeLock.vertical", pos.ScreenEdgeLock.Vertical)
	case *model.CartesianPosition:
		f["position"] = "cartesian"
		set(f, "position.X", pos.X)
		setBounds(f, "position.X", pos.XBounds)
		set(f, "position.Y", pos.Y)
		setBounds(f, "position.Y", pos.YBounds)
		set(f, "position.Z", pos.Z)
		setBounds(f, "position.Z", pos.ZBounds)
		set(f, "position.screenEdgeLock.horizontal", pos.ScreenEdgeLock.Horizontal)
		set(f, "position.screenEdgeLock.vertical", pos.ScreenEdgeLock.Vertical)
	}
}
