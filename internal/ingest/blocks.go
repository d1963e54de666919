package ingest

import (
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/bind"
	"github.com/jacoelho/adm/internal/disambig"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

type blockFunc func(n xmltree.Node) (model.BlockFormat, error)

// blockParser returns the audioBlockFormat parser for a channel type, or nil
// when blocks of that type are not read.
func blockParser(t value.TypeDescriptor) blockFunc {
	switch t {
	case value.TypeDirectSpeakers:
		return asBlock(directSpeakersBlock)
	case value.TypeObjects:
		return asBlock(objectsBlock)
	case value.TypeHOA:
		return asBlock(hoaBlock)
	case value.TypeBinaural:
		return asBlock(binauralBlock)
	default:
		return nil
	}
}

func asBlock[T model.BlockFormat](parse func(xmltree.Node) (T, error)) blockFunc {
	return func(n xmltree.Node) (model.BlockFormat, error) {
		block, err := parse(n)
		if err != nil {
			return nil, err
		}
		return block, nil
	}
}

func parseBlockID(text string) (ids.ID, error) {
	return ids.Parse(ids.KindBlockFormat, text)
}

func blockTiming(n xmltree.Node, t *model.BlockTiming) error {
	var id *ids.ID
	err := firstErr(
		bind.OptionalAttr(n, "audioBlockFormatID", parseBlockID, &id),
		bind.OptionalAttr(n, "rtime", value.ParseTimecode, &t.Rtime),
		bind.OptionalAttr(n, "duration", value.ParseTimecode, &t.Duration),
	)
	if err != nil {
		return err
	}
	if id != nil {
		t.ID = *id
	} else {
		t.ID = ids.Placeholder(ids.KindBlockFormat)
	}
	return nil
}

func headphoneVirtualise(n xmltree.Node) (model.HeadphoneVirtualise, error) {
	var h model.HeadphoneVirtualise
	err := firstErr(
		bind.OptionalAttr(n, "bypass", value.ParseBool, &h.Bypass),
		bind.OptionalAttr(n, "DRR", value.ParseDirectToReverberantRatio, &h.DRR),
	)
	return h, err
}

func directSpeakersBlock(n xmltree.Node) (*model.DirectSpeakersBlock, error) {
	pos, err := bind.MultiElement(n, "position", disambig.SpeakerPosition)
	if err != nil {
		return nil, err
	}
	blk := model.NewDirectSpeakersBlock(pos)
	err = firstErr(
		blockTiming(n, &blk.BlockTiming),
		bind.RepeatedElements(n, "speakerLabel", bind.String, &blk.SpeakerLabels),
		bind.OptionalElement(n, "headLocked", bind.Text(value.ParseBool), &blk.HeadLocked),
		bind.OptionalElement(n, "headphoneVirtualise", headphoneVirtualise, &blk.HeadphoneVirtualise),
		bind.OptionalElement(n, "gain", disambig.Gain, &blk.Gain),
		bind.OptionalElement(n, "importance", bind.Text(value.ParseImportance), &blk.Importance),
	)
	if err != nil {
		return nil, err
	}
	return blk, nil
}

func channelLock(n xmltree.Node) (model.ChannelLock, error) {
	flag, err := value.ParseBool(n.Text())
	if err != nil {
		return model.ChannelLock{}, err
	}
	c := model.ChannelLock{Flag: flag}
	err = bind.OptionalAttr(n, "maxDistance", value.ParseMaxDistance, &c.MaxDistance)
	return c, err
}

func objectDivergence(n xmltree.Node) (model.ObjectDivergence, error) {
	v, err := bind.Text(value.ParseDivergence)(n)
	if err != nil {
		return model.ObjectDivergence{}, err
	}
	d := model.ObjectDivergence{Value: v}
	err = firstErr(
		bind.OptionalAttr(n, "azimuthRange", value.ParseAzimuthRange, &d.AzimuthRange),
		bind.OptionalAttr(n, "positionRange", value.ParsePositionRange, &d.PositionRange),
	)
	return d, err
}

func jumpPosition(n xmltree.Node) (model.JumpPosition, error) {
	flag, err := value.ParseBool(n.Text())
	if err != nil {
		return model.JumpPosition{}, err
	}
	j := model.JumpPosition{Flag: flag}
	err = bind.OptionalAttr(n, "interpolationLength", value.ParseInterpolationLength, &j.InterpolationLength)
	return j, err
}

func objectsBlock(n xmltree.Node) (*model.ObjectsBlock, error) {
	blk := model.NewObjectsBlock(nil)
	if err := bind.OptionalElement(n, "cartesian", bind.Text(value.ParseBool), &blk.Cartesian); err != nil {
		return nil, err
	}
	positions := n.ChildrenNamed("position")
	guessed, err := disambig.IsCartesian(positions)
	if err != nil {
		return nil, err
	}
	blk.Cartesian = disambig.ReconcileCartesian(blk.Cartesian, guessed)
	pos, err := bind.MultiElement(n, "position", disambig.Position)
	if err != nil {
		return nil, err
	}
	blk.Position = pos
	err = firstErr(
		blockTiming(n, &blk.BlockTiming),
		bind.OptionalElement(n, "width", bind.Text(value.ParseWidth), &blk.Width),
		bind.OptionalElement(n, "height", bind.Text(value.ParseHeight), &blk.Height),
		bind.OptionalElement(n, "depth", bind.Text(value.ParseDepth), &blk.Depth),
		bind.OptionalElement(n, "gain", disambig.Gain, &blk.Gain),
		bind.OptionalElement(n, "diffuse", bind.Text(value.ParseDiffuse), &blk.Diffuse),
		bind.OptionalElement(n, "channelLock", channelLock, &blk.ChannelLock),
		bind.OptionalElement(n, "objectDivergence", objectDivergence, &blk.ObjectDivergence),
		bind.OptionalElement(n, "jumpPosition", jumpPosition, &blk.JumpPosition),
		bind.OptionalElement(n, "screenRef", bind.Text(value.ParseBool), &blk.ScreenRef),
		bind.OptionalElement(n, "importance", bind.Text(value.ParseImportance), &blk.Importance),
		bind.OptionalElement(n, "headLocked", bind.Text(value.ParseBool), &blk.HeadLocked),
		bind.OptionalElement(n, "headphoneVirtualise", headphoneVirtualise, &blk.HeadphoneVirtualise),
	)
	if err != nil {
		return nil, err
	}
	return blk, nil
}

func hoaBlock(n xmltree.Node) (*model.HOABlock, error) {
	blk := &model.HOABlock{}
	err := firstErr(
		blockTiming(n, &blk.BlockTiming),
		bind.OptionalElement(n, "order", bind.Text(value.ParseOrder), &blk.Order),
		bind.OptionalElement(n, "degree", bind.Text(value.ParseDegree), &blk.Degree),
		bind.OptionalElement(n, "nfcRefDist", bind.Text(value.ParseNfcRefDist), &blk.NfcRefDist),
		bind.OptionalElement(n, "screenRef", bind.Text(value.ParseBool), &blk.ScreenRef),
		bind.OptionalElement(n, "normalization", bind.Text(value.ParseNormalization), &blk.Normalization),
		bind.OptionalElement(n, "equation", bind.String, &blk.Equation),
		bind.OptionalElement(n, "headLocked", bind.Text(value.ParseBool), &blk.HeadLocked),
		bind.OptionalElement(n, "headphoneVirtualise", headphoneVirtualise, &blk.HeadphoneVirtualise),
		bind.OptionalElement(n, "gain", disambig.Gain, &blk.Gain),
		bind.OptionalElement(n, "importance", bind.Text(value.ParseImportance), &blk.Importance),
	)
	if err != nil {
		return nil, err
	}
	return blk, nil
}

func binauralBlock(n xmltree.Node) (*model.BinauralBlock, error) {
	blk := &model.BinauralBlock{}
	err := firstErr(
		blockTiming(n, &blk.BlockTiming),
		bind.OptionalElement(n, "gain", disambig.Gain, &blk.Gain),
		bind.OptionalElement(n, "importance", bind.Text(value.ParseImportance), &blk.Importance),
	)
	if err != nil {
		return nil, err
	}
	return blk, nil
}
