package ingest

import (
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/bind"
	"github.com/jacoelho/adm/internal/disambig"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

func (b *builder) object(n xmltree.Node) (*model.Object, error) {
	id, name, err := b.header(n, ids.KindObject)
	if err != nil {
		return nil, err
	}
	o := model.NewObject(id, name)
	err = firstErr(
		bind.OptionalAttr(n, "start", value.ParseTimecode, &o.Start),
		bind.OptionalAttr(n, "duration", value.ParseTimecode, &o.Duration),
		bind.OptionalAttr(n, "dialogue", value.ParseDialogueKind, &o.Dialogue),
		bind.OptionalAttr(n, "importance", value.ParseImportance, &o.Importance),
		bind.OptionalAttr(n, "interact", value.ParseBool, &o.Interact),
		bind.OptionalAttr(n, "disableDucking", value.ParseBool, &o.DisableDucking),
		b.refs(n, o, model.RoleObjectObject),
		b.refs(n, o, model.RoleObjectComplementary),
		b.refs(n, o, model.RoleObjectPackFormat),
		b.refs(n, o, model.RoleObjectTrackUID),
		bind.OptionalElement(n, "audioObjectInteraction", interaction, &o.Interaction),
		bind.RepeatedElements(n, "audioObjectLabel", label, &o.Labels),
		bind.RepeatedElements(n, "audioComplementaryObjectGroupLabel", label, &o.ComplementaryGroupLabels),
		bind.OptionalElement(n, "gain", disambig.Gain, &o.Gain),
		bind.OptionalElement(n, "headLocked", bind.Text(value.ParseBool), &o.HeadLocked),
		positionOffset(n, o),
		bind.OptionalElement(n, "mute", bind.Text(value.ParseBool), &o.Mute),
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func positionOffset(n xmltree.Node, o *model.Object) error {
	if !n.FirstChildNamed("positionOffset").Valid() {
		return nil
	}
	off, err := bind.MultiElement(n, "positionOffset", disambig.PositionOffset)
	if err != nil {
		return err
	}
	o.PositionOffset = off
	return nil
}

func interaction(n xmltree.Node) (model.ObjectInteraction, error) {
	onOff, err := bind.RequiredAttr(n, "onOffInteract", value.ParseBool)
	if err != nil {
		return model.ObjectInteraction{}, err
	}
	i := model.ObjectInteraction{OnOff: onOff}
	err = firstErr(
		bind.OptionalAttr(n, "gainInteract", value.ParseBool, &i.GainInteract),
		bind.OptionalAttr(n, "positionInteract", value.ParseBool, &i.PositionInteract),
		bind.OptionalMultiElement(n, "gainInteractionRange", disambig.GainInteractionRange, &i.GainRange),
		bind.OptionalMultiElement(n, "positionInteractionRange", disambig.PositionInteractionRange, &i.PositionRange),
	)
	if err != nil {
		return model.ObjectInteraction{}, err
	}
	return i, nil
}
