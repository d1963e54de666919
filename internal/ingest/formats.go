package ingest

import (
	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/bind"
	"github.com/jacoelho/adm/internal/disambig"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

// checkTypeAttrs compares the typeLabel and typeDefinition attributes of a
// pack or channel format against the type embedded in its identifier.
func checkTypeAttrs(n xmltree.Node, id ids.ID) error {
	var label, definition *value.TypeDescriptor
	err := firstErr(
		bind.OptionalAttr(n, "typeLabel", value.ParseTypeLabel, &label),
		bind.OptionalAttr(n, "typeDefinition", value.ParseTypeDefinition, &definition),
	)
	if err != nil {
		return err
	}
	return admerrors.AtLine(ids.CheckType(id, label, definition), n.Name(), n.Line())
}

// checkFormat returns the format named by the formatLabel and
// formatDefinition attributes. At least one is required and both must agree.
func checkFormat(n xmltree.Node) (value.FormatDescriptor, error) {
	var label, definition *value.FormatDescriptor
	err := firstErr(
		bind.OptionalAttr(n, "formatLabel", value.ParseFormatLabel, &label),
		bind.OptionalAttr(n, "formatDefinition", value.ParseFormatDefinition, &definition),
	)
	switch {
	case err != nil:
		return 0, err
	case label == nil && definition == nil:
		return 0, bind.Missing(n, "attribute formatLabel or formatDefinition")
	case label != nil && definition != nil && *label != *definition:
		return 0, &admerrors.Error{
			Code:     admerrors.ErrTypeMismatch,
			Message:  "formatLabel and formatDefinition do not match",
			Element:  n.Name(),
			Actual:   definition.Definition(),
			Expected: []string{label.Definition()},
			Line:     n.Line(),
		}
	case label != nil:
		return *label, nil
	default:
		return *definition, nil
	}
}

func (b *builder) packFormat(n xmltree.Node) (*model.PackFormat, error) {
	id, name, err := b.header(n, ids.KindPackFormat)
	if err != nil {
		return nil, err
	}
	if err := checkTypeAttrs(n, id); err != nil {
		return nil, err
	}
	p := model.NewPackFormat(id, name)
	err = firstErr(
		bind.OptionalAttr(n, "importance", value.ParseImportance, &p.Importance),
		bind.OptionalAttr(n, "absoluteDistance", value.ParseAbsoluteDistance, &p.AbsoluteDistance),
		b.refs(n, p, model.RolePackFormatChannelFormat),
		b.refs(n, p, model.RolePackFormatPackFormat),
	)
	if err != nil {
		return nil, err
	}
	if p.HOA != nil {
		err = firstErr(
			bind.OptionalAttr(n, "normalization", value.ParseNormalization, &p.HOA.Normalization),
			bind.OptionalAttr(n, "screenRef", value.ParseBool, &p.HOA.ScreenRef),
			bind.OptionalAttr(n, "nfcRefDist", value.ParseNfcRefDist, &p.HOA.NfcRefDist),
		)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (b *builder) channelFormat(n xmltree.Node) (*model.ChannelFormat, error) {
	id, name, err := b.header(n, ids.KindChannelFormat)
	if err != nil {
		return nil, err
	}
	if err := checkTypeAttrs(n, id); err != nil {
		return nil, err
	}
	c := model.NewChannelFormat(id, name)
	if err := bind.OptionalMultiElement(n, "frequency", disambig.Frequency, &c.Frequency); err != nil {
		return nil, err
	}
	parse := blockParser(c.Type())
	if parse == nil {
		b.logger.Debug("skipping block formats", "channel", id.String(), "type", c.Type().Definition())
		return c, nil
	}
	for _, child := range n.ChildrenNamed("audioBlockFormat") {
		block, err := parse(child)
		if err != nil {
			return nil, err
		}
		if err := c.AddBlock(block); err != nil {
			return nil, admerrors.AtLine(err, child.Name(), child.Line())
		}
	}
	return c, nil
}

func (b *builder) streamFormat(n xmltree.Node) (*model.StreamFormat, error) {
	id, name, err := b.header(n, ids.KindStreamFormat)
	if err != nil {
		return nil, err
	}
	format, err := checkFormat(n)
	if err != nil {
		return nil, err
	}
	s := model.NewStreamFormat(id, name, format)
	err = firstErr(
		b.ref(n, s, model.RoleStreamFormatChannelFormat),
		b.ref(n, s, model.RoleStreamFormatPackFormat),
		b.refs(n, s, model.RoleStreamFormatTrackFormat),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (b *builder) trackFormat(n xmltree.Node) (*model.TrackFormat, error) {
	id, name, err := b.header(n, ids.KindTrackFormat)
	if err != nil {
		return nil, err
	}
	format, err := checkFormat(n)
	if err != nil {
		return nil, err
	}
	t := model.NewTrackFormat(id, name, format)
	if err := b.ref(n, t, model.RoleTrackFormatStreamFormat); err != nil {
		return nil, err
	}
	return t, nil
}

func (b *builder) trackUID(n xmltree.Node) (*model.TrackUID, error) {
	id, _, err := b.header(n, ids.KindTrackUID)
	if err != nil {
		return nil, err
	}
	t := model.NewTrackUID(id)
	err = firstErr(
		bind.OptionalAttr(n, "sampleRate", value.ParseSampleRate, &t.SampleRate),
		bind.OptionalAttr(n, "bitDepth", value.ParseBitDepth, &t.BitDepth),
		b.ref(n, t, model.RoleTrackUIDChannelFormat),
		b.ref(n, t, model.RoleTrackUIDTrackFormat),
		b.ref(n, t, model.RoleTrackUIDPackFormat),
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
