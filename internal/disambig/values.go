package disambig

import (
	"strings"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

// Gain reads a gain element. The gainUnit attribute selects linear or
// decibel interpretation and defaults to linear.
func Gain(n xmltree.Node) (value.Gain, error) {
	unit := value.GainLinear
	if text, ok := n.Attr("gainUnit"); ok {
		u, err := value.ParseGainUnit(text)
		if err != nil {
			return value.Gain{}, admerrors.AtLine(err, n.Name()+"/@gainUnit", n.Line())
		}
		unit = u
	}
	g, err := value.ParseGain(strings.TrimSpace(n.Text()), unit)
	if err != nil {
		return value.Gain{}, at(err, n)
	}
	return g, nil
}

// ContentKind reads a dialogue element: its text selects which companion
// attribute carries the kind.
func ContentKind(n xmltree.Node) (value.ContentKind, error) {
	dialogue, err := value.ParseDialogueKind(strings.TrimSpace(n.Text()))
	if err != nil {
		return value.ContentKind{}, at(err, n)
	}
	attr := dialogue.KindAttribute()
	text, ok := n.Attr(attr)
	if !ok {
		return value.ContentKind{}, at(admerrors.New(admerrors.ErrMissingAttribute, "missing attribute "+attr), n)
	}
	kind, err := value.ParseContentKind(dialogue, text)
	if err != nil {
		return value.ContentKind{}, admerrors.AtLine(err, n.Name()+"/@"+attr, n.Line())
	}
	return kind, nil
}

const (
	frequencyLowPass  = "lowPass"
	frequencyHighPass = "highpass"
)

// Frequency folds frequency children into low-pass and high-pass cut-offs.
// Children with any other typeDefinition are ignored.
func Frequency(nodes []xmltree.Node) (model.Frequency, error) {
	var f model.Frequency
	for _, n := range nodes {
		kind, ok := n.Attr("typeDefinition")
		if !ok {
			return model.Frequency{}, at(admerrors.New(admerrors.ErrMissingAttribute, "missing attribute typeDefinition"), n)
		}
		var err error
		switch kind {
		case frequencyLowPass:
			err = parseInto(n, value.ParseFrequency, &f.LowPass)
		case frequencyHighPass:
			err = parseInto(n, value.ParseFrequency, &f.HighPass)
		}
		if err != nil {
			return model.Frequency{}, err
		}
	}
	return f, nil
}

// FrequencyType returns the typeDefinition written for a cut-off.
func FrequencyType(highPass bool) string {
	if highPass {
		return frequencyHighPass
	}
	return frequencyLowPass
}

func requiredBound(n xmltree.Node) (value.Bound, error) {
	text, ok := n.Attr("bound")
	if !ok {
		return 0, at(admerrors.New(admerrors.ErrMissingAttribute, "missing attribute bound"), n)
	}
	b, err := value.ParseBound(text)
	if err != nil {
		return 0, admerrors.AtLine(err, n.Name()+"/@bound", n.Line())
	}
	return b, nil
}

// GainInteractionRange folds gainInteractionRange children by bound.
func GainInteractionRange(nodes []xmltree.Node) (model.GainInteractionRange, error) {
	var r model.GainInteractionRange
	for _, n := range nodes {
		b, err := requiredBound(n)
		if err != nil {
			return r, err
		}
		g, err := Gain(n)
		if err != nil {
			return r, err
		}
		if b == value.BoundMin {
			r.Min = &g
		} else {
			r.Max = &g
		}
	}
	return r, nil
}

// PositionInteractionRange folds positionInteractionRange children into a
// coordinate by bound grid. Cartesian and spherical axes may be combined.
func PositionInteractionRange(nodes []xmltree.Node) (model.PositionInteractionRange, error) {
	var r model.PositionInteractionRange
	for _, n := range nodes {
		b, err := requiredBound(n)
		if err != nil {
			return r, err
		}
		axis, err := axisOf(n)
		if err != nil {
			return r, err
		}
		switch axis {
		case value.AxisAzimuth:
			err = parseInto(n, value.ParseAzimuth, pick(&b, nil, &r.Azimuth))
		case value.AxisElevation:
			err = parseInto(n, value.ParseElevation, pick(&b, nil, &r.Elevation))
		case value.AxisDistance:
			err = parseInto(n, value.ParseDistance, pick(&b, nil, &r.Distance))
		case value.AxisX:
			err = parseInto(n, value.ParseX, pick(&b, nil, &r.X))
		case value.AxisY:
			err = parseInto(n, value.ParseY, pick(&b, nil, &r.Y))
		case value.AxisZ:
			err = parseInto(n, value.ParseZ, pick(&b, nil, &r.Z))
		}
		if err != nil {
			return r, err
		}
	}
	return r, nil
}
