// Package disambig chooses between mutually exclusive representations of
// ADM values by inspecting sibling markers.
package disambig

import (
	"strings"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

type coordinate struct {
	node xmltree.Node
	axis value.Axis
}

func childPath(n xmltree.Node) string {
	if parent := n.Parent(); parent.Valid() {
		return parent.Name() + "/" + n.Name()
	}
	return n.Name()
}

func at(err error, n xmltree.Node) error {
	return admerrors.AtLine(err, childPath(n), n.Line())
}

func axisOf(n xmltree.Node) (value.Axis, error) {
	text, ok := n.Attr("coordinate")
	if !ok {
		return 0, at(admerrors.New(admerrors.ErrMissingAttribute, "missing attribute coordinate"), n)
	}
	axis, err := value.ParseAxis(text)
	if err != nil {
		return 0, at(err, n)
	}
	return axis, nil
}

// IsCartesian decides the shape of a position group from the coordinate
// marker of its first child. A group without children is spherical.
func IsCartesian(nodes []xmltree.Node) (bool, error) {
	if len(nodes) == 0 {
		return false, nil
	}
	axis, err := axisOf(nodes[0])
	if err != nil {
		return false, err
	}
	return axis.Cartesian(), nil
}

// classify reads every coordinate marker and requires a single system.
func classify(nodes []xmltree.Node) ([]coordinate, bool, error) {
	coords := make([]coordinate, 0, len(nodes))
	for _, n := range nodes {
		axis, err := axisOf(n)
		if err != nil {
			return nil, false, err
		}
		coords = append(coords, coordinate{node: n, axis: axis})
	}
	if len(coords) == 0 {
		return nil, false, nil
	}
	cartesian := coords[0].axis.Cartesian()
	for _, c := range coords[1:] {
		if c.axis.Cartesian() != cartesian {
			return nil, false, at(&admerrors.Error{
				Code:    admerrors.ErrMixedCoordinateSystems,
				Message: "position has both cartesian and spherical coordinates",
				Actual:  c.axis.String(),
			}, c.node)
		}
	}
	return coords, cartesian, nil
}

// Position folds the position children of an Objects block. The shape is
// taken from the first child and every other child must agree with it.
func Position(nodes []xmltree.Node) (model.Position, error) {
	coords, cartesian, err := classify(nodes)
	if err != nil {
		return nil, err
	}
	if cartesian {
		return cartesianPosition(coords)
	}
	return sphericalPosition(coords)
}

// SpeakerPosition folds the position children of a DirectSpeakers block.
// At least one coordinate is required.
func SpeakerPosition(nodes []xmltree.Node) (model.Position, error) {
	if len(nodes) == 0 {
		return nil, admerrors.New(admerrors.ErrNoCoordinates, "speaker position has neither cartesian nor spherical coordinates")
	}
	return Position(nodes)
}

func parseInto[T any](n xmltree.Node, parse func(string) (T, error), target **T) error {
	v, err := parse(strings.TrimSpace(n.Text()))
	if err != nil {
		return at(err, n)
	}
	*target = &v
	return nil
}

func optionalAttr[T any](n xmltree.Node, name string, parse func(string) (T, error), target **T) error {
	text, ok := n.Attr(name)
	if !ok {
		return nil
	}
	v, err := parse(text)
	if err != nil {
		return admerrors.AtLine(err, n.Name()+"/@"+name, n.Line())
	}
	*target = &v
	return nil
}

// bound returns the bound marker of n, or nil for the base value.
func bound(n xmltree.Node) (*value.Bound, error) {
	var b *value.Bound
	if err := optionalAttr(n, "bound", value.ParseBound, &b); err != nil {
		return nil, err
	}
	return b, nil
}

// pick selects the base value or one of the bounds.
func pick[T any](b *value.Bound, base **T, bounds *model.Bounds[T]) **T {
	switch {
	case b == nil:
		return base
	case *b == value.BoundMin:
		return &bounds.Min
	default:
		return &bounds.Max
	}
}

func sphericalPosition(coords []coordinate) (*model.SphericalPosition, error) {
	p := &model.SphericalPosition{}
	for _, c := range coords {
		b, err := bound(c.node)
		if err != nil {
			return nil, err
		}
		switch c.axis {
		case value.AxisAzimuth:
			err = parseInto(c.node, value.ParseAzimuth, pick(b, &p.Azimuth, &p.AzimuthBounds))
			if err == nil && b == nil {
				err = optionalAttr(c.node, "screenEdgeLock", value.ParseHorizontalEdge, &p.ScreenEdgeLock.Horizontal)
			}
		case value.AxisElevation:
			err = parseInto(c.node, value.ParseElevation, pick(b, &p.Elevation, &p.ElevationBounds))
			if err == nil && b == nil {
				err = optionalAttr(c.node, "screenEdgeLock", value.ParseVerticalEdge, &p.ScreenEdgeLock.Vertical)
			}
		case value.AxisDistance:
			err = parseInto(c.node, value.ParseDistance, pick(b, &p.Distance, &p.DistanceBounds))
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func cartesianPosition(coords []coordinate) (*model.CartesianPosition, error) {
	p := &model.CartesianPosition{}
	for _, c := range coords {
		b, err := bound(c.node)
		if err != nil {
			return nil, err
		}
		switch c.axis {
		case value.AxisX:
			err = parseInto(c.node, value.ParseX, pick(b, &p.X, &p.XBounds))
			if err == nil && b == nil {
				err = optionalAttr(c.node, "screenEdgeLock", value.ParseHorizontalEdge, &p.ScreenEdgeLock.Horizontal)
			}
		case value.AxisY:
			err = parseInto(c.node, value.ParseY, pick(b, &p.Y, &p.YBounds))
			if err == nil && b == nil {
				err = optionalAttr(c.node, "screenEdgeLock", value.ParseVerticalEdge, &p.ScreenEdgeLock.Vertical)
			}
		case value.AxisZ:
			err = parseInto(c.node, value.ParseZ, pick(b, &p.Z, &p.ZBounds))
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// PositionOffset folds the positionOffset children of an object.
func PositionOffset(nodes []xmltree.Node) (model.PositionOffset, error) {
	coords, cartesian, err := classify(nodes)
	if err != nil {
		return nil, err
	}
	if cartesian {
		o := &model.CartesianOffset{}
		for _, c := range coords {
			switch c.axis {
			case value.AxisX:
				err = parseInto(c.node, value.ParseXOffset, &o.X)
			case value.AxisY:
				err = parseInto(c.node, value.ParseYOffset, &o.Y)
			case value.AxisZ:
				err = parseInto(c.node, value.ParseZOffset, &o.Z)
			}
			if err != nil {
				return nil, err
			}
		}
		return o, nil
	}
	o := &model.SphericalOffset{}
	for _, c := range coords {
		switch c.axis {
		case value.AxisAzimuth:
			err = parseInto(c.node, value.ParseAzimuthOffset, &o.Azimuth)
		case value.AxisElevation:
			err = parseInto(c.node, value.ParseElevationOffset, &o.Elevation)
		case value.AxisDistance:
			err = parseInto(c.node, value.ParseDistanceOffset, &o.Distance)
		}
		if err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ReconcileCartesian returns the cartesian flag of an Objects block given
// its explicit flag and the shape guessed from its position children. The
// guess wins when they disagree; an absent flag stays absent when the
// position is spherical.
func ReconcileCartesian(explicit *bool, guessed bool) *bool {
	current := explicit != nil && *explicit
	if current == guessed {
		return explicit
	}
	return &guessed
}
