package model

import "github.com/jacoelho/adm/value"

// Position is either a *SphericalPosition or a *CartesianPosition.
type Position interface {
	IsCartesian() bool
	position()
}

// ScreenEdgeLock locks a position to the screen edges.
type ScreenEdgeLock struct {
	Horizontal *value.HorizontalEdge
	Vertical   *value.VerticalEdge
}

// IsZero reports whether no edge is locked.
func (s ScreenEdgeLock) IsZero() bool {
	return s.Horizontal == nil && s.Vertical == nil
}

// SphericalPosition is a position given by azimuth, elevation and distance.
type SphericalPosition struct {
	Azimuth         *value.Azimuth
	Elevation       *value.Elevation
	Distance        *value.Distance
	AzimuthBounds   Bounds[value.Azimuth]
	ElevationBounds Bounds[value.Elevation]
	DistanceBounds  Bounds[value.Distance]
	ScreenEdgeLock  ScreenEdgeLock
}

func (*SphericalPosition) IsCartesian() bool { return false }
func (*SphericalPosition) position()         {}

// CartesianPosition is a position given by X, Y and Z.
type CartesianPosition struct {
	X              *value.X
	Y              *value.Y
	Z              *value.Z
	XBounds        Bounds[value.X]
	YBounds        Bounds[value.Y]
	ZBounds        Bounds[value.Z]
	ScreenEdgeLock ScreenEdgeLock
}

func (*CartesianPosition) IsCartesian() bool { return true }
func (*CartesianPosition) position()         {}

// PositionOffset is either a *SphericalOffset or a *CartesianOffset.
type PositionOffset interface {
	IsCartesian() bool
	positionOffset()
}

// SphericalOffset shifts an object position in spherical coordinates.
type SphericalOffset struct {
	Azimuth   *value.AzimuthOffset
	Elevation *value.ElevationOffset
	Distance  *value.DistanceOffset
}

func (*SphericalOffset) IsCartesian() bool { return false }
func (*SphericalOffset) positionOffset()   {}

// CartesianOffset shifts an object position in cartesian coordinates.
type CartesianOffset struct {
	X *value.XOffset
	Y *value.YOffset
	Z *value.ZOffset
}

func (*CartesianOffset) IsCartesian() bool { return true }
func (*CartesianOffset) positionOffset()   {}
