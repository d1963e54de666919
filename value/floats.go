package value

type azimuthDomain struct{}

func (azimuthDomain) floatRange() floatRange { return between("azimuth", -180, 180) }

// Azimuth is a spherical angle in degrees, positive to the left.
type Azimuth = Float[azimuthDomain]

// NewAzimuth validates v as an Azimuth.
func NewAzimuth(v float64) (Azimuth, error) { return newFloat[azimuthDomain](v) }

// ParseAzimuth parses text as an Azimuth.
func ParseAzimuth(text string) (Azimuth, error) { return parseFloat[azimuthDomain](text) }

// MustAzimuth is like NewAzimuth but panics on invalid input.
func MustAzimuth(v float64) Azimuth { return mustFloat[azimuthDomain](v) }

type elevationDomain struct{}

func (elevationDomain) floatRange() floatRange { return between("elevation", -90, 90) }

// Elevation is a spherical angle in degrees, positive upwards.
type Elevation = Float[elevationDomain]

// NewElevation validates v as an Elevation.
func NewElevation(v float64) (Elevation, error) { return newFloat[elevationDomain](v) }

// ParseElevation parses text as an Elevation.
func ParseElevation(text string) (Elevation, error) { return parseFloat[elevationDomain](text) }

// MustElevation is like NewElevation but panics on invalid input.
func MustElevation(v float64) Elevation { return mustFloat[elevationDomain](v) }

type distanceDomain struct{}

func (distanceDomain) floatRange() floatRange { return atLeast("distance", 0) }

// Distance is a normalized spherical distance.
type Distance = Float[distanceDomain]

// NewDistance validates v as a Distance.
func NewDistance(v float64) (Distance, error) { return newFloat[distanceDomain](v) }

// ParseDistance parses text as a Distance.
func ParseDistance(text string) (Distance, error) { return parseFloat[distanceDomain](text) }

// MustDistance is like NewDistance but panics on invalid input.
func MustDistance(v float64) Distance { return mustFloat[distanceDomain](v) }

type xDomain struct{}

func (xDomain) floatRange() floatRange { return between("X", -1, 1) }

// X is the normalized cartesian left/right coordinate.
type X = Float[xDomain]

// NewX validates v as an X.
func NewX(v float64) (X, error) { return newFloat[xDomain](v) }

// ParseX parses text as an X.
func ParseX(text string) (X, error) { return parseFloat[xDomain](text) }

// MustX is like NewX but panics on invalid input.
func MustX(v float64) X { return mustFloat[xDomain](v) }

type yDomain struct{}

func (yDomain) floatRange() floatRange { return between("Y", -1, 1) }

// Y is the normalized cartesian front/back coordinate.
type Y = Float[yDomain]

// NewY validates v as a Y.
func NewY(v float64) (Y, error) { return newFloat[yDomain](v) }

// ParseY parses text as a Y.
func ParseY(text string) (Y, error) { return parseFloat[yDomain](text) }

// MustY is like NewY but panics on invalid input.
func MustY(v float64) Y { return mustFloat[yDomain](v) }

type zDomain struct{}

func (zDomain) floatRange() floatRange { return between("Z", -1, 1) }

// Z is the normalized cartesian bottom/top coordinate.
type Z = Float[zDomain]

// NewZ validates v as a Z.
func NewZ(v float64) (Z, error) { return newFloat[zDomain](v) }

// ParseZ parses text as a Z.
func ParseZ(text string) (Z, error) { return parseFloat[zDomain](text) }

// MustZ is like NewZ but panics on invalid input.
func MustZ(v float64) Z { return mustFloat[zDomain](v) }

type widthDomain struct{}

func (widthDomain) floatRange() floatRange { return between("width", 0, 360) }

// Width is the horizontal object extent.
type Width = Float[widthDomain]

// NewWidth validates v as a Width.
func NewWidth(v float64) (Width, error) { return newFloat[widthDomain](v) }

// ParseWidth parses text as a Width.
func ParseWidth(text string) (Width, error) { return parseFloat[widthDomain](text) }

// MustWidth is like NewWidth but panics on invalid input.
func MustWidth(v float64) Width { return mustFloat[widthDomain](v) }

type heightDomain struct{}

func (heightDomain) floatRange() floatRange { return between("height", 0, 360) }

// Height is the vertical object extent.
type Height = Float[heightDomain]

// NewHeight validates v as a Height.
func NewHeight(v float64) (Height, error) { return newFloat[heightDomain](v) }

// ParseHeight parses text as a Height.
func ParseHeight(text string) (Height, error) { return parseFloat[heightDomain](text) }

// MustHeight is like NewHeight but panics on invalid input.
func MustHeight(v float64) Height { return mustFloat[heightDomain](v) }

type depthDomain struct{}

func (depthDomain) floatRange() floatRange { return between("depth", 0, 1) }

// Depth is the object extent along the distance axis.
type Depth = Float[depthDomain]

// NewDepth validates v as a Depth.
func NewDepth(v float64) (Depth, error) { return newFloat[depthDomain](v) }

// ParseDepth parses text as a Depth.
func ParseDepth(text string) (Depth, error) { return parseFloat[depthDomain](text) }

// MustDepth is like NewDepth but panics on invalid input.
func MustDepth(v float64) Depth { return mustFloat[depthDomain](v) }

type diffuseDomain struct{}

func (diffuseDomain) floatRange() floatRange { return between("diffuse", 0, 1) }

// Diffuse is the diffuseness of an object.
type Diffuse = Float[diffuseDomain]

// NewDiffuse validates v as a Diffuse.
func NewDiffuse(v float64) (Diffuse, error) { return newFloat[diffuseDomain](v) }

// ParseDiffuse parses text as a Diffuse.
func ParseDiffuse(text string) (Diffuse, error) { return parseFloat[diffuseDomain](text) }

// MustDiffuse is like NewDiffuse but panics on invalid input.
func MustDiffuse(v float64) Diffuse { return mustFloat[diffuseDomain](v) }

type divergenceDomain struct{}

func (divergenceDomain) floatRange() floatRange { return between("objectDivergence", 0, 1) }

// Divergence is the balance between an object and its virtual divergent copies.
type Divergence = Float[divergenceDomain]

// NewDivergence validates v as a Divergence.
func NewDivergence(v float64) (Divergence, error) { return newFloat[divergenceDomain](v) }

// ParseDivergence parses text as a Divergence.
func ParseDivergence(text string) (Divergence, error) { return parseFloat[divergenceDomain](text) }

// MustDivergence is like NewDivergence but panics on invalid input.
func MustDivergence(v float64) Divergence { return mustFloat[divergenceDomain](v) }

type azimuthRangeDomain struct{}

func (azimuthRangeDomain) floatRange() floatRange { return between("azimuthRange", 0, 180) }

// AzimuthRange is the azimuth spread of spherical object divergence.
type AzimuthRange = Float[azimuthRangeDomain]

// NewAzimuthRange validates v as an AzimuthRange.
func NewAzimuthRange(v float64) (AzimuthRange, error) { return newFloat[azimuthRangeDomain](v) }

// ParseAzimuthRange parses text as an AzimuthRange.
func ParseAzimuthRange(text string) (AzimuthRange, error) { return parseFloat[azimuthRangeDomain](text) }

// MustAzimuthRange is like NewAzimuthRange but panics on invalid input.
func MustAzimuthRange(v float64) AzimuthRange { return mustFloat[azimuthRangeDomain](v) }

type positionRangeDomain struct{}

func (positionRangeDomain) floatRange() floatRange { return between("positionRange", 0, 1) }

// PositionRange is the spread of cartesian object divergence.
type PositionRange = Float[positionRangeDomain]

// NewPositionRange validates v as a PositionRange.
func NewPositionRange(v float64) (PositionRange, error) { return newFloat[positionRangeDomain](v) }

// ParsePositionRange parses text as a PositionRange.
func ParsePositionRange(text string) (PositionRange, error) { return parseFloat[positionRangeDomain](text) }

// MustPositionRange is like NewPositionRange but panics on invalid input.
func MustPositionRange(v float64) PositionRange { return mustFloat[positionRangeDomain](v) }

type maxDistanceDomain struct{}

func (maxDistanceDomain) floatRange() floatRange { return between("maxDistance", 0, 2) }

// MaxDistance limits the speaker distance a channel lock may snap to.
type MaxDistance = Float[maxDistanceDomain]

// NewMaxDistance validates v as a MaxDistance.
func NewMaxDistance(v float64) (MaxDistance, error) { return newFloat[maxDistanceDomain](v) }

// ParseMaxDistance parses text as a MaxDistance.
func ParseMaxDistance(text string) (MaxDistance, error) { return parseFloat[maxDistanceDomain](text) }

// MustMaxDistance is like NewMaxDistance but panics on invalid input.
func MustMaxDistance(v float64) MaxDistance { return mustFloat[maxDistanceDomain](v) }

type nfcRefDistDomain struct{}

func (nfcRefDistDomain) floatRange() floatRange { return atLeast("nfcRefDist", 0) }

// NfcRefDist is the HOA near-field compensation distance in metres.
type NfcRefDist = Float[nfcRefDistDomain]

// NewNfcRefDist validates v as a NfcRefDist.
func NewNfcRefDist(v float64) (NfcRefDist, error) { return newFloat[nfcRefDistDomain](v) }

// ParseNfcRefDist parses text as a NfcRefDist.
func ParseNfcRefDist(text string) (NfcRefDist, error) { return parseFloat[nfcRefDistDomain](text) }

// MustNfcRefDist is like NewNfcRefDist but panics on invalid input.
func MustNfcRefDist(v float64) NfcRefDist { return mustFloat[nfcRefDistDomain](v) }

type absoluteDistanceDomain struct{}

func (absoluteDistanceDomain) floatRange() floatRange { return atLeast("absoluteDistance", 0) }

// AbsoluteDistance is the distance in metres that a normalized distance of 1 represents.
type AbsoluteDistance = Float[absoluteDistanceDomain]

// NewAbsoluteDistance validates v as an AbsoluteDistance.
func NewAbsoluteDistance(v float64) (AbsoluteDistance, error) { return newFloat[absoluteDistanceDomain](v) }

// ParseAbsoluteDistance parses text as an AbsoluteDistance.
func ParseAbsoluteDistance(text string) (AbsoluteDistance, error) { return parseFloat[absoluteDistanceDomain](text) }

// MustAbsoluteDistance is like NewAbsoluteDistance but panics on invalid input.
func MustAbsoluteDistance(v float64) AbsoluteDistance { return mustFloat[absoluteDistanceDomain](v) }

type maxDuckingDepthDomain struct{}

func (maxDuckingDepthDomain) floatRange() floatRange { return between("maxDuckingDepth", -62, 0) }

// MaxDuckingDepth is the maximum ducking attenuation in dB.
type MaxDuckingDepth = Float[maxDuckingDepthDomain]

// NewMaxDuckingDepth validates v as a MaxDuckingDepth.
func NewMaxDuckingDepth(v float64) (MaxDuckingDepth, error) { return newFloat[maxDuckingDepthDomain](v) }

// ParseMaxDuckingDepth parses text as a MaxDuckingDepth.
func ParseMaxDuckingDepth(text string) (MaxDuckingDepth, error) { return parseFloat[maxDuckingDepthDomain](text) }

// MustMaxDuckingDepth is like NewMaxDuckingDepth but panics on invalid input.
func MustMaxDuckingDepth(v float64) MaxDuckingDepth { return mustFloat[maxDuckingDepthDomain](v) }

type frequencyDomain struct{}

func (frequencyDomain) floatRange() floatRange { return atLeast("frequency", 0) }

// Frequency is a cut-off frequency in Hz.
type Frequency = Float[frequencyDomain]

// NewFrequency validates v as a Frequency.
func NewFrequency(v float64) (Frequency, error) { return newFloat[frequencyDomain](v) }

// ParseFrequency parses text as a Frequency.
func ParseFrequency(text string) (Frequency, error) { return parseFloat[frequencyDomain](text) }

// MustFrequency is like NewFrequency but panics on invalid input.
func MustFrequency(v float64) Frequency { return mustFloat[frequencyDomain](v) }

type drrDomain struct{}

func (drrDomain) floatRange() floatRange { return unbounded("DRR") }

// DirectToReverberantRatio is the binaural direct to reverberant ratio.
type DirectToReverberantRatio = Float[drrDomain]

// NewDirectToReverberantRatio validates v as a DirectToReverberantRatio.
func NewDirectToReverberantRatio(v float64) (DirectToReverberantRatio, error) { return newFloat[drrDomain](v) }

// ParseDirectToReverberantRatio parses text as a DirectToReverberantRatio.
func ParseDirectToReverberantRatio(text string) (DirectToReverberantRatio, error) { return parseFloat[drrDomain](text) }

// MustDirectToReverberantRatio is like NewDirectToReverberantRatio but panics on invalid input.
func MustDirectToReverberantRatio(v float64) DirectToReverberantRatio { return mustFloat[drrDomain](v) }

type loudnessDomain struct{}

func (loudnessDomain) floatRange() floatRange { return unbounded("loudness") }

// Loudness is a loudness or level measurement.
type Loudness = Float[loudnessDomain]

// NewLoudness validates v as a Loudness.
func NewLoudness(v float64) (Loudness, error) { return newFloat[loudnessDomain](v) }

// ParseLoudness parses text as a Loudness.
func ParseLoudness(text string) (Loudness, error) { return parseFloat[loudnessDomain](text) }

// MustLoudness is like NewLoudness but panics on invalid input.
func MustLoudness(v float64) Loudness { return mustFloat[loudnessDomain](v) }

type azimuthOffsetDomain struct{}

func (azimuthOffsetDomain) floatRange() floatRange { return between("azimuth offset", -360, 360) }

// AzimuthOffset shifts an object azimuth.
type AzimuthOffset = Float[azimuthOffsetDomain]

// NewAzimuthOffset validates v as an AzimuthOffset.
func NewAzimuthOffset(v float64) (AzimuthOffset, error) { return newFloat[azimuthOffsetDomain](v) }

// ParseAzimuthOffset parses text as an AzimuthOffset.
func ParseAzimuthOffset(text string) (AzimuthOffset, error) { return parseFloat[azimuthOffsetDomain](text) }

// MustAzimuthOffset is like NewAzimuthOffset but panics on invalid input.
func MustAzimuthOffset(v float64) AzimuthOffset { return mustFloat[azimuthOffsetDomain](v) }

type elevationOffsetDomain struct{}

func (elevationOffsetDomain) floatRange() floatRange { return between("elevation offset", -180, 180) }

// ElevationOffset shifts an object elevation.
type ElevationOffset = Float[elevationOffsetDomain]

// NewElevationOffset validates v as an ElevationOffset.
func NewElevationOffset(v float64) (ElevationOffset, error) { return newFloat[elevationOffsetDomain](v) }

// ParseElevationOffset parses text as an ElevationOffset.
func ParseElevationOffset(text string) (ElevationOffset, error) { return parseFloat[elevationOffsetDomain](text) }

// MustElevationOffset is like NewElevationOffset but panics on invalid input.
func MustElevationOffset(v float64) ElevationOffset { return mustFloat[elevationOffsetDomain](v) }

type distanceOffsetDomain struct{}

func (distanceOffsetDomain) floatRange() floatRange { return between("distance offset", -1, 1) }

// DistanceOffset shifts an object distance.
type DistanceOffset = Float[distanceOffsetDomain]

// NewDistanceOffset validates v as a DistanceOffset.
func NewDistanceOffset(v float64) (DistanceOffset, error) { return newFloat[distanceOffsetDomain](v) }

// ParseDistanceOffset parses text as a DistanceOffset.
func ParseDistanceOffset(text string) (DistanceOffset, error) { return parseFloat[distanceOffsetDomain](text) }

// MustDistanceOffset is like NewDistanceOffset but panics on invalid input.
func MustDistanceOffset(v float64) DistanceOffset { return mustFloat[distanceOffsetDomain](v) }

type xOffsetDomain struct{}

func (xOffsetDomain) floatRange() floatRange { return between("X offset", -2, 2) }

// XOffset shifts an object X coordinate.
type XOffset = Float[xOffsetDomain]

// NewXOffset validates v as an XOffset.
func NewXOffset(v float64) (XOffset, error) { return newFloat[xOffsetDomain](v) }

// ParseXOffset parses text as an XOffset.
func ParseXOffset(text string) (XOffset, error) { return parseFloat[xOffsetDomain](text) }

// MustXOffset is like NewXOffset but panics on invalid input.
func MustXOffset(v float64) XOffset { return mustFloat[xOffsetDomain](v) }

type yOffsetDomain struct{}

func (yOffsetDomain) floatRange() floatRange { return between("Y offset", -2, 2) }

// YOffset shifts an object Y coordinate.
type YOffset = Float[yOffsetDomain]

// NewYOffset validates v as a YOffset.
func NewYOffset(v float64) (YOffset, error) { return newFloat[yOffsetDomain](v) }

// ParseYOffset parses text as a YOffset.
func ParseYOffset(text string) (YOffset, error) { return parseFloat[yOffsetDomain](text) }

// MustYOffset is like NewYOffset but panics on invalid input.
func MustYOffset(v float64) YOffset { return mustFloat[yOffsetDomain](v) }

type zOffsetDomain struct{}

func (zOffsetDomain) floatRange() floatRange { return between("Z offset", -2, 2) }

// ZOffset shifts an object Z coordinate.
type ZOffset = Float[zOffsetDomain]

// NewZOffset validates v as a ZOffset.
func NewZOffset(v float64) (ZOffset, error) { return newFloat[zOffsetDomain](v) }

// ParseZOffset parses text as a ZOffset.
func ParseZOffset(text string) (ZOffset, error) { return parseFloat[zOffsetDomain](text) }

// MustZOffset is like NewZOffset but panics on invalid input.
func MustZOffset(v float64) ZOffset { return mustFloat[zOffsetDomain](v) }

type interpolationLengthDomain struct{}

func (interpolationLengthDomain) floatRange() floatRange { return atLeast("interpolationLength", 0) }

// InterpolationLength is the jump position interpolation time in seconds.
type InterpolationLength = Float[interpolationLengthDomain]

// NewInterpolationLength validates v as an InterpolationLength.
func NewInterpolationLength(v float64) (InterpolationLength, error) { return newFloat[interpolationLengthDomain](v) }

// ParseInterpolationLength parses text as an InterpolationLength.
func ParseInterpolationLength(text string) (InterpolationLength, error) { return parseFloat[interpolationLengthDomain](text) }

// MustInterpolationLength is like NewInterpolationLength but panics on invalid input.
func MustInterpolationLength(v float64) InterpolationLength { return mustFloat[interpolationLengthDomain](v) }
