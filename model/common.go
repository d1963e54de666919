package model

import "github.com/jacoelho/adm/value"

// Label is a human-readable label with an optional language.
type Label struct {
	Value    string
	Language *value.Language
}

// LoudnessMetadata describes the measured loudness of a programme or content.
type LoudnessMetadata struct {
	Method             *string
	RecType            *string
	CorrectionType     *string
	IntegratedLoudness *value.Loudness
	LoudnessRange      *value.Loudness
	MaxTruePeak        *value.Loudness
	MaxMomentary       *value.Loudness
	MaxShortTerm       *value.Loudness
	DialogueLoudness   *value.Loudness
}

// Bounds holds an optional minimum and maximum.
type Bounds[T any] struct {
	Min *T
	Max *T
}

// IsZero reports whether neither bound is set.
func (b Bounds[T]) IsZero() bool {
	return b.Min == nil && b.Max == nil
}

// HeadphoneVirtualise controls binaural rendering of a block.
type HeadphoneVirtualise struct {
	Bypass *bool
	DRR    *value.DirectToReverberantRatio
}

// Frequency holds the low-pass and high-pass cut-offs of a channel.
type Frequency struct {
	LowPass  *value.Frequency
	HighPass *value.Frequency
}

// IsZero reports whether no cut-off is set.
func (f Frequency) IsZero() bool {
	return f.LowPass == nil && f.HighPass == nil
}

// ReferenceScreen marks the presence of audioProgrammeReferenceScreen.
type ReferenceScreen struct{}
