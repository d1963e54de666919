package disambig

import (
	"errors"
	"math"
	"strings"
	"testing"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

func parseBlock(t *testing.T, src string) xmltree.Node {
	t.Helper()
	doc, err := xmltree.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("xmltree.Parse() error = %v", err)
	}
	return doc.Root()
}

func TestPositionSpherical(t *testing.T) {
	block := parseBlock(t, `<audioBlockFormat>
  <position coordinate="azimuth" screenEdgeLock="left">30</position>
  <position coordinate="azimuth" bound="min">-10</position>
  <position coordinate="elevation">15</position>
</audioBlockFormat>`)

	pos, err := Position(block.ChildrenNamed("position"))
	if err != nil {
		t.Fatalf("Position() error = %v", err)
	}
	sp, ok := pos.(*model.SphericalPosition)
	if !ok {
		t.Fatalf("Position() = %T, want *model.SphericalPosition", pos)
	}
	if sp.Azimuth == nil || sp.Azimuth.Float64() != 30 {
		t.Fatalf("Azimuth = %v, want 30", sp.Azimuth)
	}
	if sp.AzimuthBounds.Min == nil || sp.AzimuthBounds.Min.Float64() != -10 {
		t.Fatalf("AzimuthBounds.Min = %v, want -10", sp.AzimuthBounds.Min)
	}
	if sp.AzimuthBounds.Max != nil {
		t.Fatalf("AzimuthBounds.Max = %v, want nil", sp.AzimuthBounds.Max)
	}
	if sp.Elevation == nil || sp.Elevation.Float64() != 15 {
		t.Fatalf("Elevation = %v, want 15", sp.Elevation)
	}
	if sp.Distance != nil {
		t.Fatalf("Distance = %v, want nil", sp.Distance)
	}
	if sp.ScreenEdgeLock.Horizontal == nil || *sp.ScreenEdgeLock.Horizontal != value.EdgeLeft {
		t.Fatalf("ScreenEdgeLock.Horizontal = %v, want left", sp.ScreenEdgeLock.Horizontal)
	}
}

func TestPositionCartesian(t *testing.T) {
	block := parseBlock(t, `<audioBlockFormat>
  <position coordinate="X">-0.5</position>
  <position coordinate="Y" screenEdgeLock="top">1</position>
  <position coordinate="Z" bound="max">0.25</position>
</audioBlockFormat>`)

	pos, err := Position(block.ChildrenNamed("position"))
	if err != nil {
		t.Fatalf("Position() error = %v", err)
	}
	cp, ok := pos.(*model.CartesianPosition)
	if !ok {
		t.Fatalf("Position() = %T, want *model.CartesianPosition", pos)
	}
	if cp.X == nil || cp.X.Float64() != -0.5 {
		t.Fatalf("X = %v, want -0.5", cp.X)
	}
	if cp.Z != nil || cp.ZBounds.Max == nil || cp.ZBounds.Max.Float64() != 0.25 {
		t.Fatalf("Z = %v, ZBounds.Max = %v, want nil, 0.25", cp.Z, cp.ZBounds.Max)
	}
	if cp.ScreenEdgeLock.Vertical == nil || *cp.ScreenEdgeLock.Vertical != value.EdgeTop {
		t.Fatalf("ScreenEdgeLock.Vertical = %v, want top", cp.ScreenEdgeLock.Vertical)
	}
}

func TestPositionErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code admerrors.ErrorCode
		line int
	}{
		{
			name: "mixed systems",
			src: `<b>
<position coordinate="azimuth">0</position>
<position coordinate="Y">1</position>
</b>`,
			code: admerrors.ErrMixedCoordinateSystems,
			line: 3,
		},
		{
			name: "invalid coordinate",
			src: `<b>
<position coordinate="radius">1</position>
</b>`,
			code: admerrors.ErrInvalidCoordinate,
			line: 2,
		},
		{
			name: "missing coordinate",
			src: `<b>
<position>1</position>
</b>`,
			code: admerrors.ErrMissingAttribute,
			line: 2,
		},
		{
			name: "out of range",
			src: `<b>
<position coordinate="X">2</position>
</b>`,
			code: admerrors.ErrValueFormat,
			line: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := parseBlock(t, tt.src)
			_, err := Position(block.ChildrenNamed("position"))
			if !errors.Is(err, tt.code) {
				t.Fatalf("Position() error = %v, want %v", err, tt.code)
			}
			e, _ := admerrors.AsError(err)
			if e.Line != tt.line {
				t.Fatalf("error line = %d, want %d", e.Line, tt.line)
			}
			if e.Element != "b/position" {
				t.Fatalf("error element = %q, want b/position", e.Element)
			}
		})
	}
}

func TestSpeakerPositionRequiresCoordinates(t *testing.T) {
	block := parseBlock(t, `<audioBlockFormat><speakerLabel>M+000</speakerLabel></audioBlockFormat>`)
	_, err := SpeakerPosition(block.ChildrenNamed("position"))
	if !errors.Is(err, admerrors.ErrNoCoordinates) {
		t.Fatalf("SpeakerPosition() error = %v, want %v", err, admerrors.ErrNoCoordinates)
	}
}

func TestPositionEmptyIsSpherical(t *testing.T) {
	pos, err := Position(nil)
	if err != nil {
		t.Fatalf("Position(nil) error = %v", err)
	}
	sp, ok := pos.(*model.SphericalPosition)
	if !ok {
		t.Fatalf("Position(nil) = %T, want *model.SphericalPosition", pos)
	}
	if sp.Azimuth != nil || sp.Elevation != nil || sp.Distance != nil {
		t.Fatalf("Position(nil) = %+v, want unset coordinates", sp)
	}
}

func TestPositionOffset(t *testing.T) {
	spherical := parseBlock(t, `<audioObject>
  <positionOffset coordinate="azimuth">30</positionOffset>
  <positionOffset coordinate="elevation">15</positionOffset>
  <positionOffset coordinate="distance">0.9</positionOffset>
</audioObject>`)
	off, err := PositionOffset(spherical.ChildrenNamed("positionOffset"))
	if err != nil {
		t.Fatalf("PositionOffset() error = %v", err)
	}
	so, ok := off.(*model.SphericalOffset)
	if !ok {
		t.Fatalf("PositionOffset() = %T, want *model.SphericalOffset", off)
	}
	if so.Azimuth.Float64() != 30 || so.Elevation.Float64() != 15 || so.Distance.Float64() != 0.9 {
		t.Fatalf("PositionOffset() = %v %v %v, want 30 15 0.9", so.Azimuth, so.Elevation, so.Distance)
	}

	cartesian := parseBlock(t, `<audioObject><positionOffset coordinate="X">-0.2</positionOffset></audioObject>`)
	off, err = PositionOffset(cartesian.ChildrenNamed("positionOffset"))
	if err != nil {
		t.Fatalf("PositionOffset() error = %v", err)
	}
	co, ok := off.(*model.CartesianOffset)
	if !ok {
		t.Fatalf("PositionOffset() = %T, want *model.CartesianOffset", off)
	}
	if co.X == nil || co.X.Float64() != -0.2 || co.Y != nil || co.Z != nil {
		t.Fatalf("PositionOffset() = %+v, want X only", co)
	}

	mixed := parseBlock(t, `<o><positionOffset coordinate="X">0</positionOffset><positionOffset coordinate="azimuth">0</positionOffset></o>`)
	if _, err := PositionOffset(mixed.ChildrenNamed("positionOffset")); !errors.Is(err, admerrors.ErrMixedCoordinateSystems) {
		t.Fatalf("PositionOffset() error = %v, want %v", err, admerrors.ErrMixedCoordinateSystems)
	}
}

func TestReconcileCartesian(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name     string
		explicit *bool
		guessed  bool
		want     *bool
	}{
		{name: "absent spherical", explicit: nil, guessed: false, want: nil},
		{name: "absent cartesian", explicit: nil, guessed: true, want: &yes},
		{name: "agree true", explicit: &yes, guessed: true, want: &yes},
		{name: "agree false", explicit: &no, guessed: false, want: &no},
		{name: "flag says cartesian", explicit: &yes, guessed: false, want: &no},
		{name: "flag says spherical", explicit: &no, guessed: true, want: &yes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileCartesian(tt.explicit, tt.guessed)
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Fatalf("ReconcileCartesian() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGain(t *testing.T) {
	doc := parseBlock(t, `<b>
<gain>0.5</gain>
<gain gainUnit="dB">-6</gain>
<gain gainUnit="linear">2</gain>
<gain gainUnit="percent">50</gain>
</b>`)
	gains := doc.ChildrenNamed("gain")

	g, err := Gain(gains[0])
	if err != nil {
		t.Fatalf("Gain() error = %v", err)
	}
	if g.Unit() != value.GainLinear || g.Value() != 0.5 {
		t.Fatalf("Gain() = %v, want linear 0.5", g)
	}

	g, err = Gain(gains[1])
	if err != nil {
		t.Fatalf("Gain() error = %v", err)
	}
	if g.Unit() != value.GainDB || g.Value() != -6 {
		t.Fatalf("Gain() = %v, want -6 dB", g)
	}
	if math.Abs(g.Linear()-0.501187) > 1e-6 {
		t.Fatalf("Linear() = %v, want 0.501187", g.Linear())
	}

	g, err = Gain(gains[2])
	if err != nil {
		t.Fatalf("Gain() error = %v", err)
	}
	if g.Unit() != value.GainLinear || g.Value() != 2 {
		t.Fatalf("Gain() = %v, want linear 2", g)
	}

	_, err = Gain(gains[3])
	if !errors.Is(err, admerrors.ErrUnexpectedUnit) {
		t.Fatalf("Gain() error = %v, want %v", err, admerrors.ErrUnexpectedUnit)
	}
	if e, _ := admerrors.AsError(err); e.Line != 5 {
		t.Fatalf("error line = %d, want 5", e.Line)
	}
}

func TestContentKind(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		dialogue value.DialogueKind
		kind     int
		code     admerrors.ErrorCode
	}{
		{name: "non dialogue", src: `<dialogue nonDialogueContentKind="1">0</dialogue>`, dialogue: value.NonDialogue, kind: 1},
		{name: "dialogue", src: `<dialogue dialogueContentKind="2">1</dialogue>`, dialogue: value.Dialogue, kind: 2},
		{name: "mixed", src: `<dialogue mixedContentKind="3">2</dialogue>`, dialogue: value.Mixed, kind: 3},
		{name: "unknown discriminator", src: `<dialogue>3</dialogue>`, code: admerrors.ErrUnknownDialogueKind},
		{name: "missing companion", src: `<dialogue nonDialogueContentKind="1">1</dialogue>`, code: admerrors.ErrMissingAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContentKind(parseBlock(t, tt.src))
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Fatalf("ContentKind() error = %v, want %v", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("ContentKind() error = %v", err)
			}
			if got.Dialogue() != tt.dialogue || got.Kind() != tt.kind {
				t.Fatalf("ContentKind() = %v/%d, want %v/%d", got.Dialogue(), got.Kind(), tt.dialogue, tt.kind)
			}
		})
	}
}

func TestFrequency(t *testing.T) {
	channel := parseBlock(t, `<audioChannelFormat>
  <frequency typeDefinition="lowPass">120</frequency>
  <frequency typeDefinition="highpass">20</frequency>
  <frequency typeDefinition="highPass">40</frequency>
</audioChannelFormat>`)
	f, err := Frequency(channel.ChildrenNamed("frequency"))
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}
	if f.LowPass == nil || f.LowPass.Float64() != 120 {
		t.Fatalf("LowPass = %v, want 120", f.LowPass)
	}
	if f.HighPass == nil || f.HighPass.Float64() != 20 {
		t.Fatalf("HighPass = %v, want 20", f.HighPass)
	}

	missing := parseBlock(t, `<c><frequency>120</frequency></c>`)
	if _, err := Frequency(missing.ChildrenNamed("frequency")); !errors.Is(err, admerrors.ErrMissingAttribute) {
		t.Fatalf("Frequency() error = %v, want %v", err, admerrors.ErrMissingAttribute)
	}
}

func TestInteractionRanges(t *testing.T) {
	interaction := parseBlock(t, `<audioObjectInteraction onOffInteract="1">
  <gainInteractionRange bound="min">0.5</gainInteractionRange>
  <gainInteractionRange bound="max" gainUnit="dB">3</gainInteractionRange>
  <positionInteractionRange coordinate="azimuth" bound="min">-30</positionInteractionRange>
  <positionInteractionRange coordinate="azimuth" bound="max">30</positionInteractionRange>
  <positionInteractionRange coordinate="X" bound="max">1</positionInteractionRange>
</audioObjectInteraction>`)

	gr, err := GainInteractionRange(interaction.ChildrenNamed("gainInteractionRange"))
	if err != nil {
		t.Fatalf("GainInteractionRange() error = %v", err)
	}
	if gr.Min == nil || gr.Min.Value() != 0.5 {
		t.Fatalf("GainInteractionRange().Min = %v, want 0.5", gr.Min)
	}
	if gr.Max == nil || gr.Max.Unit() != value.GainDB || gr.Max.Value() != 3 {
		t.Fatalf("GainInteractionRange().Max = %v, want 3 dB", gr.Max)
	}

	pr, err := PositionInteractionRange(interaction.ChildrenNamed("positionInteractionRange"))
	if err != nil {
		t.Fatalf("PositionInteractionRange() error = %v", err)
	}
	if pr.Azimuth.Min.Float64() != -30 || pr.Azimuth.Max.Float64() != 30 {
		t.Fatalf("Azimuth = %v..%v, want -30..30", pr.Azimuth.Min, pr.Azimuth.Max)
	}
	if pr.X.Max == nil || pr.X.Max.Float64() != 1 || pr.X.Min != nil {
		t.Fatalf("X = %+v, want max 1 only", pr.X)
	}

	unbound := parseBlock(t, `<i><gainInteractionRange>1</gainInteractionRange></i>`)
	if _, err := GainInteractionRange(unbound.ChildrenNamed("gainInteractionRange")); !errors.Is(err, admerrors.ErrMissingAttribute) {
		t.Fatalf("GainInteractionRange() error = %v, want %v", err, admerrors.ErrMissingAttribute)
	}
}
