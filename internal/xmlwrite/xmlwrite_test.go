package xmlwrite

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/ingest"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

func write(t *testing.T, doc *document.Document, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, doc, opts); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return buf.String()
}

func read(t *testing.T, src string) *document.Document {
	t.Helper()
	tree, err := xmltree.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("xmltree.Parse() error = %v", err)
	}
	doc := document.New()
	if err := ingest.Ingest(tree, doc, ingest.Options{RecursiveRootSearch: true}); err != nil {
		t.Fatalf("Ingest() error = %v\n%s", err, src)
	}
	return doc
}

func requireContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q:\n%s", w, out)
		}
	}
}

func requireAbsent(t *testing.T, out string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(out, w) {
			t.Fatalf("output contains %q:\n%s", w, out)
		}
	}
}

func timecode(d time.Duration) *value.Timecode {
	tc := value.MustTimecode(d)
	return &tc
}

func ptr[T any](v T) *T { return &v }

func sphericalAt(azimuth float64) model.Position {
	return &model.SphericalPosition{
		Azimuth:   ptr(value.MustAzimuth(azimuth)),
		Elevation: ptr(value.MustElevation(0)),
	}
}

func simpleScene(t *testing.T) *document.Document {
	t.Helper()
	doc := document.New()
	so, err := doc.AddSimpleObject("MainObject")
	if err != nil {
		t.Fatalf("AddSimpleObject() error = %v", err)
	}
	programme := model.NewProgramme(ids.Programme(0), "Main")
	programme.Start = timecode(10 * time.Hour)
	programme.End = timecode(10*time.Hour + 10*time.Second)
	content := model.NewContent(ids.Content(0), "Main")
	programme.AddContent(content)
	content.AddObject(so.Object)
	for _, el := range []model.Element{programme, content} {
		if err := doc.Add(el); err != nil {
			t.Fatalf("Add(%s) error = %v", el.Name(), err)
		}
	}

	blocks := []struct {
		azimuth float64
		rtime   time.Duration
		jump    *model.JumpPosition
	}{
		{30, 0, &model.JumpPosition{Flag: true}},
		{-30, 3 * time.Second, &model.JumpPosition{Flag: true, InterpolationLength: ptr(value.MustInterpolationLength(1))}},
		{0, 6 * time.Second, nil},
		{30, 9 * time.Second, nil},
	}
	for _, b := range blocks {
		blk := model.NewObjectsBlock(sphericalAt(b.azimuth))
		blk.Rtime = timecode(b.rtime)
		blk.JumpPosition = b.jump
		if err := so.ChannelFormat.AddBlock(blk); err != nil {
			t.Fatalf("AddBlock() error = %v", err)
		}
	}
	if err := doc.Reassign(); err != nil {
		t.Fatalf("Reassign() error = %v", err)
	}
	return doc
}

func TestWriteSimpleScene(t *testing.T) {
	out := write(t, simpleScene(t), Options{})
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`+"\n<ebuCoreMain ") {
		t.Fatalf("unexpected prologue:\n%s", out)
	}
	requireContains(t, out,
		`<audioProgramme audioProgrammeID="APR_1001" audioProgrammeName="Main" start="10:00:00.00000" end="10:00:10.00000">`,
		`<audioContentIDRef>ACO_1001</audioContentIDRef>`,
		`<audioObjectIDRef>AO_1001</audioObjectIDRef>`,
		`<audioPackFormat audioPackFormatID="AP_00031001" audioPackFormatName="MainObject" typeLabel="0003" typeDefinition="Objects">`,
		`<audioBlockFormat audioBlockFormatID="AB_00031001_00000002" rtime="00:00:03.00000">`,
		`<position coordinate="azimuth">-30</position>`,
		`<jumpPosition interpolationLength="1">1</jumpPosition>`,
		`<audioStreamFormat audioStreamFormatID="AS_00031001" audioStreamFormatName="MainObject" formatLabel="0001" formatDefinition="PCM">`,
		`<audioTrackFormatIDRef>AT_00031001_01</audioTrackFormatIDRef>`,
		`<audioTrackUID UID="ATU_00000001">`,
		"</ebuCoreMain>\n",
	)
	requireAbsent(t, out, "<gain>", "<cartesian>")

	doc := read(t, out)
	if got := doc.Len(); got != 8 {
		t.Fatalf("Len() = %d, want 8", got)
	}
	ch, err := document.LookupAs[*model.ChannelFormat](doc, ids.MustParse("AC_00031001"))
	if err != nil {
		t.Fatalf("LookupAs() error = %v", err)
	}
	if got := len(ch.Blocks()); got != 4 {
		t.Fatalf("len(Blocks()) = %d, want 4", got)
	}
}

func TestWriteStructures(t *testing.T) {
	tests := []struct {
		name      string
		structure Structure
		root      string
	}{
		{"ebucore", StructureEBUCore, `<ebuCoreMain xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns="urn:ebu:metadata-schema:ebuCore_2014"`},
		{"itu", StructureITU, `<ituADM xmlns="urn:metadata-schema:adm">`},
		{"bare", StructureBare, "<audioFormatExtended>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := write(t, simpleScene(t), Options{Structure: tt.structure})
			first := strings.SplitN(out, "\n", 3)[1]
			if !strings.HasPrefix(first, tt.root) {
				t.Fatalf("root line = %q, want prefix %q", first, tt.root)
			}
			if got := read(t, out).Len(); got != 8 {
				t.Fatalf("Len() = %d, want 8", got)
			}
		})
	}
}

func TestParseStructure(t *testing.T) {
	for _, s := range []Structure{StructureEBUCore, StructureITU, StructureBare} {
		got, err := ParseStructure(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseStructure(%q) = %v, %v, want %v", s.String(), got, err, s)
		}
	}
	if _, err := ParseStructure("xml"); err == nil {
		t.Fatalf("ParseStructure(xml) error = nil")
	}
}

func TestWriteDefaultValues(t *testing.T) {
	doc := simpleScene(t)

	plain := write(t, doc, Options{})
	requireAbsent(t, plain, "importance=", "<gain>", "<mute>", "<distance")

	out := write(t, doc, Options{DefaultValues: true})
	requireContains(t, out,
		`<audioObject audioObjectID="AO_1001" audioObjectName="MainObject" start="00:00:00.00000" importance="10" interact="0" disableDucking="0">`,
		`<gain>1</gain>`,
		`<headLocked>0</headLocked>`,
		`<mute>0</mute>`,
		`<cartesian>0</cartesian>`,
		`<position coordinate="distance">1</position>`,
		`<width>0</width>`,
		`<channelLock>0</channelLock>`,
		`<objectDivergence>0</objectDivergence>`,
		`<jumpPosition>0</jumpPosition>`,
		`<screenRef>0</screenRef>`,
		`<importance>10</importance>`,
	)

	// explicitly set values win over defaults
	requireContains(t, out, `<jumpPosition interpolationLength="1">1</jumpPosition>`)
}

func TestWriteComplementaryObjects(t *testing.T) {
	doc := document.New()
	main := model.NewObject(ids.Object(0), "Default")
	first := model.NewObject(ids.Object(0), "Complementary1")
	second := model.NewObject(ids.Object(0), "Complementary2")
	main.AddComplementary(first)
	main.AddComplementary(second)
	for _, o := range []*model.Object{main, first, second} {
		if err := doc.Add(o); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	out := write(t, doc, Options{})
	requireContains(t, out,
		`<audioComplementaryObjectIDRef>AO_1002</audioComplementaryObjectIDRef>`,
		`<audioComplementaryObjectIDRef>AO_1003</audioComplementaryObjectIDRef>`,
	)

	got, err := document.LookupAs[*model.Object](read(t, out), ids.MustParse("AO_1001"))
	if err != nil {
		t.Fatalf("LookupAs() error = %v", err)
	}
	if n := len(got.Complementary()); n != 2 {
		t.Fatalf("len(Complementary()) = %d, want 2", n)
	}
}

func TestWriteObjectAttributes(t *testing.T) {
	doc := document.New()
	o := model.NewObject(ids.Object(0), "MyObject")
	o.Gain = ptr(value.MustGainFromLinear(0.5))
	o.HeadLocked = ptr(true)
	o.Labels = []model.Label{{Value: "label"}}
	o.Start = timecode(0)
	o.Duration = timecode(10 * time.Second)
	o.Dialogue = ptr(value.Dialogue)
	o.Importance = ptr(value.MustImportance(5))
	o.Interact = ptr(true)
	o.DisableDucking = ptr(true)
	o.Mute = ptr(true)
	if err := doc.Add(o); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	out := write(t, doc, Options{})
	requireContains(t, out,
		`<audioObject audioObjectID="AO_1001" audioObjectName="MyObject" start="00:00:00.00000" duration="00:00:10.00000" dialogue="1" importance="5" interact="1" disableDucking="1">`,
		`<audioObjectLabel>label</audioObjectLabel>`,
		`<gain>0.5</gain>`,
		`<headLocked>1</headLocked>`,
		`<mute>1</mute>`,
	)

	got, err := document.LookupAs[*model.Object](read(t, out), o.ID())
	if err != nil {
		t.Fatalf("LookupAs() error = %v", err)
	}
	if got.Gain == nil || got.Gain.Linear() != 0.5 {
		t.Fatalf("Gain = %v, want 0.5", got.Gain)
	}
	if got.Mute == nil || !*got.Mute {
		t.Fatalf("Mute = %v, want true", got.Mute)
	}
}

func TestWriteGainUnit(t *testing.T) {
	doc := document.New()
	o := model.NewObject(ids.Object(0), "Quiet")
	g, err := value.GainFromDB(-6)
	if err != nil {
		t.Fatalf("GainFromDB() error = %v", err)
	}
	o.Gain = &g
	if err := doc.Add(o); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	out := write(t, doc, Options{})
	requireContains(t, out, `<gain gainUnit="dB">-6</gain>`)
}

func TestWriteObjectsWithPositionOffset(t *testing.T) {
	doc := document.New()
	cartesian := model.NewObject(ids.Object(0), "Cartesian")
	cartesian.PositionOffset = &model.CartesianOffset{
		X: ptr(value.MustXOffset(0)),
		Y: ptr(value.MustYOffset(0.1)),
		Z: ptr(value.MustZOffset(-0.2)),
	}
	spherical := model.NewObject(ids.Object(0), "Spherical")
	spherical.PositionOffset = &model.SphericalOffset{
		Azimuth:   ptr(value.MustAzimuthOffset(30)),
		Elevation: ptr(value.MustElevationOffset(0)),
		Distance:  ptr(value.MustDistanceOffset(-0.5)),
	}
	azimuthOnly := model.NewObject(ids.Object(0), "AzimuthOnly")
	azimuthOnly.PositionOffset = &model.SphericalOffset{Azimuth: ptr(value.MustAzimuthOffset(-10))}
	for _, o := range []*model.Object{cartesian, spherical, azimuthOnly} {
		if err := doc.Add(o); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	out := write(t, doc, Options{})
	requireContains(t, out,
		`<positionOffset coordinate="X">0</positionOffset>`,
		`<positionOffset coordinate="Y">0.1</positionOffset>`,
		`<positionOffset coordinate="Z">-0.2</positionOffset>`,
		`<positionOffset coordinate="azimuth">30</positionOffset>`,
		`<positionOffset coordinate="elevation">0</positionOffset>`,
		`<positionOffset coordinate="distance">-0.5</positionOffset>`,
		`<positionOffset coordinate="azimuth">-10</positionOffset>`,
	)
	if got := strings.Count(out, `coordinate="elevation"`); got != 1 {
		t.Fatalf("elevation offsets = %d, want 1", got)
	}

	back := read(t, out)
	got, err := document.LookupAs[*model.Object](back, azimuthOnly.ID())
	if err != nil {
		t.Fatalf("LookupAs() error = %v", err)
	}
	off, ok := got.PositionOffset.(*model.SphericalOffset)
	if !ok || off.Azimuth == nil || off.Azimuth.Float64() != -10 || off.Elevation != nil {
		t.Fatalf("PositionOffset = %#v, want azimuth -10 only", got.PositionOffset)
	}
}

func TestWriteSkipsCommonDefinitions(t *testing.T) {
	doc := document.New()
	common := model.NewPackFormat(ids.PackFormat(value.TypeDirectSpeakers, 1), "mono")
	if err := doc.Add(common); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	user := model.NewObject(ids.Object(0), "Speech")
	user.AddPackFormat(common)
	if err := doc.Add(user); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	out := write(t, doc, Options{})
	requireAbsent(t, out, `audioPackFormatID="AP_00010001"`)
	requireContains(t, out, `<audioPackFormatIDRef>AP_00010001</audioPackFormatIDRef>`)

	out = write(t, doc, Options{CommonDefinitions: true})
	requireContains(t, out, `audioPackFormatID="AP_00010001"`)
}

const richBody = `<audioProgramme audioProgrammeID="APR_1001" audioProgrammeName="Show" audioProgrammeLanguage="en" maxDuckingDepth="-20">
  <audioProgrammeLabel language="fr">Spectacle</audioProgrammeLabel>
  <audioContentIDRef>ACO_1001</audioContentIDRef>
  <loudnessMetadata loudnessMethod="ITU-R BS.1770" loudnessRecType="EBU R128">
    <integratedLoudness>-23</integratedLoudness>
    <maxTruePeak>-1.5</maxTruePeak>
  </loudnessMetadata>
  <audioProgrammeReferenceScreen/>
</audioProgramme>
<audioContent audioContentID="ACO_1001" audioContentName="Mix" audioContentLanguage="en">
  <audioObjectIDRef>AO_1001</audioObjectIDRef>
  <dialogue mixedContentKind="2">2</dialogue>
</audioContent>
<audioObject audioObjectID="AO_1001" audioObjectName="Bed">
  <audioObjectIDRef>AO_1002</audioObjectIDRef>
  <audioPackFormatIDRef>AP_00011001</audioPackFormatIDRef>
  <audioTrackUIDRef>ATU_00000001</audioTrackUIDRef>
  <audioObjectInteraction onOffInteract="1" gainInteract="1">
    <gainInteractionRange bound="min" gainUnit="dB">-10</gainInteractionRange>
    <gainInteractionRange bound="max">2</gainInteractionRange>
    <positionInteractionRange coordinate="azimuth" bound="min">-30</positionInteractionRange>
  </audioObjectInteraction>
</audioObject>
<audioObject audioObjectID="AO_1002" audioObjectName="Ambience">
  <audioPackFormatIDRef>AP_00041001</audioPackFormatIDRef>
  <audioPackFormatIDRef>AP_00031001</audioPackFormatIDRef>
</audioObject>
<audioPackFormat audioPackFormatID="AP_00011001" audioPackFormatName="Left" typeDefinition="DirectSpeakers">
  <audioChannelFormatIDRef>AC_00011001</audioChannelFormatIDRef>
</audioPackFormat>
<audioPackFormat audioPackFormatID="AP_00041001" audioPackFormatName="FOA" typeLabel="0004" normalization="N3D" nfcRefDist="2">
  <audioChannelFormatIDRef>AC_00041001</audioChannelFormatIDRef>
</audioPackFormat>
<audioPackFormat audioPackFormatID="AP_00031001" audioPackFormatName="Moving" typeLabel="0003">
  <audioChannelFormatIDRef>AC_00031001</audioChannelFormatIDRef>
</audioPackFormat>
<audioChannelFormat audioChannelFormatID="AC_00011001" audioChannelFormatName="Left" typeDefinition="DirectSpeakers">
  <frequency typeDefinition="lowPass">120</frequency>
  <audioBlockFormat audioBlockFormatID="AB_00011001_00000001">
    <speakerLabel>M+030</speakerLabel>
    <position coordinate="azimuth" screenEdgeLock="left">30</position>
    <position coordinate="azimuth" bound="min">25</position>
    <position coordinate="azimuth" bound="max">35</position>
    <position coordinate="elevation">0</position>
    <headphoneVirtualise bypass="1"/>
    <gain gainUnit="dB">-3</gain>
  </audioBlockFormat>
</audioChannelFormat>
<audioChannelFormat audioChannelFormatID="AC_00041001" audioChannelFormatName="W" typeLabel="0004">
  <audioBlockFormat audioBlockFormatID="AB_00041001_00000001">
    <order>0</order>
    <degree>0</degree>
    <normalization>N3D</normalization>
    <equation>1</equation>
  </audioBlockFormat>
</audioChannelFormat>
<audioChannelFormat audioChannelFormatID="AC_00031001" audioChannelFormatName="Moving" typeLabel="0003">
  <audioBlockFormat audioBlockFormatID="AB_00031001_00000001" rtime="00:00:00.00000" duration="00:00:01.50000">
    <cartesian>1</cartesian>
    <position coordinate="X">0.5</position>
    <position coordinate="Y">-0.25</position>
    <position coordinate="Z">0</position>
    <width>0.1</width>
    <channelLock maxDistance="1.5">1</channelLock>
    <objectDivergence positionRange="0.2">0.5</objectDivergence>
  </audioBlockFormat>
</audioChannelFormat>
<audioStreamFormat audioStreamFormatID="AS_00011001" audioStreamFormatName="Left" formatLabel="0001">
  <audioChannelFormatIDRef>AC_00011001</audioChannelFormatIDRef>
  <audioTrackFormatIDRef>AT_00011001_01</audioTrackFormatIDRef>
</audioStreamFormat>
<audioTrackFormat audioTrackFormatID="AT_00011001_01" audioTrackFormatName="Left" formatDefinition="PCM">
  <audioStreamFormatIDRef>AS_00011001</audioStreamFormatIDRef>
</audioTrackFormat>
<audioTrackUID UID="ATU_00000001" sampleRate="48000" bitDepth="24">
  <audioTrackFormatIDRef>AT_00011001_01</audioTrackFormatIDRef>
  <audioPackFormatIDRef>AP_00011001</audioPackFormatIDRef>
</audioTrackUID>`

func TestWriteIsStableAcrossReadWrite(t *testing.T) {
	src := "<ituADM><coreMetadata><format><audioFormatExtended>\n" + richBody +
		"\n</audioFormatExtended></format></coreMetadata></ituADM>\n"
	first := write(t, read(t, src), Options{Structure: StructureITU})
	second := write(t, read(t, first), Options{Structure: StructureITU})
	if first != second {
		t.Fatalf("second write differs:\n--- first\n%s\n--- second\n%s", first, second)
	}
	requireContains(t, first,
		`<audioProgrammeLabel language="fr">Spectacle</audioProgrammeLabel>`,
		`<loudnessMetadata loudnessMethod="ITU-R BS.1770" loudnessRecType="EBU R128">`,
		`<integratedLoudness>-23</integratedLoudness>`,
		`<audioProgrammeReferenceScreen></audioProgrammeReferenceScreen>`,
		`<dialogue mixedContentKind="2">2</dialogue>`,
		`<gainInteractionRange bound="min" gainUnit="dB">-10</gainInteractionRange>`,
		`<positionInteractionRange coordinate="azimuth" bound="min">-30</positionInteractionRange>`,
		`normalization="N3D" nfcRefDist="2"`,
		`<frequency typeDefinition="lowPass">120</frequency>`,
		`<position coordinate="azimuth" screenEdgeLock="left">30</position>`,
		`<position coordinate="azimuth" bound="max">35</position>`,
		`<headphoneVirtualise bypass="1"></headphoneVirtualise>`,
		`<cartesian>1</cartesian>`,
		`<channelLock maxDistance="1.5">1</channelLock>`,
		`<objectDivergence positionRange="0.2">0.5</objectDivergence>`,
		`<audioTrackUID UID="ATU_00000001" sampleRate="48000" bitDepth="24">`,
	)
}
