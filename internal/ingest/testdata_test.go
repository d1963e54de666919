package ingest

import (
	"strings"
	"testing"

	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/internal/xmltree"
)

// wrap places body under ebuCoreMain/coreMetadata/format/audioFormatExtended.
// The first line of body is line 5 of the result.
func wrap(body string) string {
	return "<ebuCoreMain xmlns=\"urn:ebu:metadata-schema:ebuCore_2016\">\n<coreMetadata>\n<format>\n<audioFormatExtended>\n" +
		body +
		"\n</audioFormatExtended>\n</format>\n</coreMetadata>\n</ebuCoreMain>\n"
}

func ingestString(t *testing.T, src string, opts Options) (*document.Document, error) {
	t.Helper()
	tree, err := xmltree.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("xmltree.Parse() error = %v", err)
	}
	doc := document.New()
	if err := Ingest(tree, doc, opts); err != nil {
		return nil, err
	}
	return doc, nil
}

func mustIngest(t *testing.T, src string) *document.Document {
	t.Helper()
	doc, err := ingestString(t, src, Options{})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	return doc
}

const sceneBody = `<audioProgramme audioProgrammeID="APR_1001" audioProgrammeName="Main" audioProgrammeLanguage="en" start="00:00:00.00000" end="00:01:00.00000">
  <audioContentIDRef>ACO_1001</audioContentIDRef>
</audioProgramme>
<audioContent audioContentID="ACO_1001" audioContentName="Dialogue">
  <audioObjectIDRef>AO_1001</audioObjectIDRef>
  <dialogue dialogueContentKind="1">1</dialogue>
</audioContent>
<audioObject audioObjectID="AO_1001" audioObjectName="Voice">
  <audioPackFormatIDRef>AP_00031001</audioPackFormatIDRef>
  <audioTrackUIDRef>ATU_00000001</audioTrackUIDRef>
</audioObject>
<audioPackFormat audioPackFormatID="AP_00031001" audioPackFormatName="Voice" typeLabel="0003" typeDefinition="Objects">
  <audioChannelFormatIDRef>AC_00031001</audioChannelFormatIDRef>
</audioPackFormat>
<audioChannelFormat audioChannelFormatID="AC_00031001" audioChannelFormatName="Voice" typeDefinition="Objects">
  <audioBlockFormat audioBlockFormatID="AB_00031001_00000001" rtime="00:00:00.00000" duration="00:00:05.00000">
    <position coordinate="azimuth">30</position>
    <position coordinate="elevation">0</position>
  </audioBlockFormat>
  <audioBlockFormat audioBlockFormatID="AB_00031001_00000002" rtime="00:00:05.00000">
    <position coordinate="azimuth">-30</position>
    <jumpPosition interpolationLength="0.5">1</jumpPosition>
  </audioBlockFormat>
</audioChannelFormat>
<audioStreamFormat audioStreamFormatID="AS_00031001" audioStreamFormatName="Voice" formatLabel="0001" formatDefinition="PCM">
  <audioChannelFormatIDRef>AC_00031001</audioChannelFormatIDRef>
  <audioTrackFormatIDRef>AT_00031001_01</audioTrackFormatIDRef>
</audioStreamFormat>
<audioTrackFormat audioTrackFormatID="AT_00031001_01" audioTrackFormatName="Voice" formatDefinition="PCM">
  <audioStreamFormatIDRef>AS_00031001</audioStreamFormatIDRef>
</audioTrackFormat>
<audioTrackUID UID="ATU_00000001" sampleRate="48000" bitDepth="24">
  <audioTrackFormatIDRef>AT_00031001_01</audioTrackFormatIDRef>
  <audioPackFormatIDRef>AP_00031001</audioPackFormatIDRef>
</audioTrackUID>`

func mustTree(t *testing.T, src string) *xmltree.Document {
	t.Helper()
	tree, err := xmltree.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("xmltree.Parse() error = %v", err)
	}
	return tree
}
