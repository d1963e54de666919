package ingest

import (
	"strings"

	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/bind"
	"github.com/jacoelho/adm/internal/disambig"
	"github.com/jacoelho/adm/internal/xmltree"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

func (b *builder) programme(n xmltree.Node) (*model.Programme, error) {
	id, name, err := b.header(n, ids.KindProgramme)
	if err != nil {
		return nil, err
	}
	p := model.NewProgramme(id, name)
	err = firstErr(
		bind.OptionalAttr(n, "audioProgrammeLanguage", value.ParseLanguage, &p.Language),
		bind.OptionalAttr(n, "start", value.ParseTimecode, &p.Start),
		bind.OptionalAttr(n, "end", value.ParseTimecode, &p.End),
		bind.OptionalAttr(n, "maxDuckingDepth", value.ParseMaxDuckingDepth, &p.MaxDuckingDepth),
		bind.RepeatedElements(n, "loudnessMetadata", loudness, &p.Loudness),
		bind.OptionalElement(n, "audioProgrammeReferenceScreen", referenceScreen, &p.ReferenceScreen),
		b.refs(n, p, model.RoleProgrammeContent),
		bind.RepeatedElements(n, "audioProgrammeLabel", label, &p.Labels),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (b *builder) content(n xmltree.Node) (*model.Content, error) {
	id, name, err := b.header(n, ids.KindContent)
	if err != nil {
		return nil, err
	}
	c := model.NewContent(id, name)
	err = firstErr(
		bind.OptionalAttr(n, "audioContentLanguage", value.ParseLanguage, &c.Language),
		bind.RepeatedElements(n, "loudnessMetadata", loudness, &c.Loudness),
		bind.OptionalElement(n, "dialogue", disambig.ContentKind, &c.Kind),
		b.refs(n, c, model.RoleContentObject),
		bind.RepeatedElements(n, "audioContentLabel", label, &c.Labels),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func label(n xmltree.Node) (model.Label, error) {
	l := model.Label{Value: strings.TrimSpace(n.Text())}
	if err := bind.OptionalAttr(n, "language", value.ParseLanguage, &l.Language); err != nil {
		return model.Label{}, err
	}
	return l, nil
}

func referenceScreen(xmltree.Node) (model.ReferenceScreen, error) {
	return model.ReferenceScreen{}, nil
}

func loudness(n xmltree.Node) (model.LoudnessMetadata, error) {
	var l model.LoudnessMetadata
	loudnessValue := bind.Text(value.ParseLoudness)
	err := firstErr(
		bind.OptionalAttr(n, "loudnessMethod", bind.Identity, &l.Method),
		bind.OptionalAttr(n, "loudnessRecType", bind.Identity, &l.RecType),
		bind.OptionalAttr(n, "loudnessCorrectionType", bind.Identity, &l.CorrectionType),
		bind.OptionalElement(n, "integratedLoudness", loudnessValue, &l.IntegratedLoudness),
		bind.OptionalElement(n, "loudnessRange", loudnessValue, &l.LoudnessRange),
		bind.OptionalElement(n, "maxTruePeak", loudnessValue, &l.MaxTruePeak),
		bind.OptionalElement(n, "maxMomentary", loudnessValue, &l.MaxMomentary),
		bind.OptionalElement(n, "maxShortTerm", loudnessValue, &l.MaxShortTerm),
		bind.OptionalElement(n, "dialogueLoudness", loudnessValue, &l.DialogueLoudness),
	)
	return l, err
}
