package value

import (
	"strconv"

	admerrors "github.com/jacoelho/adm/errors"
)

// DialogueKind is the dialogue discriminator of content and objects.
type DialogueKind uint8

const (
	NonDialogue DialogueKind = 0
	Dialogue    DialogueKind = 1
	Mixed       DialogueKind = 2
)

// NewDialogueKind validates v. Values other than 0, 1 and 2 fail with ErrUnknownDialogueKind.
func NewDialogueKind(v int) (DialogueKind, error) {
	if v < 0 || v > int(Mixed) {
		return 0, &admerrors.Error{
			Code:     admerrors.ErrUnknownDialogueKind,
			Message:  "unknown dialogue id",
			Actual:   strconv.Itoa(v),
			Expected: []string{"0", "1", "2"},
		}
	}
	return DialogueKind(v), nil
}

// ParseDialogueKind parses the text of a dialogue element or attribute.
func ParseDialogueKind(text string) (DialogueKind, error) {
	v, err := ParseInteger(text, "dialogue")
	if err != nil {
		return 0, err
	}
	return NewDialogueKind(v)
}

// KindAttribute names the companion attribute that carries the content kind.
func (d DialogueKind) KindAttribute() string {
	switch d {
	case NonDialogue:
		return "nonDialogueContentKind"
	case Dialogue:
		return "dialogueContentKind"
	case Mixed:
		return "mixedContentKind"
	default:
		return ""
	}
}

func (d DialogueKind) String() string {
	return strconv.Itoa(int(d))
}

// kind counts per dialogue discriminator, BS.2076 tables 14 to 16.
var contentKindLimits = [...]int{
	NonDialogue: 2, // undefined, music, effect
	Dialogue:    6, // undefined, storyline, voiceover, spoken subtitle, audio description, commentary, emergency
	Mixed:       3, // undefined, complete main, mixed, hearing impaired
}

// ContentKind is the kind of audio content. Its numeric kind belongs to one of
// three disjoint enumerations, selected by the dialogue discriminator.
type ContentKind struct {
	dialogue DialogueKind
	kind     int
}

// NewContentKind validates kind against the enumeration of dialogue.
func NewContentKind(dialogue DialogueKind, kind int) (ContentKind, error) {
	if _, err := NewDialogueKind(int(dialogue)); err != nil {
		return ContentKind{}, err
	}
	limit := contentKindLimits[dialogue]
	if kind < 0 || kind > limit {
		return ContentKind{}, admerrors.ValueFormat(strconv.Itoa(kind),
			dialogue.KindAttribute()+" out of range", "integer in [0, "+strconv.Itoa(limit)+"]")
	}
	return ContentKind{dialogue: dialogue, kind: kind}, nil
}

// ParseContentKind parses the companion attribute text for dialogue.
func ParseContentKind(dialogue DialogueKind, text string) (ContentKind, error) {
	v, err := ParseInteger(text, dialogue.KindAttribute())
	if err != nil {
		return ContentKind{}, err
	}
	ck, err := NewContentKind(dialogue, v)
	if err != nil {
		if e, ok := admerrors.AsError(err); ok {
			e.Actual = text
		}
		return ContentKind{}, err
	}
	return ck, nil
}

// Dialogue returns the discriminator.
func (c ContentKind) Dialogue() DialogueKind {
	return c.dialogue
}

// Kind returns the numeric kind within the discriminator's enumeration.
func (c ContentKind) Kind() int {
	return c.kind
}
