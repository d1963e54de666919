package value

import (
	"strings"

	"golang.org/x/text/language"

	admerrors "github.com/jacoelho/adm/errors"
)

// Language is a BCP 47 / ISO 639 language code. The text is kept as written.
type Language struct {
	text string
	tag  language.Tag
}

// ParseLanguage validates text as a language code.
func ParseLanguage(text string) (Language, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Language{}, admerrors.ValueFormat(text, "language is empty", "ISO 639 language code")
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return Language{}, admerrors.ValueFormat(text, "invalid language code", "ISO 639 language code").Wrap(err)
	}
	return Language{text: trimmed, tag: tag}, nil
}

// MustLanguage is like ParseLanguage but panics on invalid input.
func MustLanguage(text string) Language {
	l, err := ParseLanguage(text)
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns the parsed language tag.
func (l Language) Tag() language.Tag {
	return l.tag
}

// String returns the code as written.
func (l Language) String() string {
	return l.text
}
