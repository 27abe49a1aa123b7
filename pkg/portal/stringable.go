package portal

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stringable struct {
	value string
}

func NewStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) String() string {
	return s.value
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

// ToSlug lowercases the value and collapses every non-alphanumeric run into a
// single hyphen, producing a URL-safe slug.
func (s Stringable) ToSlug() string {
	lower := s.ToLower()

	var result strings.Builder
	lastHyphen := true

	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			result.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(result.String(), "-")
}

func (s Stringable) IsEmpty() bool {
	return s.value == ""
}
