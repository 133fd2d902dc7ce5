// Package langdetect provides best-effort source language detection for
// requests that omit one
package langdetect

import (
	"unicode"
)

// Detector guesses the language of a piece of text
// implementations return a BCP-47 primary subtag like "en" or "ja",
// or fallback when the text gives no usable signal
type Detector interface {
	Detect(text string) string
}

// Script is a unicode-script heuristic detector
// it counts letters per script and maps the predominant script to a language
// where that mapping is low-ambiguity
type Script struct {
	// Fallback is returned when no script wins or the mapping is ambiguous
	Fallback string
}

// NewScript builds a Script detector with the given fallback language
func NewScript(fallback string) *Script {
	if fallback == "" {
		fallback = "en"
	}
	return &Script{Fallback: fallback}
}

// Detect maps the predominant script of text to a language code
func (d *Script) Detect(text string) string {
	var (
		latin, cyrillic, greek, han, hira, kata, hangul int
		arabic, hebrew, thai                            int
		totalLetters                                    int
	)

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		totalLetters++

		switch {
		case unicode.In(r, unicode.Hangul):
			hangul++
		case unicode.In(r, unicode.Hiragana):
			hira++
		case unicode.In(r, unicode.Katakana):
			kata++
		case unicode.In(r, unicode.Han):
			han++
		case unicode.In(r, unicode.Arabic):
			arabic++
		case unicode.In(r, unicode.Hebrew):
			hebrew++
		case unicode.In(r, unicode.Thai):
			thai++
		case unicode.In(r, unicode.Greek):
			greek++
		case unicode.In(r, unicode.Cyrillic):
			cyrillic++
		default:
			if unicode.In(r, unicode.Latin) {
				latin++
			}
		}
	}

	if totalLetters == 0 {
		return d.Fallback
	}

	// decisive scripts first, presence alone settles it
	switch {
	case hira > 0 || kata > 0:
		return "ja"
	case hangul > 0:
		return "ko"
	case han > 0:
		return "zh"
	case arabic > 0:
		return "ar"
	case hebrew > 0:
		return "he"
	case thai > 0:
		return "th"
	case greek > 0:
		return "el"
	case cyrillic > latin:
		return "ru"
	case latin > 0:
		return d.Fallback
	}
	return d.Fallback
}
