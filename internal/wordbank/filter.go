package wordbank

import (
	"unicode"

	"github.com/verte-zerg/tajarush/internal/model"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns the check a catalog word must pass for lang.
func FilterForLang(lang model.Language) FilterFunc {
	switch lang {
	case model.English:
		return filterEnglishASCII
	case model.Korean:
		return filterHangul
	default:
		return func(w string) bool { return w != "" }
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

func filterHangul(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.Is(unicode.Hangul, r) {
			return false
		}
	}
	return true
}
