// Package i18n supplies display strings for the supported languages. The
// workflow packages only emit semantic values; everything a user reads goes
// through T.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language describes one selectable UI language.
type Language struct {
	Code       string
	Name       string
	NativeName string
}

// Languages is the selector's list, in display order. The first entry is the fallback.
var Languages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "id", Name: "Indonesian", NativeName: "Bahasa Indonesia"},
}

// Fallback is used for unknown codes and for keys a language does not translate.
const Fallback = "en"

var (
	tags    []language.Tag
	matcher language.Matcher
)

func init() {
	for _, l := range Languages {
		tags = append(tags, language.Make(l.Code))
	}
	matcher = language.NewMatcher(tags)
}

// Codes returns the supported language codes in display order.
func Codes() []string {
	out := make([]string, len(Languages))
	for i, l := range Languages {
		out[i] = l.Code
	}
	return out
}

// Supported reports whether code names one of the languages exactly.
func Supported(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Lookup returns the Language for code, or false.
func Lookup(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Match picks the closest supported language for a BCP 47 tag or an
// Accept-Language style list ("pt-BR", "es-419,fr;q=0.8"). Anything that does
// not match reasonably well resolves to Fallback.
func Match(preferred string) string {
	if preferred == "" {
		return Fallback
	}
	desired, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(desired) == 0 {
		return Fallback
	}
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return Fallback
	}
	return Languages[idx].Code
}

// T returns the string for key in lang, formatting args into it when given.
func T(lang string, key Key, args ...any) string {
	s, ok := catalog[lang][key]
	if !ok {
		s, ok = catalog[Fallback][key]
	}
	if !ok {
		s = string(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}
