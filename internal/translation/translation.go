// internal/translation/translation.go
package translation

import "strings"

// Language is one of the two content languages the site serves.
type Language string

const (
	LanguageRU Language = "ru" // primary, every entity is authored in it first
	LanguageEN Language = "en" // secondary, backfilled opportunistically
)

// Status tracks the provenance of the secondary-language value.
type Status string

const (
	StatusNone   Status = "none"   // no secondary value has ever been produced
	StatusAuto   Status = "auto"   // secondary value was machine-generated
	StatusManual Status = "manual" // secondary value was supplied by an editor
)

// Normalize maps arbitrary input to one of the two supported languages.
// Anything that is not recognizably English resolves to the primary language.
func Normalize(raw string) Language {
	lang := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(lang, "-_"); idx >= 0 {
		lang = lang[:idx]
	}
	if lang == string(LanguageEN) {
		return LanguageEN
	}
	return LanguageRU
}

// FromRequest picks the display language for a request: explicit query
// parameter first, then the first tag of an Accept-Language header, then the
// primary language.
func FromRequest(query, acceptLanguage string) Language {
	if strings.TrimSpace(query) != "" {
		return Normalize(query)
	}
	if acceptLanguage != "" {
		first := strings.Split(acceptLanguage, ",")[0]
		first = strings.Split(first, ";")[0]
		if strings.TrimSpace(first) != "" {
			return Normalize(first)
		}
	}
	return LanguageRU
}

// Resolve returns the value to display for one translatable field pair.
// The primary language is the universal fallback; when even the primary
// value is empty the caller-provided label is returned.
func Resolve(primary, secondary string, lang Language, fallback string) string {
	if lang == LanguageEN && secondary != "" {
		return secondary
	}
	if primary != "" {
		return primary
	}
	return fallback
}

// FieldPair points at one ru/en column pair of a stored entity.
type FieldPair struct {
	Name      string // column base name, used for logging
	Primary   *string
	Secondary *string
}

// Translatable is implemented by every content model that carries ru/en
// field pairs and a translation status.
type Translatable interface {
	Kind() string
	FieldPairs() []FieldPair
	TranslationStatus() Status
	SetTranslationStatus(Status)
}
