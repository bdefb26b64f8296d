package models

// Localized maps a locale code to a translated string.
type Localized map[string]string

// LocalizedList maps a locale code to an ordered list of translated strings.
type LocalizedList map[string][]string

// Supported locale codes. DefaultLocale applies when a request carries none.
const (
	LocaleES = "es"
	LocaleEN = "en"

	DefaultLocale = LocaleES
)
