// Package i18n renders user-facing text in the configured locale. Message keys
// are the English texts; other languages are registered in the default x/text
// catalog at init.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.Turkish}

var matcher = language.NewMatcher(supported)

// Localizer formats catalog messages for one language.
type Localizer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Localizer for the best supported match of locale ("tr",
// "en-US", ...). Unknown or empty locales fall back to English.
func New(locale string) *Localizer {
	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			_, idx, conf := matcher.Match(parsed)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Localizer{tag: tag, p: message.NewPrinter(tag)}
}

// Default is the English localizer used when a component is built without one.
func Default() *Localizer {
	return New("en")
}

// T formats key with args in the localizer's language.
func (l *Localizer) T(key string, args ...any) string {
	if l == nil {
		return Default().T(key, args...)
	}
	return l.p.Sprintf(key, args...)
}

// Language reports the selected language tag, e.g. "tr".
func (l *Localizer) Language() string {
	if l == nil {
		return language.English.String()
	}
	return l.tag.String()
}
