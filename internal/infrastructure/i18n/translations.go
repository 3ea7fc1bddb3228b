package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"bootcamp/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.Translator = (*Translator)(nil)

// Translator renders error messages and announcement labels from the
// embedded active.*.toml catalogues.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	supported       []language.Tag
	matcher         language.Matcher
}

// NewTranslator builds a Translator whose fallback locale is defaultLocale
// (e.g. "en"). Unknown locales fall back to English.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("⚠️ i18n: failed to load %s: %v", file, err)
		}
	}

	// The default goes first so that it wins when nothing matches.
	supported := []language.Tag{tag}
	for _, t := range bundle.LanguageTags() {
		if t != tag {
			supported = append(supported, t)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		supported:       supported,
		matcher:         language.NewMatcher(supported),
	}
}

// DefaultLocale is the locale used when a request names none.
func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// Negotiate picks the best supported locale for an Accept-Language header.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.DefaultLocale()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.DefaultLocale()
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.DefaultLocale()
	}
	base, _ := t.supported[index].Base()
	return base.String()
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}
