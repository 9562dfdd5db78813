// Package i18n holds the static bilingual display table and the locale
// data used to format dates for the active language.
package i18n

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Language describes one selectable display language.
type Language struct {
	Code  string
	Label string
}

var languages = []Language{
	{Code: common.LanguageEnglish, Label: "English"},
	{Code: common.LanguageGerman, Label: "Deutsch"},
}

// Catalog resolves display strings by language and identifier. It is safe
// for concurrent use once built.
type Catalog struct {
	uni   *ut.UniversalTranslator
	trans map[string]ut.Translator
}

// NewCatalog loads the static table into one translator per language.
func NewCatalog() (*Catalog, error) {
	enLocale := en.New()
	c := &Catalog{
		uni:   ut.New(enLocale, enLocale, de.New()),
		trans: make(map[string]ut.Translator, len(table)),
	}

	langs := make([]string, 0, len(table))
	for lang := range table {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		tr, found := c.uni.GetTranslator(lang)
		if !found {
			return nil, fmt.Errorf("no locale for language %q", lang)
		}
		for key, text := range table[lang] {
			if err := tr.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("add %s/%s: %w", lang, key, err)
			}
		}
		c.trans[lang] = tr
	}

	return c, nil
}

// Languages lists the selectable languages in display order.
func (c *Catalog) Languages() []Language {
	return append([]Language(nil), languages...)
}

// Supported reports whether lang has a table.
func (c *Catalog) Supported(lang string) bool {
	_, ok := c.trans[lang]
	return ok
}

// Normalize maps unknown languages to English.
func (c *Catalog) Normalize(lang string) string {
	if c.Supported(lang) {
		return lang
	}
	return common.LanguageEnglish
}

// Translator returns the translator for lang, falling back to English.
func (c *Catalog) Translator(lang string) ut.Translator {
	return c.trans[c.Normalize(lang)]
}

// T returns the display string for key. Missing keys render as the key
// itself so that gaps in the table stay visible.
func (c *Catalog) T(lang, key string, params ...string) string {
	s, err := c.Translator(lang).T(key, params...)
	if err != nil || s == "" {
		return key
	}
	return s
}

// FormatDate renders t with the short date format of lang.
func (c *Catalog) FormatDate(lang string, t time.Time) string {
	return c.Translator(lang).FmtDateShort(t)
}
