package report

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var localeFS embed.FS

// DefaultLanguage is used when a requested language has no catalog.
const DefaultLanguage = "en"

// Translator looks up report strings in one gettext catalog.
type Translator struct {
	lang string
	po   *gotext.Po
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return []string{DefaultLanguage}
	}
	var langs []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	slices.Sort(langs)
	return langs
}

// NewTranslator loads the catalog for lang. Region suffixes such as "es_MX"
// or "es-MX" are stripped, and unknown languages fall back to English.
func NewTranslator(lang string) (*Translator, error) {
	base := strings.ToLower(lang)
	if i := strings.IndexAny(base, "_-."); i >= 0 {
		base = base[:i]
	}
	if !slices.Contains(Languages(), base) {
		base = DefaultLanguage
	}

	data, err := localeFS.ReadFile(path.Join("locales", base+".po"))
	if err != nil {
		return nil, fmt.Errorf("failed to read locale %s: %w", base, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Translator{lang: base, po: po}, nil
}

// Language returns the catalog actually loaded.
func (t *Translator) Language() string {
	return t.lang
}

// Tr translates key and, when vars are given, formats the translation with
// them. Keys are message ids, not format strings.
func (t *Translator) Tr(key string, vars ...any) string {
	msg := t.po.Get(key)
	if len(vars) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, vars...)
}
