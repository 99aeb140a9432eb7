package batch

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// LocaleOf derives a BCP 47 tag from a catalog file name such as "pt-BR.json".
// Names that are not language tags yield "".
func LocaleOf(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" {
		return ""
	}
	tag, err := language.Parse(base)
	if err != nil {
		return ""
	}
	return tag.String()
}
