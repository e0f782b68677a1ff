// Package locale picks the interface language from the process locale.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Supported interface languages.
const (
	Simplified  = "zh-Hans"
	Traditional = "zh-Hant"
)

// envVars are consulted in POSIX precedence order.
var envVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

var matcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese,
	language.TraditionalChinese,
})

// Detect returns Traditional when the first set locale variable names a
// traditional-script Chinese locale (zh_TW, zh_HK, zh-Hant, ...) and
// Simplified otherwise.
func Detect() string {
	for _, name := range envVars {
		if v := os.Getenv(name); v != "" {
			return Match(v)
		}
	}
	return Simplified
}

// Match maps a locale string such as "zh_TW.UTF-8" to a supported language.
func Match(locale string) string {
	tag, err := language.Parse(posixToBCP47(locale))
	if err != nil {
		return Simplified
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No || i != 1 {
		return Simplified
	}
	return Traditional
}

// posixToBCP47 strips the codeset and modifier from a POSIX locale name
// ("zh_TW.UTF-8@euro" → "zh-TW").
func posixToBCP47(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
}
