// Package i18n holds the supported display languages, their message
// catalogs and the locale-aware money and percent formatting used by every
// output surface.
package i18n

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/isday/compound-calculator/pkg/decimal"
)

var supportedTags = []language.Tag{
	language.Korean,
	language.English,
	language.Japanese,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the supported languages, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the language used when nothing else matches.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and maps it onto a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultTag(), false
	}
	return supportedTags[idx], true
}

// MatchTags picks the best supported language for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	return matchTagsOr(tags, DefaultTag())
}

func matchTagsOr(tags []language.Tag, fallback language.Tag) language.Tag {
	if len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supportedTags[idx]
}

// Code returns the two-letter code of tag ("ko", "en", "ja").
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// IsSupportedCode reports whether code names a supported language exactly.
func IsSupportedCode(code string) bool {
	for _, tag := range supportedTags {
		if Code(tag) == code {
			return true
		}
	}
	return false
}

// Localizer renders catalog messages and numbers for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// Tag returns the localizer's language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Code returns the localizer's two-letter language code.
func (l *Localizer) Code() string {
	return Code(l.tag)
}

// T looks up key and formats it with args.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Money formats an amount truncated to whole currency units with the
// language's grouping and currency symbol, e.g. "1,050,000원" or "$1,050,000".
func (l *Localizer) Money(v float64) string {
	m, ok := decimal.FromFloat(v)
	if !ok {
		return nonFinite(v)
	}
	digits, negative := m.WholeDigits()
	sign := ""
	if negative {
		sign = "-"
	}
	return sign + l.T("format.money", l.group(digits))
}

// Amount is Money without the currency symbol ("1,050,000").
func (l *Localizer) Amount(v float64) string {
	m, ok := decimal.FromFloat(v)
	if !ok {
		return nonFinite(v)
	}
	digits, negative := m.WholeDigits()
	if negative {
		return "-" + l.group(digits)
	}
	return l.group(digits)
}

// group inserts the language's thousands separator into a plain digit
// string. Amounts can exceed any integer type, so the digits are grouped
// as text.
func (l *Localizer) group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	sep := strings.TrimSuffix(strings.TrimPrefix(l.printer.Sprintf("%d", 1000), "1"), "000")
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// CurrencyCode returns the ISO 4217 code shown with symbol-less amounts.
func (l *Localizer) CurrencyCode() string {
	return l.T("format.currency_code")
}

// Percent formats a percentage with two decimals, e.g. "62.89%".
func (l *Localizer) Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nonFinite(v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// Number groups an integer the way the language does.
func (l *Localizer) Number(n int) string {
	return l.printer.Sprintf("%d", n)
}

func nonFinite(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	default:
		return "NaN"
	}
}

// LanguageOption is one entry of a language picker.
type LanguageOption struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Options lists the supported languages with active marked.
func (b *Bundle) Options(active language.Tag) []LanguageOption {
	activeCode := Code(active)
	options := make([]LanguageOption, 0, len(supportedTags))
	for _, tag := range supportedTags {
		options = append(options, LanguageOption{
			Code:   Code(tag),
			Label:  b.Localizer(tag).T("language.label"),
			Active: Code(tag) == activeCode,
		})
	}
	return options
}
