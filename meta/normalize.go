package meta

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// translitReplacer folds the special Latin letters that have no combining
// mark decomposition, so the NFD pass below cannot handle them.
var translitReplacer = strings.NewReplacer(
	"œ", "oe", "Œ", "Oe",
	"æ", "ae", "Æ", "Ae",
	"ß", "ss", "ẞ", "Ss",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "Th",
	"ł", "l", "Ł", "L",
)

// foldMarks decomposes accented letters and strips the combining marks,
// turning "é" into "e".
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeOptions tunes identifier normalization.
type NormalizeOptions struct {
	// SplitLetterDigit inserts an underscore at every letter↔digit
	// boundary ("field1" → "field_1"). Enabled by default.
	SplitLetterDigit bool
}

// DefaultNormalizeOptions returns the options Normalize uses.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{SplitLetterDigit: true}
}

// Normalize converts an arbitrary name into a canonical lowercase
// snake_case ASCII identifier: "CrèmeBrûlée" → "creme_brulee",
// "HTTPServerID" → "http_server_id". It is total (never fails), purely a
// function of its input, and idempotent: Normalize(Normalize(s)) ==
// Normalize(s) for every s.
func Normalize(raw string) string {
	return NormalizeWith(raw, DefaultNormalizeOptions())
}

// NormalizeWith is Normalize with explicit options.
func NormalizeWith(raw string, opts NormalizeOptions) string {
	s := strings.TrimSpace(raw)
	s = transliterate(s)
	s = squashNonAlnum(s)
	s = splitWords(s, opts.SplitLetterDigit)
	s = strings.Trim(s, "_")
	return strings.ToLower(s)
}

// transliterate folds the input to plain ASCII letters where possible.
// If the transform fails the input is passed through unchanged; any
// leftover non-ASCII runes become separators in the next step.
func transliterate(s string) string {
	s = translitReplacer.Replace(s)
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		return s
	}
	return folded
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// squashNonAlnum replaces every maximal run of non-alphanumeric runes
// with a single underscore.
func squashNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('_')
			inRun = true
		}
	}
	return b.String()
}

// splitWords inserts underscores at word boundaries: a lowercase or digit
// followed by an uppercase ("userId"), the last capital of an acronym run
// followed by a lowercase ("HTTPServer"), and optionally every
// letter↔digit boundary ("field1").
func splitWords(s string, splitLetterDigit bool) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i, r := range rs {
		if i > 0 {
			prev := rs[i-1]
			switch {
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				b.WriteByte('_')
			case unicode.IsUpper(r) && unicode.IsUpper(prev) &&
				i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				b.WriteByte('_')
			case splitLetterDigit && unicode.IsDigit(r) && unicode.IsLetter(prev):
				b.WriteByte('_')
			case splitLetterDigit && unicode.IsLetter(r) && unicode.IsDigit(prev):
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
