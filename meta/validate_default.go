package meta

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// plainDecimalRe matches a number in plain decimal notation. Floats whose
// shortest textual form is scientific notation (1e+20) do not match and
// skip the digit-count check.
var plainDecimalRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// uuidRe matches the canonical 8-4-4-4-12 hyphenated form with a version
// nibble in 1..5 and an RFC 4122 variant nibble.
var uuidRe = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// timestampFunctions are the expression defaults accepted on temporal
// columns, compared case-insensitively after trimming.
var timestampFunctions = toSet(
	"now()",
	"current_timestamp",
	"statement_timestamp()",
	"transaction_timestamp()",
	"clock_timestamp()",
)

// currentTimestampPrecisionRe matches current_timestamp(N) for any
// non-negative precision N.
var currentTimestampPrecisionRe = regexp.MustCompile(`^current_timestamp\([0-9]+\)$`)

// ValidateDefault decides whether a default descriptor is legal for the
// given column type and shape. The shape arguments follow ValidateShape:
// 0 means absent for length and precision, nil means absent for scale
// (absent scale counts as 0).
//
// The rules form a per-category matrix; exactly one branch applies to any
// type, and unlisted integer types fall through unrestricted.
func ValidateDefault(typ SQLType, def Default, length, precision int, scale *int) error {
	if def.IsNone() {
		return nil
	}

	// A null literal is never a substitute for nullability.
	if def.isNullLiteral() {
		return errorf("Literal NULL default is not allowed; declare the column nullable instead.")
	}

	switch {
	case typ.IsJSONB():
		return validateJSONBDefault(def)
	case typ.IsTemporal():
		return validateTemporalDefault(typ, def)
	case typ.SupportsPrecisionScale():
		return validateNumericDefault(def, precision, scale)
	case typ.IsTextual():
		return validateTextualDefault(def, length)
	case typ.IsBoolean():
		return validateBooleanDefault(def)
	case typ.IsUUID():
		return validateUUIDDefault(def)
	case typ.IsBinary():
		return errorf("BYTEA columns do not support defaults.")
	default:
		// SmallInt, Integer, BigInt: unrestricted.
		return nil
	}
}

func validateJSONBDefault(def Default) error {
	if def.Kind() == DefaultLiteral {
		return errorf("JSONB columns only accept expression defaults (e.g. \"'{}'::jsonb\").")
	}
	if strings.TrimSpace(def.Expr()) == "" {
		return errorf("JSONB default expression cannot be empty.")
	}
	return nil
}

func validateTemporalDefault(typ SQLType, def Default) error {
	if def.Kind() == DefaultLiteral {
		return errorf("%s columns only accept timestamp function defaults.", strings.ToUpper(string(typ)))
	}
	expr := strings.ToLower(strings.TrimSpace(def.Expr()))
	if expr == "" {
		return errorf("%s default expression cannot be empty.", strings.ToUpper(string(typ)))
	}
	if timestampFunctions[expr] || currentTimestampPrecisionRe.MatchString(expr) {
		return nil
	}
	if typ == TypeDate && expr == "current_date" {
		return nil
	}
	return errorf("%s default expression %q is not an allowed timestamp function.",
		strings.ToUpper(string(typ)), preview(def.Expr()))
}

func validateNumericDefault(def Default, precision int, scale *int) error {
	if def.Kind() == DefaultExpression {
		return nil
	}

	var text string
	switch def.Value().(type) {
	case int64, float64:
		text = def.literalText()
	default:
		return errorf("NUMERIC default must be an integer or floating-point literal.")
	}

	if precision == 0 {
		return nil
	}
	// Scientific notation carries no usable digit layout; accept as-is.
	if !plainDecimalRe.MatchString(text) {
		return nil
	}

	intDigits, fracDigits := countDigits(text)
	maxScale := 0
	if scale != nil {
		maxScale = *scale
	}
	if fracDigits > maxScale || intDigits+fracDigits > precision {
		return errorf("NUMERIC literal default exceeds precision/scale constraints.")
	}
	return nil
}

// countDigits splits a plain decimal string into significant integer
// digits (leading zeros dropped) and fractional digits.
func countDigits(text string) (intDigits, fracDigits int) {
	text = strings.TrimPrefix(text, "-")
	intPart, fracPart, _ := strings.Cut(text, ".")
	intPart = strings.TrimLeft(intPart, "0")
	return len(intPart), len(fracPart)
}

func validateTextualDefault(def Default, length int) error {
	if def.Kind() == DefaultExpression || length == 0 {
		return nil
	}
	if utf8.RuneCountInString(def.literalText()) > length {
		return errorf("Text default literal exceeds the column length (%d).", length)
	}
	return nil
}

func validateBooleanDefault(def Default) error {
	if def.Kind() == DefaultExpression {
		return nil
	}
	if _, ok := def.Value().(bool); !ok {
		return errorf("BOOLEAN default must be a boolean literal.")
	}
	return nil
}

func validateUUIDDefault(def Default) error {
	if def.Kind() == DefaultExpression {
		if strings.TrimSpace(def.Expr()) == "" {
			return errorf("UUID default expression cannot be empty.")
		}
		return nil
	}
	s, ok := def.Value().(string)
	if !ok || !uuidRe.MatchString(s) {
		return errorf("UUID default literal must be a canonical hyphenated UUID.")
	}
	return nil
}
