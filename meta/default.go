package meta

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultKind discriminates the three flavors of column default.
type DefaultKind string

const (
	// DefaultNone means the column declares no default.
	DefaultNone DefaultKind = "none"
	// DefaultLiteral means the default is a scalar value quoted or
	// formatted by the renderer.
	DefaultLiteral DefaultKind = "literal"
	// DefaultExpression means the default is raw SQL emitted verbatim,
	// e.g. "now()" or "'{}'::jsonb".
	DefaultExpression DefaultKind = "expression"
)

// Default describes a column's insert-time default value. The zero value
// is "no default". Construct literals with Literal and raw SQL defaults
// with Expression; whether a given default is legal for a given column
// type is decided by ValidateDefault, not here.
type Default struct {
	kind  DefaultKind
	value any
	expr  string
}

// NoDefault returns the descriptor for a column without a default.
func NoDefault() Default {
	return Default{kind: DefaultNone}
}

// Literal wraps a scalar default value. Accepted scalars are integers,
// floats, booleans, strings, and absolute timestamps (time.Time); integer
// and float widths are normalized so later checks see one representation.
// Literal(nil) is representable but rejected by every compatibility rule.
func Literal(v any) Default {
	switch val := v.(type) {
	case int:
		v = int64(val)
	case int8:
		v = int64(val)
	case int16:
		v = int64(val)
	case int32:
		v = int64(val)
	case uint:
		v = int64(val)
	case uint8:
		v = int64(val)
	case uint16:
		v = int64(val)
	case uint32:
		v = int64(val)
	case float32:
		v = float64(val)
	}
	return Default{kind: DefaultLiteral, value: v}
}

// Expression wraps a raw SQL default expression, kept verbatim.
func Expression(text string) Default {
	return Default{kind: DefaultExpression, expr: text}
}

// Kind returns the discriminator. The zero Default reports DefaultNone.
func (d Default) Kind() DefaultKind {
	if d.kind == "" {
		return DefaultNone
	}
	return d.kind
}

// IsNone reports whether no default is declared.
func (d Default) IsNone() bool {
	return d.Kind() == DefaultNone
}

// Value returns the literal scalar, or nil for non-literal defaults.
func (d Default) Value() any {
	if d.kind != DefaultLiteral {
		return nil
	}
	return d.value
}

// Expr returns the raw expression text, or "" for non-expression defaults.
func (d Default) Expr() string {
	if d.kind != DefaultExpression {
		return ""
	}
	return d.expr
}

// isNullLiteral reports whether the default is the always-rejected
// Literal(nil) sub-case.
func (d Default) isNullLiteral() bool {
	return d.kind == DefaultLiteral && d.value == nil
}

// literalText renders the literal scalar to its canonical textual form.
// Floats use the shortest round-tripping representation, which is also
// the form the numeric digit-count check inspects.
func (d Default) literalText() string {
	switch v := d.value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case time.Time:
		return v.UTC().Format("2006-01-02 15:04:05.999999-07")
	default:
		return fmt.Sprintf("%v", v)
	}
}
