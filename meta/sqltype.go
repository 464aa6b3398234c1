// Package meta contains the column and entity metadata model of pgmapper.
// It provides the single source of truth a mapper needs about a table:
// column types, shapes, defaults, and the primary key — all validated at
// construction time so downstream consumers (DDL rendering, hydration)
// never have to re-check an invariant.
package meta

// SQLType identifies a supported PostgreSQL column type.
type SQLType string

const (
	TypeSmallInt    SQLType = "smallint"
	TypeInteger     SQLType = "integer"
	TypeBigInt      SQLType = "bigint"
	TypeNumeric     SQLType = "numeric"
	TypeText        SQLType = "text"
	TypeVarchar     SQLType = "varchar"
	TypeBytea       SQLType = "bytea"
	TypeBoolean     SQLType = "boolean"
	TypeUUID        SQLType = "uuid"
	TypeDate        SQLType = "date"
	TypeTimestamp   SQLType = "timestamp"
	TypeTimestampTZ SQLType = "timestamptz"
	TypeJSONB       SQLType = "jsonb"
)

// SupportedTypes returns a slice of all supported column types.
func SupportedTypes() []SQLType {
	return []SQLType{
		TypeSmallInt,
		TypeInteger,
		TypeBigInt,
		TypeNumeric,
		TypeText,
		TypeVarchar,
		TypeBytea,
		TypeBoolean,
		TypeUUID,
		TypeDate,
		TypeTimestamp,
		TypeTimestampTZ,
		TypeJSONB,
	}
}

// IsValidType reports whether t is a recognized column type.
func IsValidType(t SQLType) bool {
	for _, supported := range SupportedTypes() {
		if t == supported {
			return true
		}
	}
	return false
}

// IsNumeric reports whether the type holds numbers (integers or decimals).
func (t SQLType) IsNumeric() bool {
	switch t {
	case TypeSmallInt, TypeInteger, TypeBigInt, TypeNumeric:
		return true
	}
	return false
}

// IsTextual reports whether the type holds character data.
func (t SQLType) IsTextual() bool {
	return t == TypeText || t == TypeVarchar
}

// IsTemporal reports whether the type holds dates or timestamps.
func (t SQLType) IsTemporal() bool {
	switch t {
	case TypeDate, TypeTimestamp, TypeTimestampTZ:
		return true
	}
	return false
}

// IsJSONB reports whether the type is the binary JSON document type.
func (t SQLType) IsJSONB() bool {
	return t == TypeJSONB
}

// IsBinary reports whether the type holds raw bytes.
func (t SQLType) IsBinary() bool {
	return t == TypeBytea
}

// IsBoolean reports whether the type is boolean.
func (t SQLType) IsBoolean() bool {
	return t == TypeBoolean
}

// IsUUID reports whether the type is the native UUID type.
func (t SQLType) IsUUID() bool {
	return t == TypeUUID
}

// SupportsLength reports whether the type takes a character length
// modifier. Only varchar does; text is unbounded by definition.
func (t SQLType) SupportsLength() bool {
	return t == TypeVarchar
}

// SupportsPrecisionScale reports whether the type takes precision and
// scale modifiers. Only numeric does.
func (t SQLType) SupportsPrecisionScale() bool {
	return t == TypeNumeric
}
