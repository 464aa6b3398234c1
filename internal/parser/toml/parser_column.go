package toml

import (
	"errors"
	"fmt"
	"strings"

	"pgmapper/meta"
)

// tomlColumn maps [[entities.columns]].
type tomlColumn struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Nullable bool   `toml:"nullable"`

	Length    int  `toml:"length"`
	Precision int  `toml:"precision"`
	Scale     *int `toml:"scale"`

	// Default accepts string, bool, number, or datetime from TOML and
	// becomes a literal default. DefaultExpr is raw SQL emitted verbatim.
	// The two are mutually exclusive.
	Default     any    `toml:"default"`
	DefaultExpr string `toml:"default_expr"`
}

// columnTypes maps the accepted TOML type spellings to the canonical
// SQLType. Aliases follow the PostgreSQL names for the same type.
var columnTypes = map[string]meta.SQLType{
	"smallint":    meta.TypeSmallInt,
	"int2":        meta.TypeSmallInt,
	"integer":     meta.TypeInteger,
	"int":         meta.TypeInteger,
	"int4":        meta.TypeInteger,
	"bigint":      meta.TypeBigInt,
	"int8":        meta.TypeBigInt,
	"numeric":     meta.TypeNumeric,
	"decimal":     meta.TypeNumeric,
	"text":        meta.TypeText,
	"varchar":     meta.TypeVarchar,
	"bytea":       meta.TypeBytea,
	"boolean":     meta.TypeBoolean,
	"bool":        meta.TypeBoolean,
	"uuid":        meta.TypeUUID,
	"date":        meta.TypeDate,
	"timestamp":   meta.TypeTimestamp,
	"timestamptz": meta.TypeTimestampTZ,
	"jsonb":       meta.TypeJSONB,

	"character varying":        meta.TypeVarchar,
	"timestamp with time zone": meta.TypeTimestampTZ,
}

func convertColumn(tc *tomlColumn) (*meta.Column, error) {
	typ, err := resolveColumnType(tc.Type)
	if err != nil {
		return nil, err
	}

	def, err := resolveDefault(tc)
	if err != nil {
		return nil, err
	}

	return meta.NewColumn(meta.ColumnDef{
		Name:      tc.Name,
		Type:      typ,
		Nullable:  tc.Nullable,
		Default:   def,
		Length:    tc.Length,
		Precision: tc.Precision,
		Scale:     tc.Scale,
	})
}

func resolveColumnType(raw string) (meta.SQLType, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", errors.New("type is empty")
	}
	typ, ok := columnTypes[key]
	if !ok {
		return "", fmt.Errorf("unsupported type %q", raw)
	}
	return typ, nil
}

func resolveDefault(tc *tomlColumn) (meta.Default, error) {
	if tc.Default != nil && tc.DefaultExpr != "" {
		return meta.Default{}, errors.New("default and default_expr are mutually exclusive")
	}
	if tc.DefaultExpr != "" {
		return meta.Expression(tc.DefaultExpr), nil
	}
	if tc.Default != nil {
		return meta.Literal(tc.Default), nil
	}
	return meta.NoDefault(), nil
}
