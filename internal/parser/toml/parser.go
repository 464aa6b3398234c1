// Package toml provides a parser for the pgmapper TOML schema format.
// It reads declarative entity definitions from a .toml file and converts
// them into validated meta.Entity values; nothing invalid ever leaves
// this package.
package toml

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"pgmapper/meta"
)

// schemaFile is the top-level TOML document: a [database] header followed
// by [[entities]] blocks.
type schemaFile struct {
	Database tomlDatabase `toml:"database"`
	Entities []tomlEntity `toml:"entities"`
}

// tomlDatabase maps [database].
type tomlDatabase struct {
	Name   string `toml:"name"`
	Schema string `toml:"schema"`
}

// tomlEntity maps [[entities]].
type tomlEntity struct {
	Table      string       `toml:"table"`
	Schema     string       `toml:"schema"`
	PrimaryKey []string     `toml:"primary_key"`
	Columns    []tomlColumn `toml:"columns"`
}

// Schema is a parsed, fully validated schema file.
type Schema struct {
	Name     string
	Entities []*meta.Entity
}

// FindEntity looks an entity up by its normalized table name.
func (s *Schema) FindEntity(table string) (*meta.Entity, bool) {
	for _, e := range s.Entities {
		if e.Table() == table {
			return e, true
		}
	}
	return nil, false
}

// Parser reads pgmapper TOML schema files.
type Parser struct{}

// NewParser creates a new TOML schema parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile opens the file at the given path and parses it as a TOML schema.
func (p *Parser) ParseFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("toml: open file %q: %w", path, err)
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse reads TOML content from reader and returns the validated schema.
func (p *Parser) Parse(r io.Reader) (*Schema, error) {
	var sf schemaFile
	if _, err := toml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("toml: decode error: %w", err)
	}

	schema := &Schema{
		Name:     sf.Database.Name,
		Entities: make([]*meta.Entity, 0, len(sf.Entities)),
	}

	for i := range sf.Entities {
		entity, err := convertEntity(&sf.Entities[i], sf.Database.Schema)
		if err != nil {
			return nil, fmt.Errorf("toml: entity %q: %w", sf.Entities[i].Table, err)
		}
		schema.Entities = append(schema.Entities, entity)
	}

	return schema, nil
}

// convertEntity builds one meta.Entity from its TOML block. The file-level
// schema applies when the entity does not set its own.
func convertEntity(te *tomlEntity, fileSchema string) (*meta.Entity, error) {
	schemaName := te.Schema
	if schemaName == "" {
		schemaName = fileSchema
	}

	columns := make([]*meta.Column, 0, len(te.Columns))
	for i := range te.Columns {
		col, err := convertColumn(&te.Columns[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", te.Columns[i].Name, err)
		}
		columns = append(columns, col)
	}

	return meta.NewEntity(meta.EntityDef{
		Schema:     schemaName,
		Table:      te.Table,
		Columns:    columns,
		PrimaryKey: te.PrimaryKey,
	})
}
