// Package postgres renders validated metadata to PostgreSQL DDL. It
// trusts the meta package's construction-time guarantees and never
// re-validates: any Entity or Column handed in already satisfies every
// invariant.
package postgres

import (
	"fmt"
	"strings"

	"pgmapper/meta"
)

// Generator is a stateless PostgreSQL DDL generator.
type Generator struct{}

// NewGenerator initializes a new PostgreSQL DDL generator instance.
func NewGenerator() *Generator {
	return &Generator{}
}

// QuoteIdentifier wraps an identifier in double quotes, doubling any
// embedded quote.
func (g *Generator) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteString wraps a value in single quotes, doubling any embedded quote.
func (g *Generator) QuoteString(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// CreateTable renders the full CREATE TABLE statement for an entity,
// including the primary key clause.
func (g *Generator) CreateTable(e *meta.Entity) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(g.qualifiedName(e))
	b.WriteString(" (\n")

	for _, col := range e.Columns() {
		b.WriteString("  ")
		b.WriteString(g.ColumnDefinition(col))
		b.WriteString(",\n")
	}

	b.WriteString("  ")
	b.WriteString(g.primaryKeyClause(e.PrimaryKey()))
	b.WriteString("\n);")
	return b.String()
}

func (g *Generator) qualifiedName(e *meta.Entity) string {
	return g.QuoteIdentifier(e.Schema()) + "." + g.QuoteIdentifier(e.Table())
}

func (g *Generator) primaryKeyClause(pk meta.PrimaryKey) string {
	quoted := make([]string, 0, pk.Len())
	for _, name := range pk.Columns() {
		quoted = append(quoted, g.QuoteIdentifier(name))
	}
	return "PRIMARY KEY (" + strings.Join(quoted, ", ") + ")"
}

// ColumnDefinition renders one column clause: name, type with shape
// modifiers, nullability, and default.
func (g *Generator) ColumnDefinition(c *meta.Column) string {
	parts := []string{g.QuoteIdentifier(c.Name()), g.typeClause(c)}

	if c.Nullable() {
		parts = append(parts, "NULL")
	} else {
		parts = append(parts, "NOT NULL")
	}

	if clause := g.defaultClause(c.Default()); clause != "" {
		parts = append(parts, "DEFAULT", clause)
	}

	return strings.Join(parts, " ")
}

func (g *Generator) typeClause(c *meta.Column) string {
	typ := string(c.Type())
	if length, ok := c.Length(); ok {
		return fmt.Sprintf("%s(%d)", typ, length)
	}
	if precision, ok := c.Precision(); ok {
		scale, _ := c.Scale()
		return fmt.Sprintf("%s(%d,%d)", typ, precision, scale)
	}
	return typ
}

// defaultClause renders a default descriptor. Expressions are emitted
// verbatim; literals are formatted per scalar kind.
func (g *Generator) defaultClause(d meta.Default) string {
	switch d.Kind() {
	case meta.DefaultExpression:
		return strings.TrimSpace(d.Expr())
	case meta.DefaultLiteral:
		return g.formatLiteral(d.Value())
	default:
		return ""
	}
}

func (g *Generator) formatLiteral(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%g", val)
	case string:
		return g.QuoteString(val)
	default:
		return g.QuoteString(fmt.Sprintf("%v", val))
	}
}
