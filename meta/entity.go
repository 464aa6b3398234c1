package meta

// DefaultSchema is used when an entity definition leaves the schema empty.
const DefaultSchema = "public"

// EntityDef is the raw, caller-supplied table definition handed to
// NewEntity. Columns must already be validated Column values; the
// primary key lists column names in key order.
type EntityDef struct {
	Schema     string
	Table      string
	Columns    []*Column
	PrimaryKey []string
}

// Entity is a fully validated, immutable table description: identity,
// ordered uniquely named columns, and a primary key resolving to those
// columns.
type Entity struct {
	schema  string
	table   string
	columns []*Column
	index   map[string]int
	pk      PrimaryKey
}

// NewEntity normalizes and validates the table and schema identifiers,
// checks column-name uniqueness, and resolves the primary key. Checks run
// in that fixed order and stop at the first violation, so the error for a
// given invalid definition is deterministic.
func NewEntity(def EntityDef) (*Entity, error) {
	table := Normalize(def.Table)
	if err := ValidateIdentifier(table, IdentifierTable); err != nil {
		return nil, err
	}

	schema := def.Schema
	if schema == "" {
		schema = DefaultSchema
	}
	schema = Normalize(schema)
	if err := ValidateIdentifier(schema, IdentifierSchema); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(def.Columns))
	for i, col := range def.Columns {
		if col == nil {
			return nil, errorf("Table %q has a nil column at index %d.", table, i)
		}
		if _, dup := index[col.Name()]; dup {
			return nil, errorf("Duplicate column name: %s.", col.Name())
		}
		index[col.Name()] = i
	}

	if len(def.PrimaryKey) == 0 {
		return nil, errorf("Primary key must contain at least one column.")
	}
	for _, name := range def.PrimaryKey {
		if _, ok := index[name]; !ok {
			return nil, errorf("Primary key references undefined column: %s.", name)
		}
	}

	columns := make([]*Column, len(def.Columns))
	copy(columns, def.Columns)
	key := make([]string, len(def.PrimaryKey))
	copy(key, def.PrimaryKey)

	return &Entity{
		schema:  schema,
		table:   table,
		columns: columns,
		index:   index,
		pk:      PrimaryKey{columns: key},
	}, nil
}

// Schema returns the normalized schema name.
func (e *Entity) Schema() string { return e.schema }

// Table returns the normalized table name.
func (e *Entity) Table() string { return e.table }

// QualifiedName returns "schema.table".
func (e *Entity) QualifiedName() string { return e.schema + "." + e.table }

// Columns returns the columns in declaration order. The slice is a copy;
// the columns themselves are immutable and safe to share.
func (e *Entity) Columns() []*Column {
	out := make([]*Column, len(e.columns))
	copy(out, e.columns)
	return out
}

// FindColumn looks a column up by its exact normalized name. A miss is
// reported through the boolean, never an error.
func (e *Entity) FindColumn(name string) (*Column, bool) {
	i, ok := e.index[name]
	if !ok {
		return nil, false
	}
	return e.columns[i], true
}

// PrimaryKey returns the entity's primary key.
func (e *Entity) PrimaryKey() PrimaryKey { return e.pk }

// PrimaryKey is the ordered, non-empty set of column names identifying a
// row. Order matters for rendering and equality; membership does not.
type PrimaryKey struct {
	columns []string
}

// Columns returns the key's column names in declaration order.
func (pk PrimaryKey) Columns() []string {
	out := make([]string, len(pk.columns))
	copy(out, pk.columns)
	return out
}

// Len returns the number of key columns.
func (pk PrimaryKey) Len() int { return len(pk.columns) }

// IsComposite reports whether the key spans more than one column.
func (pk PrimaryKey) IsComposite() bool { return len(pk.columns) > 1 }

// Contains reports whether name is part of the key, regardless of order.
func (pk PrimaryKey) Contains(name string) bool {
	for _, c := range pk.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Equal reports whether both keys list the same columns in the same order.
func (pk PrimaryKey) Equal(other PrimaryKey) bool {
	if len(pk.columns) != len(other.columns) {
		return false
	}
	for i, c := range pk.columns {
		if other.columns[i] != c {
			return false
		}
	}
	return true
}
