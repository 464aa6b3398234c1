package meta

// ColumnDef is the raw, caller-supplied column definition handed to
// NewColumn. Length and Precision use 0 for "absent"; Scale is a pointer
// because an explicit scale of 0 differs from no scale.
type ColumnDef struct {
	Name      string
	Type      SQLType
	Nullable  bool
	Default   Default
	Length    int
	Precision int
	Scale     *int
}

// Column is a fully validated, immutable column description. A Column can
// only be obtained from NewColumn, so holding one is proof that every
// shape and default invariant holds; consumers such as DDL renderers must
// not re-validate.
type Column struct {
	name      string
	typ       SQLType
	nullable  bool
	def       Default
	length    int
	precision int
	scale     *int
}

// NewColumn normalizes the name, validates the shape and the default
// compatibility in that order, and returns the immutable column. On any
// violation it returns a nil column and the first error; no partially
// built value ever escapes.
func NewColumn(def ColumnDef) (*Column, error) {
	name := Normalize(def.Name)

	if err := ValidateShape(name, def.Type, def.Length, def.Precision, def.Scale); err != nil {
		return nil, err
	}
	if err := ValidateDefault(def.Type, def.Default, def.Length, def.Precision, def.Scale); err != nil {
		return nil, err
	}

	col := &Column{
		name:     name,
		typ:      def.Type,
		nullable: def.Nullable,
		def:      def.Default,
	}
	if def.Type.SupportsLength() {
		col.length = def.Length
	}
	if def.Type.SupportsPrecisionScale() {
		col.precision = def.Precision
		s := 0
		if def.Scale != nil {
			s = *def.Scale
		}
		col.scale = &s
	}
	return col, nil
}

// Name returns the normalized column identifier.
func (c *Column) Name() string { return c.name }

// Type returns the declared column type.
func (c *Column) Type() SQLType { return c.typ }

// Nullable reports whether the column accepts NULL.
func (c *Column) Nullable() bool { return c.nullable }

// Default returns the column's default descriptor.
func (c *Column) Default() Default { return c.def }

// Length returns the character length and whether one is set. It is set
// exactly when the type supports a length.
func (c *Column) Length() (int, bool) {
	if !c.typ.SupportsLength() {
		return 0, false
	}
	return c.length, true
}

// Precision returns the numeric precision and whether one is set.
func (c *Column) Precision() (int, bool) {
	if !c.typ.SupportsPrecisionScale() {
		return 0, false
	}
	return c.precision, true
}

// Scale returns the numeric scale and whether one is set. An absent scale
// on a precision-bearing column reads as an explicit 0.
func (c *Column) Scale() (int, bool) {
	if c.scale == nil {
		return 0, false
	}
	return *c.scale, true
}
