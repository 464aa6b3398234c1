package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumnEmptyName(t *testing.T) {
	col, err := NewColumn(ColumnDef{Name: "", Type: TypeInteger})
	require.Error(t, err)
	assert.Nil(t, col)
	assert.Equal(t, "Column name cannot be empty.", err.Error())
}

func TestNewColumnNormalizesName(t *testing.T) {
	col, err := NewColumn(ColumnDef{Name: "CrèmeBrûlée", Type: TypeText})
	require.NoError(t, err)
	assert.Equal(t, "creme_brulee", col.Name())

	col, err = NewColumn(ColumnDef{Name: "HTTPServerID", Type: TypeText})
	require.NoError(t, err)
	assert.Equal(t, "http_server_id", col.Name())
}

func TestNewColumnReservedNameAfterNormalization(t *testing.T) {
	col, err := NewColumn(ColumnDef{Name: "Select", Type: TypeInteger})
	require.Error(t, err)
	assert.Nil(t, col)
	assert.Contains(t, err.Error(), "reserved word")
}

func TestNewColumnShapeBeforeDefault(t *testing.T) {
	// Both the shape and the default are invalid; the shape error wins
	// because shape validation runs first.
	col, err := NewColumn(ColumnDef{
		Name:    "data",
		Type:    TypeVarchar,
		Default: Literal(nil),
	})
	require.Error(t, err)
	assert.Nil(t, col)
	assert.Contains(t, err.Error(), "requires a positive length")
}

func TestNewColumnJSONBDefaults(t *testing.T) {
	col, err := NewColumn(ColumnDef{Name: "data", Type: TypeJSONB, Default: Literal(map[string]any{})})
	require.Error(t, err)
	assert.Nil(t, col)

	col, err = NewColumn(ColumnDef{Name: "data", Type: TypeJSONB, Default: Expression("'{}'::jsonb")})
	require.NoError(t, err)
	assert.Equal(t, DefaultExpression, col.Default().Kind())
	assert.Equal(t, "'{}'::jsonb", col.Default().Expr())
}

func TestNewColumnNumericPrecisionOverflow(t *testing.T) {
	col, err := NewColumn(ColumnDef{
		Name:      "price",
		Type:      TypeNumeric,
		Precision: 5,
		Scale:     intPtr(2),
		Default:   Literal(123.456),
	})
	require.Error(t, err)
	assert.Nil(t, col)
	assert.Equal(t, "NUMERIC literal default exceeds precision/scale constraints.", err.Error())
}

func TestColumnShapeAccessors(t *testing.T) {
	col, err := NewColumn(ColumnDef{Name: "title", Type: TypeVarchar, Length: 120})
	require.NoError(t, err)

	length, ok := col.Length()
	assert.True(t, ok)
	assert.Equal(t, 120, length)

	_, ok = col.Precision()
	assert.False(t, ok)
	_, ok = col.Scale()
	assert.False(t, ok)
}

func TestColumnShapeAccessorsAbsentForNonShapedTypes(t *testing.T) {
	col, err := NewColumn(ColumnDef{Name: "id", Type: TypeInteger})
	require.NoError(t, err)

	_, ok := col.Length()
	assert.False(t, ok)
	_, ok = col.Precision()
	assert.False(t, ok)
	_, ok = col.Scale()
	assert.False(t, ok)
}

func TestColumnScaleDefaultsToZero(t *testing.T) {
	col, err := NewColumn(ColumnDef{Name: "price", Type: TypeNumeric, Precision: 8})
	require.NoError(t, err)

	precision, ok := col.Precision()
	assert.True(t, ok)
	assert.Equal(t, 8, precision)

	scale, ok := col.Scale()
	assert.True(t, ok)
	assert.Equal(t, 0, scale)
}

func TestColumnNullableAndType(t *testing.T) {
	col, err := NewColumn(ColumnDef{Name: "deleted_at", Type: TypeTimestampTZ, Nullable: true})
	require.NoError(t, err)
	assert.True(t, col.Nullable())
	assert.Equal(t, TypeTimestampTZ, col.Type())
	assert.True(t, col.Default().IsNone())
}
