package toml

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgmapper/meta"
)

func testdataPath(file string) string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "..", "..", "test", "data", file)
}

func TestParseFileSchemaToml(t *testing.T) {
	p := NewParser()
	schema, err := p.ParseFile(testdataPath("schema.toml"))
	require.NoError(t, err)
	require.NotNil(t, schema)

	assert.Equal(t, "crm", schema.Name)
	require.Len(t, schema.Entities, 3)

	want := []string{"tenants", "users", "user_tenants"}
	for i, name := range want {
		assert.Equal(t, name, schema.Entities[i].Table())
	}
}

func TestParseFileTenants(t *testing.T) {
	p := NewParser()
	schema, err := p.ParseFile(testdataPath("schema.toml"))
	require.NoError(t, err)

	tenants, ok := schema.FindEntity("tenants")
	require.True(t, ok)
	assert.Equal(t, "public", tenants.Schema())
	assert.Equal(t, []string{"id"}, tenants.PrimaryKey().Columns())

	name, ok := tenants.FindColumn("name")
	require.True(t, ok)
	assert.Equal(t, meta.TypeVarchar, name.Type())
	length, ok := name.Length()
	require.True(t, ok)
	assert.Equal(t, 120, length)

	settings, ok := tenants.FindColumn("settings")
	require.True(t, ok)
	assert.Equal(t, meta.DefaultExpression, settings.Default().Kind())
	assert.Equal(t, "'{}'::jsonb", settings.Default().Expr())

	active, ok := tenants.FindColumn("active")
	require.True(t, ok)
	assert.Equal(t, meta.DefaultLiteral, active.Default().Kind())
	assert.Equal(t, true, active.Default().Value())
}

func TestParseFileUsersNumericColumn(t *testing.T) {
	p := NewParser()
	schema, err := p.ParseFile(testdataPath("schema.toml"))
	require.NoError(t, err)

	users, ok := schema.FindEntity("users")
	require.True(t, ok)

	balance, ok := users.FindColumn("balance")
	require.True(t, ok)
	assert.Equal(t, meta.TypeNumeric, balance.Type())

	precision, ok := balance.Precision()
	require.True(t, ok)
	assert.Equal(t, 12, precision)

	scale, ok := balance.Scale()
	require.True(t, ok)
	assert.Equal(t, 2, scale)
}

func TestParseFileEntitySchemaOverride(t *testing.T) {
	p := NewParser()
	schema, err := p.ParseFile(testdataPath("schema.toml"))
	require.NoError(t, err)

	ut, ok := schema.FindEntity("user_tenants")
	require.True(t, ok)
	assert.Equal(t, "accounts", ut.Schema())
	assert.Equal(t, []string{"tenant_id", "user_id"}, ut.PrimaryKey().Columns())
}

func TestParseUnsupportedType(t *testing.T) {
	doc := `
[[entities]]
table = "t"
primary_key = ["id"]

  [[entities.columns]]
  name = "id"
  type = "tinyint"
`
	_, err := NewParser().Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported type "tinyint"`)
}

func TestParseTypeAliases(t *testing.T) {
	doc := `
[[entities]]
table = "t"
primary_key = ["id"]

  [[entities.columns]]
  name = "id"
  type = "INT8"

  [[entities.columns]]
  name = "note"
  type = "character varying"
  length = 10
`
	schema, err := NewParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)

	entity := schema.Entities[0]
	id, _ := entity.FindColumn("id")
	assert.Equal(t, meta.TypeBigInt, id.Type())
	note, _ := entity.FindColumn("note")
	assert.Equal(t, meta.TypeVarchar, note.Type())
}

func TestParseDefaultAndExprMutuallyExclusive(t *testing.T) {
	doc := `
[[entities]]
table = "t"
primary_key = ["id"]

  [[entities.columns]]
  name = "id"
  type = "integer"
  default = 1
  default_expr = "nextval('t_id_seq')"
`
	_, err := NewParser().Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestParsePropagatesValidationErrors(t *testing.T) {
	doc := `
[[entities]]
table = "t"
primary_key = ["missing"]

  [[entities.columns]]
  name = "id"
  type = "integer"
`
	_, err := NewParser().Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Primary key references undefined column: missing.")
}

func TestParseRejectsInvalidDefaultForType(t *testing.T) {
	doc := `
[[entities]]
table = "t"
primary_key = ["id"]

  [[entities.columns]]
  name = "id"
  type = "integer"

  [[entities.columns]]
  name = "created_at"
  type = "timestamp"
  default_expr = "random()"
`
	_, err := NewParser().Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an allowed timestamp function")
}
