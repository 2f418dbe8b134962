package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ID", "id"},
		{"FirstName", "first_name"},
		{"userID", "user_id"},
		{"HTTPServer", "http_server"},
		{"OAuth2Token", "o_auth2_token"},
		{"already_snake", "already_snake"},
		{"a1B", "a1_b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToSnakeCase(tt.in), tt.in)
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "firstName", ToCamelCase("first_name"))
	assert.Equal(t, "firstName", ToCamelCase("FirstName"))
	assert.Equal(t, "id", ToCamelCase("ID"))
	assert.Equal(t, "", ToCamelCase(""))
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "FirstName", ToPascalCase("first_name"))
	assert.Equal(t, "FirstName", ToPascalCase("firstName"))
	assert.Equal(t, "Id", ToPascalCase("id"))
}

func TestBuiltinMappers(t *testing.T) {
	assert.Equal(t, "FirstName", Identical.MapName("FirstName"))
	assert.Equal(t, "firstname", Lower.MapName("FirstName"))
	assert.Equal(t, "FIRSTNAME", Upper.MapName("FirstName"))
	assert.Equal(t, "first_name", SnakeCase.MapName("FirstName"))
	assert.Equal(t, "firstName", CamelCase.MapName("first_name"))
	assert.Equal(t, "FirstName", PascalCase.MapName("first_name"))
}

func TestMapperCombinators(t *testing.T) {
	m := Prefix("tbl_", SnakeCase)
	assert.Equal(t, "tbl_first_name", m.MapName("FirstName"))

	m = Suffix("_col", SnakeCase)
	assert.Equal(t, "first_name_col", m.MapName("FirstName"))

	m = Chain(SnakeCase, Upper)
	assert.Equal(t, "FIRST_NAME", m.MapName("FirstName"))
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "users", TableName("User"))
	assert.Equal(t, "blog_posts", TableName("BlogPost"))
	assert.Equal(t, "people", TableName("Person"))
}

func TestPluralizeRoundTrip(t *testing.T) {
	tests := []struct {
		singular string
		plural   string
	}{
		{"user", "users"},
		{"category", "categories"},
		{"person", "people"},
		{"box", "boxes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.plural, Pluralize(tt.singular))
		assert.Equal(t, tt.singular, Singularize(tt.plural))
	}
}

func TestPluralizePreservesCase(t *testing.T) {
	assert.Equal(t, "Users", Pluralize("User"))
	assert.Equal(t, "USERS", Pluralize("USER"))
}

func TestDefaultMapperOverride(t *testing.T) {
	assert.Equal(t, "first_name", DefaultMapper().MapName("FirstName"))

	restore := OverrideMapper(CamelCase)
	assert.Equal(t, "firstName", DefaultMapper().MapName("FirstName"))

	restore()
	assert.Equal(t, "first_name", DefaultMapper().MapName("FirstName"))

	restore()
	assert.Equal(t, "first_name", DefaultMapper().MapName("FirstName"))
}
