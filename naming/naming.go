// Package naming converts Go identifiers into database column and
// table names. A FieldMapper is a pure function over identifiers and
// must return the same output for the same input.
package naming

import (
	"strings"
	"sync"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton so cardinality decisions stay
// consistent across mappers.
var pluralizeClient = pluralizer.NewClient()

// FieldMapper converts a Go field or struct name to its database
// counterpart.
type FieldMapper interface {
	MapName(name string) string
}

// MapperFunc adapts a plain function to a FieldMapper.
type MapperFunc func(string) string

func (f MapperFunc) MapName(name string) string { return f(name) }

// Built-in mappers.
var (
	// Identical keeps the name untouched.
	Identical FieldMapper = MapperFunc(func(s string) string { return s })

	// Lower maps names to all lowercase.
	Lower FieldMapper = MapperFunc(strings.ToLower)

	// Upper maps names to all uppercase.
	Upper FieldMapper = MapperFunc(strings.ToUpper)

	// SnakeCase maps FirstName to first_name.
	SnakeCase FieldMapper = MapperFunc(ToSnakeCase)

	// CamelCase maps first_name to firstName.
	CamelCase FieldMapper = MapperFunc(ToCamelCase)

	// PascalCase maps first_name to FirstName.
	PascalCase FieldMapper = MapperFunc(ToPascalCase)
)

// Prefix returns a mapper that applies base and prepends p.
func Prefix(p string, base FieldMapper) FieldMapper {
	return MapperFunc(func(s string) string { return p + base.MapName(s) })
}

// Suffix returns a mapper that applies base and appends s.
func Suffix(suf string, base FieldMapper) FieldMapper {
	return MapperFunc(func(s string) string { return base.MapName(s) + suf })
}

// Chain composes mappers left to right.
func Chain(mappers ...FieldMapper) FieldMapper {
	return MapperFunc(func(s string) string {
		for _, m := range mappers {
			s = m.MapName(s)
		}
		return s
	})
}

var (
	defaultMu     sync.Mutex
	defaultMapper FieldMapper = SnakeCase
	overrideMu    sync.Mutex
)

// DefaultMapper returns the process-wide mapper used when none is
// given explicitly.
func DefaultMapper() FieldMapper {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultMapper
}

// SetDefaultMapper swaps the process-wide mapper and returns the
// previous one.
func SetDefaultMapper(m FieldMapper) FieldMapper {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	old := defaultMapper
	defaultMapper = m
	return old
}

// OverrideMapper installs m as the default and returns a restore
// func. Overrides are serialized so concurrent scopes cannot
// interleave; restore is safe to call more than once.
func OverrideMapper(m FieldMapper) (restore func()) {
	overrideMu.Lock()
	old := SetDefaultMapper(m)
	var once sync.Once
	return func() {
		once.Do(func() {
			SetDefaultMapper(old)
			overrideMu.Unlock()
		})
	}
}

// TableName derives a plural snake_case table name from a struct
// name, e.g. BlogPost becomes blog_posts.
func TableName(structName string) string {
	return Pluralize(ToSnakeCase(structName))
}

// Pluralize converts a singular noun to its plural form, preserving
// the case pattern of the input.
func Pluralize(name string) string {
	if name == "" {
		return ""
	}
	plural := pluralizeClient.Pluralize(name, 2, false)
	return preserveCase(name, plural)
}

// Singularize converts a plural noun to its singular form.
func Singularize(name string) string {
	if name == "" {
		return ""
	}
	singular := pluralizeClient.Pluralize(name, 1, false)
	return preserveCase(name, singular)
}

// ToSnakeCase converts any naming convention to snake_case. Acronym
// runs collapse into a single word: HTTPServer becomes http_server.
func ToSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	// Already snake_case.
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 8)

	runes := []rune(name)
	for i, r := range runes {
		needsUnderscore := false
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// aB -> a_b, a1B -> a1_b, ABc -> a_bc
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				needsUnderscore = true
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				needsUnderscore = true
			}
		}
		if needsUnderscore {
			result.WriteByte('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// ToCamelCase converts any naming convention to camelCase.
func ToCamelCase(name string) string {
	pascal := ToPascalCase(name)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToPascalCase converts any naming convention to PascalCase.
func ToPascalCase(name string) string {
	if name == "" {
		return ""
	}

	snake := ToSnakeCase(name)
	parts := strings.Split(snake, "_")

	var result strings.Builder
	result.Grow(len(name))
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		result.WriteString(string(runes))
	}
	return result.String()
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// preserveCase applies original's case pattern to result.
func preserveCase(original, result string) string {
	if original == "" || result == "" {
		return result
	}
	if strings.ToLower(original) == original {
		return strings.ToLower(result)
	}
	if strings.ToUpper(original) == original {
		return strings.ToUpper(result)
	}
	if unicode.IsUpper(rune(original[0])) {
		return strings.ToUpper(result[:1]) + result[1:]
	}
	return strings.ToLower(result)
}
