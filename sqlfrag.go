// Package sqlfrag composes SQL text and bind arguments from
// templates. Fragments nest: any Builder can be used as a value
// inside another template, and placeholder numbering stays global
// across the whole tree for dialects that number their parameters.
package sqlfrag

import (
	"github.com/verdane/sqlfrag/builder"
	"github.com/verdane/sqlfrag/dialect"
	"github.com/verdane/sqlfrag/value"
)

// Core types.
type (
	Template = builder.Template
	Args     = builder.Args
	Builder  = value.Builder
	Valuer   = value.Valuer
	Value    = value.Value
	Dialect  = dialect.Dialect
)

// Dialect singletons.
var (
	MySQL      = dialect.MySQL
	PostgreSQL = dialect.PostgreSQL
	SQLite     = dialect.SQLite
	SQLServer  = dialect.SQLServer
	Oracle     = dialect.Oracle
	CQL        = dialect.CQL
	ClickHouse = dialect.ClickHouse
	Presto     = dialect.Presto
	Informix   = dialect.Informix
	Doris      = dialect.Doris
)

// Build parses format with indexed placeholders ($?, $0, ${name})
// and binds args positionally.
func Build(format string, args ...any) *Template {
	return builder.Build(format, args...)
}

// Buildf parses format with printf-style verbs (%v binds, %s splices).
func Buildf(format string, args ...any) *Template {
	return builder.Buildf(format, args...)
}

// BuildNamed parses format resolving ${name} from the given map.
func BuildNamed(format string, named map[string]any) *Template {
	return builder.BuildNamed(format, named)
}

// WithFlavor pins b to always render with d.
func WithFlavor(b Builder, d Dialect) Builder {
	return builder.WithFlavor(b, d)
}

// NewArgs returns an empty argument accumulator bound to the default
// dialect.
func NewArgs() *Args { return builder.NewArgs() }

// Interpolate replaces the placeholders of a rendered query with
// dialect literals.
func Interpolate(d Dialect, query string, args ...any) (string, error) {
	return builder.Interpolate(d, query, args...)
}

// Value constructors, re-exported for template arguments.
var (
	Raw   = value.Raw
	List  = value.List
	Tuple = value.Tuple
	Named = value.Named
)

// DefaultDialect returns the process-wide dialect.
func DefaultDialect() Dialect { return dialect.Default() }

// SetDefaultDialect swaps the process-wide dialect and returns the
// previous one.
func SetDefaultDialect(d Dialect) Dialect { return dialect.SetDefault(d) }

// OverrideDialect installs d as the default for a scope and returns
// the restore func.
func OverrideDialect(d Dialect) (restore func()) { return dialect.Override(d) }

// Escape doubles every $ in s so it survives indexed parsing as a
// literal.
func Escape(s string) string { return builder.Escape(s) }

// EscapeAll escapes every string in ss.
func EscapeAll(ss ...string) []string { return builder.EscapeAll(ss...) }
