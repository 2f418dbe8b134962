// Package builder renders SQL text and an ordered argument sequence
// from composable templates. Three template dialects share one
// pipeline: structural expansion into a flat segment sequence, then a
// single placeholder-assignment walk that consults the active dialect.
package builder

import (
	"strings"

	"github.com/verdane/sqlfrag/dialect"
	"github.com/verdane/sqlfrag/value"
)

type templateMode int

const (
	modeIndex templateMode = iota
	modePrintf
	modeNamed
)

// Template is a parsed-on-demand SQL fragment. It implements
// value.Builder, so templates nest inside each other and inside any
// other render-capable artifact.
type Template struct {
	mode      templateMode
	format    string
	args      *Args
	namedVals map[string]value.Value
	d         dialect.Dialect // explicit override; nil defers to args
}

// Build creates an index template. Markers: $? consumes the next
// unused value, $N consumes values[N] (and moves the cursor to N+1),
// ${name} consumes a value registered with value.Named, $$ emits a
// literal dollar.
func Build(format string, args ...any) *Template {
	a := NewArgs()
	for _, arg := range args {
		a.add(value.Of(arg))
	}
	return &Template{mode: modeIndex, format: format, args: a}
}

// Buildf creates a printf-style template. %v and %s consume values
// one-to-one, %% emits a literal percent. Verb and value counts must
// agree exactly.
func Buildf(format string, args ...any) *Template {
	a := NewArgs()
	for _, arg := range args {
		a.add(value.Of(arg))
	}
	return &Template{mode: modePrintf, format: format, args: a}
}

// BuildNamed creates a named template: ${name} markers are looked up
// in the supplied map. Scalar entries keep their name, so dialects
// with named-bind support render them inline; raw, list and tuple
// entries expand structurally as themselves.
func BuildNamed(format string, named map[string]any) *Template {
	m := make(map[string]value.Value, len(named))
	for k, v := range named {
		m[k] = value.Named(k, v)
	}
	return &Template{mode: modeNamed, format: format, args: NewArgs(), namedVals: m}
}

// Dialect returns the template's explicit dialect, or the process
// default captured when the template was created.
func (t *Template) Dialect() dialect.Dialect {
	if t.d != nil {
		return t.d
	}
	return t.args.d
}

// Build renders with the template's dialect.
func (t *Template) Build() (string, []value.Value, error) {
	return t.BuildWithFlavor(t.Dialect())
}

// BuildWithFlavor renders with an explicit dialect. The dialect is
// threaded through every nested artifact; initial seeds the args
// sequence so placeholder numbers continue from the enclosing query.
func (t *Template) BuildWithFlavor(d dialect.Dialect, initial ...value.Value) (string, []value.Value, error) {
	segs, slots, err := t.expand()
	if err != nil {
		return "", nil, err
	}
	return assign(segs, slots, d, initial)
}

// WithFlavor binds a default dialect to a builder without rebuilding
// it. BuildWithFlavor on the result still honors an explicit dialect.
func WithFlavor(b value.Builder, d dialect.Dialect) value.Builder {
	return flavored{inner: b, d: d}
}

type flavored struct {
	inner value.Builder
	d     dialect.Dialect
}

func (f flavored) Build() (string, []value.Value, error) {
	return f.inner.BuildWithFlavor(f.d)
}

func (f flavored) BuildWithFlavor(d dialect.Dialect, initial ...value.Value) (string, []value.Value, error) {
	return f.inner.BuildWithFlavor(d, initial...)
}

func (f flavored) Dialect() dialect.Dialect { return f.d }

// Escape doubles every dollar so arbitrary text survives an index
// template unchanged.
func Escape(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// EscapeAll escapes every string in the list.
func EscapeAll(ss ...string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, Escape(s))
	}
	return out
}
