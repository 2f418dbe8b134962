// Package value defines the tagged union of SQL argument values used
// by the template renderers: bindable scalars, verbatim raw SQL,
// lists/tuples that expand into sibling slots, named scalars, and
// references to nested render-capable builders.
package value

import "time"

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindUint64
	KindFloat64
	KindString
	KindBytes
	KindTime
	KindRaw
	KindList
	KindTuple
	KindNamed
	KindBuilder
	KindValuer
	KindAny
)

// Value is one SQL argument. The zero Value is Null.
//
// Raw values splice verbatim SQL text: they never escape, never bind
// and never occupy a placeholder slot. List and Tuple expand into one
// slot per element. Named values carry a bind name for the dialects
// that support inline named placeholders. Builder values splice a
// nested artifact's text and args at their position.
type Value struct {
	kind Kind

	b     bool
	i     int64
	u     uint64
	f     float64
	s     string // string payload, raw SQL text, or bind name
	bytes []byte
	t     time.Time
	items []Value
	inner *Value
	bld   Builder
	vlr   Valuer
	any   any
}

func (v Value) Kind() Kind { return v.kind }

// Null returns the SQL NULL value.
func Null() Value { return Value{kind: KindNull} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(i int64) Value { return Value{kind: KindInt64, i: i} }

func Uint(u uint64) Value { return Value{kind: KindUint64, u: u} }

func Float(f float64) Value { return Value{kind: KindFloat64, f: f} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func Bytes(data []byte) Value { return Value{kind: KindBytes, bytes: data} }

func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Raw marks expr as literal SQL to splice verbatim. Raw text is not
// escaped and contributes no argument.
func Raw(expr string) Value { return Value{kind: KindRaw, s: expr} }

// List expands to one slot per element, joined by ", ".
func List(vals ...any) Value {
	return Value{kind: KindList, items: ofAll(vals)}
}

// Tuple is List wrapped in parentheses.
func Tuple(vals ...any) Value {
	return Value{kind: KindTuple, items: ofAll(vals)}
}

// Named attaches a bind name to a value. Dialects with named-bind
// support render it as an inline named placeholder; others fall back
// to a positional slot on the wrapped value.
func Named(name string, val any) Value {
	inner := Of(val)
	return Value{kind: KindNamed, s: name, inner: &inner}
}

// FromBuilder wraps a nested render-capable artifact.
func FromBuilder(b Builder) Value { return Value{kind: KindBuilder, bld: b} }

// FromValuer wraps a deferred value computed at build time.
func FromValuer(v Valuer) Value { return Value{kind: KindValuer, vlr: v} }

// Any carries an arbitrary driver-native argument. It binds
// positionally as-is; interpolation cannot express it as a literal.
func Any(v any) Value { return Value{kind: KindAny, any: v} }

func ofAll(vals []any) []Value {
	out := make([]Value, 0, len(vals))
	for _, v := range vals {
		out = append(out, Of(v))
	}
	return out
}

// Accessors. Each is meaningful only for the matching kind.

func (v Value) BoolVal() bool       { return v.b }
func (v Value) Int64() int64        { return v.i }
func (v Value) Uint64() uint64      { return v.u }
func (v Value) Float64() float64    { return v.f }
func (v Value) Str() string         { return v.s }
func (v Value) BytesVal() []byte    { return v.bytes }
func (v Value) TimeVal() time.Time  { return v.t }
func (v Value) RawSQL() string      { return v.s }
func (v Value) Items() []Value      { return v.items }
func (v Value) BindName() string    { return v.s }
func (v Value) BuilderRef() Builder { return v.bld }
func (v Value) AnyVal() any         { return v.any }

// Inner returns the value wrapped by a Named.
func (v Value) Inner() Value {
	if v.inner == nil {
		return Null()
	}
	return *v.inner
}

// Resolve evaluates deferred valuers until a concrete variant remains.
func (v Value) Resolve() (Value, error) {
	for v.kind == KindValuer {
		rv, err := v.vlr.SQLValue()
		if err != nil {
			return Value{}, err
		}
		v = rv
	}
	return v, nil
}
