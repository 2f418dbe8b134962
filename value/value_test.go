package value

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"Nil", nil, KindNull},
		{"Bool", true, KindBool},
		{"Int", 42, KindInt64},
		{"Int8", int8(1), KindInt64},
		{"Int64", int64(42), KindInt64},
		{"Uint", uint(7), KindUint64},
		{"Uint64", uint64(7), KindUint64},
		{"Float32", float32(1.5), KindFloat64},
		{"Float64", 1.5, KindFloat64},
		{"String", "abc", KindString},
		{"Bytes", []byte("abc"), KindBytes},
		{"Time", time.Now(), KindTime},
		{"Struct", struct{ X int }{1}, KindAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Of(tt.in).Kind())
		})
	}
}

func TestOfPassthrough(t *testing.T) {
	v := Raw("NOW()")
	assert.Equal(t, v, Of(v))
}

func TestOfPointers(t *testing.T) {
	var p *int
	assert.Equal(t, KindNull, Of(p).Kind())

	n := 42
	v := Of(&n)
	assert.Equal(t, KindInt64, v.Kind())
	assert.Equal(t, int64(42), v.Int64())
}

func TestOfIdentifiers(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	v := Of(id)
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, id.String(), v.Str())

	u := ulid.MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	v = Of(u)
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, u.String(), v.Str())
}

type stubValuer struct {
	v Value
}

func (s stubValuer) SQLValue() (Value, error) { return s.v, nil }

func TestOfValuer(t *testing.T) {
	v := Of(stubValuer{v: Int(7)})
	require.Equal(t, KindValuer, v.Kind())

	resolved, err := v.Resolve()
	require.NoError(t, err)
	assert.Equal(t, KindInt64, resolved.Kind())
	assert.Equal(t, int64(7), resolved.Int64())
}

type nullString struct {
	s     string
	valid bool
}

func (n nullString) Value() (driver.Value, error) {
	if !n.valid {
		return nil, nil
	}
	return n.s, nil
}

func TestOfDriverValuer(t *testing.T) {
	v := Of(nullString{s: "abc", valid: true})
	require.Equal(t, KindValuer, v.Kind())

	resolved, err := v.Resolve()
	require.NoError(t, err)
	assert.Equal(t, KindString, resolved.Kind())
	assert.Equal(t, "abc", resolved.Str())

	v = Of(nullString{})
	resolved, err = v.Resolve()
	require.NoError(t, err)
	assert.Equal(t, KindNull, resolved.Kind())
}

func TestNamed(t *testing.T) {
	v := Named("user_id", 42)
	assert.Equal(t, KindNamed, v.Kind())
	assert.Equal(t, "user_id", v.BindName())
	assert.Equal(t, int64(42), v.Inner().Int64())

	// The zero Value is Null, and so is an unwrapped Inner.
	assert.Equal(t, KindNull, Value{}.Kind())
}

func TestListAndTuple(t *testing.T) {
	l := List(1, "a", true)
	require.Equal(t, KindList, l.Kind())
	require.Len(t, l.Items(), 3)
	assert.Equal(t, KindInt64, l.Items()[0].Kind())
	assert.Equal(t, KindString, l.Items()[1].Kind())

	tp := Tuple(1, 2)
	assert.Equal(t, KindTuple, tp.Kind())
	assert.Len(t, tp.Items(), 2)
}

func TestNative(t *testing.T) {
	stamp := time.Now()

	tests := []struct {
		name string
		in   Value
		want any
	}{
		{"Null", Null(), nil},
		{"Bool", Bool(true), true},
		{"Int", Int(42), int64(42)},
		{"Uint", Uint(7), uint64(7)},
		{"Float", Float(1.5), 1.5},
		{"String", String("abc"), "abc"},
		{"Time", Time(stamp), stamp},
		{"Named", Named("n", 42), int64(42)},
		{"Valuer", FromValuer(stubValuer{v: String("x")}), "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Native()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Raw("NOW()").Native()
	assert.Error(t, err)
	_, err = List(1, 2).Native()
	assert.Error(t, err)
}
