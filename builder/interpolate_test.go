package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdane/sqlfrag/dialect"
	"github.com/verdane/sqlfrag/value"
)

func TestTemplateInterpolate(t *testing.T) {
	b := Build("SELECT $?, $?, $? FROM t WHERE s = $?", 1, 1.5, true, "it's")

	got, err := b.Interpolate(dialect.MySQL)
	require.NoError(t, err)
	assert.Equal(t, `SELECT 1, 1.5, TRUE FROM t WHERE s = 'it\'s'`, got)
}

func TestTemplateInterpolateKinds(t *testing.T) {
	stamp := time.Date(2023, 3, 8, 14, 5, 9, 0, time.UTC)

	tests := []struct {
		name string
		d    dialect.Dialect
		arg  any
		want string
	}{
		{"Null", dialect.MySQL, nil, "v = NULL"},
		{"Uint", dialect.MySQL, uint64(7), "v = 7"},
		{"Bytes", dialect.SQLite, []byte("abc"), "v = X'616263'"},
		{"Time", dialect.MySQL, stamp, "v = '2023-03-08 14:05:09.000000'"},
		{"Raw", dialect.MySQL, value.Raw("NOW()"), "v = NOW()"},
		{"List", dialect.MySQL, value.List(1, "a"), "v = 1, 'a'"},
		{"Named", dialect.MySQL, value.Named("n", 5), "v = 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build("v = $?", tt.arg).Interpolate(tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateInterpolateNested(t *testing.T) {
	inner := Build("price > $?", 10)
	outer := Build("SELECT * FROM t WHERE $? AND name = $?", inner, "x")

	got, err := outer.Interpolate(dialect.PostgreSQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE price > 10 AND name = E'x'", got)
}

func TestTemplateInterpolateUnsupported(t *testing.T) {
	_, err := Build("v = $?", value.Any(struct{}{})).Interpolate(dialect.MySQL)
	assert.ErrorIs(t, err, dialect.ErrUnsupportedLiteral)

	_, err = Build("v = $?", []byte("abc")).Interpolate(dialect.Informix)
	assert.ErrorIs(t, err, dialect.ErrUnsupportedLiteral)
}

func TestInterpolateQuestion(t *testing.T) {
	tests := []struct {
		name  string
		query string
		args  []any
		want  string
	}{
		{
			"Basic",
			"SELECT * FROM t WHERE s = ? AND n = ?",
			[]any{"it's", 42},
			`SELECT * FROM t WHERE s = 'it\'s' AND n = 42`,
		},
		{
			"QuoteSkipsPlaceholder",
			"SELECT '?', ? FROM t",
			[]any{1},
			"SELECT '?', 1 FROM t",
		},
		{
			"BacktickQuote",
			"SELECT `a?b`, ?",
			[]any{1},
			"SELECT `a?b`, 1",
		},
		{
			"EscapedQuoteInString",
			`SELECT 'a\'?', ?`,
			[]any{1},
			`SELECT 'a\'?', 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interpolate(dialect.MySQL, tt.query, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpolateQuestionArity(t *testing.T) {
	_, err := Interpolate(dialect.MySQL, "a = ? AND b = ?", 1)
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestInterpolateDollar(t *testing.T) {
	tests := []struct {
		name  string
		query string
		args  []any
		want  string
	}{
		{
			"Basic",
			"SELECT * FROM t WHERE a = $1 AND b = $2",
			[]any{42, "x"},
			"SELECT * FROM t WHERE a = 42 AND b = E'x'",
		},
		{
			"Reuse",
			"a = $1 OR b = $1",
			[]any{7},
			"a = 7 OR b = 7",
		},
		{
			"DoubledQuoteInString",
			"SELECT 'it''s $1', $1",
			[]any{9},
			"SELECT 'it''s $1', 9",
		},
		{
			"DollarQuote",
			"SELECT $tag$ $1 $tag$, $1",
			[]any{9},
			"SELECT $tag$ $1 $tag$, 9",
		},
		{
			"BareDollar",
			"SELECT a$b, $1",
			[]any{9},
			"SELECT a$b, 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interpolate(dialect.PostgreSQL, tt.query, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Interpolate(dialect.PostgreSQL, "a = $2", 1)
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestInterpolateAtP(t *testing.T) {
	got, err := Interpolate(dialect.SQLServer, "a = @p1 AND b = @P2 AND c = '@p1'", 1, "x")
	require.NoError(t, err)
	assert.Equal(t, "a = 1 AND b = N'x' AND c = '@p1'", got)

	_, err = Interpolate(dialect.SQLServer, "a = @p3", 1)
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestInterpolateColon(t *testing.T) {
	got, err := Interpolate(dialect.Oracle, "a = :1 AND b = :2", 42, "x")
	require.NoError(t, err)
	assert.Equal(t, `a = 42 AND b = 'x'`, got)

	// Quoted regions and :tag: pairs pass through untouched.
	got, err = Interpolate(dialect.Oracle, "SELECT ':1', :tag: :1 :tag:, :1", 9)
	require.NoError(t, err)
	assert.Equal(t, "SELECT ':1', :tag: :1 :tag:, 9", got)
}

func TestInterpolateRoundTrip(t *testing.T) {
	// Building and then interpolating the rendered SQL matches the
	// template's own interpolation.
	b := Build("SELECT * FROM t WHERE a = $? AND b IN ($?)", 42, value.List("x", "y"))

	for _, d := range []dialect.Dialect{dialect.MySQL, dialect.PostgreSQL, dialect.SQLServer, dialect.Oracle} {
		sql, args, err := b.BuildWithFlavor(d)
		require.NoError(t, err)

		direct, err := b.Interpolate(d)
		require.NoError(t, err)

		native := make([]any, 0, len(args))
		for _, v := range args {
			n, err := v.Native()
			require.NoError(t, err)
			native = append(native, n)
		}
		scanned, err := Interpolate(d, sql, native...)
		require.NoError(t, err)

		assert.Equal(t, direct, scanned, d.Name())
	}
}
