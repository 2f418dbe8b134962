package builder

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/verdane/sqlfrag/dialect"
	"github.com/verdane/sqlfrag/value"
)

// Interpolation trades bound parameters for dialect-correct literals.
// It exists for drivers that cannot bind; prepared parameters are
// always preferable.

// Interpolate renders the template with every slot replaced by a
// literal. Raw values splice verbatim, nested builders are recursively
// interpolated and never re-escaped.
func (t *Template) Interpolate(d dialect.Dialect) (string, error) {
	segs, _, err := t.expand()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, seg := range segs {
		if seg.isText {
			sb.WriteString(seg.text)
			continue
		}
		v := seg.val
		if v.Kind() == value.KindBuilder {
			nested, err := interpolateBuilder(d, v.BuilderRef())
			if err != nil {
				return "", err
			}
			sb.WriteString(nested)
			continue
		}
		lit, err := encodeLiteral(d, v)
		if err != nil {
			return "", err
		}
		sb.WriteString(lit)
	}
	return sb.String(), nil
}

type interpolator interface {
	Interpolate(dialect.Dialect) (string, error)
}

func interpolateBuilder(d dialect.Dialect, b value.Builder) (string, error) {
	if ip, ok := b.(interpolator); ok {
		return ip.Interpolate(d)
	}
	sql, vals, err := b.BuildWithFlavor(d)
	if err != nil {
		return "", err
	}
	return interpolateSQL(d, sql, vals)
}

// Interpolate replaces the placeholders of an already-rendered query
// with literals, scanning with the dialect's placeholder grammar and
// skipping quoted regions.
func Interpolate(d dialect.Dialect, query string, args ...any) (string, error) {
	vals := make([]value.Value, 0, len(args))
	for _, a := range args {
		vals = append(vals, value.Of(a))
	}
	return interpolateSQL(d, query, vals)
}

func interpolateSQL(d dialect.Dialect, query string, vals []value.Value) (string, error) {
	switch d.BindStyle() {
	case dialect.BindDollar:
		return interpolateDollar(d, query, vals)
	case dialect.BindAtP:
		return interpolateAtP(d, query, vals)
	case dialect.BindColon:
		return interpolateColon(d, query, vals)
	default:
		return interpolateQuestion(d, query, vals)
	}
}

// encodeLiteral renders a single value as a dialect literal.
func encodeLiteral(d dialect.Dialect, v value.Value) (string, error) {
	v, err := v.Resolve()
	if err != nil {
		return "", err
	}
	switch v.Kind() {
	case value.KindNull:
		return "NULL", nil
	case value.KindBool:
		return d.EncodeBool(v.BoolVal()), nil
	case value.KindInt64:
		return strconv.FormatInt(v.Int64(), 10), nil
	case value.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10), nil
	case value.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64), nil
	case value.KindString:
		return d.EncodeString(v.Str()), nil
	case value.KindBytes:
		return d.EncodeBytes(v.BytesVal())
	case value.KindTime:
		return d.EncodeTime(v.TimeVal()), nil
	case value.KindRaw:
		return v.RawSQL(), nil
	case value.KindNamed:
		return encodeLiteral(d, v.Inner())
	default:
		return "", errors.Wrapf(dialect.ErrUnsupportedLiteral,
			"%s cannot express value kind %d", d.Name(), v.Kind())
	}
}

// interpolateQuestion handles the constant-? family. Quoted regions
// (single, double or backtick quotes, with backslash escapes) never
// match placeholders.
func interpolateQuestion(d dialect.Dialect, query string, vals []value.Value) (string, error) {
	var sb strings.Builder
	sb.Grow(len(query) + len(vals)*8)

	var quote byte
	escaping := false
	next := 0

	for i := 0; i < len(query); i++ {
		c := query[i]
		if escaping {
			sb.WriteByte(c)
			escaping = false
			continue
		}
		switch {
		case c == '\\' && quote != 0:
			sb.WriteByte(c)
			escaping = true
		case c == '\'' || c == '"' || c == '`':
			if quote == c {
				quote = 0
			} else if quote == 0 {
				quote = c
			}
			sb.WriteByte(c)
		case c == '?' && quote == 0:
			if next >= len(vals) {
				return "", errors.Wrapf(ErrArityMismatch,
					"placeholder %d with %d values", next, len(vals))
			}
			lit, err := encodeLiteral(d, vals[next])
			if err != nil {
				return "", err
			}
			sb.WriteString(lit)
			next++
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

// interpolateDollar handles $1-style numbering, including PostgreSQL
// dollar-quoted regions ($tag$ ... $tag$).
func interpolateDollar(d dialect.Dialect, query string, vals []value.Value) (string, error) {
	var sb strings.Builder
	sb.Grow(len(query) + len(vals)*8)

	var quote byte // '\'', '"' or '$'
	var dollarTag string
	escaping := false

	for i := 0; i < len(query); {
		c := query[i]
		if escaping {
			sb.WriteByte(c)
			escaping = false
			i++
			continue
		}
		switch {
		case c == '\\' && (quote == '\'' || quote == '"'):
			sb.WriteByte(c)
			escaping = true
			i++
		case c == '\'':
			if quote == '\'' {
				// '' inside a string is one escaped quote.
				if i+1 < len(query) && query[i+1] == '\'' {
					sb.WriteString("''")
					i += 2
					continue
				}
				quote = 0
			} else if quote == 0 {
				quote = '\''
			}
			sb.WriteByte('\'')
			i++
		case c == '"':
			if quote == '"' {
				quote = 0
			} else if quote == 0 {
				quote = '"'
			}
			sb.WriteByte('"')
			i++
		case c == '$':
			if quote == '$' {
				if strings.HasPrefix(query[i:], dollarTag) {
					sb.WriteString(dollarTag)
					i += len(dollarTag)
					quote = 0
					dollarTag = ""
					continue
				}
				sb.WriteByte('$')
				i++
				continue
			}
			if quote != 0 {
				sb.WriteByte('$')
				i++
				continue
			}
			if n, width, ok := scanOrdinal(query[i+1:]); ok {
				if n < 1 || n > len(vals) {
					return "", errors.Wrapf(ErrArityMismatch,
						"$%d with %d values", n, len(vals))
				}
				lit, err := encodeLiteral(d, vals[n-1])
				if err != nil {
					return "", err
				}
				sb.WriteString(lit)
				i += 1 + width
				continue
			}
			if tag, ok := scanDollarTag(query[i:]); ok {
				sb.WriteString(tag)
				quote = '$'
				dollarTag = tag
				i += len(tag)
				continue
			}
			sb.WriteByte('$')
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), nil
}

// interpolateAtP handles @p1-style numbering.
func interpolateAtP(d dialect.Dialect, query string, vals []value.Value) (string, error) {
	var sb strings.Builder
	sb.Grow(len(query) + len(vals)*8)

	var quote byte
	escaping := false

	for i := 0; i < len(query); {
		c := query[i]
		if escaping {
			sb.WriteByte(c)
			escaping = false
			i++
			continue
		}
		switch {
		case c == '\\' && quote != 0:
			sb.WriteByte(c)
			escaping = true
			i++
		case c == '\'' || c == '"':
			if quote == c {
				quote = 0
			} else if quote == 0 {
				quote = c
			}
			sb.WriteByte(c)
			i++
		case c == '@' && quote == 0:
			if i+1 < len(query) && (query[i+1] == 'p' || query[i+1] == 'P') {
				if n, width, ok := scanOrdinal(query[i+2:]); ok {
					if n < 1 || n > len(vals) {
						return "", errors.Wrapf(ErrArityMismatch,
							"@p%d with %d values", n, len(vals))
					}
					lit, err := encodeLiteral(d, vals[n-1])
					if err != nil {
						return "", err
					}
					sb.WriteString(lit)
					i += 2 + width
					continue
				}
			}
			sb.WriteByte('@')
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), nil
}

// interpolateColon handles :1-style numbering, skipping Oracle
// :tag: quoted regions.
func interpolateColon(d dialect.Dialect, query string, vals []value.Value) (string, error) {
	var sb strings.Builder
	sb.Grow(len(query) + len(vals)*8)

	var quote byte // '\'', '"' or ':'
	var colonTag string
	escaping := false

	for i := 0; i < len(query); {
		c := query[i]
		if escaping {
			sb.WriteByte(c)
			escaping = false
			i++
			continue
		}
		switch {
		case c == '\\' && (quote == '\'' || quote == '"'):
			sb.WriteByte(c)
			escaping = true
			i++
		case c == '\'':
			if quote == '\'' {
				if i+1 < len(query) && query[i+1] == '\'' {
					sb.WriteString("''")
					i += 2
					continue
				}
				quote = 0
			} else if quote == 0 {
				quote = '\''
			}
			sb.WriteByte('\'')
			i++
		case c == '"':
			if quote == '"' {
				quote = 0
			} else if quote == 0 {
				quote = '"'
			}
			sb.WriteByte('"')
			i++
		case c == ':':
			if quote == ':' {
				if strings.HasPrefix(query[i:], colonTag) {
					sb.WriteString(colonTag)
					i += len(colonTag)
					quote = 0
					colonTag = ""
					continue
				}
				sb.WriteByte(':')
				i++
				continue
			}
			if quote != 0 {
				sb.WriteByte(':')
				i++
				continue
			}
			if n, width, ok := scanOrdinal(query[i+1:]); ok {
				if n < 1 || n > len(vals) {
					return "", errors.Wrapf(ErrArityMismatch,
						":%d with %d values", n, len(vals))
				}
				lit, err := encodeLiteral(d, vals[n-1])
				if err != nil {
					return "", err
				}
				sb.WriteString(lit)
				i += 1 + width
				continue
			}
			if tag, ok := scanColonTag(query[i:]); ok {
				sb.WriteString(tag)
				quote = ':'
				colonTag = tag
				i += len(tag)
				continue
			}
			sb.WriteByte(':')
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), nil
}

// scanOrdinal reads a 1-based ordinal with no leading zero.
func scanOrdinal(s string) (n, width int, ok bool) {
	if len(s) == 0 || s[0] < '1' || s[0] > '9' {
		return 0, 0, false
	}
	for width < len(s) && s[width] >= '0' && s[width] <= '9' {
		n = n*10 + int(s[width]-'0')
		width++
	}
	return n, width, true
}

// scanDollarTag matches an opening $tag$ (alphabetic tag, possibly
// empty is not allowed here since a bare $$ is two literal dollars in
// rendered SQL).
func scanDollarTag(s string) (string, bool) {
	// s[0] == '$'
	k := 1
	for k < len(s) && isAlpha(s[k]) {
		k++
	}
	if k > 1 && k < len(s) && s[k] == '$' {
		return s[:k+1], true
	}
	return "", false
}

func scanColonTag(s string) (string, bool) {
	// s[0] == ':'
	k := 1
	for k < len(s) && isAlpha(s[k]) {
		k++
	}
	if k > 1 && k < len(s) && s[k] == ':' {
		return s[:k+1], true
	}
	return "", false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
