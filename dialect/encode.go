package dialect

import (
	"strings"
	"time"
)

const hexDigits = "0123456789ABCDEF"

func appendHex(sb *strings.Builder, data []byte) {
	for _, b := range data {
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0xF])
	}
}

// hexLiteral renders data as prefix + uppercase hex + suffix.
func hexLiteral(prefix, suffix string, data []byte) string {
	var sb strings.Builder
	sb.Grow(len(prefix) + len(suffix) + 2*len(data))
	sb.WriteString(prefix)
	appendHex(&sb, data)
	sb.WriteString(suffix)
	return sb.String()
}

// escapeQuoted writes s as a single-quoted literal. Control characters
// and quote characters use backslash escapes; doubleQuote switches the
// embedded single-quote rule to '' pairs instead.
func escapeQuoted(sb *strings.Builder, s string, doubleQuote bool) {
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case 0:
			sb.WriteString(`\0`)
		case '\b':
			sb.WriteString(`\b`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0x1a:
			sb.WriteString(`\Z`)
		case '\'':
			if doubleQuote {
				sb.WriteString("''")
			} else {
				sb.WriteString(`\'`)
			}
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
}

func quotedString(s string, doubleQuote bool) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	escapeQuoted(&sb, s, doubleQuote)
	return sb.String()
}

func boolWord(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// encodeTimeLayout rounds t to microseconds and renders it with layout.
// The zero time renders as the conventional '0000-00-00'.
func encodeTimeLayout(t time.Time, layout string) string {
	if t.IsZero() {
		return "'0000-00-00'"
	}
	return t.Add(500 * time.Nanosecond).Format(layout)
}
