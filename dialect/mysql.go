package dialect

import (
	"strings"
	"time"
)

type mySQL struct{}

func (mySQL) Name() string { return "MySQL" }

func (mySQL) Placeholder(int) string { return "?" }

func (mySQL) NamedPlaceholder(string) (string, bool) { return "", false }

func (mySQL) QuoteIdentifier(name string) string {
	return "`" + name + "`"
}

func (mySQL) BindStyle() BindStyle { return BindQuestion }

func (mySQL) EncodeString(s string) string {
	return quotedString(s, false)
}

func (mySQL) EncodeBool(b bool) string { return boolWord(b) }

func (mySQL) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	var sb strings.Builder
	sb.WriteString("_binary")
	escapeQuoted(&sb, string(data), false)
	return sb.String(), nil
}

func (mySQL) EncodeTime(t time.Time) string {
	return encodeTimeLayout(t, "'2006-01-02 15:04:05.000000'")
}
