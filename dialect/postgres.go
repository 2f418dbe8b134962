package dialect

import (
	"strconv"
	"time"
)

type postgreSQL struct{}

func (postgreSQL) Name() string { return "PostgreSQL" }

func (postgreSQL) Placeholder(n int) string {
	return "$" + strconv.Itoa(n+1)
}

func (postgreSQL) NamedPlaceholder(string) (string, bool) { return "", false }

func (postgreSQL) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (postgreSQL) BindStyle() BindStyle { return BindDollar }

func (postgreSQL) EncodeString(s string) string {
	return "E" + quotedString(s, false)
}

func (postgreSQL) EncodeBool(b bool) string { return boolWord(b) }

func (postgreSQL) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return hexLiteral(`E'\\x`, `'::bytea`, data), nil
}

func (postgreSQL) EncodeTime(t time.Time) string {
	return encodeTimeLayout(t, "'2006-01-02 15:04:05.000000 MST'")
}
