package dialect

import (
	"strconv"
	"time"
)

type sqlServer struct{}

func (sqlServer) Name() string { return "SQLServer" }

func (sqlServer) Placeholder(n int) string {
	return "@p" + strconv.Itoa(n+1)
}

func (sqlServer) NamedPlaceholder(name string) (string, bool) {
	return "@" + name, true
}

func (sqlServer) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (sqlServer) BindStyle() BindStyle { return BindAtP }

func (sqlServer) EncodeString(s string) string {
	return "N" + quotedString(s, false)
}

func (sqlServer) EncodeBool(b bool) string { return boolWord(b) }

func (sqlServer) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return hexLiteral("0x", "", data), nil
}

func (sqlServer) EncodeTime(t time.Time) string {
	return encodeTimeLayout(t, "'2006-01-02 15:04:05.000000 -07:00'")
}
