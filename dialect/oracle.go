package dialect

import (
	"strconv"
	"time"
)

type oracle struct{}

func (oracle) Name() string { return "Oracle" }

func (oracle) Placeholder(n int) string {
	return ":" + strconv.Itoa(n+1)
}

func (oracle) NamedPlaceholder(name string) (string, bool) {
	return ":" + name, true
}

func (oracle) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (oracle) BindStyle() BindStyle { return BindColon }

func (oracle) EncodeString(s string) string {
	return quotedString(s, false)
}

func (oracle) EncodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (oracle) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return hexLiteral("hextoraw('", "')", data), nil
}

func (oracle) EncodeTime(t time.Time) string {
	if t.IsZero() {
		return "'0000-00-00'"
	}
	stamp := t.Add(500 * time.Nanosecond).Format("2006-01-02 15:04:05.000000")
	return "to_timestamp('" + stamp + "', 'YYYY-MM-DD HH24:MI:SS.FF')"
}
