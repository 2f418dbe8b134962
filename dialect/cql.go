package dialect

import "time"

type cql struct{ mySQL }

func (cql) Name() string { return "CQL" }

func (cql) QuoteIdentifier(name string) string {
	return "'" + name + "'"
}

// CQL doubles embedded quotes instead of backslash-escaping them.
func (cql) EncodeString(s string) string {
	return quotedString(s, true)
}

func (cql) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return hexLiteral("0x", "", data), nil
}

func (cql) EncodeTime(t time.Time) string {
	return encodeTimeLayout(t, "'2006-01-02 15:04:05.000000-0700'")
}
