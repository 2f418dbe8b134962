package dialect

import "time"

type sqLite struct{ mySQL }

func (sqLite) Name() string { return "SQLite" }

func (sqLite) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (sqLite) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return hexLiteral("X'", "'", data), nil
}

func (sqLite) EncodeTime(t time.Time) string {
	return encodeTimeLayout(t, "'2006-01-02 15:04:05.000'")
}
