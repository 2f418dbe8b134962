package dialect

type informix struct{ mySQL }

func (informix) Name() string { return "Informix" }

func (informix) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (informix) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return "", ErrUnsupportedLiteral
}
