package dialect

type doris struct{ mySQL }

func (doris) Name() string { return "Doris" }

func (doris) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return "", ErrUnsupportedLiteral
}
