package dialect

type clickHouse struct{ mySQL }

func (clickHouse) Name() string { return "ClickHouse" }

func (clickHouse) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return hexLiteral("unhex('", "')", data), nil
}
