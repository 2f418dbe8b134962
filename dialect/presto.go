package dialect

type presto struct{ sqLite }

func (presto) Name() string { return "Presto" }

func (presto) EncodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "NULL", nil
	}
	return hexLiteral("from_hex('", "')", data), nil
}
