package value

import (
	"database/sql/driver"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

// Of converts a native Go value into a Value. Values pass through,
// builders and valuers are wrapped, scalars map onto the matching
// variant, nil pointers become Null. Anything else is carried opaquely
// and binds positionally as-is.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	case []byte:
		return Bytes(x)
	case time.Time:
		return Time(x)
	case uuid.UUID:
		return String(x.String())
	case ulid.ULID:
		return String(x.String())
	case Builder:
		return FromBuilder(x)
	case Valuer:
		return FromValuer(x)
	case driver.Valuer:
		return FromValuer(driverValuer{x})
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Null()
		}
		return Of(rv.Elem().Interface())
	}
	return Any(v)
}

// driverValuer adapts database/sql/driver.Valuer to Valuer.
type driverValuer struct {
	v driver.Valuer
}

func (d driverValuer) SQLValue() (Value, error) {
	out, err := d.v.Value()
	if err != nil {
		return Value{}, errors.Wrap(err, "value: driver valuer")
	}
	return Of(out), nil
}

// Native converts a bindable value back to the Go form handed to a
// database driver. Raw, List, Tuple and Builder values have no single
// driver representation.
func (v Value) Native() (any, error) {
	resolved, err := v.Resolve()
	if err != nil {
		return nil, err
	}
	switch resolved.kind {
	case KindNull:
		return nil, nil
	case KindBool:
		return resolved.b, nil
	case KindInt64:
		return resolved.i, nil
	case KindUint64:
		return resolved.u, nil
	case KindFloat64:
		return resolved.f, nil
	case KindString:
		return resolved.s, nil
	case KindBytes:
		return resolved.bytes, nil
	case KindTime:
		return resolved.t, nil
	case KindAny:
		return resolved.any, nil
	case KindNamed:
		return resolved.Inner().Native()
	default:
		return nil, errors.Errorf("value: kind %d is not a bindable scalar", resolved.kind)
	}
}
