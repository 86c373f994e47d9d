package amount

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// MarshalJSON writes the internal representation as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, a.value, 10), nil
}

// UnmarshalJSON reads the internal representation from a JSON number.
// A JSON string is parsed as a textual amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return a.UnmarshalText([]byte(s))
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: JSON amount %s is not an unsigned 64 bit integer", ErrInvalidFormat, data)
	}
	*a = Amount{value: v}
	return nil
}

// MarshalText implements encoding.TextMarshaler with the canonical form.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler with the canonical form.
func (a Amount) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Amount) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalBSONValue stores the amount as an exact BSON Decimal128.
func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d, err := primitive.ParseDecimal128(a.String())
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(d)
}

// UnmarshalBSONValue reads a Decimal128, a string or an integer number of whole credits.
func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Decimal128:
		d128, ok := raw.Decimal128OK()
		if !ok {
			break
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("%w: BSON decimal %s: %s", ErrInvalidFormat, d128, err)
		}
		converted, err := FromDecimal(d)
		if err != nil {
			return err
		}
		*a = converted
		return nil
	case bsontype.String:
		s, ok := raw.StringValueOK()
		if !ok {
			break
		}
		return a.UnmarshalText([]byte(s))
	case bsontype.Int32:
		i, ok := raw.Int32OK()
		if !ok {
			break
		}
		return a.setUnits(int64(i))
	case bsontype.Int64:
		i, ok := raw.Int64OK()
		if !ok {
			break
		}
		return a.setUnits(i)
	}
	return fmt.Errorf("%w: cannot decode BSON %s into amount", ErrInvalidFormat, t)
}

// Value implements driver.Valuer with the canonical form, suitable for NUMERIC columns.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner. It accepts textual amounts and integer whole credits.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return a.UnmarshalText(v)
	case string:
		return a.UnmarshalText([]byte(v))
	case int64:
		return a.setUnits(v)
	case nil:
		return fmt.Errorf("%w: cannot scan NULL into amount", ErrInvalidFormat)
	default:
		return fmt.Errorf("%w: cannot scan %T into amount", ErrInvalidFormat, src)
	}
}

// Proto returns the protobuf wrapper carrying the internal representation.
func (a Amount) Proto() *wrapperspb.UInt64Value {
	return wrapperspb.UInt64(a.value)
}

// FromProto reads the internal representation carried by the protobuf wrapper.
func FromProto(v *wrapperspb.UInt64Value) (Amount, error) {
	if v == nil {
		return Amount{}, fmt.Errorf("%w: nil protobuf value", ErrInvalidFormat)
	}
	return FromRepr(v.GetValue()), nil
}

func (a *Amount) setUnits(units int64) error {
	if units < 0 {
		return fmt.Errorf("%w: negative amount %d", ErrOutOfRange, units)
	}
	converted, err := New(uint64(units), 0)
	if err != nil {
		return err
	}
	*a = converted
	return nil
}
