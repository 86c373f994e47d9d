package walletaddress

import (
	"database/sql/driver"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// MarshalText implements encoding.TextMarshaler, so JSON carries the address as a string.
func (a WalletAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *WalletAddress) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a WalletAddress) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *WalletAddress) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalBSONValue stores the address as a BSON string.
func (a WalletAddress) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.String())
}

// UnmarshalBSONValue reads the address from a BSON string.
func (a *WalletAddress) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: cannot decode BSON %s into wallet address", ErrInvalidFormat, t)
	}
	return a.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer storing the raw Len bytes.
func (a WalletAddress) Value() (driver.Value, error) {
	return a.Raw(), nil
}

// Scan implements sql.Scanner. It accepts the raw bytes written by Value or the textual address.
func (a *WalletAddress) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		if len(v) == Len {
			scanned, err := FromBytes(v)
			if err != nil {
				return err
			}
			*a = scanned
			return nil
		}
		return a.UnmarshalText(v)
	case string:
		return a.UnmarshalText([]byte(v))
	case nil:
		return fmt.Errorf("%w: cannot scan NULL into wallet address", ErrInvalidFormat)
	default:
		return fmt.Errorf("%w: cannot scan %T into wallet address", ErrInvalidFormat, src)
	}
}

// Proto returns the protobuf wrapper carrying the textual address.
func (a WalletAddress) Proto() *wrapperspb.StringValue {
	return wrapperspb.String(a.String())
}

// FromProto parses the address carried by the protobuf wrapper.
func FromProto(v *wrapperspb.StringValue) (WalletAddress, error) {
	if v == nil {
		return WalletAddress{}, fmt.Errorf("%w: nil protobuf value", ErrInvalidFormat)
	}
	return Parse(v.GetValue())
}
