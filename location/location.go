package location

import "encoding/json"

// Address holds the particulars of the place where an organization or person resides.
type Address struct {
	address1 string
	address2 *string
	city     string
	state    string
	zip      string
	country  string
}

type wireAddress struct {
	Address1 string  `json:"address1" yaml:"address1"`
	Address2 *string `json:"address2" yaml:"address2"`
	City     string  `json:"city"     yaml:"city"`
	State    string  `json:"state"    yaml:"state"`
	Zip      string  `json:"zip"      yaml:"zip"`
	Country  string  `json:"country"  yaml:"country"`
}

// New creates a new Address. The second address line is optional and may be nil.
func New(address1 string, address2 *string, city, state, zip, country string) Address {
	a := Address{
		address1: address1,
		city:     city,
		state:    state,
		zip:      zip,
		country:  country,
	}
	if address2 != nil {
		line := *address2
		a.address2 = &line
	}
	return a
}

// Address1 returns the first address line.
func (a Address) Address1() string { return a.address1 }

// Address2 returns the second address line and whether it is set.
func (a Address) Address2() (string, bool) {
	if a.address2 == nil {
		return "", false
	}
	return *a.address2, true
}

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state.
func (a Address) State() string { return a.state }

// Zip returns the zip code.
func (a Address) Zip() string { return a.zip }

// Country returns the country.
func (a Address) Country() string { return a.country }

// Equal reports whether both addresses hold the same particulars.
func (a Address) Equal(b Address) bool {
	l1, ok1 := a.Address2()
	l2, ok2 := b.Address2()
	return a.address1 == b.address1 && ok1 == ok2 && l1 == l2 &&
		a.city == b.city && a.state == b.state && a.zip == b.zip && a.country == b.country
}

func (a Address) wire() wireAddress {
	return wireAddress{
		Address1: a.address1,
		Address2: a.address2,
		City:     a.city,
		State:    a.state,
		Zip:      a.zip,
		Country:  a.country,
	}
}

func fromWire(w wireAddress) Address {
	return New(w.Address1, w.Address2, w.City, w.State, w.Zip, w.Country)
}

// MarshalJSON writes the address as an object, address2 is null when absent.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(data []byte) error {
	var w wireAddress
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = fromWire(w)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Address) MarshalYAML() (interface{}, error) {
	return a.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Address) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var w wireAddress
	if err := unmarshal(&w); err != nil {
		return err
	}
	*a = fromWire(w)
	return nil
}
