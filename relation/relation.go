package relation

import (
	"errors"
	"fmt"
)

// Relationship is the social relationship between a user and another person.
type Relationship uint8

const (
	Stranger Relationship = iota
	Acquaintance
	CoWorker
	Friend
	Family
)

var ErrUnknownRelationship = errors.New("unknown relationship")

var names = [...]string{
	Stranger:     "stranger",
	Acquaintance: "acquaintance",
	CoWorker:     "coworker",
	Friend:       "friend",
	Family:       "family",
}

// FromID returns the relationship stored under the given byte.
func FromID(id uint8) (Relationship, error) {
	if int(id) >= len(names) {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownRelationship, id)
	}
	return Relationship(id), nil
}

// FromName returns the relationship with the given name.
func FromName(name string) (Relationship, error) {
	for i, n := range names {
		if n == name {
			return Relationship(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRelationship, name)
}

// ID returns the byte the relationship is stored as.
func (r Relationship) ID() uint8 {
	return uint8(r)
}

func (r Relationship) String() string {
	if int(r) >= len(names) {
		return fmt.Sprintf("relationship(%d)", uint8(r))
	}
	return names[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Relationship) MarshalText() ([]byte, error) {
	if int(r) >= len(names) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownRelationship, uint8(r))
	}
	return []byte(names[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Relationship) UnmarshalText(text []byte) error {
	rel, err := FromName(string(text))
	if err != nil {
		return err
	}
	*r = rel
	return nil
}
