package relation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDs(t *testing.T) {
	testcases := map[Relationship]uint8{
		Stranger:     0,
		Acquaintance: 1,
		CoWorker:     2,
		Friend:       3,
		Family:       4,
	}
	for rel, id := range testcases {
		assert.Equal(t, id, rel.ID())
		back, err := FromID(id)
		assert.Nil(t, err)
		assert.Equal(t, rel, back)
	}
}

func TestFromIDUnknown(t *testing.T) {
	_, err := FromID(5)
	assert.ErrorIs(t, err, ErrUnknownRelationship)
	_, err = FromID(255)
	assert.ErrorIs(t, err, ErrUnknownRelationship)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "coworker", CoWorker.String())
	assert.Equal(t, "relationship(9)", Relationship(9).String())

	rel, err := FromName("family")
	assert.Nil(t, err)
	assert.Equal(t, Family, rel)

	_, err = FromName("enemy")
	assert.ErrorIs(t, err, ErrUnknownRelationship)
}

func TestJSON(t *testing.T) {
	raw, err := json.Marshal(map[string]Relationship{"rel": Friend})
	assert.Nil(t, err)
	assert.JSONEq(t, `{"rel":"friend"}`, string(raw))

	var decoded map[string]Relationship
	assert.Nil(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, Friend, decoded["rel"])

	_, err = json.Marshal(Relationship(7))
	assert.NotNil(t, err)
}
