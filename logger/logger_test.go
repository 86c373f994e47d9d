package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		parsed, err := ParseLevel(l.String())
		assert.Nil(t, err)
		assert.Equal(t, l, parsed)
	}

	l, err := ParseLevel("WARN")
	assert.Nil(t, err)
	assert.Equal(t, LevelWarn, l)

	_, err = ParseLevel("verbose")
	assert.NotNil(t, err)
	assert.Equal(t, "level(9)", Level(9).String())
}
