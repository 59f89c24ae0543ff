package argument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bloeckchengrafik/lieutenant/parser"
)

func TestChoiceMatches(t *testing.T) {
	c := NewChoice("e", `f\r`, "minecraft:chicken")

	tests := []struct {
		input    string
		want     string
		wantRest string
	}{
		{"e", "e", ""},
		{`f\r`, `f\r`, ""},
		{"minecraft:chicken", "minecraft:chicken", ""},
		{"e next", "e", " next"},
		{`f\r e`, `f\r`, " e"},
	}

	for _, tt := range tests {
		v, rest, _, err := c.Parse(nil, tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, v, "input %q", tt.input)
		assert.Equal(t, tt.wantRest, rest, "input %q", tt.input)
	}
}

func TestChoiceRejects(t *testing.T) {
	c := NewChoice("e", `f\r`, "minecraft:chicken")

	for _, input := range []string{"g", "ee", `f\r\r`, "minecraft:chicken2", "minecraft"} {
		_, _, _, err := c.Parse(nil, input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrUnknownChoice, "input %q", input)
	}

	_, _, _, err := c.Parse(nil, "")
	assert.ErrorIs(t, err, parser.ErrEmptyInput)
}

// TestChoiceLongestWins pins the longest-match rule for overlapping members.
func TestChoiceLongestWins(t *testing.T) {
	c := NewChoice("tp", "tp here")

	v, rest, _, err := c.Parse(nil, "tp here now")
	require.NoError(t, err)
	assert.Equal(t, "tp here", v)
	assert.Equal(t, " now", rest)

	v, _, _, err = c.Parse(nil, "tp there")
	require.NoError(t, err)
	assert.Equal(t, "tp", v)
}

func TestChoiceRegexEscapes(t *testing.T) {
	c := NewChoice("e", `f\r`, "a.b")
	assert.Equal(t, `(e|f\\r|a\.b)`, c.Regex())
}
