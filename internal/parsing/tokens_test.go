package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple words", "Web Design", []string{"web", "design"}},
		{"Punctuation split", "social-media, marketing!", []string{"social", "media", "marketing"}},
		{"Single chars dropped", "a b cd", []string{"cd"}},
		{"Digits kept", "excel 365", []string{"excel", "365"}},
		{"Empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("Graphic Design", "design, photography")
	assert.True(t, set["graphic"])
	assert.True(t, set["design"])
	assert.True(t, set["photography"])
	assert.False(t, set["marketing"])
}
