package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_StripsSymbols(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "Emoticon stripped",
			in:       "Hi 😀",
			expected: "Hi",
		},
		{
			name:     "Pictograph stripped",
			in:       "order shipped 🌟 today",
			expected: "order shipped today",
		},
		{
			name:     "Dingbat and variation selector stripped",
			in:       "done ✔️",
			expected: "done",
		},
		{
			name:     "Misc symbol stripped",
			in:       "☎ call me",
			expected: "call me",
		},
		{
			name:     "Plain text untouched",
			in:       "refund please",
			expected: "refund please",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Clean(tt.in))
		})
	}
}

func TestClean_Whitespace(t *testing.T) {
	c := New(nil)

	assert.Equal(t, "a b", c.Clean("  a  b  "))
	// Single replace pass: four spaces collapse to two, not one.
	assert.Equal(t, "a  b", c.Clean("a    b"))
}

func TestClean_Boilerplate(t *testing.T) {
	c := New([]string{"Back to menu", "상담사 연결"})

	assert.Equal(t, "", c.Clean("Back to menu"))
	assert.Equal(t, "", c.Clean("상담사 연결"))
	// Boilerplate matching happens after symbol stripping and trimming.
	assert.Equal(t, "", c.Clean("  Back to menu 🙂"))
	// Non-exact matches survive.
	assert.Equal(t, "go Back to menu", c.Clean("go Back to menu"))
}

func TestClean_IdempotentOnCleanText(t *testing.T) {
	c := New([]string{"Back to menu"})

	in := "already clean text"
	once := c.Clean(in)
	assert.Equal(t, in, once)
	assert.Equal(t, once, c.Clean(once))
}

func TestClean_EmptyBoilerplateListFromConfig(t *testing.T) {
	// Suppression is driven entirely by the configured list.
	loose := New(nil)
	strict := New([]string{"hello"})

	assert.Equal(t, "hello", loose.Clean("hello"))
	assert.Equal(t, "", strict.Clean("hello"))
}
