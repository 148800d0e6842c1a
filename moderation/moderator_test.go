package moderation

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := NewModerator([]string{"idiot", "moron", "crap", "bobo"}, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Single word",
			input:    "The chef is an idiot",
			expected: "The chef is an *****",
			words:    []string{"idiot"},
		},
		{
			name:     "Repeated words keep their spacing",
			input:    "moron  moron moron",
			expected: "*****  ***** *****",
			words:    []string{"moron", "moron", "moron"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "What an 1.d.1.0.t !",
			expected: "What an ********* !",
			words:    []string{"idiot"},
		},
		{
			name:     "Uppercase and separators",
			input:    "C-R-A-P sauce, M.O.R.O.N cook",
			expected: "******* sauce, ********* cook",
			words:    []string{"crap", "moron"},
		},
		{
			name:     "Trailing punctuation",
			input:    "This gravy is crap!",
			expected: "This gravy is ****!",
			words:    []string{"crap"},
		},
		{
			name:     "Word inside a longer word",
			input:    "Scrape the pan first",
			expected: "Scrape the pan first",
			words:    nil,
		},
		{
			name:     "Match across two words",
			input:    "Serve the adobo bowl hot",
			expected: "Serve the adobo bowl hot",
			words:    nil,
		},
		{
			name:     "Match across a name and the next word",
			input:    "Bob ordered pancit",
			expected: "Bob ordered pancit",
			words:    nil,
		},
		{
			name:     "Accents are preserved",
			input:    "Une crêpe, pas de crap",
			expected: "Une crêpe, pas de ****",
			words:    []string{"crap"},
		},
		{
			name:     "Nothing to censor",
			input:    "Recipe-Live is amazing",
			expected: "Recipe-Live is amazing",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_ShippedDictionary(t *testing.T) {
	req := require.New(t)
	data, err := NewEmbeddedLoader().LoadAll(EmbeddedPath)
	req.NoError(err)
	mod, err := NewModerator(data.Words, replacementChar, discardLogger())
	req.NoError(err)

	// Given ordinary recipe chatter that contains dictionary words as substrings
	untouched := []string{
		"Serve the adobo bowl hot",
		"Scrape the pan first",
		"Bob ordered pancit",
		"The damnedest gumbo I ever cooked",
		"Tangan ko ang sandok, gata at luya",
		"Dress the salad with a tangy vinaigrette",
	}
	for _, text := range untouched {
		// When it is censored
		content, words := mod.Censor(text)

		// Then it is left unchanged
		req.Equal(text, content)
		req.Nil(words, text)
	}

	// Given insults in both shipped languages
	content, words := mod.Censor("Ang tanga mo, this is crap")

	// Then only those words are masked
	req.Equal("Ang ***** mo, this is ****", content)
	req.Equal([]string{"tanga", "crap"}, words)
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "badger"}

	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	// Then the sentence is censored
	input := "The badger is safe"
	expected := "The ****** is safe"
	content, words := mod.Censor(input)
	req.Equal(expected, content)
	req.Equal([]string{"badger"}, words)

	// Then real noise is uncensored
	input = "Hello ..."
	expected = "Hello ..."
	content, words = mod.Censor(input)
	req.Equal(expected, content)
	req.Nil(words)
}

func TestModerator_Moderate(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"idiot"}, replacementChar, discardLogger())
	req.NoError(err)

	result := mod.Moderate("alice", "Only an idiot would skip the garlic in this recipe")

	req.Equal("Only an ***** would skip the garlic in this recipe", result.Content)
	req.Equal([]string{"idiot"}, result.CensoredWords)
	req.Equal("en", result.Lang)
}

func TestModerator_EmptyDictionary(t *testing.T) {
	mod, err := NewModerator(nil, replacementChar, discardLogger())
	require.NoError(t, err)

	content, words := mod.Censor("nothing to see")

	require.Equal(t, "nothing to see", content)
	require.Nil(t, words)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
