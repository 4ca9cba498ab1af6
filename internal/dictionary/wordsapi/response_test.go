package wordsapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name              string
		body              string
		wantWord          string
		wantPronunciation string
		wantResults       int
	}{
		{
			name: "pronunciation as object",
			body: `{
				"word": "hello",
				"pronunciation": {"all": "həˈloʊ"},
				"results": [{"definition": "an expression of greeting", "partOfSpeech": "noun"}]
			}`,
			wantWord:          "hello",
			wantPronunciation: "həˈloʊ",
			wantResults:       1,
		},
		{
			name:              "pronunciation as plain string",
			body:              `{"word": "cat", "pronunciation": "kæt", "results": []}`,
			wantWord:          "cat",
			wantPronunciation: `"kæt"`,
			wantResults:       0,
		},
		{
			name:        "missing pronunciation",
			body:        `{"word": "dog", "results": []}`,
			wantWord:    "dog",
			wantResults: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))

			assert.Equal(t, tt.wantWord, got.Word)
			assert.Equal(t, tt.wantPronunciation, got.Pronunciation.All)
			assert.Len(t, got.Results, tt.wantResults)
		})
	}
}
