package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshape_AuthorNesting(t *testing.T) {
	out := Reshape(map[string]any{
		"author_id":   float64(1122),
		"author_name": "SomeWriter",
	})

	author, ok := out["author"].(map[string]any)
	require.True(t, ok, "expected a nested author object")
	assert.Equal(t, float64(1122), author["id"])
	assert.Equal(t, "SomeWriter", author["name"])
}

func TestReshape_FandomIdsKeepSuffixOrder(t *testing.T) {
	out := Reshape(map[string]any{
		"fandom_id0": float64(224),
		"fandom_id1": nil,
	})

	assert.Equal(t, []any{float64(224), nil}, out["fandom_ids"])
}

func TestReshape_CountFieldsPluralized(t *testing.T) {
	out := Reshape(map[string]any{
		"chapter_count":  float64(13),
		"word_count":     float64(114913),
		"review_count":   float64(216),
		"favorite_count": float64(878),
		"follow_count":   float64(1073),
	})

	assert.Equal(t, float64(13), out["chapters"])
	assert.Equal(t, float64(114913), out["words"])
	assert.Equal(t, float64(216), out["reviews"])
	assert.Equal(t, float64(878), out["favorites"])
	assert.Equal(t, float64(1073), out["follows"])
}

func TestReshape_Genres(t *testing.T) {
	out := Reshape(map[string]any{"raw_genres": "Adventure/Drama/Romance"})
	assert.Equal(t, []any{"Adventure", "Drama", "Romance"}, out["genres"])

	out = Reshape(map[string]any{"raw_genres": nil})
	assert.NotContains(t, out, "genres")
}

func TestReshape_Characters(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []any
	}{
		{"pairing brackets flattened", "[Harry P., Hermione G.]", []any{"Harry P.", "Hermione G."}},
		// Flattening "]" leaves the following name with its separating
		// space attached; segments are filtered, never trimmed.
		{"mixed pairing and solo", "[Harry P., Hermione G.] Ron W.", []any{"Harry P.", "Hermione G.", " Ron W."}},
		{"plain list", "Harry P., Ron W.", []any{"Harry P.", "Ron W."}},
		{"null", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Reshape(map[string]any{"raw_characters": tt.raw})
			if tt.want == nil {
				assert.NotContains(t, out, "characters")
				return
			}
			assert.Equal(t, tt.want, out["characters"])
		})
	}
}

func TestReshape_Fandoms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []any
	}{
		{"single fandom", "Harry Potter", []any{"Harry Potter"}},
		{"crossover suffix stripped", "Harry Potter and Avengers Crossovers", []any{"Harry Potter", "Avengers"}},
		{"only one split", "A and B and C Crossovers", []any{"A", "B and C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Reshape(map[string]any{"raw_fandoms": tt.raw})
			assert.Equal(t, tt.want, out["fandoms"])
		})
	}
}

func TestReshape_DoesNotMutateInput(t *testing.T) {
	record := map[string]any{
		"author_id":   float64(7),
		"author_name": "x",
		"raw_genres":  "Humor",
	}
	Reshape(record)

	assert.Equal(t, map[string]any{
		"author_id":   float64(7),
		"author_name": "x",
		"raw_genres":  "Humor",
	}, record)
}

func TestReshape_KeepsOriginalAndUnknownKeys(t *testing.T) {
	out := Reshape(map[string]any{
		"update_id":     float64(99),
		"web_id":        float64(5),
		"chapter_count": float64(2),
	})

	assert.Equal(t, float64(99), out["update_id"])
	assert.Equal(t, float64(5), out["web_id"])
	assert.Equal(t, float64(2), out["chapter_count"])
	assert.Equal(t, float64(2), out["chapters"])
}

func TestReshape_IdempotentOnNestedRecords(t *testing.T) {
	nested := map[string]any{
		"id":         float64(1),
		"author":     map[string]any{"id": float64(2), "name": "n"},
		"fandom_ids": []any{float64(224)},
		"chapters":   float64(3),
		"genres":     []any{"Drama"},
	}

	out := Reshape(nested)

	assert.Equal(t, nested["author"], out["author"])
	assert.Equal(t, nested["fandom_ids"], out["fandom_ids"])
	assert.Equal(t, nested["chapters"], out["chapters"])
	assert.Equal(t, nested["genres"], out["genres"])
}

func TestReshape_EmptyRecordPassesThrough(t *testing.T) {
	out := Reshape(map[string]any{})
	assert.Empty(t, out)
}
