package atlas

import (
	"sort"
	"strings"
)

// Reshape normalizes one flat Atlas record into the nested shape the
// decoder expects. The input is not modified; all original keys are copied
// through, with derived keys overriding on collision.
//
// The transformation is a fixed sequence of rules:
//
//	author_<x>   -> author.<x>
//	fandom_id<n> -> fandom_ids[] (ascending suffix order)
//	<x>_count    -> <x>s
//	raw_genres   -> genres ("/"-separated)
//	raw_characters -> characters (bracketed, ", "-separated)
//	raw_fandoms  -> fandoms (" and "-separated, crossover suffix stripped)
//
// A record with none of these keys passes through unchanged; whether it is
// a valid story is the decoder's call, not this one's.
func Reshape(record map[string]any) map[string]any {
	out := make(map[string]any, len(record)+6)
	for key, val := range record {
		out[key] = val
	}

	// Go maps have no iteration order, so walk the keys sorted. For the
	// numbered fandom_id keys this is exactly the suffix order fandom_ids
	// must preserve.
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch {
		case strings.Contains(key, "author"):
			if _, suffix, ok := strings.Cut(key, "_"); ok && suffix != "" {
				author, _ := out["author"].(map[string]any)
				if author == nil {
					author = make(map[string]any, 2)
				}
				author[suffix] = record[key]
				out["author"] = author
			}
		case strings.Contains(key, "fandom_id") && key != "fandom_ids":
			// The derived fandom_ids key matches its own trigger substring;
			// skipping it keeps a second reshape from re-aggregating.
			ids, _ := out["fandom_ids"].([]any)
			out["fandom_ids"] = append(ids, record[key])
		case strings.Contains(key, "_count"):
			prefix, _, _ := strings.Cut(key, "_")
			out[prefix+"s"] = record[key]
		}
	}

	if raw, ok := record["raw_genres"].(string); ok && raw != "" {
		out["genres"] = splitGenres(raw)
	}
	if raw, ok := record["raw_characters"].(string); ok && raw != "" {
		out["characters"] = splitCharacters(raw)
	}
	if raw, ok := record["raw_fandoms"].(string); ok && raw != "" {
		out["fandoms"] = splitFandoms(raw)
	}

	return out
}

func splitGenres(raw string) []any {
	parts := strings.Split(raw, "/")
	genres := make([]any, 0, len(parts))
	for _, part := range parts {
		genres = append(genres, part)
	}
	return genres
}

// splitCharacters flattens the bracketed pairing syntax FFN uses, e.g.
// "[Harry P., Hermione G.] Ron W.". The brackets group shipped characters;
// that grouping is dropped here and only the names survive. Lossy, and
// kept that way.
func splitCharacters(raw string) []any {
	flat := strings.NewReplacer("[", ", ", "]", ", ").Replace(raw)
	characters := make([]any, 0, 4)
	for _, part := range strings.Split(flat, ", ") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		characters = append(characters, part)
	}
	return characters
}

// splitFandoms splits "X and Y Crossovers" into the two fandom names. The
// " and " separator splits at most once, and the " Crossovers" marker is
// stripped from the second name only; a single-fandom value comes back as
// a one-element list.
func splitFandoms(raw string) []any {
	parts := strings.SplitN(raw, " and ", 2)
	if len(parts) == 2 {
		parts[1] = strings.TrimSuffix(parts[1], " Crossovers")
	}
	fandoms := make([]any, 0, len(parts))
	for _, part := range parts {
		fandoms = append(fandoms, part)
	}
	return fandoms
}
