package atlas

import (
	"fmt"
	"strings"
	"time"

	"atlas-client/model"
)

// Timestamps arrive as ISO-8601 with an optional trailing "Z" that the
// parser below strips first. Values carry no offset, the API serves UTC.
const timeLayout = "2006-01-02T15:04:05.999999999"

// DecodeStory converts one reshaped record into a Story. Every required
// field must be present with the right type; the first violation is
// reported as a *DecodeError naming the field.
func DecodeStory(record map[string]any) (model.Story, error) {
	var story model.Story
	var err error

	if story.Id, err = intField(record, "id"); err != nil {
		return model.Story{}, err
	}
	if story.Author, err = DecodeAuthor(record["author"]); err != nil {
		return model.Story{}, err
	}
	if story.Title, err = stringField(record, "title"); err != nil {
		return model.Story{}, err
	}
	if story.Description, err = stringField(record, "description"); err != nil {
		return model.Story{}, err
	}
	if story.Chapters, err = intField(record, "chapters"); err != nil {
		return model.Story{}, err
	}
	if story.Published, err = timeField(record, "published"); err != nil {
		return model.Story{}, err
	}
	if story.Updated, err = optionalTimeField(record, "updated"); err != nil {
		return model.Story{}, err
	}
	if story.IsComplete, err = boolField(record, "is_complete"); err != nil {
		return model.Story{}, err
	}
	if story.IsCrossover, err = boolField(record, "is_crossover"); err != nil {
		return model.Story{}, err
	}
	if story.Words, err = intField(record, "words"); err != nil {
		return model.Story{}, err
	}
	if story.Language, err = stringField(record, "language"); err != nil {
		return model.Story{}, err
	}
	if story.Rating, err = stringField(record, "rating"); err != nil {
		return model.Story{}, err
	}
	if story.Reviews, err = intField(record, "reviews"); err != nil {
		return model.Story{}, err
	}
	if story.Favorites, err = intField(record, "favorites"); err != nil {
		return model.Story{}, err
	}
	if story.Follows, err = intField(record, "follows"); err != nil {
		return model.Story{}, err
	}
	if story.Genres, err = stringListField(record, "genres"); err != nil {
		return model.Story{}, err
	}
	if story.Characters, err = stringListField(record, "characters"); err != nil {
		return model.Story{}, err
	}
	if story.Fandoms, err = stringListField(record, "fandoms"); err != nil {
		return model.Story{}, err
	}
	if story.FandomIds, err = fandomIdsField(record, "fandom_ids"); err != nil {
		return model.Story{}, err
	}

	return story, nil
}

// DecodeAuthor converts the nested author object produced by Reshape.
func DecodeAuthor(value any) (model.Author, error) {
	record, ok := value.(map[string]any)
	if !ok {
		return model.Author{}, decodeErrorf("author", "expected an object, got %v", typeName(value))
	}

	var author model.Author
	var err error
	if author.Id, err = intField(record, "id"); err != nil {
		return model.Author{}, prefixField(err, "author")
	}
	if author.Name, err = stringField(record, "name"); err != nil {
		return model.Author{}, prefixField(err, "author")
	}
	return author, nil
}

// DecodeStories reshapes and decodes a batch of raw records. The first
// failing element aborts the batch, with its position in the input wrapped
// around the underlying *DecodeError.
func DecodeStories(records []map[string]any) ([]model.Story, error) {
	stories := make([]model.Story, 0, len(records))
	for i, record := range records {
		story, err := DecodeStory(Reshape(record))
		if err != nil {
			return nil, fmt.Errorf("failed to decode story at index %v: %w", i, err)
		}
		stories = append(stories, story)
	}
	return stories, nil
}

func intField(record map[string]any, field string) (int, error) {
	value, ok := record[field]
	if !ok {
		return 0, decodeErrorf(field, "required field is missing")
	}
	switch n := value.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, decodeErrorf(field, "expected an integer, got %v", n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	}
	return 0, decodeErrorf(field, "expected an integer, got %v", typeName(value))
}

func stringField(record map[string]any, field string) (string, error) {
	value, ok := record[field]
	if !ok {
		return "", decodeErrorf(field, "required field is missing")
	}
	s, ok := value.(string)
	if !ok {
		return "", decodeErrorf(field, "expected a string, got %v", typeName(value))
	}
	return s, nil
}

func boolField(record map[string]any, field string) (bool, error) {
	value, ok := record[field]
	if !ok {
		return false, decodeErrorf(field, "required field is missing")
	}
	b, ok := value.(bool)
	if !ok {
		return false, decodeErrorf(field, "expected a boolean, got %v", typeName(value))
	}
	return b, nil
}

func timeField(record map[string]any, field string) (time.Time, error) {
	value, ok := record[field]
	if !ok {
		return time.Time{}, decodeErrorf(field, "required field is missing")
	}
	return parseTimestamp(value, field)
}

func optionalTimeField(record map[string]any, field string) (*time.Time, error) {
	value, ok := record[field]
	if !ok || value == nil {
		return nil, nil
	}
	t, err := parseTimestamp(value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseTimestamp(value any, field string) (time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, decodeErrorf(field, "expected a timestamp string, got %v", typeName(value))
	}
	t, err := time.ParseInLocation(timeLayout, strings.TrimSuffix(s, "Z"), time.UTC)
	if err != nil {
		return time.Time{}, decodeErrorf(field, "malformed timestamp %q", s)
	}
	return t, nil
}

// stringListField decodes an optional list of strings; a missing field is
// an empty list, never nil.
func stringListField(record map[string]any, field string) ([]string, error) {
	value, ok := record[field]
	if !ok || value == nil {
		return []string{}, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, decodeErrorf(field, "expected a list, got %v", typeName(value))
	}
	list := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, decodeErrorf(fmt.Sprintf("%v[%v]", field, i), "expected a string, got %v", typeName(item))
		}
		list = append(list, s)
	}
	return list, nil
}

// fandomIdsField decodes the fandom id list. Individual entries may be
// null (a slot with no fandom); the list itself defaults to empty.
func fandomIdsField(record map[string]any, field string) ([]*int, error) {
	value, ok := record[field]
	if !ok || value == nil {
		return []*int{}, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, decodeErrorf(field, "expected a list, got %v", typeName(value))
	}
	ids := make([]*int, 0, len(items))
	for i, item := range items {
		if item == nil {
			ids = append(ids, nil)
			continue
		}
		n, ok := item.(float64)
		if !ok || n != float64(int(n)) {
			return nil, decodeErrorf(fmt.Sprintf("%v[%v]", field, i), "expected an integer or null, got %v", typeName(item))
		}
		id := int(n)
		ids = append(ids, &id)
	}
	return ids, nil
}

func prefixField(err error, prefix string) error {
	if derr, ok := err.(*DecodeError); ok {
		return &DecodeError{Field: prefix + "." + derr.Field, Msg: derr.Msg}
	}
	return err
}

func typeName(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%T", value)
}
