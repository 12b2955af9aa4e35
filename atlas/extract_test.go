package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFicID(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantID int
		wantOK bool
	}{
		{"full link with chapter and slug", "https://www.fanfiction.net/s/13912800/1/Magical-Marvel", 13912800, true},
		{"trailing slash", "https://www.fanfiction.net/s/14182918/1/", 14182918, true},
		{"no scheme", "www.fanfiction.net/s/123", 123, true},
		{"bare host", "fanfiction.net/s/123", 123, true},
		{"mobile subdomain", "http://m.fanfiction.net/s/456/3", 456, true},
		{"embedded in chat message", "check this out https://www.fanfiction.net/s/789 it's great", 789, true},
		{"first link wins", "fanfiction.net/s/1 and fanfiction.net/s/2", 1, true},
		{"non-numeric id", "https://www.fanfiction.net/s/asdfasdfasdf", 0, false},
		{"no story path", "https://www.fanfiction.net/u/1122/SomeWriter", 0, false},
		{"unrelated text", "nothing to see here", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractFicID(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
