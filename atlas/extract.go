package atlas

import (
	"regexp"
	"strconv"
)

var ficURLRegexp = regexp.MustCompile(`(https://|http://|)(www\.|m\.|)fanfiction\.net/s/(\d+)`)

// ExtractFicID pulls the story id out of the first FFN story url found in
// text. The scheme and www./m. subdomain are optional; anything after the
// id's digit run (chapter number, title slug) is ignored. The second
// return is false when text contains no story url.
func ExtractFicID(text string) (int, bool) {
	matches := ficURLRegexp.FindStringSubmatch(text)
	if matches == nil {
		return 0, false
	}
	id, err := strconv.Atoi(matches[3])
	if err != nil {
		return 0, false
	}
	return id, true
}
