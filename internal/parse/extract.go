package parse

import (
	"errors"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON   = errors.New("body is not valid JSON")
	ErrNotObject     = errors.New("body is not a JSON object")
	ErrMatchesNotArr = errors.New(`"matches" is not an array`)
)

// HasMatches reports whether body carries at least one entry under
// "matches". A missing key, null or an empty array all mean "nothing found".
func HasMatches(b []byte) (bool, error) {
	if !gjson.ValidBytes(b) {
		return false, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(b)
	if !doc.IsObject() {
		return false, ErrNotObject
	}
	m := doc.Get("matches")
	switch {
	case !m.Exists(), m.Type == gjson.Null:
		return false, nil
	case !m.IsArray():
		return false, ErrMatchesNotArr
	}
	return len(m.Array()) > 0, nil
}
