package parse

import (
	"encoding/json"

	"github.com/Alfex4936/ltcheck/internal/model"
)

// Decode converts a /check body into its raw matches.
// It returns nil, nil when the body reports nothing.
func Decode(raw []byte) ([]model.RawMatch, error) {
	ok, err := HasMatches(raw)
	if err != nil || !ok {
		return nil, err
	}

	var resp model.RawResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return resp.Matches, nil
}

// Languages converts a /languages body into its entries.
func Languages(raw []byte) ([]model.Language, error) {
	if !json.Valid(raw) {
		return nil, ErrInvalidJSON
	}
	var out []model.Language
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
