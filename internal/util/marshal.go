package util

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes v to w without escaping <, > and &.
// Messages from the checker quote text freely, so escaping would mangle them.
func WriteJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
