// Package embedded carves JSON values out of HTML documents that inline them
// after a script marker such as "window.__INITIAL_STATE__ =".
package embedded

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// InitialStateMarker precedes the page state blob on buy-tickets pages.
const InitialStateMarker = "__INITIAL_STATE__"

var (
	ErrMarkerNotFound = errors.New("marker not found")
	ErrMalformedJSON  = errors.New("malformed embedded json")
)

// Locate returns the first balanced JSON object following marker in text, decoded
// with json.Number for numeric values.
func Locate(text, marker string) (any, error) {
	raw, err := Carve(text, marker)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return v, nil
}

// Carve returns the text of the first balanced top-level object after marker without
// decoding it. Braces inside string literals do not count; a backslash inside a string
// escapes exactly the next character.
func Carve(text, marker string) (string, error) {
	idx := strings.Index(text, marker)
	if idx == -1 {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}
	start := idx + len(marker)
	open := strings.IndexByte(text[start:], '{')
	if open == -1 {
		return "", fmt.Errorf("%w: no object follows %q", ErrMalformedJSON, marker)
	}
	start += open

	var (
		depth     int
		inString  bool
		escaped   bool
		jsonStart = -1
	)
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				jsonStart = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && jsonStart >= 0 {
				return text[jsonStart : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: unterminated object after %q (depth %d at end of document)", ErrMalformedJSON, marker, depth)
}
