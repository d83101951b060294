package embedded

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit_Locate(t *testing.T) {
	got, err := Locate(`MARKER={"a":1}`, "MARKER")
	require.NoError(t, err, "Locate")
	assert.Equal(t, map[string]any{"a": json.Number("1")}, got)
}

func TestUnit_Locate_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"no marker", `<html>{"a":1}</html>`, ErrMarkerNotFound},
		{"truncated", `MARKER={"a":`, ErrMalformedJSON},
		{"no object after marker", `{"a":1} MARKER = null;`, ErrMalformedJSON},
		{"unterminated string", `MARKER={"a":"}`, ErrMalformedJSON},
		{"balanced but invalid", `MARKER={"a" 1}`, ErrMalformedJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(tt.text, "MARKER")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnit_Carve_ByteIdentical(t *testing.T) {
	blobs := []string{
		`{"a":1}`,
		`{"note":"{not json}","nested":{"deep":{"x":[1,2,{"y":"}"}]}}}`,
		`{"q":"she said \"{hi}\"","b":true}`,
		`{"path":"C:\\dir\\","after":"{"}`,
		`{"unicode":"\u007b caf\u00e9 ☕","empty":{}}`,
	}
	for _, blob := range blobs {
		t.Run(blob, func(t *testing.T) {
			doc := `<script>window.__INITIAL_STATE__ = ` + blob + `;window.other = {"z":1};</script>`
			got, err := Carve(doc, InitialStateMarker)
			require.NoError(t, err, "Carve")
			assert.Equal(t, blob, got)
			assert.True(t, json.Valid([]byte(got)), "carved text should be valid JSON")
		})
	}
}

func TestUnit_Carve_SkipsNoiseBeforeObject(t *testing.T) {
	doc := "__INITIAL_STATE__\n  = JSON.parse(\n{\"k\":\"v\"}) trailing {garbage"
	got, err := Carve(doc, InitialStateMarker)
	require.NoError(t, err)
	assert.Equal(t, `{"k":"v"}`, got)
}

func TestUnit_Carve_UsesFirstMarker(t *testing.T) {
	doc := `M {"first":1} M {"second":2}`
	got, err := Carve(doc, "M")
	require.NoError(t, err)
	assert.Equal(t, `{"first":1}`, got)
}
