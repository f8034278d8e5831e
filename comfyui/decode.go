// Package comfyui decodes and classifies embedded ComfyUI generation metadata.
package comfyui

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Private variables (alphabetical)

// escapeReplacer interprets the backslash escape sequences found in badly
// escaped metadata blobs literally, turning \" into " and so on.
var escapeReplacer = strings.NewReplacer(
	`\"`, `"`,
	`\\`, `\`,
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

// Private functions (alphabetical)

// deEscape applies a best-effort de-escaping pass to a string that failed to
// parse as JSON. It interprets backslash escape sequences literally and
// strips one layer of surrounding quote characters.
func deEscape(s string) string {
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	return escapeReplacer.Replace(s)
}

// extractGraph recursively unwraps a decoded JSON value until it reaches the
// flat node mapping. A mapping holding a "prompt" key is an envelope around
// the real graph; a string is another layer of JSON encoding. depth counts
// string re-parses against maxStringUnwraps.
func extractGraph(value interface{}, depth int) (NodeGraph, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		if inner, ok := v["prompt"]; ok {
			return extractGraph(inner, depth)
		}
		return NodeGraph(v), nil
	case string:
		if depth >= maxStringUnwraps {
			return nil, FormatError("metadata nested more than %d string layers deep", maxStringUnwraps)
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			fixed := deEscape(v)
			if err := json.Unmarshal([]byte(fixed), &parsed); err != nil {
				return nil, FormatError("metadata string is not valid JSON, even after de-escaping: %w", err)
			}
		}
		return extractGraph(parsed, depth+1)
	default:
		return nil, FormatError("metadata root is %T, expected an object", value)
	}
}

// Public functions (alphabetical)

// Decode converts the raw metadata blob extracted from a media container into
// a flat NodeGraph. The source tool has emitted at least three encodings over
// time (a plain JSON object, a JSON object encoded as a JSON string, and an
// escaped-string variant), so decoding tries each shape in fixed precedence:
// unwrap a "prompt" envelope, accept a mapping directly, or re-parse a string
// with an optional de-escaping pass. An error is returned when no attempt
// yields a mapping.
func Decode(raw string) (NodeGraph, error) {
	return extractGraph(raw, 0)
}
