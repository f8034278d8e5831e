// Package comfyui decodes and classifies embedded ComfyUI generation metadata.
package comfyui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DecodeTestSuite is a test suite for the metadata decoding logic.
// It covers the three historical encodings of the embedded blob and the
// failure modes of the recursive unwrapping.
type DecodeTestSuite struct {
	suite.Suite
}

// TestDecodePlainObject tests decoding a plain JSON object, the oldest and
// simplest of the emitted encodings.
func (suite *DecodeTestSuite) TestDecodePlainObject() {
	raw := `{"1": {"class_type": "CLIPTextEncode", "inputs": {"text": "cat"}}}`

	graph, err := Decode(raw)
	suite.NoError(err)
	suite.Len(graph, 1)

	node, ok := graph["1"].(map[string]interface{})
	suite.True(ok)
	suite.Equal("CLIPTextEncode", node["class_type"])
}

// TestDecodeEnvelope tests that an outer {"prompt": ...} wrapper is unwrapped
// and the inner mapping is treated as the node graph.
func (suite *DecodeTestSuite) TestDecodeEnvelope() {
	raw := `{"prompt": {"1": {"class_type": "CLIPTextEncode", "inputs": {"text": "cat"}}}}`

	graph, err := Decode(raw)
	suite.NoError(err)
	suite.Len(graph, 1)
	suite.Contains(graph, "1")

	analysis := Classify(graph)
	suite.Equal([]string{"cat"}, analysis.PositivePrompts)
}

// TestDecodeEnvelopeWithStringPayload tests an envelope whose prompt value is
// itself a JSON-encoded string, which requires a second parse.
func (suite *DecodeTestSuite) TestDecodeEnvelopeWithStringPayload() {
	raw := `{"prompt": "{\"7\": {\"class_type\": \"CLIPTextEncode\", \"inputs\": {\"text\": \"dog\"}}}"}`

	graph, err := Decode(raw)
	suite.NoError(err)
	suite.Contains(graph, "7")
}

// TestDecodeDoubleEncodedString tests a JSON string containing JSON, the
// second historical encoding of the blob.
func (suite *DecodeTestSuite) TestDecodeDoubleEncodedString() {
	raw := `"{\"1\": {\"class_type\": \"CLIPTextEncode\", \"inputs\": {\"text\": \"dog\"}}}"`

	graph, err := Decode(raw)
	suite.NoError(err)
	suite.Len(graph, 1)

	analysis := Classify(graph)
	suite.Equal([]string{"dog"}, analysis.PositivePrompts)
}

// TestDecodeEscapedString tests the escaped-string variant, where the blob
// carries literal backslash escapes without being a valid JSON string itself.
func (suite *DecodeTestSuite) TestDecodeEscapedString() {
	raw := `{\"1\": {\"class_type\": \"CLIPTextEncode\", \"inputs\": {\"text\": \"dog\"}}}`

	graph, err := Decode(raw)
	suite.NoError(err)
	suite.Len(graph, 1)
	suite.Contains(graph, "1")
}

// TestDecodeUnparsableText tests that text that is not JSON in any of the
// tolerated shapes yields an error instead of a panic.
func (suite *DecodeTestSuite) TestDecodeUnparsableText() {
	graph, err := Decode("not json at all")
	suite.Error(err)
	suite.Nil(graph)
	suite.Contains(err.Error(), "comfyui:")
}

// TestDecodeNonMappingRoot tests that a parseable value whose final shape is
// not a mapping is rejected.
func (suite *DecodeTestSuite) TestDecodeNonMappingRoot() {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "array", raw: `[1, 2, 3]`},
		{name: "number", raw: `42`},
		{name: "null", raw: `null`},
		{name: "bare string payload", raw: `"\"just text\""`},
	}

	for _, tc := range testCases {
		graph, err := Decode(tc.raw)
		suite.Error(err, tc.name)
		suite.Nil(graph, tc.name)
	}
}

// TestDecodeStringUnwrapBound tests that a blob nesting more string layers
// than the decoder tolerates fails cleanly instead of recursing forever.
func (suite *DecodeTestSuite) TestDecodeStringUnwrapBound() {
	// Build a string wrapped in more encoding layers than maxStringUnwraps.
	raw := `{"1": {}}`
	for i := 0; i < maxStringUnwraps+1; i++ {
		raw = `"` + strings.ReplaceAll(strings.ReplaceAll(raw, `\`, `\\`), `"`, `\"`) + `"`
	}

	graph, err := Decode(raw)
	suite.Error(err)
	suite.Nil(graph)
}

// TestDeEscape tests the de-escaping pass in isolation.
func (suite *DecodeTestSuite) TestDeEscape() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escaped quotes",
			input:    `{\"a\": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding quotes stripped",
			input:    `"{\"a\": 1}"`,
			expected: `{"a": 1}`,
		},
		{
			name:     "no escapes",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
	}

	for _, tc := range testCases {
		suite.Equal(tc.expected, deEscape(tc.input), tc.name)
	}
}

// TestDecodeTestSuite runs the decode test suite.
func TestDecodeTestSuite(t *testing.T) {
	suite.Run(t, new(DecodeTestSuite))
}
