// Package comfyui decodes the generation metadata that ComfyUI-style
// pipelines embed in rendered media files and classifies the recovered node
// graph into prompts, LoRA usages, and model references.
package comfyui

import (
	"fmt"
)

// Private constants (alphabetical)
const (
	// classTextEncode is the node class whose text input carries a prompt.
	classTextEncode = "CLIPTextEncode"

	// defaultLoraWeight is the weight reported for a LoRA node that carries
	// no strength input at all.
	defaultLoraWeight = "1.0"

	// errorPrefix is used as a prefix for all error messages from this package.
	// This ensures consistent error formatting across the package.
	errorPrefix = "comfyui: "

	// maxStringUnwraps bounds how many layers of string-encoded JSON the
	// decoder will peel before giving up. Known emitters have produced at
	// most two.
	maxStringUnwraps = 8
)

// Public functions (alphabetical)

// FormatError creates a standardized error message with the package prefix.
// It ensures all errors from this package have a consistent format and can be
// easily identified as originating from the comfyui package.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}
