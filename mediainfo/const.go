// Package mediainfo locates the MediaInfo executable and extracts the
// generation metadata that rendering pipelines embed in a media container's
// general track.
package mediainfo

import (
	"fmt"
	"time"
)

// Private constants (alphabetical)
const (
	// defaultTimeout is the standard timeout for MediaInfo invocations.
	// Invocations that exceed this timeout will be terminated.
	defaultTimeout = 30 * time.Second

	// errorPrefix is used as a prefix for all error messages from this package.
	// This ensures consistent error formatting across the package.
	errorPrefix = "mediainfo: "
)

// Public functions (alphabetical)

// FormatError creates a standardized error message with the package prefix.
// It ensures all errors from this package have a consistent format and can be
// easily identified as originating from the mediainfo package.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}

// GetDefaultTimeout returns the standard timeout duration for MediaInfo
// invocations. Applications can use this when creating contexts or setting
// command timeouts.
func GetDefaultTimeout() time.Duration {
	return defaultTimeout
}
