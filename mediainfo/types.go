// Package mediainfo locates the MediaInfo executable and extracts embedded
// generation metadata.
package mediainfo

// Private types (alphabetical)

// report mirrors the envelope of `mediainfo --Output=JSON`. Tracks are kept
// as loose maps: the generation tags we are after ("prompt", "Comment") are
// written by muxers rather than MediaInfo itself, so their presence and
// spelling vary between files.
type report struct {
	Media struct {
		Tracks []map[string]interface{} `json:"track"`
	} `json:"media"`
}

// Public types (alphabetical)

// Info contains information about the MediaInfo installation.
type Info struct {
	// Installed is true if MediaInfo is found on the system
	Installed bool
	// Path is the full path to the MediaInfo executable
	Path string
	// Version is the version of MediaInfo
	Version string
}

// Prober extracts embedded generation metadata from media files by invoking
// the MediaInfo executable.
type Prober struct {
	// MediaInfoPath is the path to the MediaInfo executable
	MediaInfoPath string
}
