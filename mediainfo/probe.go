// Package mediainfo locates the MediaInfo executable and extracts embedded
// generation metadata.
package mediainfo

import (
	"context"
	"encoding/json"
	"os/exec"
)

// Private variables (alphabetical)

// generationTagKeys lists the general-track tag fields that may carry the
// embedded generation blob, in lookup order. Newer ComfyUI releases write
// "prompt" while older ones used "Comment"; the remaining spellings show up
// with some muxers.
var generationTagKeys = []string{"prompt", "Prompt", "Comment", "comment"}

// Private functions (alphabetical)

// extractFromReport decodes a MediaInfo JSON report and returns the first
// non-empty generation tag of the General track. An empty string with a nil
// error means the file simply carries no generation metadata.
func extractFromReport(data []byte) (string, error) {
	var rep report
	if err := json.Unmarshal(data, &rep); err != nil {
		return "", FormatError("cannot decode MediaInfo output: %w", err)
	}

	for _, track := range rep.Media.Tracks {
		kind, _ := track["@type"].(string)
		if kind != "General" {
			continue
		}
		for _, key := range generationTagKeys {
			if value, ok := track[key].(string); ok && value != "" {
				return value, nil
			}
		}
	}

	return "", nil
}

// Public functions (alphabetical)

// NewProber creates a Prober from a validated MediaInfo installation.
// It returns an error when the installation info is missing or reports
// MediaInfo as not installed.
func NewProber(info *Info) (*Prober, error) {
	if info == nil || !info.Installed {
		return nil, FormatError("MediaInfo is not available")
	}
	return &Prober{
		MediaInfoPath: info.Path,
	}, nil
}

// Public methods (alphabetical)

// GetGenerationMetadata returns the raw generation blob embedded in the
// container's general track, trying the "prompt" tag first and "Comment"
// second. It returns an empty string, not an error, when the file carries no
// such tag: absence of metadata is an expected outcome that the caller
// reports to the user.
func (p *Prober) GetGenerationMetadata(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, GetDefaultTimeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, p.MediaInfoPath, "--Output=JSON", path)
	output, err := cmd.Output()
	if err != nil {
		return "", FormatError("error running MediaInfo on %s: %w", path, err)
	}

	return extractFromReport(output)
}
