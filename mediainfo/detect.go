// Package mediainfo locates the MediaInfo executable and extracts embedded
// generation metadata.
package mediainfo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Private variables (alphabetical)

// versionRegex extracts the numeric version (e.g., 24.01) from MediaInfo's
// --Version output, which reports both the CLI and library versions.
var versionRegex = regexp.MustCompile(`(?i)MediaInfo(?:Lib)?\s*-?\s*v?(\d+(?:\.\d+)+)`)

// Private functions (alphabetical)

// checkExistence confirms if MediaInfo is installed on the system by
// searching for the executable. It first looks in the user's PATH, then in
// common installation directories for the operating system.
func checkExistence() (string, bool) {
	pathCmd, err := exec.LookPath("mediainfo")
	if err == nil {
		return pathCmd, true
	}

	for _, path := range getCommonInstallPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// getCommonInstallPaths returns a list of common MediaInfo installation paths
// for the current operating system.
func getCommonInstallPaths() []string {
	var execName string
	if runtime.GOOS == "windows" {
		execName = "MediaInfo.exe"
	} else {
		execName = "mediainfo"
	}

	switch runtime.GOOS {
	case "windows":
		searchPaths := []string{
			filepath.Join("C:", "Program Files", "MediaInfo", execName),
			filepath.Join("C:", "Program Files (x86)", "MediaInfo", execName),
		}
		if programFiles := os.Getenv("ProgramFiles"); programFiles != "" {
			searchPaths = append(searchPaths, filepath.Join(programFiles, "MediaInfo", execName))
		}
		return searchPaths
	case "darwin":
		return []string{
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "local", "bin", execName),
			filepath.Join("/opt", "homebrew", "bin", execName),
		}
	default:
		return []string{
			filepath.Join("/usr", "bin", execName),
			filepath.Join("/usr", "local", "bin", execName),
		}
	}
}

// getVersion runs `mediainfo --Version` under the package timeout and parses
// the version number from its output.
func getVersion(path string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), GetDefaultTimeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--Version")
	output, err := cmd.Output()
	if err != nil {
		return "", FormatError("error getting MediaInfo version: %w", err)
	}

	return parseVersion(string(output)), nil
}

// parseVersion extracts the version number from MediaInfo's --Version output.
// It returns "unknown" when no version can be recognized.
func parseVersion(output string) string {
	matches := versionRegex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}

	// Some builds print a bare version on the first line.
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > 0 {
		fields := strings.Fields(lines[0])
		for _, field := range fields {
			if strings.Count(field, ".") >= 1 && strings.IndexFunc(field, func(r rune) bool {
				return r >= '0' && r <= '9'
			}) == 0 {
				return strings.TrimSuffix(field, ",")
			}
		}
	}

	return "unknown"
}

// Public functions (alphabetical)

// FindMediaInfo locates and identifies the MediaInfo installation on the
// system. It returns an Info struct with the path and version, or one with
// Installed set to false when no executable can be found.
func FindMediaInfo() (*Info, error) {
	path, found := checkExistence()
	if !found {
		return &Info{
			Installed: false,
		}, nil
	}

	version, err := getVersion(path)
	if err != nil {
		return &Info{
			Installed: false,
		}, err
	}

	return &Info{
		Installed: true,
		Path:      path,
		Version:   version,
	}, nil
}
