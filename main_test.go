package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/urfave/cli/v2"
)

// MainTestSuite defines a test suite for the main package functionality.
type MainTestSuite struct {
	suite.Suite
	tempDir string // Temporary directory for test files
}

// SetupSuite prepares the test environment by creating a temporary directory.
func (s *MainTestSuite) SetupSuite() {
	// Save original color setting and disable color for tests
	originalNoColor := color.NoColor
	color.NoColor = true

	// Create a temporary directory for test files
	tempDir, err := os.MkdirTemp("", "wanvideo-gen-test")
	require.NoError(s.T(), err)
	s.tempDir = tempDir

	// Restore color setting in TearDownSuite
	s.T().Cleanup(func() {
		color.NoColor = originalNoColor
	})
}

// TearDownSuite cleans up the test environment by removing the temporary directory.
func (s *MainTestSuite) TearDownSuite() {
	// Clean up temporary directory
	os.RemoveAll(s.tempDir)
}

// newTestApp builds a minimal CLI app around analyzeCommand for exercising
// the argument and file validation paths.
func (s *MainTestSuite) newTestApp() *cli.App {
	return &cli.App{
		Name:      "wanvideo-gen-data-extractor",
		Action:    analyzeCommand,
		ArgsUsage: "VIDEO_FILE",
	}
}

// TestTruncatePreview tests the truncatePreview function to ensure the raw
// metadata preview is capped at the diagnostic limit.
func (s *MainTestSuite) TestTruncatePreview() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "short blob untouched",
			input:    `{"1": {}}`,
			expected: `{"1": {}}`,
		},
		{
			name:     "exactly at the limit",
			input:    strings.Repeat("a", rawPreviewLimit),
			expected: strings.Repeat("a", rawPreviewLimit),
		},
		{
			name:     "long blob truncated",
			input:    strings.Repeat("b", rawPreviewLimit+50),
			expected: strings.Repeat("b", rawPreviewLimit) + "...",
		},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, truncatePreview(tc.input), tc.name)
	}
}

// TestAnalyzeCommandMissingArgument tests that invoking the command without a
// file argument fails with a usage error.
func (s *MainTestSuite) TestAnalyzeCommandMissingArgument() {
	app := s.newTestApp()

	err := app.Run([]string{"wanvideo-gen-data-extractor"})
	s.Error(err)
	s.Contains(err.Error(), "missing required argument")
}

// TestAnalyzeCommandFileNotFound tests that a nonexistent file is rejected
// before any external tool is invoked.
func (s *MainTestSuite) TestAnalyzeCommandFileNotFound() {
	app := s.newTestApp()
	missing := filepath.Join(s.tempDir, "does-not-exist.mp4")

	err := app.Run([]string{"wanvideo-gen-data-extractor", missing})
	s.Error(err)
	s.Contains(err.Error(), "file not found")
}

// TestMainTestSuite runs the main package test suite.
func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}
