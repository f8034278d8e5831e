// Package main provides the entry point for the WanVideo generation data
// extractor. It reads the generation metadata that ComfyUI-style pipelines
// embed in a rendered video's container, recovers the node graph, and prints
// the prompts, LoRA usages, and model references it finds.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/sirwildmanfol/WanVideo-Gen-Data-Extractor/comfyui"
	"github.com/sirwildmanfol/WanVideo-Gen-Data-Extractor/mediainfo"
	"github.com/urfave/cli/v2"
)

// Private constants (alphabetical)
const (
	// metadataHint points the user at the upstream switch that embeds the
	// generation data in the first place.
	metadataHint = "Make sure 'save_metadata' was enabled in ComfyUI when the file was rendered."

	// promptSeparator is printed after each prompt to keep multi-prompt
	// output readable.
	promptSeparator = "----------------------------------------"

	// rawPreviewLimit caps how much of the raw blob the decode-failure
	// diagnostic shows.
	rawPreviewLimit = 200
)

// Public constants (alphabetical)
// None currently defined

// Private variables (alphabetical)
// None currently defined

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'main.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// printAnalysis prints one labeled, colorized section per non-empty category
// of the classification result. Empty categories are omitted entirely.
func printAnalysis(analysis *comfyui.Analysis) {
	positiveStyle := color.New(color.FgGreen, color.Bold)
	negativeStyle := color.New(color.FgRed, color.Bold)
	loraStyle := color.New(color.FgYellow, color.Bold)
	modelStyle := color.New(color.FgBlue, color.Bold)

	if len(analysis.PositivePrompts) > 0 {
		positiveStyle.Println(">>> POSITIVE PROMPT:")
		for _, prompt := range analysis.PositivePrompts {
			fmt.Println(prompt)
			fmt.Println(promptSeparator)
		}
	}

	if len(analysis.NegativePrompts) > 0 {
		negativeStyle.Println("\n>>> NEGATIVE PROMPT:")
		for _, prompt := range analysis.NegativePrompts {
			fmt.Println(prompt)
			fmt.Println(promptSeparator)
		}
	}

	if loras := analysis.Loras(); len(loras) > 0 {
		loraStyle.Println("\n>>> LORAS USED:")
		for _, lora := range loras {
			fmt.Printf("  • %s\n", lora)
		}
	}

	if models := analysis.Models(); len(models) > 0 {
		modelStyle.Println("\n>>> MODELS / CHECKPOINTS:")
		for _, model := range models {
			fmt.Printf("  • %s\n", model)
		}
	}
}

// printDecodeFailure reports unparsable metadata with its underlying cause
// and a preview of the raw blob for debugging. The condition is soft: the
// caller still exits normally after this diagnostic.
func printDecodeFailure(err error, raw string) {
	errorStyle := color.New(color.FgRed)
	regularStyle := color.New(color.Reset)

	errorStyle.Printf("[!] Metadata decoding error: ")
	regularStyle.Printf("%v\n", err)
	regularStyle.Printf("\nRaw data preview for debugging:\n%s\n", truncatePreview(raw))
}

// printHeader prints the file-analysis banner naming the file being worked on.
func printHeader(path string) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Println("📊 GENERATION METADATA")
	regularStyle.Println("----------------------")
	fmt.Println()
	regularStyle.Printf("🎬 Working on: ")
	valueStyle.Printf("%s\n\n", filepath.Base(path))
}

// printSummary prints the count of each extracted category with proper
// pluralization.
func printSummary(analysis *comfyui.Analysis) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	pluralizeClient := pluralize.NewClient()

	positiveCount := len(analysis.PositivePrompts)
	negativeCount := len(analysis.NegativePrompts)
	loraCount := len(analysis.Loras())
	modelCount := len(analysis.Models())

	summaryStyle.Println("\nℹ️ EXTRACTION SUMMARY")
	regularStyle.Println("----------------")

	regularStyle.Printf("💬 %d ", positiveCount)
	valueStyle.Println(pluralizeClient.Pluralize("positive prompt", positiveCount, false))

	regularStyle.Printf("🚫 %d ", negativeCount)
	valueStyle.Println(pluralizeClient.Pluralize("negative prompt", negativeCount, false))

	regularStyle.Printf("🧩 %d ", loraCount)
	valueStyle.Println(pluralizeClient.Pluralize("LoRA reference", loraCount, false))

	regularStyle.Printf("📦 %d ", modelCount)
	valueStyle.Println(pluralizeClient.Pluralize("model file", modelCount, false))
}

// truncatePreview shortens a raw metadata blob to the diagnostic preview
// length, marking the cut with an ellipsis.
func truncatePreview(raw string) string {
	if len(raw) <= rawPreviewLimit {
		return raw
	}
	return raw[:rawPreviewLimit] + "..."
}

func versionPrinter(c *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("🎞️ WanVideo Gen Data Extractor %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// Public functions (alphabetical)

// analyzeCommand implements the default command which extracts generation
// metadata from a video file. It probes the container, decodes the node
// graph, classifies it, and prints the results.
func analyzeCommand(c *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	errorStyle := color.New(color.FgRed)

	// Get the file path from the first argument
	if c.NArg() < 1 {
		// Display a more user-friendly message and usage information
		errorStyle.Printf("❌ Error: missing required argument: VIDEO_FILE\n\n")
		regularStyle.Printf("Usage: %s VIDEO_FILE\n", c.App.Name)
		regularStyle.Printf("Run '%s --help' for more information.\n", c.App.Name)
		return fmt.Errorf("missing required argument: VIDEO_FILE")
	}
	filePath := c.Args().Get(0)

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", absPath)
	}

	// Find MediaInfo and check version
	info, err := mediainfo.FindMediaInfo()
	if err != nil {
		return fmt.Errorf("error finding MediaInfo: %w", err)
	}
	if !info.Installed {
		errorStyle.Println("❌ MediaInfo is not installed.")
		regularStyle.Println("Install it from https://mediaarea.net/MediaInfo or through your package manager.")
		return fmt.Errorf("mediainfo executable not found")
	}

	// Print MediaInfo information
	regularStyle.Printf("🔧 Using MediaInfo at ")
	valueStyle.Printf("%s\n", info.Path)
	regularStyle.Printf("🔖 MediaInfo version: ")
	valueStyle.Printf("%s\n\n", info.Version)

	// Create a prober for reading the embedded metadata
	prober, err := mediainfo.NewProber(info)
	if err != nil {
		return fmt.Errorf("error creating prober: %w", err)
	}

	// Fetch the raw generation blob from the container
	raw, err := prober.GetGenerationMetadata(c.Context, absPath)
	if err != nil {
		return fmt.Errorf("error reading metadata: %w", err)
	}
	if raw == "" {
		errorStyle.Println("❌ No generation metadata found in file.")
		regularStyle.Println(metadataHint)
		return fmt.Errorf("no generation metadata in %s", filepath.Base(absPath))
	}

	printHeader(absPath)

	// Decode the blob into a node graph
	graph, err := comfyui.Decode(raw)
	if err != nil {
		// Unparsable metadata is reported, not fatal: the run still ends
		// normally after printing the diagnostic.
		printDecodeFailure(err, raw)
		return nil
	}

	// Classify the graph and print the results
	analysis := comfyui.Classify(graph)
	printAnalysis(analysis)
	printSummary(analysis)

	return nil
}

// main is the entry point of the application.
// It parses command-line arguments, validates input, and starts the extraction.
func main() {
	// Override the default version printer
	cli.VersionPrinter = versionPrinter

	// Create a new CLI app
	app := &cli.App{
		Name:  "wanvideo-gen-data-extractor",
		Usage: "Extract ComfyUI generation metadata from video files",
		Description: "WanVideo Gen Data Extractor reads the generation metadata embedded in a " +
			"video's container and prints the prompts, LoRA references, and model files " +
			"that produced it.",
		Authors: []*cli.Author{
			{
				Name: "sirwildmanfol",
			},
		},
		Version:   Version,
		Action:    analyzeCommand,
		ArgsUsage: "VIDEO_FILE",
	}

	// Run the application
	if err := app.Run(os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
