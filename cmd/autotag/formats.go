package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/autotag/internal/logging"
	"github.com/gorewood/autotag/internal/manifest"
)

// formatFiles describes which files each format is detected from.
var formatFiles = map[manifest.Format]string{
	manifest.FormatPyproject: "pyproject.toml",
	manifest.FormatCargo:     "Cargo.toml",
	manifest.FormatNPM:       "package.json",
	manifest.FormatYAML:      "*.yaml, *.yml",
	manifest.FormatPlain:     "VERSION, version.txt",
	manifest.FormatRegex:     "anything else",
}

// newFormatsCmd creates the formats command.
func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported manifest formats",
		Long: `List the manifest formats autotag can read a version from.

Files that match no format are scanned for a single version = "..." line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFormats(cmd)
		},
	}
}

// runFormats executes the formats command. It needs no repository.
func runFormats(cmd *cobra.Command) error {
	printer := newPrinter(cmd)
	reader := manifest.NewReader(logging.New(cmd.ErrOrStderr(), isVerbose(cmd)))

	formats := append(reader.Formats(), manifest.FormatRegex)
	if printer.IsJSON() {
		names := make([]string, 0, len(formats))
		for _, format := range formats {
			names = append(names, string(format))
		}
		return printer.Success(map[string]any{
			"formats":  names,
			"fallback": string(manifest.FormatRegex),
		})
	}

	rows := make([][]string, 0, len(formats))
	for _, format := range formats {
		rows = append(rows, []string{string(format), formatFiles[format]})
	}
	printer.Table([]string{"FORMAT", "FILES"}, rows)
	printer.Println()
	printer.Println("Pass --format to override detection.")
	return nil
}
