package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/autotag/internal/manifest"
	"github.com/gorewood/autotag/internal/output"
	"github.com/gorewood/autotag/internal/release"
)

// newDetectCmd creates the detect command.
func newDetectCmd() *cobra.Command {
	var manifestPath, formatName string

	cmd := &cobra.Command{
		Use:     "detect",
		Aliases: []string{"version-of"},
		Short:   "Print the version declared in the manifest",
		Long: `Print the version declared in the project manifest.

Examples:
  autotag detect                       # Version from the detected manifest
  autotag detect -m charts/app/Chart.yaml
  autotag detect -m build.gradle --format regex`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(cmd, manifestPath, formatName)
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Manifest path relative to the repository root")
	cmd.Flags().StringVar(&formatName, "format", "", "Manifest format (default: from file name)")
	return cmd
}

// runDetect executes the detect command.
func runDetect(cmd *cobra.Command, manifestPath, formatName string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("manifest") {
		manifestPath = ws.cfg.Manifest
	}
	if !cmd.Flags().Changed("format") {
		formatName = ws.cfg.Format
	}

	format, err := manifest.ParseFormat(formatName)
	if err != nil {
		return ws.fail(output.NewUserErrorWithCause(err.Error(), err))
	}
	path, err := release.LocateManifest(ws.root, manifestPath)
	if err != nil {
		return ws.fail(err)
	}
	if format == "" {
		format = manifest.DetectFormat(path)
	}

	detected, err := ws.reader.Read(path, format)
	if err != nil {
		return ws.fail(output.NewUserErrorWithCause(err.Error(), err))
	}

	if ws.printer.IsJSON() {
		return ws.printer.Success(map[string]any{
			"manifest": path,
			"format":   string(format),
			"version":  detected,
		})
	}
	ws.printer.Println(detected)
	return nil
}
