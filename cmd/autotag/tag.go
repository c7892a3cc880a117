package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/autotag/internal/release"
)

// newTagCmd creates the tag command.
func newTagCmd() *cobra.Command {
	var flags releaseFlags
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag HEAD with the manifest version",
		Long: `Tag HEAD with the version read from the project manifest.

The tag is refused when the working tree has uncommitted or untracked
changes, or when a tag with the same name already exists. Nothing is
pushed; the push commands are printed instead.

Examples:
  autotag tag                              # Tag with the version from the detected manifest
  autotag tag --prefix v                   # Tag v1.2.3 instead of 1.2.3
  autotag tag -m Cargo.toml --dry-run      # Show what would be tagged
  autotag tag --message "Release {tag}"    # Create an annotated tag
  autotag tag --json                       # Output the result as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTag(cmd, &flags, dryRun)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be tagged without tagging")
	return cmd
}

// runTag executes the tag command.
func runTag(cmd *cobra.Command, flags *releaseFlags, dryRun bool) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}

	opts, err := ws.options(cmd, flags)
	if err != nil {
		return ws.fail(err)
	}

	plan, err := ws.tagger.Plan(cmd.Context(), opts)
	if err != nil {
		return ws.fail(err)
	}
	if !ws.printer.IsJSON() {
		ws.printer.Print("Detected version=%q\n", plan.Version)
	}

	result, err := ws.tagger.Apply(cmd.Context(), plan, dryRun)
	if err != nil {
		return ws.fail(err)
	}

	if ws.printer.IsJSON() {
		return ws.printer.WriteJSON(result)
	}
	ws.warnUnknownRemote(cmd, result.Remote)
	printHumanTag(ws, result)
	return nil
}

// printHumanTag outputs the tag result in human-readable format.
func printHumanTag(ws *workspace, result *release.Result) {
	if result.DryRun {
		ws.printer.Print("Dry run: would tag %s\n", result.Tag)
	} else {
		_ = ws.printer.Success(map[string]any{"message": "Tagged " + result.Tag})
	}
	ws.printer.Println()
	ws.printer.Box("Next steps", result.Instructions)
}
