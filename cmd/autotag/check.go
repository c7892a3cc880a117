package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/autotag/internal/output"
	"github.com/gorewood/autotag/internal/release"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	var flags releaseFlags
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether HEAD can be tagged",
		Long: `Report the manifest version, the tag it maps to, and whether the
repository is ready to be tagged. Nothing is changed.

With --strict the command exits with code 3 when the repository is not
ready, which makes it usable as a CI gate.

Examples:
  autotag check                # Show release readiness
  autotag check --strict       # Fail when not ready
  autotag check --json         # Output readiness as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, &flags, strict)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with a conflict code when not ready")
	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, flags *releaseFlags, strict bool) error {
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

	// An empty repository has no HEAD yet; the plan is still reported.
	commit, err := ws.git.HEAD(cmd.Context())
	if err != nil {
		ws.log.Debug("no HEAD commit", zap.Error(err))
	}

	if ws.printer.IsJSON() {
		if err := ws.printer.Success(map[string]any{
			"commit":     commit,
			"manifest":   plan.Manifest,
			"format":     plan.Format,
			"version":    plan.Version,
			"tag":        plan.Tag,
			"remote":     plan.Remote,
			"clean":      plan.Clean,
			"tag_exists": plan.TagExists,
			"ready":      plan.Ready(),
		}); err != nil {
			return err
		}
	} else {
		printHumanCheck(ws.printer, plan, commit)
		ws.warnUnknownRemote(cmd, plan.Remote)
	}

	if strict && !plan.Ready() {
		err := output.NewConflictError(fmt.Sprintf("not ready to tag %s", plan.Tag))
		if ws.printer.IsJSON() {
			return err
		}
		return ws.fail(err)
	}
	return nil
}

// printHumanCheck outputs readiness in human-readable format.
func printHumanCheck(printer *output.Printer, plan *release.Plan, commit string) {
	printer.Section("Manifest")
	printer.KeyValue("Path", plan.Manifest)
	printer.KeyValue("Format", plan.Format)
	printer.KeyValue("Version", plan.Version)

	printer.Section("Release")
	if commit != "" {
		printer.KeyValue("Commit", shortSHA(commit))
	}
	printer.KeyValue("Tag", plan.Tag)
	printer.KeyValue("Clean", formatBool(plan.Clean))
	printer.KeyValue("Tag exists", formatBool(plan.TagExists))
	printer.KeyValue("Ready", formatBool(plan.Ready()))
}

// shortSHA abbreviates a commit SHA for display.
func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
