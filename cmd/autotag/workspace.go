package main

import (
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/autotag/internal/config"
	"github.com/gorewood/autotag/internal/envfile"
	"github.com/gorewood/autotag/internal/git"
	"github.com/gorewood/autotag/internal/logging"
	"github.com/gorewood/autotag/internal/manifest"
	"github.com/gorewood/autotag/internal/output"
	"github.com/gorewood/autotag/internal/release"
)

// workspace bundles what every repository command needs.
type workspace struct {
	printer *output.Printer
	log     *zap.Logger
	git     *git.Client
	root    string
	cfg     config.Config
	reader  *manifest.Reader
	tagger  *release.Tagger
}

// releaseFlags are the flags shared by tag and check.
type releaseFlags struct {
	manifest string
	format   string
	prefix   string
	message  string
	remote   string
}

func (f *releaseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.manifest, "manifest", "m", "", "Manifest path relative to the repository root (default: first of "+
		"pyproject.toml, Cargo.toml, package.json, VERSION)")
	cmd.Flags().StringVar(&f.format, "format", "", "Manifest format: pyproject, cargo, npm, yaml, plain or regex (default: from file name)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "Tag prefix, e.g. v")
	cmd.Flags().StringVar(&f.message, "message", "", "Create an annotated tag with this message ({version} and {tag} are expanded)")
	cmd.Flags().StringVar(&f.remote, "remote", "", "Remote named in push instructions (default: origin)")
}

// openWorkspace locates the repository and loads its settings. Errors are
// printed before they are returned.
func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	printer := newPrinter(cmd)
	log := logging.New(cmd.ErrOrStderr(), isVerbose(cmd))
	client := git.New(persistentFlag(cmd, "dir"), log)

	if !client.IsRepo(cmd.Context()) {
		err := output.NewSystemError("not in a git repository")
		printer.Error(err)
		return nil, err
	}
	root, err := client.RepoRoot(cmd.Context())
	if err != nil {
		printer.Error(err)
		return nil, err
	}

	loadEnvFiles(root, log)
	cfg, err := config.Load(root)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return nil, userErr
	}

	reader := manifest.NewReader(log)
	return &workspace{
		printer: printer,
		log:     log,
		git:     client,
		root:    root,
		cfg:     cfg,
		reader:  reader,
		tagger:  release.NewTagger(client, reader, log),
	}, nil
}

// loadEnvFiles applies AUTOTAG_* variables from env files. The first file
// that sets a variable wins and the real environment always takes precedence:
//  1. <root>/.env.local
//  2. <root>/.env
//  3. config.Dir()/env
func loadEnvFiles(root string, log *zap.Logger) {
	paths := []string{filepath.Join(root, ".env.local"), filepath.Join(root, ".env")}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	for _, path := range paths {
		applied, err := envfile.Load(path, "AUTOTAG_")
		if err != nil {
			log.Warn("skipping env file", zap.String("path", path), zap.Error(err))
			continue
		}
		if len(applied) > 0 {
			log.Debug("loaded env file", zap.String("path", path), zap.Strings("keys", applied))
		}
	}
}

// options merges flags over the loaded config. A flag counts when it was
// set on the command line, so --prefix "" can clear a configured prefix.
func (ws *workspace) options(cmd *cobra.Command, flags *releaseFlags) (release.Options, error) {
	cfg := ws.cfg
	changed := cmd.Flags().Changed
	if changed("manifest") {
		cfg.Manifest = flags.manifest
	}
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("prefix") {
		cfg.Prefix = flags.prefix
	}
	if changed("message") {
		cfg.Message = flags.message
	}
	if changed("remote") {
		cfg.Remote = flags.remote
	}

	format, err := manifest.ParseFormat(cfg.Format)
	if err != nil {
		return release.Options{}, output.NewUserErrorWithCause(err.Error(), err)
	}
	path, err := release.LocateManifest(ws.root, cfg.Manifest)
	if err != nil {
		return release.Options{}, err
	}

	return release.Options{
		Manifest: path,
		Format:   format,
		Prefix:   cfg.Prefix,
		Message:  cfg.Message,
		Remote:   cfg.Remote,
	}, nil
}

// warnUnknownRemote warns when the push instructions name a remote the
// repository does not have.
func (ws *workspace) warnUnknownRemote(cmd *cobra.Command, remote string) {
	remotes, err := ws.git.Remotes(cmd.Context())
	if err != nil {
		ws.log.Debug("listing remotes failed", zap.Error(err))
		return
	}
	if !slices.Contains(remotes, remote) {
		ws.printer.Warn("remote %q is not configured in this repository", remote)
	}
}

// fail prints err and returns it.
func (ws *workspace) fail(err error) error {
	ws.printer.Error(err)
	return err
}
