// Package release implements the tag-from-manifest workflow: read the
// version, refuse on a dirty tree or an existing tag, then tag HEAD.
package release

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gorewood/autotag/internal/logging"
	"github.com/gorewood/autotag/internal/manifest"
	"github.com/gorewood/autotag/internal/output"
)

// GitOps is the subset of git the workflow needs.
type GitOps interface {
	IsClean(ctx context.Context) (bool, error)
	TagExists(ctx context.Context, tag string) (bool, error)
	CreateTag(ctx context.Context, tag, message string) error
}

// VersionReader reads a version from a manifest file.
type VersionReader interface {
	Read(path string, format manifest.Format) (string, error)
}

// Options controls one tagging run.
type Options struct {
	Manifest string
	Format   manifest.Format
	Prefix   string
	// Message makes the tag annotated; {version} and {tag} are expanded.
	Message string
	Remote  string
	DryRun  bool
}

// Plan is what a run would do, gathered without changing the repository.
type Plan struct {
	Manifest  string `json:"manifest"`
	Format    string `json:"format"`
	Version   string `json:"version"`
	Tag       string `json:"tag"`
	Message   string `json:"message,omitempty"`
	Remote    string `json:"remote"`
	Clean     bool   `json:"clean"`
	TagExists bool   `json:"tag_exists"`
}

// Ready reports whether the tag can be created.
func (p *Plan) Ready() bool {
	return p.Clean && !p.TagExists
}

// Result is the outcome of Tag.
type Result struct {
	Plan
	Created      bool   `json:"created"`
	DryRun       bool   `json:"dry_run"`
	Instructions string `json:"instructions"`
}

// Tagger runs the workflow against one repository.
type Tagger struct {
	git    GitOps
	reader VersionReader
	log    *zap.Logger
}

// NewTagger creates a Tagger.
func NewTagger(git GitOps, reader VersionReader, log *zap.Logger) *Tagger {
	return &Tagger{git: git, reader: reader, log: logging.OrNop(log)}
}

// Plan reads the version and checks the repository state. It fails only
// when the version or the repository state cannot be determined; a dirty
// tree or an existing tag is reported in the Plan.
func (t *Tagger) Plan(ctx context.Context, opts Options) (*Plan, error) {
	format := opts.Format
	if format == "" {
		format = manifest.DetectFormat(opts.Manifest)
	}

	version, err := t.reader.Read(opts.Manifest, format)
	if err != nil {
		return nil, manifestError(err)
	}

	tag := opts.Prefix + version
	if err := validateTag(tag); err != nil {
		return nil, err
	}
	plan := &Plan{
		Manifest: opts.Manifest,
		Format:   string(format),
		Version:  version,
		Tag:      tag,
		Message:  ExpandMessage(opts.Message, version, tag),
		Remote:   opts.Remote,
	}
	if plan.Remote == "" {
		plan.Remote = "origin"
	}

	if plan.Clean, err = t.git.IsClean(ctx); err != nil {
		return nil, err
	}
	if plan.TagExists, err = t.git.TagExists(ctx, tag); err != nil {
		return nil, err
	}

	t.log.Debug("planned release",
		zap.String("version", version),
		zap.String("tag", tag),
		zap.Bool("clean", plan.Clean),
		zap.Bool("tag_exists", plan.TagExists))
	return plan, nil
}

// Tag runs Plan and then Apply.
func (t *Tagger) Tag(ctx context.Context, opts Options) (*Result, error) {
	plan, err := t.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	return t.Apply(ctx, plan, opts.DryRun)
}

// Apply creates the planned tag. It refuses with a conflict error when the
// tree is dirty or the tag exists. With dryRun it stops before tagging.
func (t *Tagger) Apply(ctx context.Context, plan *Plan, dryRun bool) (*Result, error) {
	if !plan.Clean {
		return nil, output.NewConflictError("git repository not clean")
	}
	if plan.TagExists {
		return nil, output.NewConflictError(fmt.Sprintf("tag %s exists", plan.Tag))
	}

	result := &Result{
		Plan:         *plan,
		DryRun:       dryRun,
		Instructions: Instructions(plan.Remote, plan.Tag),
	}
	if dryRun {
		return result, nil
	}

	if err := t.git.CreateTag(ctx, plan.Tag, plan.Message); err != nil {
		return nil, err
	}
	result.Created = true
	t.log.Info("tagged", zap.String("tag", plan.Tag))
	return result, nil
}

// ExpandMessage substitutes {version} and {tag} in a tag message template.
func ExpandMessage(template, version, tag string) string {
	return strings.NewReplacer("{version}", version, "{tag}", tag).Replace(template)
}

// Instructions returns the commands that publish the tag.
func Instructions(remote, tag string) string {
	return fmt.Sprintf(`To push this single tag:
    git push %s %s
To push all tags:
    git push --tags`, remote, tag)
}

// ResolveManifest returns path joined to root when it is relative.
func ResolveManifest(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// LocateManifest returns the manifest to read: path resolved against root
// when given, otherwise the first of manifest.DefaultCandidates in root.
func LocateManifest(root, path string) (string, error) {
	if path != "" {
		return ResolveManifest(root, path), nil
	}
	found, err := manifest.Find(root, nil)
	if err != nil {
		return "", manifestError(err)
	}
	return found, nil
}

// validateTag rejects tag names git would refuse or parse as an option.
func validateTag(tag string) error {
	invalid := func(reason string) error {
		return output.NewUserError(fmt.Sprintf("invalid tag name %q: %s", tag, reason))
	}
	switch {
	case strings.HasPrefix(tag, "-"):
		return invalid("must not start with '-'")
	case strings.HasPrefix(tag, ".") || strings.HasPrefix(tag, "/"):
		return invalid("must not start with '.' or '/'")
	case strings.HasSuffix(tag, ".") || strings.HasSuffix(tag, "/") || strings.HasSuffix(tag, ".lock"):
		return invalid("must not end with '.', '/' or '.lock'")
	case strings.Contains(tag, "..") || strings.Contains(tag, "//") || strings.Contains(tag, "@{"):
		return invalid("must not contain '..', '//' or '@{'")
	case strings.ContainsAny(tag, " ~^:?*[\\"):
		return invalid("must not contain spaces or any of ~^:?*[\\")
	}
	for _, r := range tag {
		if r < 0x20 || r == 0x7f {
			return invalid("must not contain control characters")
		}
	}
	return nil
}

// manifestError turns manifest failures into user errors.
func manifestError(err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return output.NewUserErrorWithCause(err.Error(), err)
}
