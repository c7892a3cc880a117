package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/gorewood/autotag/internal/logging"
	"github.com/gorewood/autotag/internal/output"
)

// Client runs git commands in one working directory.
type Client struct {
	dir string
	log *zap.Logger
}

// New creates a client for dir. An empty dir means the process working
// directory. A nil log discards debug output.
func New(dir string, log *zap.Logger) *Client {
	return &Client{dir: dir, log: logging.OrNop(log)}
}

// Dir returns the directory the client runs git in.
func (c *Client) Dir() string {
	return c.dir
}

// Run executes git with the given arguments and returns trimmed stdout.
// Returns an *output.ExitError on failure.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	if c.dir != "" {
		args = append([]string{"-C", c.dir}, args...)
	}
	c.log.Debug("running git", zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		c.log.Debug("git failed", zap.Strings("args", args), zap.String("stderr", errMsg))
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo reports whether the directory is inside a git repository.
func (c *Client) IsRepo(ctx context.Context) bool {
	_, err := c.Run(ctx, "rev-parse", "--git-dir")
	return err == nil
}

// RepoRoot returns the top-level directory of the repository.
func (c *Client) RepoRoot(ctx context.Context) (string, error) {
	root, err := c.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}

// HEAD returns the full SHA of the HEAD commit.
func (c *Client) HEAD(ctx context.Context) (string, error) {
	sha, err := c.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get HEAD", err)
	}
	return sha, nil
}

// IsClean reports whether the working tree has no staged, unstaged or
// untracked changes.
func (c *Client) IsClean(ctx context.Context) (bool, error) {
	out, err := c.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}

// Remotes returns the configured remote names in sorted order.
func (c *Client) Remotes(ctx context.Context) ([]string, error) {
	out, err := c.Run(ctx, "remote")
	if err != nil {
		return nil, err
	}
	remotes := splitLines(out)
	slices.Sort(remotes)
	return remotes, nil
}

func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	var lines []string
	for line := range strings.SplitSeq(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
