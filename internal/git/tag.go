package git

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/gorewood/autotag/internal/output"
)

// TagExists reports whether a tag with exactly this name exists.
func (c *Client) TagExists(ctx context.Context, tag string) (bool, error) {
	out, err := c.Run(ctx, "tag", "--list", tag)
	if err != nil {
		return false, err
	}
	return slices.Contains(splitLines(out), tag), nil
}

// CreateTag tags HEAD. An empty message creates a lightweight tag, anything
// else an annotated one.
func (c *Client) CreateTag(ctx context.Context, tag, message string) error {
	if strings.HasPrefix(tag, "-") {
		return output.NewUserError("invalid tag name: " + tag)
	}

	args := []string{"tag", tag}
	if message != "" {
		args = []string{"tag", "-a", tag, "-m", message}
	}
	if _, err := c.Run(ctx, args...); err != nil {
		return err
	}
	c.log.Debug("created tag", zap.String("tag", tag), zap.Bool("annotated", message != ""))
	return nil
}
