package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/autotag/internal/manifest"
	"github.com/gorewood/autotag/internal/release"
)

// ManifestInput selects a manifest. Empty fields fall back to the
// workspace defaults.
type ManifestInput struct {
	Manifest string `json:"manifest,omitempty" jsonschema:"manifest path relative to the repository root"`
	Format   string `json:"format,omitempty"   jsonschema:"manifest format: pyproject, cargo, npm, yaml, plain or regex"`
}

// --- Detect tool ---

// DetectOutput is the output for the detect tool.
type DetectOutput struct {
	Manifest string `json:"manifest" jsonschema:"manifest path that was read"`
	Format   string `json:"format"   jsonschema:"manifest format used"`
	Version  string `json:"version"  jsonschema:"detected version"`
}

func handleDetect(ws *Workspace) mcp.ToolHandlerFor[ManifestInput, DetectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ManifestInput) (*mcp.CallToolResult, DetectOutput, error) {
		path, format, err := ws.resolve(in)
		if err != nil {
			return nil, DetectOutput{}, err
		}
		if format == "" {
			format = manifest.DetectFormat(path)
		}
		version, err := ws.Reader.Read(path, format)
		if err != nil {
			return nil, DetectOutput{}, fmt.Errorf("detecting version: %w", err)
		}
		return nil, DetectOutput{Manifest: path, Format: string(format), Version: version}, nil
	}
}

// --- Check tool ---

// CheckInput is the input for the check tool.
type CheckInput struct {
	Manifest string `json:"manifest,omitempty" jsonschema:"manifest path relative to the repository root"`
	Format   string `json:"format,omitempty"   jsonschema:"manifest format: pyproject, cargo, npm, yaml, plain or regex"`
	Prefix   string `json:"prefix,omitempty"   jsonschema:"tag prefix, e.g. v"`
}

// CheckOutput is the output for the check tool.
type CheckOutput struct {
	Manifest  string   `json:"manifest"          jsonschema:"manifest path that was read"`
	Version   string   `json:"version"           jsonschema:"detected version"`
	Tag       string   `json:"tag"               jsonschema:"tag that would be created"`
	Clean     bool     `json:"clean"             jsonschema:"true when the working tree is clean"`
	TagExists bool     `json:"tag_exists"        jsonschema:"true when the tag already exists"`
	Ready     bool     `json:"ready"             jsonschema:"true when the tag can be created"`
	Reasons   []string `json:"reasons,omitempty" jsonschema:"why the tag cannot be created"`
}

func handleCheck(ws *Workspace) mcp.ToolHandlerFor[CheckInput, CheckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
		path, format, err := ws.resolve(ManifestInput{Manifest: in.Manifest, Format: in.Format})
		if err != nil {
			return nil, CheckOutput{}, err
		}
		prefix := in.Prefix
		if prefix == "" {
			prefix = ws.Defaults.Prefix
		}

		plan, err := ws.Tagger.Plan(ctx, release.Options{
			Manifest: path,
			Format:   format,
			Prefix:   prefix,
			Message:  ws.Defaults.Message,
			Remote:   ws.Defaults.Remote,
		})
		if err != nil {
			return nil, CheckOutput{}, fmt.Errorf("checking release: %w", err)
		}

		out := CheckOutput{
			Manifest:  plan.Manifest,
			Version:   plan.Version,
			Tag:       plan.Tag,
			Clean:     plan.Clean,
			TagExists: plan.TagExists,
			Ready:     plan.Ready(),
		}
		if !plan.Clean {
			out.Reasons = append(out.Reasons, "git repository not clean")
		}
		if plan.TagExists {
			out.Reasons = append(out.Reasons, fmt.Sprintf("tag %s exists", plan.Tag))
		}
		return nil, out, nil
	}
}

// --- Formats tool ---

// FormatsInput is the input for the formats tool (no parameters needed).
type FormatsInput struct{}

// FormatsOutput is the output for the formats tool.
type FormatsOutput struct {
	Formats  []string `json:"formats"  jsonschema:"formats with a dedicated parser"`
	Fallback string   `json:"fallback" jsonschema:"format used for every other file"`
}

func handleFormats(ws *Workspace) mcp.ToolHandlerFor[FormatsInput, FormatsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ FormatsInput) (*mcp.CallToolResult, FormatsOutput, error) {
		formats := ws.Reader.Formats()
		names := make([]string, 0, len(formats))
		for _, format := range formats {
			names = append(names, string(format))
		}
		return nil, FormatsOutput{Formats: names, Fallback: string(manifest.FormatRegex)}, nil
	}
}

// resolve picks the manifest path and format for a tool call.
func (ws *Workspace) resolve(in ManifestInput) (string, manifest.Format, error) {
	name := in.Format
	if name == "" {
		name = ws.Defaults.Format
	}
	format, err := manifest.ParseFormat(name)
	if err != nil {
		return "", "", err
	}

	path := in.Manifest
	if path == "" {
		path = ws.Defaults.Manifest
	}
	path, err = release.LocateManifest(ws.Root, path)
	if err != nil {
		return "", "", err
	}
	return path, format, nil
}
