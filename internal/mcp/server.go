// Package mcp provides a Model Context Protocol server for autotag.
// It exposes read-only release checks as MCP tools so an agent can see
// whether a repository is ready to tag.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/autotag/internal/config"
	"github.com/gorewood/autotag/internal/manifest"
	"github.com/gorewood/autotag/internal/release"
)

// Workspace is the repository the server answers for.
type Workspace struct {
	Root     string
	Defaults config.Config
	Reader   *manifest.Reader
	Tagger   *release.Tagger
}

// NewServer creates an MCP server with all autotag tools registered.
func NewServer(version string, ws *Workspace) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "autotag",
		Version: version,
	}, nil)
	registerTools(server, ws)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

func registerTools(server *mcp.Server, ws *Workspace) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Read the project version from its manifest (pyproject.toml, Cargo.toml, package.json, VERSION, YAML).",
		Annotations: readOnlyAnnotations(),
	}, handleDetect(ws))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check whether the repository can be tagged with the manifest version: clean working tree and tag not yet present.",
		Annotations: readOnlyAnnotations(),
	}, handleCheck(ws))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "formats",
		Description: "List the manifest formats with a dedicated version parser.",
		Annotations: readOnlyAnnotations(),
	}, handleFormats(ws))
}
