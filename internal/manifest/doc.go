// Package manifest reads a project's version from its manifest file.
//
// Each manifest format has its own parser, selected by format value through
// a dispatch.Dispatcher. Formats without a dedicated parser, and the explicit
// "regex" format, fall back to scanning the file for a single
// version = "..." assignment. The key must start the line, so prefixed keys
// such as target-version or python_version are ignored:
//
//	reader := manifest.NewReader(log)
//	version, err := reader.Read("pyproject.toml", "") // format detected from the name
//
// Supported formats:
//
//	pyproject  pyproject.toml   [project].version, then [tool.poetry].version
//	cargo      Cargo.toml       [package].version, then [workspace.package].version
//	npm        package.json     top-level "version"
//	yaml       *.yaml, *.yml    top-level version key
//	plain      VERSION          first non-empty line
//	regex      anything else    exactly one version = "..." line
package manifest
