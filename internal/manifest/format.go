package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format names a manifest file format.
type Format string

// Known formats.
const (
	FormatPyproject Format = "pyproject"
	FormatCargo     Format = "cargo"
	FormatNPM       Format = "npm"
	FormatYAML      Format = "yaml"
	FormatPlain     Format = "plain"
	FormatRegex     Format = "regex"
)

// DefaultCandidates are the manifest names Find looks for, in order.
var DefaultCandidates = []string{
	"pyproject.toml",
	"Cargo.toml",
	"package.json",
	"VERSION",
}

// DetectFormat picks a format from the file name.
func DetectFormat(path string) Format {
	base := filepath.Base(path)
	switch {
	case base == "pyproject.toml":
		return FormatPyproject
	case base == "Cargo.toml":
		return FormatCargo
	case base == "package.json":
		return FormatNPM
	case base == "VERSION", strings.EqualFold(base, "version.txt"):
		return FormatPlain
	}

	switch strings.ToLower(filepath.Ext(base)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatRegex
}

// ParseFormat validates a user-supplied format name. An empty name is valid
// and means "detect from the file name".
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	switch format {
	case "", FormatPyproject, FormatCargo, FormatNPM, FormatYAML, FormatPlain, FormatRegex:
		return format, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Find returns the path of the first candidate that exists in dir.
func Find(dir string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrManifestNotFound, dir, strings.Join(candidates, ", "))
}
