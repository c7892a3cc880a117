package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the per-repository config file name.
const ProjectFile = ".autotag.yaml"

// GlobalFile is the config file name inside Dir.
const GlobalFile = "config.yaml"

// Config holds tagging settings. Empty fields mean "not set".
type Config struct {
	// Manifest is the manifest path, relative to the repository root.
	Manifest string `yaml:"manifest,omitempty"`
	// Format forces a manifest format instead of detecting it.
	Format string `yaml:"format,omitempty"`
	// Prefix is prepended to the version to form the tag, e.g. "v".
	Prefix string `yaml:"prefix,omitempty"`
	// Remote is the remote named in push instructions.
	Remote string `yaml:"remote,omitempty"`
	// Message creates annotated tags. {version} and {tag} are expanded.
	Message string `yaml:"message,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Remote: "origin"}
}

// Load resolves settings for the repository at repoDir. Later sources
// override earlier ones field by field:
//  1. built-in defaults
//  2. Dir()/config.yaml
//  3. repoDir/.autotag.yaml
//  4. AUTOTAG_MANIFEST, AUTOTAG_FORMAT, AUTOTAG_PREFIX, AUTOTAG_REMOTE, AUTOTAG_MESSAGE
//
// Missing files are skipped. Unknown keys are an error.
func Load(repoDir string) (Config, error) {
	cfg := Default()

	if dir := Dir(); dir != "" {
		global, err := ReadFile(filepath.Join(dir, GlobalFile))
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(global)
	}

	project, err := ReadFile(filepath.Join(repoDir, ProjectFile))
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.Merge(project)

	return cfg.Merge(FromEnv()), nil
}

// ReadFile reads one config file. A missing file yields an empty Config.
func ReadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv reads settings from AUTOTAG_* environment variables.
func FromEnv() Config {
	return Config{
		Manifest: os.Getenv("AUTOTAG_MANIFEST"),
		Format:   os.Getenv("AUTOTAG_FORMAT"),
		Prefix:   os.Getenv("AUTOTAG_PREFIX"),
		Remote:   os.Getenv("AUTOTAG_REMOTE"),
		Message:  os.Getenv("AUTOTAG_MESSAGE"),
	}
}

// Merge returns c with every non-empty field of override applied.
func (c Config) Merge(override Config) Config {
	if override.Manifest != "" {
		c.Manifest = override.Manifest
	}
	if override.Format != "" {
		c.Format = override.Format
	}
	if override.Prefix != "" {
		c.Prefix = override.Prefix
	}
	if override.Remote != "" {
		c.Remote = override.Remote
	}
	if override.Message != "" {
		c.Message = override.Message
	}
	return c
}
