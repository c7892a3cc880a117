// Package config resolves autotag settings from config files and the environment.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the directory autotag keeps its global files in.
const appName = "autotag"

// hostEnv is the part of the host Dir consults.
type hostEnv struct {
	getenv func(string) string
	home   func() (string, error)
	goos   string
}

// Dir returns the directory holding config.yaml and the global env file,
// or "" when no home directory can be found. The first match wins:
// AUTOTAG_CONFIG_HOME, XDG_CONFIG_HOME/autotag, APPDATA/autotag on Windows,
// then ~/.config/autotag.
func Dir() string {
	return hostEnv{getenv: os.Getenv, home: os.UserHomeDir, goos: runtime.GOOS}.configDir()
}

func (h hostEnv) configDir() string {
	if dir := h.getenv("AUTOTAG_CONFIG_HOME"); dir != "" {
		return dir
	}

	bases := []string{h.getenv("XDG_CONFIG_HOME")}
	if h.goos == "windows" {
		bases = append(bases, h.getenv("APPDATA"))
	}
	for _, base := range bases {
		if base != "" {
			return filepath.Join(base, appName)
		}
	}

	home, err := h.home()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
