package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConfigDir(t *testing.T) {
	homeOK := func() (string, error) { return "/home/dev", nil }
	homeMissing := func() (string, error) { return "", errors.New("$HOME is not defined") }

	tests := []struct {
		name string
		env  map[string]string
		home func() (string, error)
		goos string
		want string
	}{
		{
			name: "explicit override wins",
			env:  map[string]string{"AUTOTAG_CONFIG_HOME": "/custom/path", "XDG_CONFIG_HOME": "/xdg"},
			home: homeOK,
			goos: "linux",
			want: "/custom/path",
		},
		{
			name: "xdg on linux",
			env:  map[string]string{"XDG_CONFIG_HOME": "/xdg"},
			home: homeOK,
			goos: "linux",
			want: filepath.Join("/xdg", "autotag"),
		},
		{
			name: "xdg beats appdata on windows",
			env:  map[string]string{"XDG_CONFIG_HOME": "/xdg", "APPDATA": "/appdata"},
			home: homeOK,
			goos: "windows",
			want: filepath.Join("/xdg", "autotag"),
		},
		{
			name: "appdata on windows",
			env:  map[string]string{"APPDATA": "/appdata"},
			home: homeOK,
			goos: "windows",
			want: filepath.Join("/appdata", "autotag"),
		},
		{
			name: "appdata ignored elsewhere",
			env:  map[string]string{"APPDATA": "/appdata"},
			home: homeOK,
			goos: "darwin",
			want: filepath.Join("/home/dev", ".config", "autotag"),
		},
		{
			name: "no home",
			home: homeMissing,
			goos: "linux",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := hostEnv{
				getenv: func(key string) string { return tt.env[key] },
				home:   tt.home,
				goos:   tt.goos,
			}
			if got := host.configDir(); got != tt.want {
				t.Errorf("configDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("AUTOTAG_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}
