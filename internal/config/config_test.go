package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"AUTOTAG_MANIFEST", "AUTOTAG_FORMAT", "AUTOTAG_PREFIX", "AUTOTAG_REMOTE", "AUTOTAG_MESSAGE"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Layering(t *testing.T) {
	clearEnv(t)
	globalDir := t.TempDir()
	repoDir := t.TempDir()
	t.Setenv("AUTOTAG_CONFIG_HOME", globalDir)

	writeConfig(t, filepath.Join(globalDir, GlobalFile), "prefix: v\nremote: upstream\nmessage: global\n")
	writeConfig(t, filepath.Join(repoDir, ProjectFile), "manifest: pkg/pyproject.toml\nmessage: Release {version}\n")
	t.Setenv("AUTOTAG_REMOTE", "fork")

	got, err := Load(repoDir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Config{
		Manifest: "pkg/pyproject.toml",
		Prefix:   "v",
		Remote:   "fork",
		Message:  "Release {version}",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTOTAG_CONFIG_HOME", t.TempDir())

	got, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{name: "empty file", content: "", want: Config{}},
		{name: "all fields", content: "manifest: Cargo.toml\nformat: cargo\nprefix: v\nremote: origin\nmessage: m\n",
			want: Config{Manifest: "Cargo.toml", Format: "cargo", Prefix: "v", Remote: "origin", Message: "m"}},
		{name: "unknown key", content: "prefx: v\n", wantErr: true},
		{name: "bad yaml", content: "prefix: [v\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ProjectFile)
			writeConfig(t, path, tt.content)

			got, err := ReadFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ReadFile() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	got, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil || got != (Config{}) {
		t.Errorf("ReadFile(missing) = %+v, %v; want empty, nil", got, err)
	}
}
