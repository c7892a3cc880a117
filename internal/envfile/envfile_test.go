package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// unset clears a variable for the duration of the test.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key) //nolint:errcheck
}

func TestLoad_NonexistentFile(t *testing.T) {
	applied, err := Load("/nonexistent/.env", "AUTOTAG_")
	if err != nil || applied != nil {
		t.Fatalf("Load() = %v, %v; want nil, nil", applied, err)
	}
}

func TestLoad_SetsOnlyPrefixedUnsetVars(t *testing.T) {
	unset(t, "AUTOTAG_PREFIX")
	unset(t, "AUTOTAG_REMOTE")
	unset(t, "OTHER_TOOL_TOKEN")
	t.Setenv("AUTOTAG_MESSAGE", "from env")

	path := writeEnv(t, `# release settings

export AUTOTAG_PREFIX="v"
AUTOTAG_REMOTE='upstream'
AUTOTAG_MESSAGE=from file
OTHER_TOOL_TOKEN=secret
not a variable
`)

	applied, err := Load(path, "AUTOTAG_")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"AUTOTAG_PREFIX", "AUTOTAG_REMOTE"}, applied); diff != "" {
		t.Errorf("applied mismatch (-want +got):\n%s", diff)
	}

	checks := map[string]string{
		"AUTOTAG_PREFIX":   "v",
		"AUTOTAG_REMOTE":   "upstream",
		"AUTOTAG_MESSAGE":  "from env",
		"OTHER_TOOL_TOKEN": "",
	}
	for key, want := range checks {
		if got := os.Getenv(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{line: "KEY=value", wantKey: "KEY", wantValue: "value", wantOK: true},
		{line: "  KEY = spaced  ", wantKey: "KEY", wantValue: "spaced", wantOK: true},
		{line: `KEY="quoted value"`, wantKey: "KEY", wantValue: "quoted value", wantOK: true},
		{line: `KEY="mismatched'`, wantKey: "KEY", wantValue: `"mismatched'`, wantOK: true},
		{line: "export KEY=x", wantKey: "KEY", wantValue: "x", wantOK: true},
		{line: "KEY=a=b", wantKey: "KEY", wantValue: "a=b", wantOK: true},
		{line: "KEY=", wantKey: "KEY", wantValue: "", wantOK: true},
		{line: "# comment"},
		{line: ""},
		{line: "=value"},
		{line: "no equals"},
	}

	for _, tt := range tests {
		key, value, ok := parseLine(tt.line)
		if key != tt.wantKey || value != tt.wantValue || ok != tt.wantOK {
			t.Errorf("parseLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, value, ok, tt.wantKey, tt.wantValue, tt.wantOK)
		}
	}
}
