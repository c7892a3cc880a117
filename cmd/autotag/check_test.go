package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/autotag/internal/output"
)

func TestCheck_Human(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"package.json": `{"name": "web", "version": "1.1.0"}`})

	out, err := executeCmd(t, "check", "--dir", repo, "--color", "never")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Version: 1.1.0", "Format: npm", "Tag: 1.1.0", "Clean: yes", "Ready: yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheck_StrictNotReady(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"VERSION": "3.0.0\n"})
	runGit(t, repo, "tag", "v3.0.0")

	out, err := executeCmd(t, "check", "--dir", repo, "--prefix", "v", "--strict", "--json")
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Fatalf("exit code = %d, want %d\n%s", code, output.ExitConflict, out)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\n%s", err, out)
	}
	if result["ready"] != false || result["tag_exists"] != true {
		t.Errorf("result = %v", result)
	}
}

func TestDetect(t *testing.T) {
	repo := newTestRepo(t, map[string]string{
		"charts/app/Chart.yaml": "apiVersion: v2\nname: app\nversion: 0.12.0\n",
	})

	out, err := executeCmd(t, "detect", "--dir", repo, "-m", "charts/app/Chart.yaml")
	if err != nil {
		t.Fatalf("detect failed: %v\n%s", err, out)
	}
	if strings.TrimSpace(out) != "0.12.0" {
		t.Errorf("detect output = %q, want 0.12.0", out)
	}
}

func TestDetect_JSONAlias(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"release.cfg": "version = \"8.1\"\n"})

	out, err := executeCmd(t, "version-of", "--dir", repo, "-m", "release.cfg", "--json")
	if err != nil {
		t.Fatalf("version-of failed: %v\n%s", err, out)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\n%s", err, out)
	}
	if result["version"] != "8.1" || result["format"] != "regex" {
		t.Errorf("result = %v", result)
	}
}

func TestFormats(t *testing.T) {
	out, err := executeCmd(t, "formats", "--color", "never")
	if err != nil {
		t.Fatalf("formats failed: %v\n%s", err, out)
	}
	for _, want := range []string{"pyproject", "Cargo.toml", "package.json", "VERSION", "regex"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormats_JSON(t *testing.T) {
	out, err := executeCmd(t, "formats", "--json")
	if err != nil {
		t.Fatalf("formats failed: %v\n%s", err, out)
	}
	var result struct {
		Formats  []string `json:"formats"`
		Fallback string   `json:"fallback"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\n%s", err, out)
	}
	if len(result.Formats) != 6 || result.Formats[0] != "pyproject" || result.Fallback != "regex" {
		t.Errorf("result = %+v", result)
	}
}

func TestCheck_ReportsCommitAndRemote(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"VERSION": "0.9.0\n"})

	out, err := executeCmd(t, "check", "--dir", repo, "--color", "never")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `remote "origin" is not configured`) {
		t.Errorf("output should warn about the missing remote:\n%s", out)
	}
	if !strings.Contains(out, "Commit: ") {
		t.Errorf("output missing commit:\n%s", out)
	}

	runGit(t, repo, "remote", "add", "origin", "https://example.com/demo.git")
	out, err = executeCmd(t, "check", "--dir", repo, "--json")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\n%s", err, out)
	}
	if commit, _ := result["commit"].(string); len(commit) != 40 {
		t.Errorf("commit = %v, want a full SHA", result["commit"])
	}
}
