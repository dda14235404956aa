package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qyinm/modeldeck/config"
	"github.com/qyinm/modeldeck/mcpsrv/dto"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvConfig, config.EnvCatalog, config.EnvCategory, config.EnvSort,
		config.EnvBackdrop, config.EnvLogFile, config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListFiltersAndSorts(t *testing.T) {
	clearEnv(t)
	out, err := execute(t, "list", "--category", "video", "--sort", "name")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Showing 5 of 19 models") {
		t.Fatalf("missing count line:\n%s", out)
	}
	if strings.Contains(out, "GPT-5") {
		t.Fatalf("non-video model listed:\n%s", out)
	}
	hailuo, sora := strings.Index(out, "Hailuo 02"), strings.Index(out, "Sora 2")
	if hailuo < 0 || sora < 0 || hailuo > sora {
		t.Fatalf("unexpected order:\n%s", out)
	}
}

func TestListJSON(t *testing.T) {
	clearEnv(t)
	out, err := execute(t, "list", "--json", "--search", "OPEN SOURCE")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var models []dto.Model
	if err := json.Unmarshal([]byte(out), &models); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	got := map[string]bool{}
	for _, m := range models {
		got[m.ID] = true
	}
	if len(models) != 2 || !got["llama-4-maverick"] || !got["stable-diffusion-3-5"] {
		t.Fatalf("unexpected matches: %v", got)
	}
}

func TestStats(t *testing.T) {
	clearEnv(t)
	out, err := execute(t, "stats")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, want := range []string{"Multimodal", "Image", "Video", "Audio", "Total", "19"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestInvalidFlagValues(t *testing.T) {
	clearEnv(t)
	for _, args := range [][]string{
		{"list", "--category", "text"},
		{"list", "--sort", "oldest"},
		{"stats", "--catalog", "missing.csv"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestConfigFileThenFlags(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "modeldeck.yaml")
	if err := os.WriteFile(path, []byte("category: audio\nsort: name\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := execute(t, "list", "--config", path)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Showing 4 of 19 models") || !strings.Contains(out, "Suno v4.5") {
		t.Fatalf("config category not applied:\n%s", out)
	}

	out, err = execute(t, "list", "--config", path, "--category", "image")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Showing 6 of 19 models") || strings.Contains(out, "Suno v4.5") {
		t.Fatalf("flag did not override config:\n%s", out)
	}
}
