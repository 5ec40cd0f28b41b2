package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wuxin0011/lckit/internal/testutil/testlog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lckit.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "author = \"wuxin\"\nproblems_file = \"catalog.yaml\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Author != "wuxin" {
		t.Fatalf("unexpected author: %q", cfg.Author)
	}
	if cfg.ProblemsFile != "catalog.yaml" {
		t.Fatalf("unexpected problems file: %q", cfg.ProblemsFile)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Fatalf("expected default output dir, got %q", cfg.OutputDir)
	}
	if !cfg.KeepComments {
		t.Fatalf("expected keep_comments default true")
	}
	if !filepath.IsAbs(cfg.TemplateDir) {
		t.Fatalf("expected resolved template dir, got %q", cfg.TemplateDir)
	}
}

func TestLoadKeepCommentsOverride(t *testing.T) {
	testlog.Start(t)
	cfg, err := Load(writeConfig(t, "keep_comments = false\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.KeepComments {
		t.Fatalf("expected keep_comments override to false")
	}
}

func TestLoadEmptyValueFallsBackToDefault(t *testing.T) {
	testlog.Start(t)
	cfg, err := Load(writeConfig(t, "output_dir = \"  \"\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Fatalf("expected default output dir, got %q", cfg.OutputDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestResolveTemplateDir(t *testing.T) {
	testlog.Start(t)
	abs := filepath.Join(t.TempDir(), "tpl")
	if got := ResolveTemplateDir(abs); got != abs {
		t.Fatalf("absolute path must be kept: %q", got)
	}

	// A relative dir that does not exist gets anchored to the cwd.
	got := ResolveTemplateDir("no-such-template-dir")
	if !filepath.IsAbs(got) || !strings.HasSuffix(got, "no-such-template-dir") {
		t.Fatalf("expected cwd-anchored path, got %q", got)
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "lckit.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("template must load cleanly: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("template must validate: %v", err)
	}
}
