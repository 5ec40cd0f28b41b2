// Package config owns toolkit configuration.
//
// Ownership boundary:
// - lckit.toml shape and defaults
// - template directory resolution
// - config template scaffolding
//
// A Config is constructed once at process start and passed by reference
// to whatever consumes it; there is no package-level state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTemplateDir  = "templates"
	DefaultOutputDir    = "solutions"
	DefaultProblemsFile = "problems.yaml"
)

// Config is the resolved toolkit configuration.
type Config struct {
	TemplateDir  string
	OutputDir    string
	ProblemsFile string
	Author       string
	KeepComments bool
}

type fileConfig struct {
	TemplateDir  string `toml:"template_dir"`
	OutputDir    string `toml:"output_dir"`
	ProblemsFile string `toml:"problems_file"`
	Author       string `toml:"author"`
	KeepComments bool   `toml:"keep_comments"`
}

// Default returns the configuration used when no file is present. The
// template directory is resolved against the working directory.
func Default() Config {
	return Config{
		TemplateDir:  ResolveTemplateDir(DefaultTemplateDir),
		OutputDir:    DefaultOutputDir,
		ProblemsFile: DefaultProblemsFile,
		KeepComments: true,
	}
}

// Load reads a TOML config file, applying defaults for any key the file
// does not define.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if meta.IsDefined("template_dir") {
		if dir := strings.TrimSpace(raw.TemplateDir); dir != "" {
			cfg.TemplateDir = ResolveTemplateDir(dir)
		}
	}
	if meta.IsDefined("output_dir") {
		if dir := strings.TrimSpace(raw.OutputDir); dir != "" {
			cfg.OutputDir = dir
		}
	}
	if meta.IsDefined("problems_file") {
		if file := strings.TrimSpace(raw.ProblemsFile); file != "" {
			cfg.ProblemsFile = file
		}
	}
	if meta.IsDefined("author") {
		cfg.Author = strings.TrimSpace(raw.Author)
	}
	if meta.IsDefined("keep_comments") {
		cfg.KeepComments = raw.KeepComments
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.TemplateDir) == "" {
		return fmt.Errorf("config invalid: template_dir is empty")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return fmt.Errorf("config invalid: output_dir is empty")
	}
	if strings.TrimSpace(cfg.ProblemsFile) == "" {
		return fmt.Errorf("config invalid: problems_file is empty")
	}
	return nil
}

// ResolveTemplateDir resolves where templates live. An existing path is
// kept as given; otherwise the path is anchored to the working
// directory so later chdirs cannot move it.
func ResolveTemplateDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return dir
	}
	return filepath.Join(wd, dir)
}
