package config

import (
	"fmt"
	"os"
)

// Template returns the lckit.toml scaffold.
func Template() string {
	return configTemplate
}

// WriteTemplate writes the scaffold to path, refusing to clobber an
// existing file unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

const configTemplate = `template_dir = "templates"
output_dir = "solutions"
problems_file = "problems.yaml"
author = ""
keep_comments = true
`
