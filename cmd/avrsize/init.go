package main

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:embed templates/avrsize.yaml
var configTemplate embed.FS

// writeConfigTemplate writes the commented default configuration to path.
// An existing file is only replaced when force is set.
func writeConfigTemplate(out io.Writer, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	content, err := configTemplate.ReadFile("templates/avrsize.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(out, "Created configuration file: %s\n", path)
	fmt.Fprintln(out, "\nEdit this file to set the memory budgets of your board.")
	return nil
}
