package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DefaultConfigPath is where `rumorlens init` writes the config file.
const DefaultConfigPath = ".rumorlens/config.yaml"

const defaultConfigYAML = `# RumorLens configuration.
# The Gemini credential is NOT stored here: set GEMINI_API_KEY in the
# environment instead.

log:
  level: info   # debug, info, warn, error
  format: auto  # auto, text, json

server:
  host: localhost
  port: 8080
  enable_cors: true
  cors_origins:
    - http://localhost:5173

gemini:
  model: gemini-2.0-flash
`

// WriteDefault writes the commented default config file atomically.
// An existing file is left untouched unless force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = DefaultConfigPath
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := renameio.WriteFile(path, []byte(defaultConfigYAML), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
