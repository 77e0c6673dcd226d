package configs

import (
	"os"
	"path/filepath"
)

// Schema constrains the config files of the loxer shell
const Schema = `
prompt?:       string
history_file?: string
print_mode?:   "debug" | "plain"
show_ast?:     bool
log_level?:    "debug" | "info" | "warn" | "error"
`

// Dir returns the directory holding the user's loxer config
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "loxer"), nil
}

// DefaultPaths lists the config files that exist, in priority order: the
// user config first, then loxer.cue in the working directory.
func DefaultPaths() (paths []string) {
	var candidates []string
	if dir, err := Dir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.cue"))
	}
	candidates = append(candidates, "loxer.cue")
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return
}
