package configs

import (
	"path/filepath"
)

// Settings is the resolved configuration of the loxer shell
type Settings struct {
	Prompt      string
	HistoryFile string
	PrintMode   string
	ShowAst     bool
	LogLevel    string
}

const (
	DefaultPrompt    = "> "
	DefaultPrintMode = "debug"
	DefaultLogLevel  = "warn"
)

// LoadSettings resolves every setting from the first config file defining
// it, falling back to the defaults.
func LoadSettings(loader Loader) (settings Settings, err error) {
	if settings.Prompt, err = First[string](loader, "prompt"); err != nil {
		return
	}
	if settings.HistoryFile, err = First[string](loader, "history_file"); err != nil {
		return
	}
	if settings.PrintMode, err = First[string](loader, "print_mode"); err != nil {
		return
	}
	if settings.ShowAst, err = First[bool](loader, "show_ast"); err != nil {
		return
	}
	if settings.LogLevel, err = First[string](loader, "log_level"); err != nil {
		return
	}

	if settings.Prompt == "" {
		settings.Prompt = DefaultPrompt
	}
	if settings.PrintMode == "" {
		settings.PrintMode = DefaultPrintMode
	}
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}
	if settings.HistoryFile == "" {
		if dir, err := Dir(); err == nil {
			settings.HistoryFile = filepath.Join(dir, "history")
		}
	}
	return settings, nil
}
