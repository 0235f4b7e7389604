// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Editor   EditorConfig   `toml:"editor"`
	Analysis AnalysisConfig `toml:"analysis"`
	Export   ExportConfig   `toml:"export"`
}

// EditorConfig maps editor-related settings.
type EditorConfig struct {
	Goal            *int    `toml:"goal"`
	AutosaveSeconds *int    `toml:"autosave-seconds"`
	Theme           *string `toml:"theme"`
}

// AnalysisConfig maps analyzer tuning.
type AnalysisConfig struct {
	Keywords      *int     `toml:"keywords"`
	ReadingWPM    *float64 `toml:"reading-wpm"`
	SpeakingWPM   *float64 `toml:"speaking-wpm"`
	StopWordsFile *string  `toml:"stopwords-file"`
	Markdown      *bool    `toml:"markdown"`
}

// ExportConfig maps export defaults.
type ExportConfig struct {
	Format *string `toml:"format"`
	Width  *int    `toml:"width"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
