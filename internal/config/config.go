// Package config loads the editor and color preferences from the per-user
// configuration directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	gap "github.com/muesli/go-app-paths"
)

const (
	// AppName names the subdirectory under the user config directory.
	AppName = "fee"
	// FileName is the configuration file inside the AppName directory.
	FileName = "config.json"
)

// ErrNoConfigDir is returned when the platform config directory is missing.
var ErrNoConfigDir = errors.New("config directory does not exist")

// ErrMissingField is returned when a required key is absent or null.
var ErrMissingField = errors.New("missing required field")

// RGB is a 24-bit color stored as three 0-255 components.
type RGB [3]uint8

// Config holds the user preferences. It is read once at startup.
type Config struct {
	TextEditorCommand   []string `json:"text_editor_command"`
	BinaryEditorCommand []string `json:"binary_editor_command"`
	WaitForEditorExit   bool     `json:"wait_for_editor_exit"`
	DirColor            *RGB     `json:"dir_color,omitempty"`
	FileColor           *RGB     `json:"file_color,omitempty"`
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		TextEditorCommand:   []string{"nano", "$f"},
		BinaryEditorCommand: []string{"hexedit", "$f"},
		WaitForEditorExit:   true,
		DirColor:            &RGB{59, 120, 255},
		FileColor:           &RGB{46, 199, 219},
	}
}

// SameEditor reports whether text and binary files open with the same command.
func (c Config) SameEditor() bool {
	return slices.Equal(c.TextEditorCommand, c.BinaryEditorCommand)
}

// Scope returns the per-user application scope used for config and log paths.
func Scope() *gap.Scope {
	return gap.NewScope(gap.User, AppName)
}

// DefaultPath returns the location of the config file for the current user.
func DefaultPath() (string, error) {
	path, err := Scope().ConfigPath(FileName)
	if err != nil {
		return "", fmt.Errorf("cannot resolve config path: %w", err)
	}
	return path, nil
}

// Load reads the config file at path. When the file does not exist the
// defaults are written there and returned. The parent of the application
// directory must already exist; the application directory itself is created.
func Load(path string) (Config, error) {
	appDir := filepath.Dir(path)
	baseDir := filepath.Dir(appDir)

	if _, err := os.Stat(baseDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrNoConfigDir, baseDir)
		}
		return Config{}, fmt.Errorf("cannot access %s: %w", baseDir, err)
	}

	if err := os.Mkdir(appDir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return Config{}, fmt.Errorf("cannot create %s: %w", appDir, err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := write(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	cfg, err := decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return cfg, nil
}

// fileConfig is the on-disk shape. Pointers tell an absent or null key apart
// from a zero value.
type fileConfig struct {
	TextEditorCommand   *[]string `json:"text_editor_command"`
	BinaryEditorCommand *[]string `json:"binary_editor_command"`
	WaitForEditorExit   *bool     `json:"wait_for_editor_exit"`
	DirColor            *RGB      `json:"dir_color"`
	FileColor           *RGB      `json:"file_color"`
}

func decode(data []byte) (Config, error) {
	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, err
	}

	switch {
	case raw.TextEditorCommand == nil:
		return Config{}, fmt.Errorf("%w: text_editor_command", ErrMissingField)
	case raw.BinaryEditorCommand == nil:
		return Config{}, fmt.Errorf("%w: binary_editor_command", ErrMissingField)
	case raw.WaitForEditorExit == nil:
		return Config{}, fmt.Errorf("%w: wait_for_editor_exit", ErrMissingField)
	}

	return Config{
		TextEditorCommand:   *raw.TextEditorCommand,
		BinaryEditorCommand: *raw.BinaryEditorCommand,
		WaitForEditorExit:   *raw.WaitForEditorExit,
		DirColor:            raw.DirColor,
		FileColor:           raw.FileColor,
	}, nil
}

func write(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
