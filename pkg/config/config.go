// Package config loads the optional minilang.yml file shared by the hosts.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the name looked up when no config path is given.
const DefaultFile = "minilang.yml"

var ErrEmptyPath = errors.New("config: empty path")

// Config holds host settings. The language itself has no configuration.
type Config struct {
	Path    string
	Window  Window
	Editor  Editor
	Console Console
	Trace   bool
}

// Window sizes the desktop host.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Editor configures the desktop text box.
type Editor struct {
	Source  string `yaml:"source"`  // file loaded into the text box at start-up
	Columns int    `yaml:"columns"` // characters per row before wrapping
}

// Console configures the interactive session.
type Console struct {
	Prompt string `yaml:"prompt"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "MiniLang",
			Width:  640,
			Height: 480,
		},
		Editor: Editor{
			Columns: 80,
		},
		Console: Console{
			Prompt: "> ",
		},
	}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type configFile struct {
	Window  *Window  `yaml:"window"`
	Editor  *Editor  `yaml:"editor"`
	Console *Console `yaml:"console"`
	Trace   *bool    `yaml:"trace"`
}

// Load parses the YAML file at path over the defaults and validates the result.
// Unknown keys are rejected. An empty file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}
	cfg.Path = absPath
	if cfg.Editor.Source != "" && !filepath.IsAbs(cfg.Editor.Source) {
		cfg.Editor.Source = filepath.Join(filepath.Dir(absPath), cfg.Editor.Source)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg := Default()
	raw.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is set. With an empty path it loads
// DefaultFile from the working directory if present, else returns Default().
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return Load(DefaultFile)
	}
	return Default(), nil
}

func (raw configFile) applyTo(cfg *Config) {
	if w := raw.Window; w != nil {
		if t := strings.TrimSpace(w.Title); t != "" {
			cfg.Window.Title = t
		}
		if w.Width != 0 {
			cfg.Window.Width = w.Width
		}
		if w.Height != 0 {
			cfg.Window.Height = w.Height
		}
	}
	if e := raw.Editor; e != nil {
		cfg.Editor.Source = strings.TrimSpace(e.Source)
		if e.Columns != 0 {
			cfg.Editor.Columns = e.Columns
		}
	}
	if c := raw.Console; c != nil && c.Prompt != "" {
		cfg.Console.Prompt = c.Prompt
	}
	if raw.Trace != nil {
		cfg.Trace = *raw.Trace
	}
}

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var errs ValidationError
	if c.Window.Width < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("window.width must be positive, got %d", c.Window.Width))
	}
	if c.Window.Height < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("window.height must be positive, got %d", c.Window.Height))
	}
	if c.Editor.Columns < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("editor.columns must be positive, got %d", c.Editor.Columns))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
