// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds settings read from a YAML file. Command-line flags override
// every field.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Threads     int    `yaml:"threads"`
	LineWidth   int    `yaml:"line_width"`   // wrap width for FASTA output
	IndexSuffix string `yaml:"index_suffix"` // appended to the FASTA path
	IDSeparator string `yaml:"id_separator"` // empty: first whitespace token
	IDField     int    `yaml:"id_field"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LineWidth:   60,
		IndexSuffix: ".fxi",
	}
}

// Load reads path over the defaults. An empty path yields the defaults;
// a path that does not exist is an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate rejects settings the tool cannot honor.
func (c Config) Validate() error {
	var errs []error
	if c.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("line_width must be >= 0, got %d", c.LineWidth))
	}
	if c.Threads < 0 {
		errs = append(errs, fmt.Errorf("threads must be >= 0, got %d", c.Threads))
	}
	if c.IndexSuffix == "" {
		errs = append(errs, errors.New("index_suffix must not be empty"))
	}
	if c.IDField < 0 {
		errs = append(errs, fmt.Errorf("id_field must be >= 0, got %d", c.IDField))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
