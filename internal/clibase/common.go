// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"

	"fastaidx/internal/cliutil"
	"fastaidx/internal/config"
)

// Common holds flags shared by every subcommand.
type Common struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool
	Quiet      bool
	Threads    int
	IDSep      string
	IDField    int
	Help       bool

	set map[string]bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.ConfigPath, "config", "", "YAML config file")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.BoolVar(&c.Verbose, "v", false, "debug logging (shorthand) [false]")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")
	fs.StringVar(&c.IDSep, "id-sep", "", "split headers on this separator to derive ids")
	fs.IntVar(&c.IDField, "id-field", 0, "zero-based field of the split header used as id [0]")
	fs.BoolVar(&c.Help, "h", false, "show this help message (shorthand)")
	fs.BoolVar(&c.Help, "help", false, "show this help message")
}

// AfterParse records which flags were given and runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common) error {
	c.set = cliutil.SetFlags(fs)
	return Validate(c)
}

// Validate applies shared CLI invariants.
func Validate(c *Common) error {
	if c.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if c.IDField < 0 {
		return errors.New("--id-field must be >= 0")
	}
	if c.Verbose && c.Quiet {
		return errors.New("--verbose conflicts with --quiet")
	}
	return nil
}

// IsSet reports whether the named flag was given explicitly.
func (c *Common) IsSet(name string) bool { return c.set[name] }

// Override layers explicitly given flags over cfg.
func (c *Common) Override(cfg config.Config) config.Config {
	if c.IsSet("log-level") {
		cfg.LogLevel = c.LogLevel
	}
	if c.IsSet("threads") || c.IsSet("t") {
		cfg.Threads = c.Threads
	}
	if c.IsSet("id-sep") {
		cfg.IDSeparator = c.IDSep
	}
	if c.IsSet("id-field") {
		cfg.IDField = c.IDField
	}
	return cfg
}
