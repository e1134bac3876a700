// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// NewLogger returns a leveled logger writing to dst. verbose forces debug.
// Unknown levels fall back to info and are reported through the logger.
func NewLogger(dst io.Writer, level string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(dst, log.Options{Prefix: "fastaidx"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	switch strings.ToLower(level) {
	case "", "info":
		logger.SetLevel(log.InfoLevel)
	default:
		lv, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			logger.SetLevel(log.InfoLevel)
			logger.Warn("unknown log level, defaulting to info", "provided", level)
			return logger
		}
		logger.SetLevel(lv)
	}
	return logger
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Warnf prints a one-line warning unless quiet. The prefix is colored when
// dst is a terminal.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	c := color.New(color.FgYellow, color.Bold)
	if IsTerminal(dst) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, _ = c.Fprint(dst, "warning:")
	_, _ = fmt.Fprintf(dst, " "+format+"\n", a...)
}
