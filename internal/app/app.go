// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"fastaidx-core/fasta"
	"fastaidx/internal/cli"
	"fastaidx/internal/clibase"
	"fastaidx/internal/cmdutil"
	"fastaidx/internal/config"
	"fastaidx/internal/pipeline"
	"fastaidx/internal/version"
	"fastaidx/internal/writers"

	"github.com/charmbracelet/log"
)

// usageError marks failures caused by the command line or the input data
// rather than by I/O.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func badInput(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err}
}

// env is everything a subcommand needs once flags and config are merged.
type env struct {
	opts   cli.Options
	cfg    config.Config
	log    *log.Logger
	stdout io.Writer
	stderr io.Writer
}

func (e *env) pipeline() pipeline.Config {
	return pipeline.Config{Threads: e.cfg.Threads, Options: fastaOptions(e.cfg)}
}

func (e *env) warnf(format string, a ...any) { cmdutil.Warnf(e.stderr, e.opts.Quiet, format, a...) }

func fastaOptions(cfg config.Config) []fasta.Option {
	if cfg.IDSeparator == "" {
		return nil
	}
	return []fasta.Option{fasta.WithIDField(cfg.IDSeparator, cfg.IDField)}
}

var commands = map[string]func(context.Context, *env) error{
	cli.CmdIndex:   runIndex,
	cli.CmdFetch:   runFetch,
	cli.CmdStats:   runStats,
	cli.CmdIDs:     runIDs,
	cli.CmdLengths: runLengths,
}

// exitCode maps a subcommand error onto the process exit status.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.As(err, &ue),
		errors.Is(err, fasta.ErrMalformedInput),
		errors.Is(err, fasta.ErrInconsistentLineWidth),
		errors.Is(err, fasta.ErrDuplicateIdentifier),
		errors.Is(err, fasta.ErrRangeOutOfBounds),
		errors.Is(err, fasta.ErrUnknownIdentifier),
		errors.Is(err, fasta.ErrNotSeekable):
		return 2
	}
	return 3
}

// flush writes buffered output and folds the result into code.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	if len(argv) == 0 {
		printUsage(outw)
		return flush(outw, stderr, 2)
	}
	switch argv[0] {
	case "help", "-h", "--help":
		if len(argv) > 1 {
			if _, ok := commands[argv[1]]; ok {
				fs := cli.NewFlagSet(argv[1])
				_, _ = cli.ParseArgs(fs, argv[1], []string{"-h"})
				fs.SetOutput(outw)
				fs.Usage()
				return flush(outw, stderr, 0)
			}
		}
		printUsage(outw)
		return flush(outw, stderr, 0)
	case "version", "--version":
		_, _ = fmt.Fprintf(outw, "fastaidx version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	cmd := argv[0]
	run, ok := commands[cmd]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		printUsage(outw)
		return flush(outw, stderr, 2)
	}

	fs := cli.NewFlagSet(cmd)
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fs, cmd, argv[1:])
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return flush(outw, stderr, 2)
	}
	cfg = opts.Settings(cfg)

	e := &env{
		opts:   opts,
		cfg:    cfg,
		log:    cmdutil.NewLogger(stderr, cfg.LogLevel, opts.Verbose),
		stdout: outw,
		stderr: stderr,
	}
	e.log.Debug("starting", "command", cmd, "files", opts.Files, "threads", cfg.Threads)

	err = run(parent, e)
	code := exitCode(err)
	if code != 0 {
		e.log.Error(err)
	}
	return flush(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func printUsage(out io.Writer) {
	clibase.Header(out, "fastaidx")
	fmt.Fprintln(out, "Usage: fastaidx <command> [flags] FILE...")
	fmt.Fprintln(out, "\nCommands:")
	for _, c := range cli.Commands {
		fmt.Fprintf(out, "  %-9s %s\n", c, cli.Summary(c))
	}
	fmt.Fprintf(out, "  %-9s %s\n", "version", "print version and exit")
	fmt.Fprintf(out, "  %-9s %s\n", "help", "show help for a command")
	fmt.Fprintln(out, "\nRun 'fastaidx help <command>' for its flags.")
}
