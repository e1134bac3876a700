// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"fastaidx/internal/clibase"
	"fastaidx/internal/cliutil"
	"fastaidx/internal/config"
	"fastaidx/internal/writers"
)

// Subcommands
const (
	CmdIndex   = "index"
	CmdFetch   = "fetch"
	CmdStats   = "stats"
	CmdIDs     = "ids"
	CmdLengths = "lengths"
)

// Commands lists the subcommands that take flags, in help order.
var Commands = []string{CmdIndex, CmdFetch, CmdStats, CmdIDs, CmdLengths}

var summaries = map[string]string{
	CmdIndex:   "build and persist the index of each FASTA file",
	CmdFetch:   "print regions of an indexed FASTA file",
	CmdStats:   "summarize sequence lengths",
	CmdIDs:     "list record identifiers",
	CmdLengths: "list identifier and length of each record",
}

// Summary returns the one-line description of cmd.
func Summary(cmd string) string { return summaries[cmd] }

// Options holds the parsed command line of one subcommand.
type Options struct {
	clibase.Common

	Command string
	Files   []string

	// index
	FAI   bool
	Force bool

	// fetch
	Regions   []Region
	Output    string // fasta | json | jsonl
	LineWidth int
	NoIndex   bool

	// stats
	Format string // text | json | yaml | tsv

	// stats, ids
	Where string

	// lengths
	Header bool
}

// ParseArgs registers the flags of cmd on fs and parses argv (the
// arguments after the subcommand). Flags may follow positionals.
func ParseArgs(fs *flag.FlagSet, cmd string, argv []string) (Options, error) {
	opt := Options{Command: cmd}
	clibase.Register(fs, &opt.Common)

	switch cmd {
	case CmdIndex:
		fs.BoolVar(&opt.FAI, "fai", false, "also write a samtools-style FILE.fai [false]")
		fs.BoolVar(&opt.Force, "force", false, "rebuild even when a fresh index exists [false]")
	case CmdFetch:
		fs.StringVar(&opt.Output, "output", "fasta", "output: fasta | json | jsonl [fasta]")
		fs.StringVar(&opt.Output, "o", "fasta", "alias of --output")
		fs.IntVar(&opt.LineWidth, "line-width", 60, "FASTA wrap width (0=single line) [60]")
		fs.BoolVar(&opt.NoIndex, "no-index", false, "ignore any persisted index [false]")
	case CmdStats:
		fs.StringVar(&opt.Format, "format", "text", "format: text | json | yaml | tsv [text]")
		fs.StringVar(&opt.Where, "where", "", "keep records matching this expression")
	case CmdIDs:
		fs.StringVar(&opt.Where, "where", "", "keep records matching this expression")
	case CmdLengths:
		fs.BoolVar(&opt.Header, "header", false, "write an id/length header line [false]")
	default:
		return opt, fmt.Errorf("unknown command %q", cmd)
	}
	usage(fs, cmd)

	pos, err := cliutil.ParseInterspersed(fs, argv)
	if err != nil {
		return opt, err
	}
	if opt.Help {
		return opt, flag.ErrHelp
	}
	if err := clibase.AfterParse(fs, &opt.Common); err != nil {
		return opt, err
	}

	if cmd == CmdFetch {
		if len(pos) < 2 {
			return opt, errors.New("fetch needs a FASTA file and at least one region")
		}
		opt.Files = pos[:1]
		for _, s := range pos[1:] {
			r, err := ParseRegion(s)
			if err != nil {
				return opt, err
			}
			opt.Regions = append(opt.Regions, r)
		}
		return opt, validate(&opt)
	}

	if len(pos) == 0 {
		return opt, errors.New("at least one FASTA file is required")
	}
	if opt.Files, err = cliutil.ExpandPositionals(pos); err != nil {
		return opt, err
	}
	return opt, validate(&opt)
}

func validate(opt *Options) error {
	switch opt.Command {
	case CmdIndex:
		if slices.Contains(opt.Files, "-") {
			return errors.New("index needs seekable files, not '-'")
		}
	case CmdFetch:
		if opt.Files[0] == "-" {
			return errors.New("fetch needs a seekable file, not '-'")
		}
		if f := writers.Formats(writers.RegionWriters); !slices.Contains(f, opt.Output) {
			return fmt.Errorf("invalid --output %q (want one of %v)", opt.Output, f)
		}
		if opt.LineWidth < 0 {
			return errors.New("--line-width must be >= 0")
		}
	case CmdStats:
		if f := writers.Formats(writers.StatsWriters); !slices.Contains(f, opt.Format) {
			return fmt.Errorf("invalid --format %q (want one of %v)", opt.Format, f)
		}
	}
	return nil
}

// Settings merges the config file with the explicitly given flags.
func (o *Options) Settings(cfg config.Config) config.Config {
	cfg = o.Common.Override(cfg)
	if o.IsSet("line-width") {
		cfg.LineWidth = o.LineWidth
	}
	return cfg
}

func usage(fs *flag.FlagSet, cmd string) {
	clibase.UsageCommon(fs, "fastaidx "+cmd, func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "%s.\n\n", Summary(cmd))
		switch cmd {
		case CmdIndex:
			fmt.Fprintln(out, "Usage: fastaidx index [flags] FILE...")
			fmt.Fprintln(out, "\nIndex:")
			fmt.Fprintf(out, "      --fai                   Also write FILE.fai [%s]\n", def("fai"))
			fmt.Fprintf(out, "      --force                 Rebuild fresh indexes [%s]\n", def("force"))
		case CmdFetch:
			fmt.Fprintln(out, "Usage: fastaidx fetch [flags] FILE REGION...")
			fmt.Fprintln(out, "\nREGION is ID, ID:START-END or ID:START- (zero-based, end exclusive).")
			fmt.Fprintln(out, "\nOutput:")
			fmt.Fprintf(out, "  -o, --output string         fasta | json | jsonl [%s]\n", def("output"))
			fmt.Fprintf(out, "      --line-width int        FASTA wrap width (0=single line) [%s]\n", def("line-width"))
			fmt.Fprintf(out, "      --no-index              Ignore persisted index [%s]\n", def("no-index"))
		case CmdStats:
			fmt.Fprintln(out, "Usage: fastaidx stats [flags] FILE...   ('-' reads stdin)")
			fmt.Fprintln(out, "\nOutput:")
			fmt.Fprintf(out, "      --format string         text | json | yaml | tsv [%s]\n", def("format"))
			fmt.Fprintln(out, "      --where expr            Filter, e.g. 'length >= 1000 && id startsWith \"chr\"'")
		case CmdIDs:
			fmt.Fprintln(out, "Usage: fastaidx ids [flags] FILE...   ('-' reads stdin)")
			fmt.Fprintln(out, "\nFilter:")
			fmt.Fprintln(out, "      --where expr            Variables: id, desc, length, seq")
		case CmdLengths:
			fmt.Fprintln(out, "Usage: fastaidx lengths [flags] FILE...")
			fmt.Fprintln(out, "\nOutput:")
			fmt.Fprintf(out, "      --header                Write an id/length header line [%s]\n", def("header"))
		}
	})
}
