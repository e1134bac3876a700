// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"fastaidx/internal/version"
)

// Header prints the banner shared by every help screen.
func Header(out io.Writer, name string) {
	fmt.Fprintf(out, "%s – indexed FASTA access\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
}

// UsageCommon installs a shared Usage() handler on fs.
// extra prints subcommand-specific sections.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		Header(out, name)
		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nCommon:")
		fmt.Fprintln(out, "      --config file           YAML config (log_level, threads, line_width, index_suffix, id_separator, id_field)")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintln(out, "      --id-sep string         Derive ids by splitting the header on this separator")
		fmt.Fprintf(out, "      --id-field int          Field used as id with --id-sep [%s]\n", def("id-field"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "  -v, --verbose               Debug logging [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
