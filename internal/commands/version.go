package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

// Version is the release number, overridden with -ldflags "-X".
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd prints the release number and, with --verbose, the build
// details the Go toolchain embeds in the binary.
type VersionCmd struct {
	verbose bool
}

// SetVerbose enables build details (for testing).
func (c *VersionCmd) SetVerbose(verbose bool) {
	c.verbose = verbose
}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version and build details" }
func (c *VersionCmd) Usage() string     { return "todo version [--verbose]" }
func (c *VersionCmd) NeedsStore() bool  { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "")
}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprintf(out, "todo %s\n", Version)
	if !c.verbose {
		return exitcode.Success
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Fprintln(out, "build info unavailable")
		return exitcode.Success
	}
	fmt.Fprintf(out, "go: %s\n", bi.GoVersion)
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		fmt.Fprintf(out, "module: %s\n", v)
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified":
			fmt.Fprintf(out, "%s: %s\n", s.Key, s.Value)
		}
	}
	return exitcode.Success
}
