package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ThemeCmd{})
}

// ThemeCmd implements the theme command.
type ThemeCmd struct{}

func (c *ThemeCmd) Name() string      { return "theme" }
func (c *ThemeCmd) Aliases() []string { return nil }
func (c *ThemeCmd) Synopsis() string  { return "Show or toggle the dark/light theme" }
func (c *ThemeCmd) Usage() string     { return "todo theme [toggle]" }
func (c *ThemeCmd) NeedsStore() bool  { return true }

func (c *ThemeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ThemeCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	dark := svc.DarkMode()

	switch {
	case len(args) == 0:
	case len(args) == 1 && args[0] == "toggle":
		dark = svc.ToggleTheme(ctx)
	default:
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	fmt.Fprintln(out, ThemeName(dark))
	return exitcode.Success
}

// ThemeName returns "dark" or "light".
func ThemeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
