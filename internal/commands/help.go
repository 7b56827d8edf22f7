package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

// NewHelpCmd creates a help command listing the commands of r.
func NewHelpCmd(r *Registry) *HelpCmd {
	return &HelpCmd{registry: r}
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %-40s %s\n", "todo", "List all tasks")
	if c.registry != nil {
		for _, cmd := range c.registry.All() {
			usage := cmd.Usage()
			if aliases := cmd.Aliases(); len(aliases) > 0 {
				usage += " (" + strings.Join(aliases, ", ") + ")"
			}
			fmt.Fprintf(out, "  %-40s %s\n", usage, cmd.Synopsis())
		}
	}
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Task refs:
  N                Position in the full list (see: todo list)
  @ID              Task id; unknown ids are ignored

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TODO_BACKEND          file (default), sqlite, redis, memory
  TODO_CONFIRM_DELETE   Ask before rm (default true)
  TODO_LOG_LEVEL        Log level (default warn)
  TODO_LOG_FORMAT       text (default) or json
  TODO_REDIS_ADDR, TODO_REDIS_URL, TODO_REDIS_PASSWORD, TODO_REDIS_DB, TODO_REDIS_PREFIX
`
