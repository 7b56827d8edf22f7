package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ListCmd{})
	Register(CompletedCmd())
	Register(RemainingCmd())
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list [--completed|--remaining]`.
type ListCmd struct {
	completed bool
	remaining bool
}

// SetViews selects the derived views to print (for testing).
func (c *ListCmd) SetViews(completed, remaining bool) {
	c.completed = completed
	c.remaining = remaining
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list [--completed] [--remaining]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.completed, "completed", false, "")
	fs.BoolVar(&c.remaining, "remaining", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	// With view flags, print only the selected views
	if c.completed || c.remaining {
		if c.completed {
			output.FormatView(out, output.CompletedTitle, svc.Completed())
		}
		if c.remaining {
			output.FormatView(out, output.RemainingTitle, svc.Remaining())
		}
		return exitcode.Success
	}

	tasks := svc.Tasks()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
	}
	return exitcode.Success
}

// ViewCmd prints one derived view.
type ViewCmd struct {
	name      string
	title     string
	completed bool
}

func (c *ViewCmd) Name() string      { return c.name }
func (c *ViewCmd) Aliases() []string { return nil }
func (c *ViewCmd) Synopsis() string  { return "List " + c.name + " tasks" }
func (c *ViewCmd) Usage() string     { return "todo " + c.name }
func (c *ViewCmd) NeedsStore() bool  { return true }

func (c *ViewCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ViewCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := svc.Remaining()
	if c.completed {
		tasks = svc.Completed()
	}
	output.FormatView(out, c.title, tasks)
	return exitcode.Success
}

// CompletedCmd returns the command printing the completed view.
func CompletedCmd() *ViewCmd {
	return &ViewCmd{name: "completed", title: output.CompletedTitle, completed: true}
}

// RemainingCmd returns the command printing the remaining view.
func RemainingCmd() *ViewCmd {
	return &ViewCmd{name: "remaining", title: output.RemainingTitle}
}
