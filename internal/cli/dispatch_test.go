package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/testutil"
)

// testFactory creates a service factory opening a store over the given FakeKV.
func testFactory(fake *testutil.FakeKV) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.Service, error) {
		return store.Open(ctx, fake, store.WithLogger(log))
	}
}

func run(t *testing.T, fake *testutil.FakeKV, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fake))

	var outBuf, errBuf bytes.Buffer
	code = dispatcher.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := run(t, testutil.NewFakeKV(), "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := run(t, testutil.NewFakeKV(), "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	stdout, stderr, code := run(t, testutil.NewFakeKV(), "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, stderr, code := run(t, testutil.NewFakeKV(), "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := run(t, testutil.NewFakeKV(), "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	_, stderr, code := run(t, testutil.NewFakeKV(), "list", "--config")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoArgsLists(t *testing.T) {
	fake := testutil.NewFakeKV()
	fake.Put(store.TasksKey, `[{"id":1,"text":"Buy milk","completed":false}]`)

	stdout, _, code := run(t, fake)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "   1  [ ] Buy milk\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestDispatcher_AddThenList(t *testing.T) {
	fake := testutil.NewFakeKV()

	if _, stderr, code := run(t, fake, "add", "--quiet", "Buy", "milk"); code != exitcode.Success {
		t.Fatalf("add failed: %d %q", code, stderr)
	}
	if _, _, code := run(t, fake, "create", "buy MILK"); code != exitcode.UserError {
		t.Errorf("expected duplicate rejection, got %d", code)
	}
	if _, _, code := run(t, fake, "done", "--quiet", "1"); code != exitcode.Success {
		t.Errorf("done failed: %d", code)
	}

	stdout, _, _ := run(t, fake, "list")
	if stdout != "   1  [x] Buy milk\n" {
		t.Errorf("unexpected list %q", stdout)
	}
}

func TestDispatcher_RmYesFlagResets(t *testing.T) {
	t.Setenv("TODO_CONFIRM_DELETE", "true")
	fake := testutil.NewFakeKV()
	fake.Put(store.TasksKey, `[{"id":1,"text":"a","completed":false},{"id":2,"text":"b","completed":false}]`)

	if _, _, code := run(t, fake, "rm", "--yes", "1"); code != exitcode.Success {
		t.Fatalf("rm --yes failed: %d", code)
	}

	// The next rm must prompt again; with no input it cancels.
	stdout, _, code := run(t, fake, "rm", "1")
	if code != exitcode.Success {
		t.Fatalf("rm failed: %d", code)
	}
	if !strings.HasSuffix(stdout, "cancelled\n") {
		t.Errorf("expected cancellation, got %q", stdout)
	}

	raw, _ := fake.Value(store.TasksKey)
	if raw != `[{"id":2,"text":"b","completed":false}]` {
		t.Errorf("unexpected stored tasks %q", raw)
	}
}

func TestDispatcher_RmConfirmFromInput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TODO_CONFIRM_DELETE", "true")
	fake := testutil.NewFakeKV()
	fake.Put(store.TasksKey, `[{"id":1,"text":"a","completed":false}]`)

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fake)).WithInput(strings.NewReader("yes\n"))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"delete", "1"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (%q)", code, stderr.String())
	}
	if raw, _ := fake.Value(store.TasksKey); raw != "[]" {
		t.Errorf("expected empty collection, got %q", raw)
	}
}

func TestDispatcher_ConfigError(t *testing.T) {
	t.Setenv("TODO_BACKEND", "etcd")

	_, stderr, code := run(t, testutil.NewFakeKV(), "list")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.Contains(stderr, "unknown backend: etcd") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_StorageError(t *testing.T) {
	fake := testutil.NewFakeKV()
	fake.GetErr = errors.New("connection refused")

	_, stderr, code := run(t, fake, "list")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !strings.Contains(stderr, "error: storage error:") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_ClosesStore(t *testing.T) {
	fake := testutil.NewFakeKV()

	if _, _, code := run(t, fake, "list"); code != exitcode.Success {
		t.Fatalf("list failed: %d", code)
	}
	if !fake.Closed {
		t.Error("expected backend closed after command")
	}
}

func TestDispatcher_HelpNeedsNoStore(t *testing.T) {
	fake := testutil.NewFakeKV()
	fake.GetErr = errors.New("unreachable")

	if _, _, code := run(t, fake, "help"); code != exitcode.Success {
		t.Errorf("help should not open storage, got %d", code)
	}
}

func TestDispatcher_DebugLogs(t *testing.T) {
	_, stderr, code := run(t, testutil.NewFakeKV(), "list", "--debug")

	if code != exitcode.Success {
		t.Fatalf("list failed: %d", code)
	}
	if !strings.Contains(stderr, "msg=dispatch") || !strings.Contains(stderr, "command=list") {
		t.Errorf("expected debug log line, got %q", stderr)
	}
}
