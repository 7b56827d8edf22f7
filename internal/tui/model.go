// Package tui is the interactive task list: an input for new tasks, the full
// list with a cursor, and the completed and remaining views side by side.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/service"
	"todo/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirm
	modeNotice
)

// Options configure the model.
type Options struct {
	// ConfirmDelete asks y/n before a task is deleted.
	ConfirmDelete bool
}

// Model is the bubbletea model. Every handler runs to completion inside
// Update, so the service is only ever touched from the program goroutine.
type Model struct {
	ctx   context.Context
	svc   service.Service
	opts  Options
	keys  KeyMap
	help  help.Model
	input textinput.Model
	theme Theme

	mode     mode
	prevMode mode
	cursor   int
	notice   string
	pending  todo.Task
	width    int
}

// New creates a model over svc. The theme comes from svc.
func New(ctx context.Context, svc service.Service, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your task here..."
	ti.CharLimit = 0 // no limit
	ti.Width = 40
	ti.Prompt = "› "

	return Model{
		ctx:   ctx,
		svc:   svc,
		opts:  opts,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		input: ti,
		theme: ThemeFor(svc.DarkMode()),
		mode:  modeList,
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, svc service.Service, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctx, svc, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if msg.Width > 20 {
			m.input.Width = msg.Width - 20
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeNotice:
			return m.updateNotice(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeAdd:
			return m.updateAdd(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == modeAdd {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.svc.Tasks()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(tasks); ok {
			m.svc.ToggleTask(m.ctx, task.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selected(tasks)
		if !ok {
			break
		}
		if m.opts.ConfirmDelete {
			m.pending = task
			m.mode = modeConfirm
			break
		}
		m.delete(task.ID)

	case key.Matches(msg, m.keys.Theme):
		m.theme = ThemeFor(m.svc.ToggleTheme(m.ctx))
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.input.Blur()
		m.input.SetValue("")
		m.mode = modeList
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if _, err := m.svc.AddTask(m.ctx, m.input.Value()); err != nil {
			m.showNotice(err.Error())
			return m, nil
		}
		m.input.SetValue("")
		m.cursor = len(m.svc.Tasks()) - 1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.delete(m.pending.ID)
		m.pending = todo.Task{}
		m.mode = modeList
	case key.Matches(msg, m.keys.Cancel):
		m.pending = todo.Task{}
		m.mode = modeList
	}
	return m, nil
}

// updateNotice blocks every key except the ones that dismiss the notice.
func (m Model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeySpace:
		m.notice = ""
		m.mode = m.prevMode
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) showNotice(text string) {
	m.notice = text
	m.prevMode = m.mode
	m.mode = modeNotice
}

func (m *Model) delete(id int64) {
	m.svc.DeleteTask(m.ctx, id)
	if n := len(m.svc.Tasks()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m Model) selected(tasks []todo.Task) (todo.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[m.cursor], true
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	th := m.theme

	b.WriteString(th.Title.Render("📝 To-Do List"))
	b.WriteString(th.Muted.Render(fmt.Sprintf("  theme: %s", th.Name)))
	b.WriteString("\n\n")

	if m.mode == modeAdd || (m.mode == modeNotice && m.prevMode == modeAdd) {
		b.WriteString(th.Input.Render(m.input.View()))
		b.WriteString("\n")
	}

	tasks := m.svc.Tasks()
	if len(tasks) == 0 {
		b.WriteString(th.Muted.Render("  no tasks yet, press a to add one"))
		b.WriteString("\n")
	}
	for i, task := range tasks {
		line := "[ ] " + task.Text
		if task.Completed {
			line = "[x] " + th.Done.Render(task.Text)
		}
		if i == m.cursor && m.mode != modeAdd {
			b.WriteString(th.Selected.Render("› " + line))
		} else {
			b.WriteString(th.Task.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		th.Pane.Render(renderView(th.DoneHead.Render("✅ Completed"), m.svc.Completed())),
		" ",
		th.Pane.Render(renderView(th.OpenHead.Render("⏱ Remaining"), m.svc.Remaining())),
	))
	b.WriteString("\n")

	switch m.mode {
	case modeNotice:
		b.WriteString(th.Notice.Render(m.notice))
		b.WriteString("\n")
		b.WriteString(th.Muted.Render("press enter to continue"))
	case modeConfirm:
		b.WriteString(th.Prompt.Render(fmt.Sprintf("delete %q? [y/N]", m.pending.Text)))
	case modeAdd:
		b.WriteString(m.help.View(addHelp{m.keys}))
	default:
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")

	return b.String()
}

func renderView(title string, tasks []todo.Task) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d)", title, len(tasks)))
	for i, task := range tasks {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, task.Text))
	}
	return b.String()
}
