// Package tui is the interactive task table built on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/export"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options tune the table UI.
type Options struct {
	Theme       string
	NoColor     bool
	ExportDir   string
	ReportTitle string
	Now         func() time.Time
}

type mode int

const (
	browsing mode = iota
	adding
	editing
)

const (
	deadlineWidth  = 12
	completedWidth = 11
	minTaskWidth   = 16
)

// Model is the Bubble Tea model for the task table.
type Model struct {
	tasks  *tasklist.Manager
	log    *log.Logger
	opt    Options
	styles styles
	keys   keyMap
	help   help.Model

	table table.Model
	form  form
	mode  mode
	edit  tasklist.Selection // row being updated

	notice    string
	noticeErr bool
	width     int
	height    int
}

// New builds the model over an existing task list.
func New(tasks *tasklist.Manager, logger *log.Logger, opt Options) Model {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.ReportTitle == "" {
		opt.ReportTitle = "Todo List"
	}
	st := newStyles(opt.Theme, opt.NoColor)

	t := table.New(
		table.WithColumns(columns(40)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(st.table),
	)

	m := Model{
		tasks:  tasks,
		log:    logger,
		opt:    opt,
		styles: st,
		keys:   defaultKeyMap(),
		help:   help.New(),
		table:  t,
		form:   newForm(),
	}
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, tasks *tasklist.Manager, logger *log.Logger, opt Options) error {
	p := tea.NewProgram(New(tasks, logger, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func columns(taskWidth int) []table.Column {
	return []table.Column{
		{Title: "Task", Width: taskWidth},
		{Title: "Deadline", Width: deadlineWidth},
		{Title: "Completed", Width: completedWidth},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
		return m, nil
	}
	if m.mode != browsing {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	m.notice = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Add):
		m.mode = adding
		return m, m.form.open("", "")
	case key.Matches(keyMsg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(keyMsg, m.keys.Remove):
		m.remove()
		return m, nil
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggle()
		return m, nil
	case key.Matches(keyMsg, m.keys.Export):
		m.export()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if !key.Matches(keyMsg, m.keys.Submit) {
			m.notice = ""
		}
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			if m.mode == editing {
				// A cancelled prompt withholds both values.
				_, err := m.tasks.UpdateAt(m.edit, tasklist.Withheld(), tasklist.Withheld())
				switch {
				case errors.Is(err, tasklist.ErrUpdateAbandoned):
					m.setNotice("update cancelled", false)
				case err != nil:
					m.refuse("update", err)
				}
			}
			m.closeForm()
			return m, nil
		case key.Matches(keyMsg, m.keys.Next):
			return m, m.form.next()
		case key.Matches(keyMsg, m.keys.Submit):
			m.submit()
			return m, nil
		}
	}
	return m, m.form.update(msg)
}

func (m *Model) submit() {
	desc, deadline := m.form.values()
	switch m.mode {
	case adding:
		task, err := m.tasks.Add(desc, deadline)
		if err != nil {
			m.refuse("add", err)
			return
		}
		m.log.Debug("task added", "description", task.Description, "len", m.tasks.Len())
		m.closeForm()
		m.refresh()
		m.table.SetCursor(m.tasks.Len() - 1)
		m.setNotice("added", false)
	case editing:
		task, err := m.tasks.UpdateAt(m.edit, tasklist.Provided(desc), tasklist.Provided(deadline))
		if err != nil {
			m.refuse("update", err)
			return
		}
		m.log.Debug("task updated", "description", task.Description)
		m.closeForm()
		m.refresh()
		m.setNotice("updated", false)
	}
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	sel := m.selection()
	task, err := m.tasks.Get(sel)
	if err != nil {
		m.refuse("update", err)
		return m, nil
	}
	m.mode = editing
	m.edit = sel
	return m, m.form.open(task.Description, model.FormatDeadline(task.Deadline))
}

func (m *Model) remove() {
	if err := m.tasks.RemoveAt(m.selection()); err != nil {
		m.refuse("remove", err)
		return
	}
	m.log.Debug("task removed", "len", m.tasks.Len())
	m.refresh()
	m.setNotice("removed", false)
}

func (m *Model) toggle() {
	task, err := m.tasks.ToggleCompletedAt(m.selection())
	if err != nil {
		m.refuse("toggle completion", err)
		return
	}
	m.log.Debug("task toggled", "description", task.Description, "completed", task.Completed)
	m.refresh()
}

func (m *Model) export() {
	path, err := export.ResolvePath("", m.opt.ExportDir)
	if err == nil {
		err = export.WriteFile(path, export.Report{
			Title:     m.opt.ReportTitle,
			Generated: m.opt.Now(),
			Rows:      m.tasks.Snapshot(),
		})
	}
	if err != nil {
		m.log.Error("export failed", "err", err)
		m.setNotice("export: "+err.Error(), true)
		return
	}
	m.log.Info("report written", "path", path)
	m.setNotice("exported to "+path, false)
}

// selection maps the table cursor to a list selection.
func (m Model) selection() tasklist.Selection {
	if len(m.table.Rows()) == 0 {
		return tasklist.None()
	}
	return tasklist.SelectionFromIndex(m.table.Cursor())
}

func (m *Model) refuse(action string, err error) {
	m.log.Debug("action refused", "action", action, "err", err)
	m.setNotice(ui.Notice(action, err), true)
}

func (m *Model) setNotice(msg string, isErr bool) {
	m.notice, m.noticeErr = msg, isErr
}

func (m *Model) closeForm() {
	m.mode = browsing
	m.edit = tasklist.None()
	m.form.close()
}

// refresh reloads table rows from the task list snapshot.
func (m *Model) refresh() {
	snap := m.tasks.Snapshot()
	rows := make([]table.Row, 0, len(snap))
	for _, r := range snap {
		box := m.styles.unchecked
		if r.Completed == "Yes" {
			box = m.styles.checked
		}
		rows = append(rows, table.Row{r.Description, r.Deadline, box + " " + r.Completed})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	taskWidth := width - deadlineWidth - completedWidth - 12
	if taskWidth < minTaskWidth {
		taskWidth = minTaskWidth
	}
	m.table.SetColumns(columns(taskWidth))
	m.table.SetWidth(taskWidth + deadlineWidth + completedWidth + 6)

	tableHeight := height - 9
	if m.mode != browsing {
		tableHeight -= 4
	}
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
}

func (m Model) header() string {
	done, pending := m.tasks.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.styles.title.Render("Todos"),
		m.styles.success.Render("✔"), done,
		m.styles.pending.Render("•"), pending,
		m.styles.accent.Render("Total"), done+pending,
	)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	if m.tasks.Len() == 0 {
		b.WriteString(m.styles.muted.Render("no tasks, press a to add one"))
		b.WriteString("\n")
	}
	b.WriteString(m.table.View())

	if m.mode != browsing {
		title := "Add task"
		if m.mode == editing {
			title = "Update task"
		}
		b.WriteString("\n")
		b.WriteString(m.styles.form.Render(m.styles.title.Render(title) + "\n" + m.form.view()))
	}

	b.WriteString("\n")
	if m.notice != "" {
		if m.noticeErr {
			b.WriteString(m.styles.errorText.Render("✖ " + m.notice))
		} else {
			b.WriteString(m.styles.success.Render("✔ " + m.notice))
		}
	}
	b.WriteString("\n")
	if m.mode != browsing {
		b.WriteString(m.styles.help.Render(m.help.View(formKeys{m.keys})))
	} else {
		b.WriteString(m.styles.help.Render(m.help.View(m.keys)))
	}
	return m.styles.panel.Render(b.String())
}
