package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTask = iota
	fieldDeadline
	fieldCount
)

// form holds the task and deadline inputs used for add and update.
type form struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newForm() form {
	var f form
	task := textinput.New()
	task.Prompt = "Task: "
	task.Placeholder = "New task..."
	task.CharLimit = 200
	f.inputs[fieldTask] = task

	deadline := textinput.New()
	deadline.Prompt = "Deadline (yyyy-MM-dd): "
	deadline.Placeholder = "2025-01-31"
	deadline.CharLimit = 10
	f.inputs[fieldDeadline] = deadline
	return f
}

// open fills the inputs and focuses the task field.
func (f *form) open(task, deadline string) tea.Cmd {
	f.inputs[fieldTask].SetValue(task)
	f.inputs[fieldTask].CursorEnd()
	f.inputs[fieldDeadline].SetValue(deadline)
	f.inputs[fieldDeadline].CursorEnd()
	return f.focusField(fieldTask)
}

// close clears and blurs both inputs.
func (f *form) close() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldTask
}

func (f *form) next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *form) focusField(i int) tea.Cmd {
	f.focus = i
	for j := range f.inputs {
		if j != i {
			f.inputs[j].Blur()
		}
	}
	return f.inputs[i].Focus()
}

func (f form) values() (task, deadline string) {
	return f.inputs[fieldTask].Value(), f.inputs[fieldDeadline].Value()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) view() string {
	return f.inputs[fieldTask].View() + "\n" + f.inputs[fieldDeadline].View()
}
