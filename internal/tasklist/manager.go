// Package tasklist owns the ordered task collection and every change made to it.
package tasklist

import (
	"strings"
	"time"

	"github.com/idilsaglam/tada/internal/model"
)

// Row is one display line of the task table.
type Row struct {
	Description string
	Deadline    string
	Completed   string
}

// Manager holds tasks in insertion order. It is not safe for concurrent use;
// every presentation drives it from a single goroutine.
type Manager struct {
	tasks []model.Task
}

// New returns an empty manager.
func New() *Manager {
	return &Manager{}
}

// Len reports the number of tasks.
func (m *Manager) Len() int { return len(m.tasks) }

// Add validates the input and appends a new, not completed task.
func (m *Manager) Add(description, deadlineText string) (model.Task, error) {
	desc, deadline, err := validate(description, deadlineText)
	if err != nil {
		return model.Task{}, err
	}
	t := model.Task{Description: desc, Deadline: deadline}
	m.tasks = append(m.tasks, t)
	return t, nil
}

// RemoveAt deletes the selected task. Later tasks move up one index.
func (m *Manager) RemoveAt(sel Selection) error {
	i, err := m.resolve(sel)
	if err != nil {
		return err
	}
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	return nil
}

// UpdateAt replaces description and deadline of the selected task.
// If either input is withheld nothing changes and ErrUpdateAbandoned is returned.
func (m *Manager) UpdateAt(sel Selection, description, deadline Input) (model.Task, error) {
	i, err := m.resolve(sel)
	if err != nil {
		return model.Task{}, err
	}
	descText, ok1 := description.Value()
	deadlineText, ok2 := deadline.Value()
	if !ok1 || !ok2 {
		return model.Task{}, ErrUpdateAbandoned
	}
	desc, d, err := validate(descText, deadlineText)
	if err != nil {
		return model.Task{}, err
	}
	m.tasks[i].Description = desc
	m.tasks[i].Deadline = d
	return m.tasks[i], nil
}

// ToggleCompletedAt flips the completion flag of the selected task.
func (m *Manager) ToggleCompletedAt(sel Selection) (model.Task, error) {
	i, err := m.resolve(sel)
	if err != nil {
		return model.Task{}, err
	}
	m.tasks[i].Completed = !m.tasks[i].Completed
	return m.tasks[i], nil
}

// Get returns a copy of the selected task.
func (m *Manager) Get(sel Selection) (model.Task, error) {
	i, err := m.resolve(sel)
	if err != nil {
		return model.Task{}, err
	}
	return m.tasks[i], nil
}

// Snapshot projects the list into display rows, in list order.
func (m *Manager) Snapshot() []Row {
	rows := make([]Row, 0, len(m.tasks))
	for _, t := range m.tasks {
		rows = append(rows, Row{
			Description: t.Description,
			Deadline:    model.FormatDeadline(t.Deadline),
			Completed:   model.CompletedLabel(t.Completed),
		})
	}
	return rows
}

// Stats counts completed and pending tasks.
func (m *Manager) Stats() (done, pending int) {
	for _, t := range m.tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (m *Manager) resolve(sel Selection) (int, error) {
	i, ok := sel.Index()
	if !ok {
		return 0, &IndexError{Reason: NoSelection, Index: -1, Len: len(m.tasks)}
	}
	if i < 0 || i >= len(m.tasks) {
		return 0, &IndexError{Reason: OutOfRange, Index: i, Len: len(m.tasks)}
	}
	return i, nil
}

func validate(description, deadlineText string) (string, time.Time, error) {
	desc := strings.TrimSpace(description)
	text := strings.TrimSpace(deadlineText)
	if desc == "" || text == "" {
		return "", time.Time{}, &ValidationError{Reason: EmptyInput}
	}
	d, err := model.ParseDeadline(text)
	if err != nil {
		return "", time.Time{}, &ValidationError{Reason: InvalidDate, Input: text, Err: err}
	}
	return desc, d, nil
}
