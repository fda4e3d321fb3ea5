package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/ui"
)

const maxTaskWidth = 60

// render draws the header, progress bar and task table in a panel.
func (s *Session) render() {
	s.out.Panel(TableLines(s.out, s.tasks))
}

// TableLines builds the panel content for the current task list.
func TableLines(p *ui.Printer, tasks *tasklist.Manager) []string {
	t := p.Theme()
	done, pending := tasks.Stats()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		p.C(t.Title, "Todos"),
		p.C(t.Success, t.SymDone), done,
		p.C(t.Pending, t.SymPending), pending,
		p.C(t.Accent, "Total"), done+pending,
	)
	lines := []string{
		header,
		p.C(t.Muted, ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	lines = append(lines, rowLines(p, tasks.Snapshot())...)
	return lines
}

func rowLines(p *ui.Printer, rows []tasklist.Row) []string {
	t := p.Theme()
	if len(rows) == 0 {
		return []string{p.C(t.Muted, "no tasks")}
	}

	taskWidth := len("Task")
	for _, r := range rows {
		if w := ui.VisibleWidth(r.Description); w > taskWidth {
			taskWidth = w
		}
	}
	if taskWidth > maxTaskWidth {
		taskWidth = maxTaskWidth
	}
	boxWidth := ui.VisibleWidth(t.BoxUnchecked)

	out := make([]string, 0, len(rows)+1)
	out = append(out, p.C(t.Accent, fmt.Sprintf("%3s %s %s  %-10s  %s",
		"#", strings.Repeat(" ", boxWidth), ui.Pad("Task", taskWidth), "Deadline", "Completed")))
	for i, r := range rows {
		box, color := t.BoxUnchecked, t.Muted
		if r.Completed == "Yes" {
			box, color = t.BoxChecked, t.Success
		}
		desc := ui.Pad(ui.Truncate(r.Description, taskWidth), taskWidth)
		out = append(out, fmt.Sprintf("%s %s %s  %s  %s",
			p.C(t.Muted, fmt.Sprintf("%2d.", i+1)), p.C(color, box), desc, r.Deadline, r.Completed))
	}
	return out
}
