// Package cli runs the line-oriented task session: one command per input line,
// the task table redrawn after every change.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/exitcode"
	"github.com/idilsaglam/tada/internal/export"
	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options tune session behavior.
type Options struct {
	Quiet       bool   // skip the table redraw after changes
	Prompt      string // printed before each command when set
	ExportDir   string
	ReportTitle string
	Now         func() time.Time
}

// Session reads commands from in and applies them to one task list.
type Session struct {
	tasks  *tasklist.Manager
	in     *bufio.Scanner
	out    *ui.Printer
	errOut *ui.Printer
	log    *log.Logger
	opt    Options
}

// NewSession wires a session to its task list and streams.
func NewSession(tasks *tasklist.Manager, in io.Reader, out, errOut *ui.Printer, logger *log.Logger, opt Options) *Session {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.ReportTitle == "" {
		opt.ReportTitle = "Todo List"
	}
	return &Session{
		tasks:  tasks,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		log:    logger,
		opt:    opt,
	}
}

// Run processes commands until quit or end of input and returns an exit code.
func (s *Session) Run() int {
	for {
		if s.opt.Prompt != "" {
			s.out.Print(s.opt.Prompt)
		}
		line, ok := s.readLine()
		if !ok {
			break
		}
		if quit := s.Exec(line); quit {
			return exitcode.Success
		}
	}
	if err := s.in.Err(); err != nil {
		s.errOut.Fail("read input: " + err.Error())
		s.log.Error("read input", "err", err)
		return exitcode.Failure
	}
	return exitcode.Success
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// Exec runs a single command line. It reports whether the session should end.
func (s *Session) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help", "?":
		PrintHelp(s.out)
	case "quit", "exit", "q":
		return true
	case "ls", "list":
		s.render()
	case "add":
		s.doAdd(args)
	case "rm", "remove":
		s.doRemove(args)
	case "edit", "update":
		s.doUpdate(args)
	case "done", "toggle":
		s.doToggle(args)
	case "export":
		s.doExport(args)
	default:
		s.errOut.Fail("unknown command: " + cmd)
		s.errOut.Hint("Hint: run `help` to see commands")
	}
	return false
}

// PrintHelp writes the command list.
func PrintHelp(p *ui.Printer) {
	p.Print(`tada - task table

Commands:
  add <yyyy-MM-dd> <task...>   Add a task with a deadline
  ls                           Show the task table
  rm <index>                   Remove the task at 1-based index
  edit <index>                 Replace description and deadline (prompts; "." cancels)
  done <index>                 Toggle completed for the task at index
  export [file.pdf]            Write the table to a PDF report
  help                         Show this help
  quit                         Leave

Examples:
  add 2025-03-10 Write report
  done 1
  rm 2
`)
}

// -------------- command impls ----------------

func (s *Session) doAdd(args []string) {
	var deadline, desc string
	if len(args) > 0 {
		deadline = args[0]
		desc = strings.Join(args[1:], " ")
	}
	task, err := s.tasks.Add(desc, deadline)
	if err != nil {
		s.report("add", err)
		return
	}
	s.log.Debug("task added", "description", task.Description, "len", s.tasks.Len())
	s.changed("added")
}

func (s *Session) doRemove(args []string) {
	sel, ok := s.selection("rm", args)
	if !ok {
		return
	}
	if err := s.tasks.RemoveAt(sel); err != nil {
		s.report("remove", err)
		return
	}
	s.log.Debug("task removed", "len", s.tasks.Len())
	s.changed("removed")
}

func (s *Session) doToggle(args []string) {
	sel, ok := s.selection("done", args)
	if !ok {
		return
	}
	task, err := s.tasks.ToggleCompletedAt(sel)
	if err != nil {
		s.report("toggle completion", err)
		return
	}
	s.log.Debug("task toggled", "description", task.Description, "completed", task.Completed)
	s.changed("toggled")
}

func (s *Session) doUpdate(args []string) {
	sel, ok := s.selection("edit", args)
	if !ok {
		return
	}
	// Refuse a bad selection before prompting.
	if _, err := s.tasks.Get(sel); err != nil {
		s.report("update", err)
		return
	}
	desc := s.prompt("Enter new task description: ")
	deadline := s.prompt("Enter new deadline (yyyy-MM-dd): ")

	task, err := s.tasks.UpdateAt(sel, desc, deadline)
	if errors.Is(err, tasklist.ErrUpdateAbandoned) {
		s.out.Hint("update cancelled")
		return
	}
	if err != nil {
		s.report("update", err)
		return
	}
	s.log.Debug("task updated", "description", task.Description)
	s.changed("updated")
}

func (s *Session) doExport(args []string) {
	path, err := export.ResolvePath(strings.Join(args, " "), s.opt.ExportDir)
	if err != nil {
		s.errOut.Fail("export: " + err.Error())
		return
	}
	r := export.Report{Title: s.opt.ReportTitle, Generated: s.opt.Now(), Rows: s.tasks.Snapshot()}
	if err := export.WriteFile(path, r); err != nil {
		s.errOut.Fail("export: " + err.Error())
		s.log.Error("export failed", "path", path, "err", err)
		return
	}
	s.log.Info("report written", "path", path, "rows", len(r.Rows))
	s.out.OK("exported to " + path)
}

// prompt asks for one value. A lone "." or end of input withholds it.
func (s *Session) prompt(question string) tasklist.Input {
	s.out.Print(question)
	line, ok := s.readLine()
	if !ok {
		s.out.Println("")
		return tasklist.Withheld()
	}
	if strings.TrimSpace(line) == "." {
		return tasklist.Withheld()
	}
	return tasklist.Provided(line)
}

// selection converts a 1-based index argument. No argument selects nothing.
func (s *Session) selection(cmd string, args []string) (tasklist.Selection, bool) {
	if len(args) == 0 {
		return tasklist.None(), true
	}
	if len(args) > 1 {
		s.errOut.Fail(fmt.Sprintf("usage: %s <index>", cmd))
		return tasklist.None(), false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		s.errOut.Fail(cmd + ": not a number: " + args[0])
		return tasklist.None(), false
	}
	return tasklist.At(n - 1), true
}

func (s *Session) changed(msg string) {
	s.out.OK(msg)
	if !s.opt.Quiet {
		s.render()
	}
}

// report turns a task list error into the user-facing notice.
func (s *Session) report(action string, err error) {
	s.log.Debug("command refused", "action", action, "err", err)
	s.errOut.Fail(ui.Notice(action, err))

	var ie *tasklist.IndexError
	if errors.As(err, &ie) && ie.Reason == tasklist.OutOfRange {
		s.errOut.Hint("Hint: run `ls` to see valid indexes")
	}
}
