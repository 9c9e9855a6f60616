package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "verify.dev/pkg/verify/internal/model"
)

// ErrUIClosed is returned by WriteLine once the interactive program has exited.
var ErrUIClosed = errors.New("ui closed")

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea. Lines are printed above the spinner so
// the terminal keeps the whole transcript, and WriteLine waits until the model
// has recorded them.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	final   tea.Model
	runErr  error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the interactive program for run mode. List mode renders
// statically and does not need an event loop.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)
	if cfg.mode != ModeRun {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	programOptions := append([]tea.ProgramOption{
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	}, t.options...)

	program := tea.NewProgram(newRunModel(), programOptions...)
	done := make(chan struct{})

	go func() {
		defer close(done)

		final, err := program.Run()

		t.mu.Lock()
		t.final = final
		t.runErr = err
		t.mu.Unlock()
	}()

	t.program = program
	t.done = done

	return nil
}

// WriteLine queues the styled line for printing, then hands it to the model
// and waits for the acknowledgement. Both messages travel the program's
// message channel in order, so the print is queued before the ack arrives.
func (t *TUI) WriteLine(ctx context.Context, line string) error {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		_, err := fmt.Fprintln(t.output, line)
		return err
	}

	program.Send(tea.Println(styleLine(line))())

	ack := make(chan struct{})
	program.Send(lineMsg{line: line, ack: ack})

	select {
	case <-ack:
		return nil
	case <-done:
		return ErrUIClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close asks the program to render its final frame and exit.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(finishMsg{})
	}
}

// Wait blocks until the program has exited.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.runErr
}

// DisplayTests prints the discovered tests with a styled header.
func (t *TUI) DisplayTests(ctx context.Context, tests []m.TestDescriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("verify - discovered tests"))
	b.WriteString("\n")

	if len(tests) == 0 {
		b.WriteString(faintStyle.Render("  " + noTestsMessage))
		b.WriteString("\n")
	} else {
		b.WriteString(renderTestTable(tests))
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayReports prints stored runs, styling the transcript of the latest one.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("verify - stored runs"))
	b.WriteString("\n")

	if len(reports) == 0 {
		b.WriteString(faintStyle.Render("  " + noReportsMessage))
		b.WriteString("\n")

		_, err := fmt.Fprint(t.output, b.String())

		return err
	}

	b.WriteString(renderReportTable(reports))

	latest := reports[len(reports)-1]
	b.WriteString(faintStyle.Render("Latest run " + latest.ID + ":"))
	b.WriteString("\n")

	for _, line := range latest.Transcript {
		b.WriteString(styleLine(line))
		b.WriteString("\n")
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

type lineMsg struct {
	line string
	ack  chan struct{}
}

type finishMsg struct{}

// runModel keeps the run transcript and renders only the progress spinner.
type runModel struct {
	spinner  spinner.Model
	lines    []string
	finished bool
}

func newRunModel() runModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = headerStyle

	return runModel{spinner: s}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lineMsg:
		rm.lines = append(rm.lines, msg.line)
		if msg.ack != nil {
			close(msg.ack)
		}

		return rm, nil

	case finishMsg:
		rm.finished = true
		return rm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return rm, tea.Quit
		}

		return rm, nil

	case spinner.TickMsg:
		if rm.finished {
			return rm, nil
		}

		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	}

	return rm, nil
}

func (rm runModel) View() string {
	if rm.finished {
		return ""
	}

	return rm.spinner.View() + faintStyle.Render(fmt.Sprintf(" running (%d lines)", len(rm.lines))) + "\n"
}

func styleLine(line string) string {
	switch {
	case line == StartLine:
		return headerStyle.Render(line)
	case isFailureHeader(line):
		return failureStyle.Render(line)
	case isSuccessLine(line):
		return successStyle.Render(line)
	case isSummaryLine(line):
		return summaryStyle.Render(line)
	default:
		return line
	}
}
