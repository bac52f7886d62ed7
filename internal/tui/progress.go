package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/handrank/internal/verify"
)

type progressMsg verify.Progress

type doneMsg struct {
	report *verify.Report
	err    error
}

// ProgressModel shows a running verification as a progress bar.
type ProgressModel struct {
	bar    progress.Model
	title  string
	cancel context.CancelFunc
	logger *log.Logger

	last     verify.Progress
	report   *verify.Report
	err      error
	quitting bool
}

// NewProgressModel creates the model. cancel is invoked when the user
// interrupts the run.
func NewProgressModel(title string, cancel context.CancelFunc, logger *log.Logger) *ProgressModel {
	return &ProgressModel{
		bar:    progress.New(progress.WithDefaultGradient()),
		title:  title,
		cancel: cancel,
		logger: logger.WithPrefix("tui"),
	}
}

// Init initializes the model
func (m *ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(msg.Width-20, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.logger.Debug("Interrupted")
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case progressMsg:
		m.last = verify.Progress(msg)
		return m, m.bar.SetPercent(m.last.Fraction())

	case doneMsg:
		m.report, m.err = msg.report, msg.err
		m.quitting = true
		return m, tea.Quit

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// View renders the model
func (m *ProgressModel) View() string {
	if m.quitting && m.report != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" "+m.title+" ") + "\n\n")
	b.WriteString(m.bar.View() + "\n\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d / %d hands  %s", m.last.Done, m.last.Total, m.last.Elapsed.Round(time.Second))))
	if m.quitting {
		b.WriteString("\n" + WarningStyle.Render("stopping..."))
	} else {
		b.WriteString("\n" + InfoStyle.Render("esc to stop"))
	}
	return b.String() + "\n"
}

// RunVerification drives runner under a progress bar and returns its
// report once the run ends.
func RunVerification(ctx context.Context, runner *verify.Runner, title string, logger *log.Logger, opts ...tea.ProgramOption) (*verify.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewProgressModel(title, cancel, logger)
	program := tea.NewProgram(model, opts...)
	runner.OnProgress(func(p verify.Progress) {
		program.Send(progressMsg(p))
	})

	go func() {
		report, err := runner.Run(ctx)
		program.Send(doneMsg{report: report, err: err})
	}()

	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("progress display: %w", err)
	}
	return model.report, model.err
}
