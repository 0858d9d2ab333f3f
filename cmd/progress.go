package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const progressColor = "#1da1f2"

// step is one phase of a command shown on the progress line.
type step struct {
	label string
	run   func(context.Context) error
}

type stepDoneMsg struct {
	index int
	err   error
}

// progressModel runs steps one after another and stops at the first error.
type progressModel struct {
	ctx     context.Context
	spinner spinner.Model
	steps   []step
	current int
	err     error
	done    bool
}

func newProgressModel(ctx context.Context, steps []step) progressModel {
	return progressModel{
		ctx: ctx,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(progressColor))),
		),
		steps: steps,
	}
}

func (m progressModel) Init() tea.Cmd {
	if len(m.steps) == 0 {
		return tea.Quit
	}

	return tea.Batch(m.spinner.Tick, m.runStep(0))
}

func (m progressModel) runStep(index int) tea.Cmd {
	run := m.steps[index].run
	ctx := m.ctx

	return func() tea.Msg {
		return stepDoneMsg{index: index, err: run(ctx)}
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stepDoneMsg:
		if msg.index != m.current {
			return m, nil
		}
		if msg.err != nil || m.current == len(m.steps)-1 {
			m.err = msg.err
			m.done = true
			return m, tea.Quit
		}
		m.current++
		return m, m.runStep(m.current)
	default:
		return m, nil
	}
}

func (m progressModel) View() string {
	if m.done || len(m.steps) == 0 {
		return ""
	}

	return fmt.Sprintf("%s %s (%d/%d)", m.spinner.View(), m.steps[m.current].label, m.current+1, len(m.steps))
}

// runSteps shows the progress line on output while steps run.
func runSteps(ctx context.Context, output io.Writer, steps []step) error {
	p := tea.NewProgram(
		newProgressModel(ctx, steps),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}

// runStepsPlain runs steps without a progress line.
func runStepsPlain(ctx context.Context, steps []step) error {
	for _, s := range steps {
		if err := s.run(ctx); err != nil {
			return err
		}
	}

	return nil
}
