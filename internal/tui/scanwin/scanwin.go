// Package scanwin drives an EEG sampling window interactively: a progress
// bar ticks once per captured sample while the collector polls the device.
package scanwin

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moodbuddy/moodbuddy/internal/eeg"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type sampleMsg struct {
	step   int
	failed bool
}

type doneMsg struct {
	snapshots [][]models.BandSample
	err       error
}

type model struct {
	progress  progress.Model
	window    int
	step      int
	failures  int
	msgs      <-chan tea.Msg
	snapshots [][]models.BandSample
	err       error
	done      bool
}

func waitForMsg(msgs <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-msgs
	}
}

func (m model) Init() tea.Cmd {
	return waitForMsg(m.msgs)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sampleMsg:
		m.step = msg.step
		if msg.failed {
			m.failures++
		}
		cmd := m.progress.SetPercent(float64(m.step) / float64(m.window))
		return m, tea.Batch(cmd, waitForMsg(m.msgs))

	case doneMsg:
		m.snapshots = msg.snapshots
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		// The window runs to completion; keys are ignored so the device
		// session always gets its stop signal through the collector.
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("Collecting EEG band power...\n\n")
	b.WriteString(m.progress.View())
	b.WriteString(fmt.Sprintf("\n\n%s", statusStyle.Render(
		fmt.Sprintf("sample %d/%d", m.step, m.window))))
	if m.failures > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf(" (%d failed)", m.failures)))
	}
	b.WriteString("\n")
	return b.String()
}

// Run executes one collection window with a live progress display and
// returns the captured snapshots.
func Run(ctx context.Context, collector *eeg.Collector, window int) ([][]models.BandSample, error) {
	msgs := make(chan tea.Msg, window+1)

	collector.OnSample = func(step int, snapshot []models.BandSample) {
		msgs <- sampleMsg{step: step, failed: snapshot == nil}
	}

	go func() {
		snapshots, err := collector.Collect(ctx)
		msgs <- doneMsg{snapshots: snapshots, err: err}
	}()

	m := model{
		progress: progress.New(progress.WithDefaultGradient()),
		window:   window,
		msgs:     msgs,
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("sampling display failed: %w", err)
	}

	result := final.(model)
	if result.err != nil {
		return result.snapshots, result.err
	}
	return result.snapshots, nil
}
