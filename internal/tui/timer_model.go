package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake-full-stack/focustools/internal/domain"
	"github.com/drake-full-stack/focustools/internal/service"
	"github.com/drake-full-stack/focustools/internal/timer"
)

// TimerModel drives one pomodoro interval: it owns the state machine, renders
// the countdown, and hands the completion event to the recorder when the
// target is reached. Stopping early abandons the interval; nothing is saved.
type TimerModel struct {
	width  int
	height int

	machine  *timer.Machine
	task     *domain.Task
	recorder service.Recorder
	bar      progress.Model

	// Outcome, populated before quitting.
	Recorded *domain.Session
	Err      error

	quitting bool
}

// timerTickMsg is sent four times a second to advance the state machine.
type timerTickMsg struct{}

// recordedMsg carries the recorder's result back into the update loop.
type recordedMsg struct {
	session *domain.Session
	err     error
}

// NewTimerModel starts the state machine on the given task and returns the
// model ready to run.
func NewTimerModel(task *domain.Task, target time.Duration, recorder service.Recorder) (TimerModel, error) {
	return newTimerModel(task, target, recorder, time.Now)
}

// newTimerModel takes the clock so tests can drive the countdown.
func newTimerModel(task *domain.Task, target time.Duration, recorder service.Recorder, now func() time.Time) (TimerModel, error) {
	machine := timer.NewMachine(now)
	if err := machine.Start(task.ID, target); err != nil {
		return TimerModel{}, err
	}
	bar := progress.New(progress.WithSolidFill(ColorAccent), progress.WithoutPercentage())
	return TimerModel{machine: machine, task: task, recorder: recorder, bar: bar}, nil
}

func (m TimerModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if m.quitting {
			return m, nil
		}
		if ev := m.machine.Tick(); ev != nil {
			return m, m.recordCmd(*ev)
		}
		return m, tick()

	case recordedMsg:
		m.Recorded = msg.session
		m.Err = msg.err
		m.quitting = true
		_ = m.machine.Acknowledge()
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-8, 50)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "p", " ":
			switch m.machine.State() {
			case timer.StateRunning:
				_ = m.machine.Pause()
			case timer.StatePaused:
				_ = m.machine.Resume()
			}
			return m, nil
		case "s", "q", "esc", "ctrl+c":
			// Abandon: partial intervals are not sessions.
			if m.machine.State() == timer.StateRunning || m.machine.State() == timer.StatePaused {
				_ = m.machine.Stop()
				_ = m.machine.Acknowledge()
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// recordCmd persists the completion event off the render loop. Conflicts with
// other writers are retried; the event key keeps retries single-counted.
func (m TimerModel) recordCmd(ev domain.CompletionEvent) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var session *domain.Session
		err := service.RetryOnConflict(ctx, 5, func() error {
			var recordErr error
			session, recordErr = m.recorder.RecordCompletion(ctx, ev)
			return recordErr
		})
		return recordedMsg{session: session, err: err}
	}
}

func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	width := min(m.width, 60)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(m.stateLabel())

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(m.task.Title)

	remaining := m.machine.Remaining().Round(time.Second)
	clock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("%02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60))

	done := float64(m.machine.Elapsed()) / float64(m.machine.Target())
	bar := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(m.bar.ViewAs(done))

	count := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("%d pomodoros completed", m.task.PomodoroCount))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Align(lipgloss.Center).
		Width(width).
		Render("p pause/resume · s stop · q quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		header, "", title, "", clock, bar, "", count, "", help)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m TimerModel) stateLabel() string {
	switch m.machine.State() {
	case timer.StatePaused:
		return "⏸  PAUSED"
	case timer.StateCompleted:
		return "✓  COMPLETE"
	default:
		return "⏱  FOCUS"
	}
}
