package timer

import (
	"fmt"
	"time"

	"github.com/drake-full-stack/focustools/internal/domain"
)

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateAbandoned State = "abandoned"
)

// Machine measures a single work interval against a target duration.
// It is entirely in-memory: restarting the process loses partial progress,
// and an interval that never reaches its target never becomes a session.
//
// One machine serves one client context. The machine itself is not
// goroutine-safe; drive it from a single loop (the TUI does).
type Machine struct {
	now func() time.Time

	state       State
	taskID      string
	target      time.Duration
	startedAt   time.Time
	accumulated time.Duration
	resumedAt   time.Time
}

// NewMachine creates an idle machine. now is the clock used for all
// measurements; pass time.Now outside tests.
func NewMachine(now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{now: now, state: StateIdle}
}

func (m *Machine) State() State          { return m.state }
func (m *Machine) TaskID() string        { return m.taskID }
func (m *Machine) Target() time.Duration { return m.target }
func (m *Machine) StartedAt() time.Time  { return m.startedAt }

// Start binds the machine to a task and begins measuring. The start instant
// is captured here and travels unchanged into the completion event.
//
// Starting while a measurement is in flight abandons the prior binding first
// (it produces no session). Starting over an unconsumed completion is an
// error: the caller must acknowledge the event before reusing the machine.
func (m *Machine) Start(taskID string, target time.Duration) error {
	if taskID == "" {
		return fmt.Errorf("starting timer: task id is empty")
	}
	if target <= 0 {
		return fmt.Errorf("starting timer: target duration must be positive")
	}
	switch m.state {
	case StateCompleted:
		return fmt.Errorf("starting timer: completion for task %s not acknowledged", m.taskID)
	case StateRunning, StatePaused:
		m.abandon()
		m.clear()
	case StateAbandoned:
		m.clear()
	}

	now := m.now()
	m.state = StateRunning
	m.taskID = taskID
	m.target = target
	m.startedAt = now
	m.accumulated = 0
	m.resumedAt = now
	return nil
}

// Pause freezes the elapsed time. Only valid while running.
func (m *Machine) Pause() error {
	if m.state != StateRunning {
		return fmt.Errorf("pausing timer: not running (state %s)", m.state)
	}
	m.accumulated += m.now().Sub(m.resumedAt)
	m.state = StatePaused
	return nil
}

// Resume continues a paused measurement.
func (m *Machine) Resume() error {
	if m.state != StatePaused {
		return fmt.Errorf("resuming timer: not paused (state %s)", m.state)
	}
	m.resumedAt = m.now()
	m.state = StateRunning
	return nil
}

// Stop abandons the measurement. No session is recorded and no record of the
// partial interval is kept.
func (m *Machine) Stop() error {
	if m.state != StateRunning && m.state != StatePaused {
		return fmt.Errorf("stopping timer: nothing in progress (state %s)", m.state)
	}
	m.abandon()
	return nil
}

// Tick advances the machine against the clock. When the accumulated running
// time reaches the target it transitions to Completed and returns the single
// completion event for this interval; otherwise it returns nil.
//
// The event duration is the configured target, which by definition equals the
// accumulated running time at the moment of completion.
func (m *Machine) Tick() *domain.CompletionEvent {
	if m.state != StateRunning {
		return nil
	}
	if m.Elapsed() < m.target {
		return nil
	}
	m.accumulated += m.now().Sub(m.resumedAt)
	m.state = StateCompleted
	return &domain.CompletionEvent{
		TaskID:      m.taskID,
		StartedAt:   m.startedAt,
		DurationSec: int(m.target / time.Second),
	}
}

// Acknowledge consumes a terminal state and returns the machine to Idle,
// clearing the task binding.
func (m *Machine) Acknowledge() error {
	if m.state != StateCompleted && m.state != StateAbandoned {
		return fmt.Errorf("acknowledging timer: state %s is not terminal", m.state)
	}
	m.clear()
	return nil
}

// Elapsed reports the accumulated running time. While paused the value is
// frozen; in a terminal state it reflects the interval as it ended.
func (m *Machine) Elapsed() time.Duration {
	if m.state == StateRunning {
		return m.accumulated + m.now().Sub(m.resumedAt)
	}
	return m.accumulated
}

// Remaining reports the time left until the target, never below zero.
func (m *Machine) Remaining() time.Duration {
	if r := m.target - m.Elapsed(); r > 0 {
		return r
	}
	return 0
}

func (m *Machine) abandon() {
	if m.state == StateRunning {
		m.accumulated += m.now().Sub(m.resumedAt)
	}
	m.state = StateAbandoned
}

func (m *Machine) clear() {
	m.state = StateIdle
	m.taskID = ""
	m.target = 0
	m.startedAt = time.Time{}
	m.accumulated = 0
	m.resumedAt = time.Time{}
}
