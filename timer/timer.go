// Package timer contains the countdown domain logic: the Controller that owns
// the remaining time and the phase machine, and the tick loop that drives
// them.
//
// Maintenance notes:
//   - The phase FSM is the single source of truth for running and paused.
//     Every operation asks it first (Can) and only mutates remaining time
//     once the transition went through.
//   - mu guards remaining, the loop cancel func and the FSM transitions.
//     subMu guards the subscriber list. Lock order is mu then subMu.
//   - A loop goroutine only exists in the running phase. Pause cancels it and
//     resume starts a new one with a fresh ticker, so the first decrement
//     after resume comes one full interval later.
//   - Ordinary events are dropped when a subscriber is full. Expiry and alarm
//     failures wait up to terminalSendTimeout for room.
package timer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/looplab/fsm"
)

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("timer closed")

// Phases reported by Snapshot.Phase.
const (
	PhaseIdle    = "idle"
	PhaseRunning = "running"
	PhasePaused  = "paused"
	PhaseExpired = "expired"
)

const (
	eventStart  = "start"
	eventPause  = "pause"
	eventResume = "resume"
	eventExpire = "expire"
	eventReset  = "reset"
)

const terminalSendTimeout = time.Second

// Alarm is played once when a countdown expires.
type Alarm interface {
	Play() error
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Remaining int
	Running   bool
	Paused    bool
	Phase     string
}

// Controller holds the countdown state and runs the tick loop.
type Controller struct {
	mu        sync.Mutex
	options   Config
	alarm     Alarm
	phase     *fsm.FSM
	remaining int
	cancel    context.CancelFunc
	closed    bool

	subMu     sync.RWMutex
	events    []chan Event
	subClosed bool
}

// NewController creates an idle controller. alarm may be nil.
func NewController(alarm Alarm, options Config) *Controller {
	c := &Controller{
		options: options.withDefaults(),
		alarm:   alarm,
	}
	c.phase = fsm.NewFSM(
		PhaseIdle,
		fsm.Events{
			{Name: eventStart, Src: []string{PhaseIdle, PhaseExpired}, Dst: PhaseRunning},
			{Name: eventPause, Src: []string{PhaseRunning}, Dst: PhasePaused},
			{Name: eventResume, Src: []string{PhasePaused}, Dst: PhaseRunning},
			{Name: eventExpire, Src: []string{PhaseRunning}, Dst: PhaseExpired},
			{Name: eventReset, Src: []string{PhaseRunning, PhasePaused, PhaseExpired}, Dst: PhaseIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Printf("timer: %s -> %s", e.Src, e.Dst)
			},
			"enter_" + PhaseRunning: c.onEnterRunning,
			"leave_" + PhaseRunning: c.onLeaveRunning,
		},
	)
	return c
}

// onEnterRunning starts a loop with a fresh ticker. Called with mu held.
func (c *Controller) onEnterRunning(_ context.Context, _ *fsm.Event) {
	c.stopLoopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.run(ctx, c.options.Clock.NewTicker(c.options.TickInterval))
}

// onLeaveRunning stops the loop. Called with mu held.
func (c *Controller) onLeaveRunning(_ context.Context, _ *fsm.Event) {
	c.stopLoopLocked()
}

// Subscribe registers a new observer channel.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	c.subMu.Lock()
	defer c.subMu.Unlock()
	if c.subClosed {
		close(ch)
		return ch
	}
	c.events = append(c.events, ch)
	return ch
}

// Start parses the three duration fields and begins the countdown. It is a
// no-op while a countdown is running or paused.
func (c *Controller) Start(hours, minutes, seconds string) error {
	if !c.canStart() {
		return nil
	}
	total, err := ParseDuration(hours, minutes, seconds)
	if err != nil {
		return err
	}
	return c.StartDuration(total)
}

func (c *Controller) canStart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed || c.phase.Can(eventStart)
}

// StartDuration begins a countdown of total seconds.
func (c *Controller) StartDuration(total int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if !c.phase.Can(eventStart) {
		return nil
	}
	if total <= 0 {
		return fmt.Errorf("%w: total is %d seconds", ErrEmptyDuration, total)
	}

	prev := c.remaining
	c.remaining = total
	if err := c.transitionLocked(eventStart); err != nil {
		c.remaining = prev
		return err
	}
	c.emitLocked(Event{Type: EventStarted, Remaining: c.remaining})
	return nil
}

// Pause toggles between running and paused. It reports false and does
// nothing in any other phase, which includes the moment right after expiry.
func (c *Controller) Pause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.phase.Can(eventPause):
		if c.transitionLocked(eventPause) != nil {
			return false
		}
		c.emitLocked(Event{Type: EventPaused, Remaining: c.remaining})
	case c.phase.Can(eventResume):
		if c.transitionLocked(eventResume) != nil {
			return false
		}
		c.emitLocked(Event{Type: EventResumed, Remaining: c.remaining})
	default:
		return false
	}
	return true
}

// Reset stops the loop and zeroes the state from any phase.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase.Can(eventReset) {
		if err := c.transitionLocked(eventReset); err != nil {
			log.Printf("timer: reset: %v", err)
		}
	}
	c.stopLoopLocked()
	c.remaining = 0
	c.emitLocked(Event{Type: EventReset})
}

// Tick performs one countdown step. It reports whether the countdown is
// still running or paused afterwards.
func (c *Controller) Tick() bool {
	return c.tick(context.Background())
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.phase.Current()
	return Snapshot{
		Remaining: c.remaining,
		Running:   phase == PhaseRunning || phase == PhasePaused,
		Paused:    phase == PhasePaused,
		Phase:     phase,
	}
}

// Close stops the loop and closes every subscriber channel.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopLoopLocked()

	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subClosed = true
	for _, ch := range c.events {
		close(ch)
	}
	c.events = nil
}

func (c *Controller) run(ctx context.Context, ticker Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if !c.tick(ctx) {
				return
			}
		}
	}
}

func (c *Controller) tick(ctx context.Context) bool {
	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		return false
	}
	switch c.phase.Current() {
	case PhasePaused:
		c.mu.Unlock()
		return true
	case PhaseRunning:
	default:
		c.mu.Unlock()
		return false
	}

	if c.remaining > 0 {
		c.remaining--
	}
	c.emitLocked(Event{Type: EventTick, Remaining: c.remaining})
	if c.remaining > 0 {
		c.mu.Unlock()
		return true
	}

	if err := c.transitionLocked(eventExpire); err != nil {
		log.Printf("timer: expire: %v", err)
		c.mu.Unlock()
		return false
	}
	alarm := c.alarm
	c.mu.Unlock()

	c.emitTerminal(Event{Type: EventExpired})
	if alarm != nil {
		go c.playAlarm(alarm)
	}
	return false
}

func (c *Controller) playAlarm(alarm Alarm) {
	if err := alarm.Play(); err != nil {
		log.Printf("timer: alarm playback failed: %v", err)
		c.emitTerminal(Event{Type: EventAlarmFailed, Err: err})
	}
}

func (c *Controller) stopLoopLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) transitionLocked(event string) error {
	if err := c.phase.Event(context.Background(), event); err != nil {
		return fmt.Errorf("%s from %s: %w", event, c.phase.Current(), err)
	}
	return nil
}

func (c *Controller) emitLocked(event Event) {
	event.At = c.options.Clock.Now()
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	for _, ch := range c.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// emitTerminal delivers event to every subscriber, waiting for room in full
// channels. Must be called without mu.
func (c *Controller) emitTerminal(event Event) {
	event.At = c.options.Clock.Now()
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	for _, ch := range c.events {
		select {
		case ch <- event:
		case <-time.After(terminalSendTimeout):
			log.Printf("timer: subscriber full, dropped %s event", event.Type)
		}
	}
}
