// Package main contains the application wiring and the AppManager which
// coordinates the countdown controller, the alarm and the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: UI callbacks never touch the controller directly.
//     They enqueue commands which the single `commandLoop` goroutine applies
//     in order. Controller state is also mutated by its own tick loop, which
//     is why timer.Controller guards its fields with a mutex.
//   - `cmdCh` is a buffered channel. EnqueueCommand drops a command when the
//     channel stays full for a short while to avoid blocking the UI.
//   - `pumpEvents` is the only reader of the controller subscription and
//     forwards every event to the window, which marshals onto the fyne
//     goroutine with fyne.Do.
package main

import (
	"Countdown/control"
	"Countdown/timer"
	"context"
	"log"
	"time"
)

// EventSink receives controller events, normally the main window.
type EventSink interface {
	HandleEvent(timer.Event)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	controller *timer.Controller
	cmdCh      chan control.Command
	cmdCtx     context.Context
	cmdCancel  context.CancelFunc
	events     <-chan timer.Event
}

// NewAppManager creates a new application manager and starts its command loop.
func NewAppManager(controller *timer.Controller) *AppManager {
	a := &AppManager{controller: controller}
	a.events = controller.Subscribe(64)
	a.cmdCh = make(chan control.Command, 16)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()
	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

// Snapshot returns the controller state.
func (a *AppManager) Snapshot() timer.Snapshot {
	return a.controller.Snapshot()
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			var err error
			switch cmd.Type {
			case control.CmdStart:
				err = a.controller.Start(cmd.Hours, cmd.Minutes, cmd.Seconds)
				if err != nil {
					log.Printf("start rejected: %v", err)
				}
			case control.CmdPause:
				a.controller.Pause()
			case control.CmdReset:
				a.controller.Reset()
			}
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- err:
				default:
				}
			}
		}
	}
}

// pumpEvents forwards controller events to sink until the subscription is
// closed by Shutdown.
func (a *AppManager) pumpEvents(sink EventSink) {
	for e := range a.events {
		sink.HandleEvent(e)
	}
}

// Shutdown stops the command loop and the controller. Pending events are
// dropped and pumpEvents returns.
func (a *AppManager) Shutdown() {
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
	a.controller.Close()
}
