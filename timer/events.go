package timer

import "time"

// EventType identifies what changed in the controller.
type EventType string

const (
	EventStarted     EventType = "started"
	EventTick        EventType = "tick"
	EventPaused      EventType = "paused"
	EventResumed     EventType = "resumed"
	EventReset       EventType = "reset"
	EventExpired     EventType = "expired"
	EventAlarmFailed EventType = "alarm_failed"
)

// Event is published to subscribers after every state change.
type Event struct {
	Type      EventType
	Remaining int
	Err       error
	At        time.Time
}
