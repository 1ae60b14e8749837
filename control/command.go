// Package control defines lightweight command messages used by the UI to
// request actions from the application command loop. The command loop
// serializes them onto the timer controller.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdPause
	CmdReset
)

func (t CommandType) String() string {
	switch t {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdReset:
		return "reset"
	}
	return "unknown"
}

// Command is the message sent from the UI to AppManager.commandLoop. The
// raw entry texts travel with CmdStart so parsing errors come back on Reply.
type Command struct {
	Type    CommandType
	Hours   string
	Minutes string
	Seconds string
	Reply   chan error // optional reply channel
}

// NewStart builds a start command for the given entry texts.
func NewStart(hours, minutes, seconds string, reply chan error) Command {
	return Command{Type: CmdStart, Hours: hours, Minutes: minutes, Seconds: seconds, Reply: reply}
}
