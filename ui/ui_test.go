package ui

import (
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
	"errors"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	mu       sync.Mutex
	commands []control.Command
	reply    error
	snapshot timer.Snapshot
}

func (f *fakeApp) EnqueueCommand(cmd control.Command) {
	f.mu.Lock()
	f.commands = append(f.commands, cmd)
	f.mu.Unlock()
	if cmd.Reply != nil {
		cmd.Reply <- f.reply
	}
}

func (f *fakeApp) Snapshot() timer.Snapshot { return f.snapshot }

func (f *fakeApp) last(t *testing.T) control.Command {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.commands)
	return f.commands[len(f.commands)-1]
}

func newTestWindow(t *testing.T, a App) *MainWindow {
	t.Helper()
	i18n.SetLang("en")
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)
	return CreateMainWindow(a, fyneApp, fyne.NewSize(timer.WindowWidth, timer.WindowHeight))
}

func TestInitialState(t *testing.T) {
	w := newTestWindow(t, &fakeApp{})

	assert.Equal(t, "00:00:00", w.ClockText())
	assert.Equal(t, "", w.StatusText())
	assert.Equal(t, "0", w.hoursEntry.Text)
	assert.Equal(t, "0", w.minutesEntry.Text)
	assert.Equal(t, "0", w.secondsEntry.Text)
}

func TestStartSendsEntryTexts(t *testing.T) {
	a := &fakeApp{}
	w := newTestWindow(t, a)

	w.hoursEntry.SetText("1")
	w.minutesEntry.SetText("2")
	w.secondsEntry.SetText("3")
	test.Tap(w.startButton)

	cmd := a.last(t)
	assert.Equal(t, control.CmdStart, cmd.Type)
	assert.Equal(t, "1", cmd.Hours)
	assert.Equal(t, "2", cmd.Minutes)
	assert.Equal(t, "3", cmd.Seconds)
	assert.Nil(t, w.Canvas().Overlays().Top())
}

func TestStartErrorShowsDialog(t *testing.T) {
	for _, err := range []error{timer.ErrInvalidInput, timer.ErrEmptyDuration, errors.New("boom")} {
		a := &fakeApp{reply: err}
		w := newTestWindow(t, a)

		test.Tap(w.startButton)
		assert.NotNil(t, w.Canvas().Overlays().Top(), "no dialog for %v", err)
	}
}

func TestPauseAndResetCommands(t *testing.T) {
	a := &fakeApp{}
	w := newTestWindow(t, a)

	test.Tap(w.pauseButton)
	assert.Equal(t, control.CmdPause, a.last(t).Type)
	test.Tap(w.resetButton)
	assert.Equal(t, control.CmdReset, a.last(t).Type)
}

func TestApplyEvents(t *testing.T) {
	w := newTestWindow(t, &fakeApp{})

	w.apply(timer.Event{Type: timer.EventStarted, Remaining: 5415})
	assert.Equal(t, "01:30:15", w.ClockText())
	assert.Equal(t, "Timer started.", w.StatusText())

	w.apply(timer.Event{Type: timer.EventTick, Remaining: 5414})
	assert.Equal(t, "01:30:14", w.ClockText())

	w.apply(timer.Event{Type: timer.EventPaused, Remaining: 5414})
	assert.Equal(t, "Paused.", w.StatusText())
	assert.Equal(t, "Resume", w.pauseButton.Text)

	w.apply(timer.Event{Type: timer.EventResumed, Remaining: 5414})
	assert.Equal(t, "Resumed.", w.StatusText())
	assert.Equal(t, "Pause", w.pauseButton.Text)

	w.apply(timer.Event{Type: timer.EventReset})
	assert.Equal(t, "00:00:00", w.ClockText())
	assert.Equal(t, "Reset.", w.StatusText())
}

func TestApplyExpiry(t *testing.T) {
	w := newTestWindow(t, &fakeApp{})

	w.apply(timer.Event{Type: timer.EventTick, Remaining: 1})
	w.apply(timer.Event{Type: timer.EventExpired})
	assert.Equal(t, "00:00:00", w.ClockText())
	assert.Equal(t, "Time's up!", w.StatusText())
	assert.NotNil(t, w.Canvas().Overlays().Top())
}

func TestApplyAlarmFailure(t *testing.T) {
	w := newTestWindow(t, &fakeApp{})

	w.apply(timer.Event{Type: timer.EventAlarmFailed, Err: errors.New("missing clip")})
	assert.NotNil(t, w.Canvas().Overlays().Top())
}

func TestHandleKeyRune(t *testing.T) {
	a := &fakeApp{}
	w := newTestWindow(t, a)

	w.HandleKeyRune(' ')
	assert.Equal(t, control.CmdStart, a.last(t).Type)

	a.snapshot = timer.Snapshot{Running: true}
	w.HandleKeyRune(' ')
	assert.Equal(t, control.CmdPause, a.last(t).Type)

	w.HandleKeyRune('r')
	assert.Equal(t, control.CmdReset, a.last(t).Type)
}

func TestCustomTheme(t *testing.T) {
	th := NewCustomTheme(nil)
	assert.Equal(t, timer.BackgroundColor, th.Color("background", 0))
	assert.NotNil(t, th.Font(fyne.TextStyle{}))

	font := fyne.NewStaticResource("font.ttf", []byte("ttf"))
	assert.Equal(t, font, NewCustomTheme(font).Font(fyne.TextStyle{Bold: true}))
	assert.Nil(t, LoadFont(""))
	assert.Nil(t, LoadFont("/nonexistent/font.ttf"))
}

func TestStartErrorTitles(t *testing.T) {
	i18n.SetLang("en")
	defer i18n.SetLang("en")

	title, message := startErrorText(&timer.InputError{Field: "hours", Value: "a", Err: errors.New("bad")})
	assert.Equal(t, "Invalid input", title)
	assert.Equal(t, "Enter valid numbers for hours, minutes and seconds.", message)

	title, _ = startErrorText(timer.ErrEmptyDuration)
	assert.Equal(t, "Empty", title)

	i18n.SetLang("id")
	title, message = startErrorText(timer.ErrInvalidInput)
	assert.Equal(t, "Input tidak valid", title)
	assert.Equal(t, "Masukkan angka yang valid untuk jam, menit, dan detik.", message)
}
