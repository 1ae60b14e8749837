package ui

import (
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// replyTimeout bounds how long a button callback waits for the command loop.
const replyTimeout = 200 * time.Millisecond

// App is what the window needs from the application: a way to post
// commands and a view of the timer state.
type App interface {
	EnqueueCommand(cmd control.Command)
	Snapshot() timer.Snapshot
}

// MainWindow is the single countdown window.
type MainWindow struct {
	fyne.Window

	app          App
	clockText    *canvas.Text
	statusText   *canvas.Text
	hoursEntry   *widget.Entry
	minutesEntry *widget.Entry
	secondsEntry *widget.Entry
	startButton  *widget.Button
	pauseButton  *widget.Button
	resetButton  *widget.Button
}

// CreateMainWindow builds the countdown window of the given size.
func CreateMainWindow(a App, fyneApp fyne.App, size fyne.Size) *MainWindow {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = i18n.T("Countdown Timer")
	}
	w := &MainWindow{Window: fyneApp.NewWindow(title), app: a}

	w.clockText = canvas.NewText(timer.FormatClock(0), timer.ClockColor)
	w.clockText.TextStyle.Bold = true
	w.clockText.TextSize = timer.FontSizeClock
	w.clockText.Alignment = fyne.TextAlignCenter

	w.statusText = canvas.NewText("", timer.StatusColor)
	w.statusText.TextSize = timer.FontSizeLabel
	w.statusText.Alignment = fyne.TextAlignCenter

	w.hoursEntry = newTimeEntry()
	w.minutesEntry = newTimeEntry()
	w.secondsEntry = newTimeEntry()

	inputs := container.NewHBox(
		layout.NewSpacer(),
		timeField(i18n.T("Hours"), w.hoursEntry),
		timeField(i18n.T("Minutes"), w.minutesEntry),
		timeField(i18n.T("Seconds"), w.secondsEntry),
		layout.NewSpacer(),
	)

	w.startButton = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), w.onStart)
	w.pauseButton = widget.NewButtonWithIcon(i18n.T("Pause"), theme.MediaPauseIcon(), w.onPause)
	w.resetButton = widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaStopIcon(), w.onReset)

	buttons := container.NewHBox(
		layout.NewSpacer(),
		w.startButton,
		w.pauseButton,
		w.resetButton,
		layout.NewSpacer(),
	)

	content := container.NewVBox(
		layout.NewSpacer(),
		container.New(layout.NewCenterLayout(), w.clockText),
		inputs,
		buttons,
		container.New(layout.NewCenterLayout(), w.statusText),
		layout.NewSpacer(),
	)

	w.Canvas().SetOnTypedRune(w.HandleKeyRune)
	w.SetContent(content)
	w.Resize(size)
	w.SetFixedSize(true)
	return w
}

func newTimeEntry() *widget.Entry {
	e := widget.NewEntry()
	e.SetText("0")
	return e
}

func timeField(caption string, entry *widget.Entry) fyne.CanvasObject {
	label := canvas.NewText(caption, timer.ClockColor)
	label.TextSize = timer.FontSizeLabel
	label.Alignment = fyne.TextAlignCenter

	sizeEnforcer := canvas.NewRectangle(timer.BackgroundColor)
	sizeEnforcer.SetMinSize(fyne.NewSize(timer.EntryWidth, 0))
	return container.NewVBox(
		container.New(layout.NewCenterLayout(), label),
		container.NewStack(sizeEnforcer, entry),
	)
}

func (w *MainWindow) send(cmd control.Command) error {
	cmd.Reply = make(chan error, 1)
	w.app.EnqueueCommand(cmd)
	select {
	case err := <-cmd.Reply:
		return err
	case <-time.After(replyTimeout):
		return nil
	}
}

func (w *MainWindow) onStart() {
	err := w.send(control.NewStart(w.hoursEntry.Text, w.minutesEntry.Text, w.secondsEntry.Text, nil))
	if err != nil {
		w.ShowStartError(err)
	}
}

func (w *MainWindow) onPause() {
	_ = w.send(control.Command{Type: control.CmdPause})
}

func (w *MainWindow) onReset() {
	_ = w.send(control.Command{Type: control.CmdReset})
}

// ShowStartError explains why a countdown was not started.
func (w *MainWindow) ShowStartError(err error) {
	title, message := startErrorText(err)
	dialog.NewInformation(title, message, w).Show()
}

func startErrorText(err error) (string, string) {
	switch {
	case errors.Is(err, timer.ErrInvalidInput):
		return i18n.T("Invalid input"), i18n.T("Enter valid numbers for hours, minutes and seconds.")
	case errors.Is(err, timer.ErrEmptyDuration):
		return i18n.T("Empty"), i18n.T("Enter a time greater than 0 seconds.")
	}
	return i18n.T("Timer"), err.Error()
}

// HandleEvent renders a controller event. Safe to call from any goroutine.
func (w *MainWindow) HandleEvent(e timer.Event) {
	fyne.Do(func() {
		w.apply(e)
	})
}

func (w *MainWindow) apply(e timer.Event) {
	switch e.Type {
	case timer.EventStarted:
		w.setClock(e.Remaining)
		w.setStatus(i18n.T("Timer started."))
		w.pauseButton.SetText(i18n.T("Pause"))
	case timer.EventTick:
		w.setClock(e.Remaining)
	case timer.EventPaused:
		w.setStatus(i18n.T("Paused."))
		w.pauseButton.SetText(i18n.T("Resume"))
	case timer.EventResumed:
		w.setStatus(i18n.T("Resumed."))
		w.pauseButton.SetText(i18n.T("Pause"))
	case timer.EventReset:
		w.setClock(0)
		w.setStatus(i18n.T("Reset."))
		w.pauseButton.SetText(i18n.T("Pause"))
	case timer.EventExpired:
		w.setClock(0)
		w.setStatus(i18n.T("Time's up!"))
		w.pauseButton.SetText(i18n.T("Pause"))
		dialog.ShowInformation(i18n.T("Timer"), i18n.T("Time's up!"), w)
	case timer.EventAlarmFailed:
		dialog.ShowError(fmt.Errorf(i18n.T("Failed to play the alarm sound: %v"), e.Err), w)
	}
}

func (w *MainWindow) setClock(remaining int) {
	w.clockText.Text = timer.FormatClock(remaining)
	w.clockText.Refresh()
}

func (w *MainWindow) setStatus(status string) {
	w.statusText.Text = status
	w.statusText.Refresh()
}

// HandleKeyRune maps space to start or pause and r to reset when no entry
// has focus.
func (w *MainWindow) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		if w.app.Snapshot().Running {
			w.pauseButton.Tapped(&fyne.PointEvent{})
		} else {
			w.startButton.Tapped(&fyne.PointEvent{})
		}
	case 'r', 'R':
		w.resetButton.Tapped(&fyne.PointEvent{})
	}
}

// ClockText returns the rendered HH:MM:SS value.
func (w *MainWindow) ClockText() string {
	return w.clockText.Text
}

// StatusText returns the current status line.
func (w *MainWindow) StatusText() string {
	return w.statusText.Text
}
