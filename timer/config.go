package timer

import (
	"image/color"
	"time"
)

// DefaultTickInterval is the length of one tick.
const DefaultTickInterval = time.Second

// UI constants
const (
	FontSizeClock   float32 = 36.0
	FontSizeLabel   float32 = 12.0
	WindowWidth             = 400
	WindowHeight            = 360
	EntryWidth              = 60
	DefaultFontFile         = "Orbitron-Regular.ttf"
)

var (
	// BackgroundColor is the window background.
	BackgroundColor = color.NRGBA{R: 0x0f, G: 0x0f, B: 0x1e, A: 0xff}
	// ClockColor is used for the HH:MM:SS label and the field captions.
	ClockColor = color.NRGBA{R: 0x00, G: 0xff, B: 0xe1, A: 0xff}
	// InputColor is the entry background.
	InputColor = color.NRGBA{R: 0x1f, G: 0x1f, B: 0x2e, A: 0xff}
	// ButtonColor is the button background.
	ButtonColor = color.NRGBA{R: 0x1c, G: 0x1c, B: 0x2b, A: 0xff}
	// StatusColor is used for the status line.
	StatusColor = color.NRGBA{R: 0x88, G: 0x88, B: 0xaa, A: 0xff}
)

// Config holds runtime options for a Controller.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
}

func (c Config) withDefaults() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.Clock == nil {
		c.Clock = RealClock{}
	}
	return c
}
