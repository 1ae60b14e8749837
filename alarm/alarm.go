// Package alarm plays the expiry clip through the process-wide speaker.
package alarm

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// DefaultPath is the alarm clip, relative to the working directory.
const DefaultPath = "alarm.mp3"

// SampleRate is the rate the speaker is initialised with.
const SampleRate beep.SampleRate = 44100

// ErrPlayback wraps every failure to load or play the clip.
var ErrPlayback = errors.New("alarm playback failed")

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerUp   bool
	speakerLock sync.Mutex
)

// Player loads and plays one audio clip.
type Player struct {
	path string
}

// NewPlayer returns a player for the clip at path.
func NewPlayer(path string) *Player {
	return &Player{path: path}
}

// Play decodes the clip and starts it. It returns once playback has been
// queued; the file is closed when the stream ends.
func (p *Player) Play() error {
	f, err := os.Open(p.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrPlayback, p.path, err)
	}

	streamer, format, err := decode(p.path, f)
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: decode %s: %v", ErrPlayback, p.path, err)
	}

	if err := initSpeaker(); err != nil {
		streamer.Close()
		return fmt.Errorf("%w: %v", ErrPlayback, err)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, streamer)
	}

	speakerLock.Lock()
	defer speakerLock.Unlock()
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		if err := streamer.Close(); err != nil {
			log.Printf("alarm: close %s: %v", p.path, err)
		}
	})))
	return nil
}

func decode(path string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.Decode(rc)
	case ".ogg":
		return vorbis.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
}

func initSpeaker() error {
	speakerOnce.Do(func() {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			speakerErr = fmt.Errorf("initialize speaker: %w", err)
			log.Printf("alarm: audio disabled: %v", speakerErr)
			return
		}
		setSpeakerUp(true)
		log.Printf("alarm: speaker initialized at %d Hz", SampleRate)
	})
	return speakerErr
}

func setSpeakerUp(up bool) {
	speakerLock.Lock()
	speakerUp = up
	speakerLock.Unlock()
}

func speakerReady() bool {
	speakerLock.Lock()
	defer speakerLock.Unlock()
	return speakerUp
}

// Shutdown releases the speaker if Play ever initialised it.
func Shutdown() {
	speakerLock.Lock()
	defer speakerLock.Unlock()
	if speakerUp {
		speaker.Close()
		speakerUp = false
	}
}
