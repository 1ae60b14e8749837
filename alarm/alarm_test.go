package alarm

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayMissingFile(t *testing.T) {
	p := NewPlayer(filepath.Join(t.TempDir(), DefaultPath))

	err := p.Play()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlayback)
	assert.Contains(t, err.Error(), "open")
}

func TestPlayUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alarm.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a riff header"), 0o644))

	err := NewPlayer(path).Play()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlayback)
	assert.Contains(t, err.Error(), "decode")
}

func TestPlayUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alarm.txt")
	require.NoError(t, os.WriteFile(path, []byte("beep"), 0o644))

	err := NewPlayer(path).Play()
	assert.ErrorIs(t, err, ErrPlayback)
	assert.Contains(t, err.Error(), "unsupported audio format")
}

func TestShutdownWithoutInit(t *testing.T) {
	assert.NotPanics(t, Shutdown)
	assert.False(t, speakerReady())
}

func TestShutdownConcurrentWithPlay(t *testing.T) {
	missing := NewPlayer(filepath.Join(t.TempDir(), DefaultPath))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.ErrorIs(t, missing.Play(), ErrPlayback)
			setSpeakerUp(false)
		}()
		go func() {
			defer wg.Done()
			Shutdown()
			_ = speakerReady()
		}()
	}
	wg.Wait()
	assert.False(t, speakerReady())
}
