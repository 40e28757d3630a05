// Package audio plays looping background music through gopxl/beep.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(48000)

	// DefaultVolume is the playback gain, as a fraction of full volume.
	DefaultVolume = 0.2
)

// ErrClosed is returned when toggling music that has been closed.
var ErrClosed = errors.New("audio: music closed")

// Music is a looping track that starts paused.
type Music struct {
	mu      sync.Mutex
	stream  beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	closed  bool
	speaker bool // Whether this track owns the speaker
}

// Open decodes a WAV, MP3 or Ogg Vorbis file, initializes the speaker and
// queues the track paused.
func Open(path string, volume float64) (*Music, error) {
	stream, format, err := decode(path)
	if err != nil {
		return nil, err
	}
	m := newMusic(stream, format, volume)

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		stream.Close()
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.ctrl)
	m.speaker = true
	return m, nil
}

// newMusic builds the loop -> resample -> volume -> pause chain.
func newMusic(stream beep.StreamSeekCloser, format beep.Format, volume float64) *Music {
	var s beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	return &Music{
		stream: stream,
		ctrl:   &beep.Ctrl{Streamer: withVolume(s, volume), Paused: true},
	}
}

// withVolume scales a streamer by a linear gain.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// decode picks a decoder by file extension.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("audio: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".ogg", ".oga":
		stream, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: unsupported format %q", ext)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	return stream, format, nil
}

// Toggle plays or pauses the track.
func (m *Music) Toggle() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	speaker.Lock()
	m.ctrl.Paused = !m.ctrl.Paused
	speaker.Unlock()
	return nil
}

// Close stops playback, releases the speaker and closes the file.
func (m *Music) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true

	if m.speaker {
		speaker.Clear()
		speaker.Close()
	}
	if err := m.stream.Close(); err != nil {
		return fmt.Errorf("audio: close: %w", err)
	}
	return nil
}
