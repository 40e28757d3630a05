package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

func writeWAV(t *testing.T, rate beep.SampleRate, samples int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bgm.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, generators.Silence(samples), format); err != nil {
		t.Fatalf("wav.Encode: %v", err)
	}
	return path
}

func TestDecodeWAV(t *testing.T) {
	path := writeWAV(t, 44100, 4410)

	stream, format, err := decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	defer stream.Close()

	if format.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", format.SampleRate)
	}
	if stream.Len() != 4410 {
		t.Errorf("length = %d samples, want 4410", stream.Len())
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := decode(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("missing file: expected error")
	}

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("la la"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := decode(txt); err == nil {
		t.Error("unsupported extension: expected error")
	}

	bad := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(bad, []byte("RIFF garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := decode(bad); err == nil {
		t.Error("corrupt wav: expected error")
	}
}

func TestMusicStartsPausedAndToggles(t *testing.T) {
	stream, format, err := decode(writeWAV(t, 48000, 480))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := newMusic(stream, format, DefaultVolume)

	if !paused(m) {
		t.Error("music playing before the first toggle")
	}
	if err := m.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if paused(m) {
		t.Error("music paused after toggle")
	}
	if err := m.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !paused(m) {
		t.Error("music playing after second toggle")
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Toggle(); !errors.Is(err, ErrClosed) {
		t.Errorf("Toggle after Close = %v, want ErrClosed", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestMusicLoops(t *testing.T) {
	stream, format, err := decode(writeWAV(t, 48000, 100))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := newMusic(stream, format, DefaultVolume)
	m.ctrl.Paused = false

	buf := make([][2]float64, 1000)
	n, ok := m.ctrl.Stream(buf)
	if !ok || n != len(buf) {
		t.Errorf("Stream = %d, %v; a looping track should fill the buffer", n, ok)
	}
}

func TestWithVolume(t *testing.T) {
	v, ok := withVolume(generators.Silence(1), DefaultVolume).(*effects.Volume)
	if !ok {
		t.Fatal("not a volume effect")
	}
	if v.Silent || v.Base != 2 || v.Volume >= 0 {
		t.Errorf("volume = %+v, want attenuation in base 2", v)
	}

	mute := withVolume(generators.Silence(1), 0).(*effects.Volume)
	if !mute.Silent {
		t.Error("zero volume not silent")
	}
}

func paused(m *Music) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctrl.Paused
}
