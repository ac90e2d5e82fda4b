package audio

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/gopherjs/gopherjs/js"
)

func TestNewManager_Defaults(t *testing.T) {
	m := NewManager(nil)
	if m.Volume() != AudioConfig.MasterVolume {
		t.Errorf("Expected volume %f, got %f", AudioConfig.MasterVolume, m.Volume())
	}
	if m.Muted() {
		t.Error("Expected manager to start unmuted")
	}
	if m.Gain() != 0.7 {
		t.Errorf("Expected gain 0.7, got %f", m.Gain())
	}
}

func TestMuteUnmute_RestoresVolumeExactly(t *testing.T) {
	m := NewManager(nil)
	m.SetVolume(0.33)

	m.SetMuted(true)
	if m.Gain() != 0 {
		t.Errorf("Expected gain 0 while muted, got %f", m.Gain())
	}
	m.SetMuted(false)
	if m.Gain() != 0.33 {
		t.Errorf("Expected gain 0.33 after unmute, got %v", m.Gain())
	}
}

func TestToggleMute(t *testing.T) {
	m := NewManager(nil)
	if !m.ToggleMute() {
		t.Error("Expected first toggle to mute")
	}
	if m.ToggleMute() {
		t.Error("Expected second toggle to unmute")
	}
}

func TestSetVolume_Clamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		m := NewManager(nil)
		m.SetVolume(tt.in)
		if m.Volume() != tt.want {
			t.Errorf("SetVolume(%v): expected %v, got %v", tt.in, tt.want, m.Volume())
		}
	}
}

func TestSetVolume_WhileMutedStaysSilent(t *testing.T) {
	m := NewManager(nil)
	m.SetMuted(true)
	m.SetVolume(0.9)
	if m.Gain() != 0 {
		t.Errorf("Expected gain 0 while muted, got %f", m.Gain())
	}
	m.SetMuted(false)
	if m.Gain() != 0.9 {
		t.Errorf("Expected new volume after unmute, got %f", m.Gain())
	}
}

func TestUnavailable_OperationsAreNoops(t *testing.T) {
	m := NewManager(func() *js.Object { return nil })

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	m.PlayNav()
	m.SetVolume(0.2)
	m.SetMuted(true)
	m.Resume()

	if m.Available() {
		t.Error("Expected audio to be unavailable")
	}
	if !strings.Contains(buf.String(), "Audio not supported") {
		t.Errorf("Expected a warning, got %q", buf.String())
	}
}

func TestFactoryPanic_IsRecoveredAndLogged(t *testing.T) {
	calls := 0
	m := NewManager(func() *js.Object {
		calls++
		panic(errors.New("NotAllowedError"))
	})

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	if m.Init() {
		t.Fatal("Expected Init to report unavailable")
	}
	m.PlayNav()
	m.PlayNav()
	m.SetVolume(0.4)

	if calls != 1 {
		t.Errorf("Expected construction to be tried once, tried %d times", calls)
	}
	if !strings.Contains(buf.String(), "NotAllowedError") {
		t.Errorf("Expected the failure in the warning, got %q", buf.String())
	}
	if m.Volume() != 0.4 {
		t.Errorf("Expected volume to be stored anyway, got %f", m.Volume())
	}
}
