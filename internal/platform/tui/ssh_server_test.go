package tui

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveHostKeyPath(t *testing.T) {
	got, err := resolveHostKeyPath("/tmp/key")
	if err != nil || got != "/tmp/key" {
		t.Errorf("explicit path = %q, %v", got, err)
	}

	t.Setenv("HOME", t.TempDir())
	got, err = resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join(".fruitbox", "host_key")) {
		t.Errorf("default path = %q", got)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address == "" || cfg.IdleTimeout <= 0 || cfg.TickRate <= 0 {
		t.Errorf("incomplete defaults: %+v", cfg)
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr = %q, want %q", srv.Addr(), cfg.Address)
	}
}
