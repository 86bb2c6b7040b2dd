package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSSHServerSessionOptions(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Game.Leaderboard.Size = 3

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Fatal("server should open the score store")
	}
	defer srv.store.Close()
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	opts := srv.sessionOptions("grace", 120, 40)
	if opts.PlayerName != "grace" || opts.Store != srv.store || !opts.NoScreenshots {
		t.Errorf("sessionOptions() = %+v", opts)
	}
	if opts.Runtime.ScreenW != 120 || opts.Runtime.ScreenH != 40 || opts.Runtime.Seed == 0 {
		t.Errorf("Runtime = %+v, expected PTY size and a seed", opts.Runtime)
	}
	if opts.Game.Leaderboard.Size != 3 {
		t.Error("sessions should share the server's game config")
	}

	// Independent sessions per connection
	a := NewModel(srv.sessionOptions("a", 80, 24))
	b := NewModel(srv.sessionOptions("b", 80, 24))
	a.Session().Start()
	if b.Session().Started() {
		t.Error("sessions must not share state")
	}
	if a.Session().PlayerName() != "a" || b.Session().PlayerName() != "b" {
		t.Error("each session should use its SSH user name")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 {
		t.Errorf("DefaultSSHServerConfig() = %+v", cfg)
	}
	if cfg.Game != config.DefaultFlappyConfig() {
		t.Error("default server config should use the default game config")
	}
}
