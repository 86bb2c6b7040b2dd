package core

// RuntimeConfig contains host settings passed to a session at creation.
type RuntimeConfig struct {
	ScreenW  int   // Host output width (cells or pixels)
	ScreenH  int   // Host output height (cells or pixels)
	TickRate int   // Frame ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
