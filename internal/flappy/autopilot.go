package flappy

// autopilotMargin keeps the bird this far above the lower pipe.
const autopilotMargin = 20

// Autopilot reports whether a simple bot would flap this frame. It aims the
// bird just above the lower pipe of the nearest gate it has not cleared, or
// at mid-board when no gate is ahead.
func Autopilot(s *State) bool {
	if s.Phase != PhaseRunning {
		return false
	}

	target := s.cfg.Board.Height / 2
	for _, p := range s.Pipes.All() {
		if p.Kind != PipeBottom || p.X+p.W <= s.Bird.X {
			continue
		}
		target = p.Y - s.Bird.H - autopilotMargin
		break
	}
	return s.Bird.Y > target
}
