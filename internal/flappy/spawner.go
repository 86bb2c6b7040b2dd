package flappy

// Spawn adds one gate at the right edge of the board. r must be uniform in
// [0, 1) and picks the vertical offset shared by both halves. Spawn does
// nothing unless the round is running and reports whether it added pipes.
func Spawn(s *State, r float64) bool {
	if s.Phase != PhaseRunning {
		return false
	}

	const baseY = 0
	pipeW, pipeH := s.cfg.Pipes.Width, s.cfg.Pipes.Height
	topY := baseY - pipeH/4 - r*(pipeH/2)
	openingSpace := s.cfg.Board.Height / 4
	x := s.cfg.Board.Width

	s.Pipes.PushBack(Pipe{
		Kind: PipeTop,
		X:    x,
		Y:    topY,
		W:    pipeW,
		H:    pipeH,
	})
	s.Pipes.PushBack(Pipe{
		Kind: PipeBottom,
		X:    x,
		Y:    topY + pipeH + openingSpace,
		W:    pipeW,
		H:    pipeH,
	})
	return true
}
