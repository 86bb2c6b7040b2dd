// Package window runs the flappy game in a desktop window with Ebiten.
package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/scheduler"
	"github.com/vovakirdan/tui-flappy/internal/sfx"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a window game.
type Options struct {
	Game       config.FlappyConfig
	TickRate   int   // Updates per second
	Seed       int64 // 0 means current time
	Store      *storage.Store
	Sound      sfx.Player
	PlayerName string
	Scale      float64 // Window size relative to the board, default 1
}

// keyActions maps keys to actions. Enter is resolved per phase.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyX, core.ActionJump},
	{ebiten.KeyEnter, core.ActionRetry},
	{ebiten.KeyS, core.ActionStart},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// Game implements ebiten.Game for one session.
type Game struct {
	session *flappy.Session
	cfg     config.FlappyConfig
	spawns  *scheduler.Interval
	frame   time.Duration
	store   *storage.Store
	sound   sfx.Player
}

// NewGame creates a game in the not-started phase.
func NewGame(opts Options) *Game {
	tickRate := opts.TickRate
	if tickRate < 1 {
		tickRate = ebiten.DefaultTPS
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sound := opts.Sound
	if sound == nil {
		sound = sfx.Nop{}
	}

	session := flappy.NewSession(opts.Game, seed)
	session.SetPlayerName(opts.PlayerName)

	return &Game{
		session: session,
		cfg:     opts.Game,
		spawns:  scheduler.NewInterval(opts.Game.Timing.SpawnInterval),
		frame:   time.Second / time.Duration(tickRate),
		store:   opts.Store,
		sound:   sound,
	}
}

// Session returns the session driven by the game.
func (g *Game) Session() *flappy.Session {
	return g.session
}

// Update reads input and advances one frame.
func (g *Game) Update() error {
	var actions []core.Action
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			actions = append(actions, ka.action)
		}
	}
	return g.step(actions)
}

// step applies actions, then runs due spawns and the frame tick.
func (g *Game) step(actions []core.Action) error {
	for _, a := range actions {
		if a == core.ActionRetry && g.session.Phase() == flappy.PhaseNotStarted {
			a = core.ActionStart
		}
		switch a {
		case core.ActionQuit:
			return ebiten.Termination
		case core.ActionStart:
			if g.session.Start() {
				g.spawns.Start()
			}
		default:
			g.session.Handle(a)
		}
	}

	for n := g.spawns.Advance(g.frame); n > 0; n-- {
		g.session.SpawnTick()
	}
	g.session.Tick()
	g.handleEvents()
	return nil
}

func (g *Game) handleEvents() {
	events := g.session.DrainEvents()
	sfx.PlayEvents(g.sound, events)
	if g.store == nil {
		return
	}
	for _, e := range events {
		if over, ok := e.(flappy.GameOverEvent); ok {
			//nolint:errcheck // Best-effort save, game continues regardless
			g.store.SaveScore(over.Name, over.Score, over.Reason.String())
		}
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(newImageSurface(screen))
}

// Layout returns the board size; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Board.Width), int(g.cfg.Board.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	board := opts.Game.Board

	ebiten.SetWindowSize(int(board.Width*scale), int(board.Height*scale))
	ebiten.SetWindowTitle("Flappy Bird")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	// Update returning ebiten.Termination makes RunGame return nil.
	return ebiten.RunGame(NewGame(opts))
}
