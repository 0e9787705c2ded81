package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"raychess/internal/game"
	"raychess/internal/storage"
)

// Screen layout in logical pixels. The board fills the left side and
// the panel takes the remaining width.
const (
	ScreenWidth  = 920
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = 80
	PanelWidth   = 280
)

// Game is the ebiten application: the rules engine plus the selection
// state, rendering, persistence and panel controls around it.
type Game struct {
	core     *game.Game
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	store *storage.Storage
	prefs *storage.UserPreferences
	stats *storage.GameStats

	selected *game.Coordinate
	moves    []game.Coordinate
	attacks  []game.Coordinate
	lastFrom *game.Coordinate
	lastTo   *game.Coordinate

	gameOver   bool
	gameResult string
	startedAt  time.Time
	exit       bool
}

// NewGame creates the application. The store may be nil, in which case
// preferences and statistics are session-local defaults.
func NewGame(store *storage.Storage) *Game {
	g := &Game{
		core:      game.NewGame(),
		renderer:  NewRenderer(BoardSize, SquareSize),
		input:     NewInputHandler(),
		feedback:  NewFeedbackManager(),
		store:     store,
		prefs:     storage.DefaultPreferences(),
		stats:     storage.NewGameStats(),
		startedAt: time.Now(),
	}

	if store != nil {
		if prefs, err := store.LoadPreferences(); err == nil {
			g.prefs = prefs
		} else {
			log.Printf("Warning: failed to load preferences: %v", err)
		}
		if stats, err := store.LoadStats(); err == nil {
			g.stats = stats
		} else {
			log.Printf("Warning: failed to load stats: %v", err)
		}
		if first, err := store.IsFirstLaunch(); err == nil && first {
			g.feedback.Show("Click a piece to see its legal moves")
			if err := store.MarkFirstLaunchComplete(); err != nil {
				log.Printf("Warning: failed to mark first launch: %v", err)
			}
		}
	}

	g.panel = NewPanel(BoardSize, PanelWidth, g.prefs.ShowLegalHints)
	return g
}

// NewGameAction resets the board for a fresh game.
func (g *Game) NewGameAction() {
	g.core = game.NewGame()
	g.selected = nil
	g.moves = nil
	g.attacks = nil
	g.lastFrom = nil
	g.lastTo = nil
	g.gameOver = false
	g.gameResult = ""
	g.startedAt = time.Now()
	g.feedback.Clear()
}

// SetShowHints updates the legal move hint preference and persists it.
func (g *Game) SetShowHints(on bool) {
	g.prefs.ShowLegalHints = on
	g.savePreferences()
}

// RequestExit ends the application after the current frame.
func (g *Game) RequestExit() {
	g.exit = true
}

// Update advances one frame: input first, panel controls, then board
// clicks.
func (g *Game) Update() error {
	if g.exit {
		return ebiten.Termination
	}
	g.input.Update()
	g.feedback.Update()

	if g.panel.HandleInput(g, g.input) {
		return nil
	}

	if g.input.JustClicked() && !g.gameOver {
		mx, my := g.input.MousePosition()
		if c, ok := g.renderer.ScreenToCoord(mx, my); ok {
			g.handleBoardClick(c)
		}
	}
	return nil
}

// handleBoardClick runs the two step selection flow: the first click
// selects one of the mover's pieces, the second orders the move.
func (g *Game) handleBoardClick(c game.Coordinate) {
	if g.selected != nil {
		if *g.selected == c {
			g.clearSelection()
			return
		}
		if p, ok := g.core.Board().At(c); ok && p.Side == g.core.Turn() {
			g.selectSquare(c)
			return
		}
		g.orderMove(*g.selected, c)
		return
	}

	if p, ok := g.core.Board().At(c); ok && p.Side == g.core.Turn() {
		g.selectSquare(c)
	}
}

func (g *Game) selectSquare(c game.Coordinate) {
	moves, attacks, err := g.core.LegalMoves(c)
	if err != nil {
		g.clearSelection()
		return
	}
	sel := c
	g.selected = &sel
	g.moves = moves
	g.attacks = attacks
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.moves = nil
	g.attacks = nil
}

// orderMove asks the engine to apply the move and reacts to the
// resulting state.
func (g *Game) orderMove(from, to game.Coordinate) {
	applied, err := g.core.MovePiece(from, to)
	if err != nil {
		g.clearSelection()
		return
	}
	if !applied {
		g.feedback.Show("Illegal move")
		g.clearSelection()
		return
	}

	f, t := from, to
	g.lastFrom = &f
	g.lastTo = &t
	g.clearSelection()

	if g.core.Checkmate() {
		winner := g.core.Turn().Other()
		g.gameOver = true
		g.gameResult = fmt.Sprintf("Checkmate, %v wins", winner)
		g.feedback.ShowSticky(g.gameResult)
		g.recordResult(winner)
		return
	}
	if g.core.InCheck() {
		g.feedback.Show(fmt.Sprintf("%v is in check", g.core.Turn()))
	}
}

// recordResult persists the finished game and refreshes the panel
// statistics.
func (g *Game) recordResult(winner game.Side) {
	if g.store == nil {
		return
	}
	result := storage.GameResult{Winner: storage.ColorWhite, Duration: time.Since(g.startedAt)}
	if winner == game.Black {
		result.Winner = storage.ColorBlack
	}
	if err := g.store.RecordGame(result); err != nil {
		log.Printf("Warning: failed to record game: %v", err)
		return
	}
	if stats, err := g.store.LoadStats(); err == nil {
		g.stats = stats
	}
}

func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	g.prefs.LastPlayed = time.Now()
	if err := g.store.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: failed to save preferences: %v", err)
	}
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)

	moves, attacks := g.moves, g.attacks
	if !g.prefs.ShowLegalHints {
		moves, attacks = nil, nil
	}
	g.renderer.DrawHighlights(screen, g.selected, moves, attacks, g.lastFrom, g.lastTo)

	if g.core.InCheck() {
		if king, ok := g.core.Board().King(g.core.Turn()); ok {
			g.renderer.DrawCheck(screen, king.Position)
		}
	}

	g.renderer.DrawPieces(screen, g.core.Board().Slots())
	g.panel.Draw(screen, g)
	g.feedback.Draw(screen, g.renderer.Theme(), BoardSize)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close flushes preferences before shutdown. The storage itself is
// closed by the caller that opened it.
func (g *Game) Close() {
	g.savePreferences()
}
