package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"raychess/internal/game"
	"raychess/internal/storage"
)

const usage = `commands:
  x1 y1 x2 y2   move the piece on (x1,y1) to (x2,y2), values 0-7
  moves x y     show legal moves and captures for the piece on (x,y)
  board         redraw the board
  exit          leave the game`

// Loop is the interactive command loop. It owns the session: reading
// coordinate pairs, relaying them to the engine, and describing the
// resulting state after every call.
type Loop struct {
	game  *game.Game
	in    *bufio.Scanner
	out   io.Writer
	store *storage.Storage

	// ConfirmExit asks for a y/n confirmation before leaving a live
	// game. Preferences may switch it off.
	ConfirmExit bool
}

// New returns a loop over the given game, reading commands from in and
// writing to out. store may be nil; finished games are then not
// recorded.
func New(g *game.Game, in io.Reader, out io.Writer, store *storage.Storage) *Loop {
	return &Loop{
		game:        g,
		in:          bufio.NewScanner(in),
		out:         out,
		store:       store,
		ConfirmExit: true,
	}
}

// Run drives the session until the player exits or the game ends in
// checkmate. Malformed input never ends the session; the loop explains
// and asks again.
func (l *Loop) Run() error {
	started := time.Now()

	fmt.Fprintln(l.out, usage)
	fmt.Fprint(l.out, Render(l.game.Board().Slots()))

	for {
		fmt.Fprintf(l.out, "%v> ", l.game.Turn())
		line, ok := l.readLine()
		if !ok {
			return l.in.Err()
		}

		switch {
		case line == "":
			continue
		case line == "exit":
			if l.confirmExit() {
				return nil
			}
			continue
		case line == "board":
			fmt.Fprint(l.out, Render(l.game.Board().Slots()))
			continue
		case strings.HasPrefix(line, "moves"):
			l.showMoves(line)
			continue
		}

		from, to, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(l.out, err)
			continue
		}

		done, err := l.applyMove(from, to, started)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// applyMove relays one move to the engine and reports the outcome. The
// returned bool is true when the session is over (checkmate).
func (l *Loop) applyMove(from, to game.Coordinate, started time.Time) (bool, error) {
	applied, err := l.game.MovePiece(from, to)
	if errors.Is(err, game.ErrNoSuchPiece) {
		fmt.Fprintln(l.out, "no piece on that square")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !applied {
		fmt.Fprintln(l.out, "illegal move")
		return false, nil
	}

	fmt.Fprint(l.out, Render(l.game.Board().Slots()))

	if l.game.Checkmate() {
		winner := l.game.Turn().Other()
		fmt.Fprintf(l.out, "checkmate, %v wins\n", winner)
		l.recordResult(winner, time.Since(started))
		return true, nil
	}
	if l.game.InCheck() {
		fmt.Fprintf(l.out, "%v is in check!\n", l.game.Turn())
	}
	return false, nil
}

// showMoves answers the "moves x y" query with the engine's legal move
// and capture squares for that piece.
func (l *Loop) showMoves(line string) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		fmt.Fprintln(l.out, "usage: moves x y")
		return
	}
	c, err := parseCoordinate(fields[1], fields[2])
	if err != nil {
		fmt.Fprintln(l.out, err)
		return
	}

	moves, attacks, err := l.game.LegalMoves(c)
	if errors.Is(err, game.ErrNoSuchPiece) {
		fmt.Fprintln(l.out, "no piece on that square")
		return
	}
	fmt.Fprintf(l.out, "moves: %v\ncaptures: %v\n", moves, attacks)
}

func (l *Loop) confirmExit() bool {
	if !l.ConfirmExit {
		return true
	}
	fmt.Fprint(l.out, "really exit? (y/n) ")
	line, ok := l.readLine()
	if !ok {
		return true
	}
	return strings.ToLower(line) == "y"
}

func (l *Loop) readLine() (string, bool) {
	if !l.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(l.in.Text()), true
}

// recordResult stores the finished game when storage is available.
func (l *Loop) recordResult(winner game.Side, d time.Duration) {
	if l.store == nil {
		return
	}
	result := storage.GameResult{Winner: storage.ColorWhite, Duration: d}
	if winner == game.Black {
		result.Winner = storage.ColorBlack
	}
	if err := l.store.RecordGame(result); err != nil {
		log.Printf("Warning: failed to record game: %v", err)
	}
}

// parseMove parses "x1 y1 x2 y2" into a coordinate pair.
func parseMove(line string) (from, to game.Coordinate, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return from, to, errors.New("want four numbers: x1 y1 x2 y2 (or type exit)")
	}
	from, err = parseCoordinate(fields[0], fields[1])
	if err != nil {
		return from, to, err
	}
	to, err = parseCoordinate(fields[2], fields[3])
	return from, to, err
}

// parseCoordinate parses one x/y pair, rejecting non-numeric and
// off-board values before they reach the engine.
func parseCoordinate(xs, ys string) (game.Coordinate, error) {
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return game.Coordinate{}, fmt.Errorf("%q %q: coordinates must be numbers", xs, ys)
	}
	c := game.Coordinate{X: x, Y: y}
	if c.OutOfBounds() {
		return game.Coordinate{}, fmt.Errorf("(%d,%d) is off the board, values run 0-7", x, y)
	}
	return c, nil
}
