package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Panel is the sidebar next to the board: title, game status, running
// statistics and the session controls.
type Panel struct {
	x, w int

	newGameBtn *Button
	exitBtn    *Button
	hintsCheck *Checkbox
}

// NewPanel creates the sidebar occupying the area right of the board.
func NewPanel(x, w int, showHints bool) *Panel {
	return &Panel{
		x:          x,
		w:          w,
		newGameBtn: NewButton(x+20, 470, w-40, 40, "New Game"),
		exitBtn:    NewButton(x+20, 520, w-40, 40, "Exit"),
		hintsCheck: NewCheckbox(x+20, 580, 18, "Show legal moves", showHints),
	}
}

// HandleInput processes clicks on the panel controls. It returns true
// when the panel consumed the click.
func (p *Panel) HandleInput(g *Game, input *InputHandler) bool {
	if p.newGameBtn.Update(input) {
		g.NewGameAction()
		return true
	}
	if p.exitBtn.Update(input) {
		g.RequestExit()
		return true
	}
	if p.hintsCheck.Update(input) {
		g.SetShowHints(p.hintsCheck.Checked)
		return true
	}
	mx, _ := input.MousePosition()
	return input.JustClicked() && mx >= p.x
}

// Draw renders the panel contents.
func (p *Panel) Draw(screen *ebiten.Image, g *Game) {
	theme := g.renderer.Theme()
	x := float64(p.x + 20)

	p.drawText(screen, "RayChess", x, 28, BoldFace(), theme)

	y := 90.0
	p.drawText(screen, fmt.Sprintf("Turn: %v", g.core.Turn()), x, y, RegularFace(), theme)
	y += 28

	switch {
	case g.gameOver:
		p.drawText(screen, g.gameResult, x, y, BoldFace(), theme)
	case g.core.InCheck():
		p.drawText(screen, fmt.Sprintf("%v is in check", g.core.Turn()), x, y, RegularFace(), theme)
	default:
		p.drawText(screen, "Select a piece to move", x, y, RegularFace(), theme)
	}
	y += 40

	for _, th := range g.core.Threats() {
		p.drawText(screen, fmt.Sprintf("checked by %v", th), x, y, RegularFace(), theme)
		y += 22
	}

	if g.stats != nil {
		y = 360
		p.drawText(screen, fmt.Sprintf("Games played: %d", g.stats.GamesPlayed), x, y, RegularFace(), theme)
		p.drawText(screen, fmt.Sprintf("White wins: %d", g.stats.WhiteWins), x, y+24, RegularFace(), theme)
		p.drawText(screen, fmt.Sprintf("Black wins: %d", g.stats.BlackWins), x, y+48, RegularFace(), theme)
	}

	p.newGameBtn.Draw(screen, theme)
	p.exitBtn.Draw(screen, theme)
	p.hintsCheck.Draw(screen, theme)
}

func (p *Panel) drawText(screen *ebiten.Image, s string, x, y float64, face *text.GoTextFace, theme *Theme) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(theme.TextColor)
	text.Draw(screen, s, face, op)
}
