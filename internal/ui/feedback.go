package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// toastFrames is how long a toast stays up at 60 ticks per second.
const toastFrames = 150

// Toast is a transient message overlaid on the board.
type Toast struct {
	Message string
	frames  int
}

// FeedbackManager shows one toast at a time; a new message replaces the
// current one.
type FeedbackManager struct {
	current *Toast
}

// NewFeedbackManager creates a feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{}
}

// Show displays a message for a few seconds.
func (fm *FeedbackManager) Show(msg string) {
	fm.current = &Toast{Message: msg, frames: toastFrames}
}

// ShowSticky displays a message that stays until replaced, used for
// terminal game results.
func (fm *FeedbackManager) ShowSticky(msg string) {
	fm.current = &Toast{Message: msg, frames: -1}
}

// Clear removes the current message.
func (fm *FeedbackManager) Clear() {
	fm.current = nil
}

// Update advances the toast timer.
func (fm *FeedbackManager) Update() {
	if fm.current == nil || fm.current.frames < 0 {
		return
	}
	fm.current.frames--
	if fm.current.frames == 0 {
		fm.current = nil
	}
}

// Draw renders the toast near the bottom of the board area.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, theme *Theme, boardSize int) {
	if fm.current == nil {
		return
	}
	face := BoldFace()
	if face == nil {
		return
	}

	w, h := MeasureText(fm.current.Message, face)
	padX, padY := 18.0, 10.0
	boxW := float32(w + 2*padX)
	boxH := float32(h + 2*padY)
	x := (float32(boardSize) - boxW) / 2
	y := float32(boardSize) - boxH - 24

	vector.DrawFilledRect(screen, x, y, boxW, boxH, color.RGBA{20, 22, 26, 215}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+padX, float64(y)+padY)
	op.ColorScale.ScaleWithColor(theme.TextColor)
	text.Draw(screen, fm.current.Message, face, op)
}
