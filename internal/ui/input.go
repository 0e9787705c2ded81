package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler tracks mouse state once per frame so every widget sees a
// consistent view of it.
type InputHandler struct {
	mouseX, mouseY  int
	leftJustPressed bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update refreshes the input state. Call once per frame before any
// widget reads it.
func (ih *InputHandler) Update() {
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()
	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// MousePosition returns the current cursor position.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// JustClicked reports whether the left button was pressed this frame.
func (ih *InputHandler) JustClicked() bool {
	return ih.leftJustPressed
}

// Hovering reports whether the cursor is inside the given rectangle.
func (ih *InputHandler) Hovering(x, y, w, h int) bool {
	return ih.mouseX >= x && ih.mouseX < x+w && ih.mouseY >= y && ih.mouseY < y+h
}

// ClickedIn reports whether the left button was pressed this frame
// inside the given rectangle.
func (ih *InputHandler) ClickedIn(x, y, w, h int) bool {
	return ih.leftJustPressed && ih.Hovering(x, y, w, h)
}
