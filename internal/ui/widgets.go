package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonBg      = color.RGBA{60, 66, 76, 255}
	buttonHoverBg = color.RGBA{78, 86, 98, 255}
	buttonBorder  = color.RGBA{96, 104, 116, 255}
	checkOnColor  = color.RGBA{96, 170, 120, 255}
	checkOffColor = color.RGBA{70, 76, 86, 255}
)

// Button is a clickable rectangle with a label.
type Button struct {
	X, Y, W, H int
	Label      string
	hovered    bool
}

// NewButton creates a button.
func NewButton(x, y, w, h int, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label}
}

// Update reports whether the button was clicked this frame.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.Hovering(b.X, b.Y, b.W, b.H)
	return input.ClickedIn(b.X, b.Y, b.W, b.H)
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image, theme *Theme) {
	bg := buttonBg
	if b.hovered {
		bg = buttonHoverBg
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, buttonBorder, false)

	face := RegularFace()
	if face == nil {
		return
	}
	w, h := MeasureText(b.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.X)+(float64(b.W)-w)/2, float64(b.Y)+(float64(b.H)-h)/2)
	op.ColorScale.ScaleWithColor(theme.TextColor)
	text.Draw(screen, b.Label, face, op)
}

// Checkbox is a labeled on/off toggle.
type Checkbox struct {
	X, Y    int
	Size    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a checkbox.
func NewCheckbox(x, y, size int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Size: size, Label: label, Checked: checked}
}

// Update toggles on click and reports whether the state changed.
func (c *Checkbox) Update(input *InputHandler) bool {
	labelW, _ := MeasureText(c.Label, RegularFace())
	hitW := c.Size + 8 + int(labelW)
	c.hovered = input.Hovering(c.X, c.Y, hitW, c.Size)
	if input.ClickedIn(c.X, c.Y, hitW, c.Size) {
		c.Checked = !c.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (c *Checkbox) Draw(screen *ebiten.Image, theme *Theme) {
	box := checkOffColor
	if c.Checked {
		box = checkOnColor
	}
	vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size), box, false)
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size), 1, buttonBorder, false)

	face := RegularFace()
	if face == nil {
		return
	}
	_, h := MeasureText(c.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(c.X+c.Size+8), float64(c.Y)+(float64(c.Size)-h)/2)
	op.ColorScale.ScaleWithColor(theme.TextColor)
	text.Draw(screen, c.Label, face, op)
}
