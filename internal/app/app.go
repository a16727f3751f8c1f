//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pong/internal/core"
	"pong/internal/render"
	"pong/internal/screen"
)

type muter interface {
	ToggleMute() bool
}

// Game adapts a screen stack to the ebiten.Game interface.
type Game struct {
	stack  *screen.Stack
	input  screen.Input
	audio  muter
	canvas *render.Canvas
	size   core.Size
}

// New constructs a Game drawing onto a logical canvas of the given size.
func New(stack *screen.Stack, input screen.Input, audio muter, size core.Size, ballRadius float64) *Game {
	return &Game{
		stack:  stack,
		input:  input,
		audio:  audio,
		canvas: render.NewCanvas(size, ballRadius),
		size:   size,
	}
}

// Update handles window keys and advances the top screen.
func (g *Game) Update() error {
	if g.stack.Done() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.audio != nil {
		g.audio.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.stack.Update(g.input)
	if g.stack.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the visible screens.
func (g *Game) Draw(dst *ebiten.Image) {
	g.stack.Draw(g.canvas)
	g.canvas.Flush(dst)
}

// Layout returns the logical screen size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W, g.size.H
}
