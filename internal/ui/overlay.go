package ui

import (
	"pong/internal/geom"
	"pong/internal/pong"
)

const (
	targetMarker = 14.0
	impactMarker = 10.0
)

// Overlay draws optional debugging visuals on top of the match: where each
// paddle is heading and where the ball last reached its wall.
type Overlay struct {
	visible bool
}

func NewOverlay() *Overlay { return &Overlay{} }

func (o *Overlay) Toggle() {
	if o == nil {
		return
	}
	o.visible = !o.visible
}

func (o *Overlay) Visible() bool { return o != nil && o.visible }

// Draw emits markers for both paddles when visible.
func (o *Overlay) Draw(c pong.Canvas, w *pong.World) {
	if !o.Visible() || w == nil {
		return
	}
	for _, p := range []*pong.Paddle{w.Left(), w.Right()} {
		o.drawPaddle(c, w, p)
	}
}

func (o *Overlay) drawPaddle(c pong.Canvas, w *pong.World, p *pong.Paddle) {
	field := w.Field()
	wallX := field.Left
	if p.Side() == pong.Right {
		wallX = field.Right
	}

	c.DrawSprite(marker(geom.V(p.X(), p.Target()), targetMarker))

	last, ok := p.LastState()
	if !ok {
		return
	}
	at := geom.V(wallX, last.BallPosition)
	c.DrawSprite(marker(at, impactMarker))
	label := "miss"
	if last.Success {
		label = "hit"
	}
	offset := 40.0
	if p.Side() == pong.Right {
		offset = -40
	}
	c.DrawText(pong.Text{
		Value:    label,
		Position: at.Add(geom.V(offset, 0)),
		Scale:    1.5,
		Depth:    pong.DepthOverlay,
		Centered: true,
	})
}

func marker(at geom.Vec2, size float64) pong.Sprite {
	return pong.Sprite{
		Texture:  pong.TextureBlank,
		Position: at,
		Origin:   geom.V(0.5, 0.5),
		Scale:    size,
		Depth:    pong.DepthOverlay,
	}
}
