//go:build ebiten

package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"pong/internal/core"
	"pong/internal/geom"
	"pong/internal/pong"
)

var colorOutline = color.RGBA{R: 200, G: 200, B: 210, A: 255}

type drawCall struct {
	depth float64
	draw  func(dst *ebiten.Image)
}

// Canvas queues draw intents for a frame and replays them in depth order.
type Canvas struct {
	textures map[string]*ebiten.Image
	face     font.Face
	calls    []drawCall
}

// NewCanvas uploads the procedural textures for the given canvas size.
func NewCanvas(size core.Size, ballRadius float64) *Canvas {
	c := &Canvas{
		textures: make(map[string]*ebiten.Image),
		face:     basicfont.Face7x13,
	}
	for key, bmp := range Textures(size, ballRadius) {
		img := ebiten.NewImage(bmp.W, bmp.H)
		img.WritePixels(bmp.Pix)
		c.textures[key] = img
	}
	return c
}

func (c *Canvas) DrawSprite(s pong.Sprite) {
	img, ok := c.textures[s.Texture]
	if !ok {
		return
	}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	c.calls = append(c.calls, drawCall{depth: s.Depth, draw: func(dst *ebiten.Image) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.Origin.X, -s.Origin.Y)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Rotate(s.Rotation)
		op.GeoM.Translate(s.Position.X, s.Position.Y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	}})
}

func (c *Canvas) DrawText(t pong.Text) {
	if t.Value == "" {
		return
	}
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	c.calls = append(c.calls, drawCall{depth: t.Depth, draw: func(dst *ebiten.Image) {
		b := text.BoundString(c.face, t.Value)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(-b.Min.X), float64(-b.Min.Y))
		if t.Centered {
			op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(t.Position.X, t.Position.Y)
		text.DrawWithOptions(dst, t.Value, c.face, op)
	}})
}

func (c *Canvas) DrawOutline(r geom.Rect, depth float64) {
	c.calls = append(c.calls, drawCall{depth: depth, draw: func(dst *ebiten.Image) {
		vector.StrokeRect(dst,
			float32(r.Left), float32(r.Top),
			float32(r.Width()), float32(r.Height()),
			3, colorOutline, false)
	}})
}

// Flush draws every queued call onto dst, lowest depth first, and resets
// the queue. Calls with equal depth keep submission order.
func (c *Canvas) Flush(dst *ebiten.Image) {
	sort.SliceStable(c.calls, func(i, j int) bool { return c.calls[i].depth < c.calls[j].depth })
	for _, call := range c.calls {
		call.draw(dst)
	}
	c.calls = c.calls[:0]
}
