package ui

import (
	"math"
	"strings"
	"testing"

	"pong/internal/core"
	"pong/internal/geom"
	"pong/internal/pong"
)

type recordingCanvas struct {
	sprites  []pong.Sprite
	texts    []pong.Text
	outlines []geom.Rect
}

func (c *recordingCanvas) DrawSprite(s pong.Sprite) { c.sprites = append(c.sprites, s) }

func (c *recordingCanvas) DrawText(t pong.Text) { c.texts = append(c.texts, t) }

func (c *recordingCanvas) DrawOutline(r geom.Rect, _ float64) { c.outlines = append(c.outlines, r) }

func newWorld(t *testing.T) *pong.World {
	t.Helper()
	cfg := pong.Config{
		Field:          geom.Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000},
		BallSpeed:      10,
		BallRadius:     50,
		MaxPaddleSpeed: 5,
		RoundedPaddles: true,
	}
	w, err := pong.NewWorldWithControllers(cfg, pong.Env{RNG: core.NewRNG(3)}, nil, nil)
	if err != nil {
		t.Fatalf("NewWorldWithControllers: %v", err)
	}
	return w
}

func TestHUDHiddenByDefault(t *testing.T) {
	h := NewHUD(geom.V(10, 10))
	h.Update(newWorld(t))
	c := &recordingCanvas{}
	h.Draw(c)
	if len(c.texts) != 0 || len(c.outlines) != 0 {
		t.Fatalf("hidden HUD drew %d texts, %d outlines", len(c.texts), len(c.outlines))
	}
}

func TestHUDListsParameterGroups(t *testing.T) {
	h := NewHUD(geom.V(10, 10))
	h.Update(newWorld(t))
	lines := h.Lines()
	if len(lines) == 0 || lines[0] != "[Match]" {
		t.Fatalf("lines = %v", lines)
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"[Ball]", "[Left paddle]", "[Right paddle]"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %s in %v", want, lines)
		}
	}

	h.Toggle()
	c := &recordingCanvas{}
	h.Draw(c)
	if len(c.outlines) != 1 {
		t.Fatalf("outlines = %d, want 1", len(c.outlines))
	}
	if len(c.texts) != len(lines)+1 {
		t.Fatalf("texts = %d, want %d", len(c.texts), len(lines)+1)
	}
	for _, txt := range c.texts {
		if txt.Depth != pong.DepthOverlay {
			t.Fatalf("text %q at depth %v", txt.Value, txt.Depth)
		}
	}
}

func TestHUDNilSafe(t *testing.T) {
	var h *HUD
	h.Toggle()
	h.Update(nil)
	h.Draw(&recordingCanvas{})
	if h.Visible() || h.Lines() != nil {
		t.Fatalf("nil HUD should be inert")
	}
}

func TestOverlayMarksTargetsAndImpacts(t *testing.T) {
	w := newWorld(t)
	o := NewOverlay()
	c := &recordingCanvas{}
	o.Draw(c, w)
	if len(c.sprites) != 0 {
		t.Fatalf("hidden overlay drew %d sprites", len(c.sprites))
	}

	o.Toggle()
	o.Draw(c, w)
	if len(c.sprites) != 2 || len(c.texts) != 0 {
		t.Fatalf("before any impact: %d sprites, %d texts", len(c.sprites), len(c.texts))
	}

	b := w.Ball()
	b.Position = geom.V(55, 100)
	b.Velocity = geom.V(-10, 0)
	w.Update()

	c = &recordingCanvas{}
	o.Draw(c, w)
	if len(c.sprites) != 3 || len(c.texts) != 1 {
		t.Fatalf("after impact: %d sprites, %d texts", len(c.sprites), len(c.texts))
	}
	if c.texts[0].Value != "miss" {
		t.Fatalf("label = %q, want miss", c.texts[0].Value)
	}
	if got := c.sprites[1].Position; got.X != 0 || math.Abs(got.Y-100) > 0.1 {
		t.Fatalf("impact marker at %+v, want (0, ~100)", got)
	}
}
