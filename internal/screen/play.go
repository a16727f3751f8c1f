package screen

import (
	"pong/internal/core"
	"pong/internal/geom"
	"pong/internal/pong"
	"pong/internal/ui"
)

// Play ticks a match once per update.
type Play struct {
	world   *pong.World
	size    core.Size
	hud     *ui.HUD
	overlay *ui.Overlay
}

func NewPlay(w *pong.World, size core.Size) *Play {
	field := w.Field()
	return &Play{
		world:   w,
		size:    size,
		hud:     ui.NewHUD(geom.V(field.Left+20, field.Top+20)),
		overlay: ui.NewOverlay(),
	}
}

func (p *Play) World() *pong.World { return p.world }

func (p *Play) HUD() *ui.HUD { return p.hud }

func (p *Play) Update(s *Stack, in Input) {
	switch {
	case in.Pressed(ActionPause), in.Pressed(ActionBack):
		s.Push(NewPause(p, p.size))
		return
	case in.Pressed(ActionToggleHUD):
		p.hud.Toggle()
	case in.Pressed(ActionToggleOverlay):
		p.overlay.Toggle()
	}
	p.world.Update()
	p.hud.Update(p.world)
}

func (p *Play) Draw(c pong.Canvas) {
	p.world.Draw(c)
	p.hud.Draw(c)
	p.overlay.Draw(c, p.world)
}

func (p *Play) Overlay() bool { return false }
