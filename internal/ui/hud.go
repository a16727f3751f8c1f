package ui

import (
	"pong/internal/core"
	"pong/internal/geom"
	"pong/internal/pong"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

const (
	panelPadding = 12.0
	lineHeight   = 26.0
	headerGap    = 8.0
	panelWidth   = 320.0
	textScale    = 1.5
)

// HUD renders the parameter panel in the corner of the court.
type HUD struct {
	origin   geom.Vec2
	visible  bool
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a hidden HUD anchored at origin.
func NewHUD(origin geom.Vec2) *HUD {
	return &HUD{origin: origin}
}

func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update(src parameterProvider) {
	if h == nil {
		return
	}
	if src == nil {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = src.Parameters()
}

// Lines flattens the cached snapshot into display rows.
func (h *HUD) Lines() []string {
	if h == nil {
		return nil
	}
	var lines []string
	for _, group := range h.snapshot.Groups {
		lines = append(lines, "["+group.Name+"]")
		for _, param := range group.Params {
			lines = append(lines, "  "+param.Label+": "+param.Value)
		}
	}
	return lines
}

// Draw paints the panel when visible.
func (h *HUD) Draw(c pong.Canvas) {
	if !h.Visible() {
		return
	}
	lines := h.Lines()
	if len(lines) == 0 {
		return
	}
	height := 2*panelPadding + headerGap + float64(len(lines)+1)*lineHeight
	c.DrawOutline(geom.RectXYWH(h.origin.X, h.origin.Y, panelWidth, height), pong.DepthOverlay)

	pos := h.origin.Add(geom.V(panelPadding, panelPadding))
	c.DrawText(pong.Text{Value: "Parameters", Position: pos, Scale: textScale, Depth: pong.DepthOverlay})
	pos.Y += lineHeight + headerGap
	for _, line := range lines {
		c.DrawText(pong.Text{Value: line, Position: pos, Scale: textScale, Depth: pong.DepthOverlay})
		pos.Y += lineHeight
	}
}
