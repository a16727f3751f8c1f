package pong

import "pong/internal/geom"

// Texture keys understood by the renderer.
const (
	TextureBackground = "background"
	TextureBall       = "ball"
	TexturePaddleA    = "paddleA"
	TexturePaddleB    = "paddleB"
	TextureBlank      = "blank"
)

// Sound keys understood by the audio sink.
const (
	SoundLeft  = "beep1"
	SoundRight = "beep2"
)

// Draw depths; higher values are drawn on top.
const (
	DepthBackground = 0.0
	DepthOutline    = 0.5
	DepthScore      = 0.89
	DepthBodies     = 0.9
	DepthOverlay    = 1.0
)

// Sprite is a single textured draw request.
type Sprite struct {
	Texture  string
	Position geom.Vec2
	// Origin is the point of the texture placed at Position, in texture pixels.
	Origin   geom.Vec2
	Rotation float64
	Scale    float64
	Depth    float64
}

// Text is a single string draw request.
type Text struct {
	Value    string
	Position geom.Vec2
	Scale    float64
	Depth    float64
	Centered bool
}

// Canvas receives draw intents for one frame.
type Canvas interface {
	DrawSprite(s Sprite)
	DrawText(t Text)
	DrawOutline(r geom.Rect, depth float64)
}

// Cue is a sound trigger. Pan ranges over [-1, 1]; Pitch is in octaves.
type Cue struct {
	Sound  string
	Volume float64
	Pan    float64
	Pitch  float64
}

// Audio plays sound cues.
type Audio interface {
	Play(c Cue)
}

// VerticalInput exposes the per-frame vertical control value, conventionally
// in [-1, 1] with positive meaning up.
type VerticalInput interface {
	Vertical() float64
}

// NopCanvas discards all draw calls.
type NopCanvas struct{}

func (NopCanvas) DrawSprite(Sprite) {}
func (NopCanvas) DrawText(Text) {}
func (NopCanvas) DrawOutline(geom.Rect, float64) {}

// NopAudio discards all cues.
type NopAudio struct{}

func (NopAudio) Play(Cue) {}

// StillInput always reports no vertical movement.
type StillInput struct{}

func (StillInput) Vertical() float64 { return 0 }
