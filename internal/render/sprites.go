package render

import (
	"image/color"
	"math"

	"pong/internal/core"
	"pong/internal/pong"
)

// Mask is a small indexed bitmap used to build textures procedurally.
type Mask struct {
	W, H  int
	Cells []uint8
}

func newMask(w, h int) Mask {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Mask{W: w, H: h, Cells: make([]uint8, w*h)}
}

func (m Mask) set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Cells[y*m.W+x] = v
}

// At returns the value at (x, y), or 0 outside the mask.
func (m Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0
	}
	return m.Cells[y*m.W+x]
}

// DiscMask marks the pixels whose centres lie inside a circle of the given
// radius, centred in a 2r x 2r mask.
func DiscMask(radius int) Mask {
	m := newMask(2*radius, 2*radius)
	r := float64(radius)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if math.Hypot(dx, dy) <= r {
				m.set(x, y, 1)
			}
		}
	}
	return m
}

// PanelMask fills a w x h rectangle with 1 and paints a border of 2.
func PanelMask(w, h, border int) Mask {
	m := newMask(w, h)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			v := uint8(1)
			if x < border || y < border || x >= m.W-border || y >= m.H-border {
				v = 2
			}
			m.set(x, y, v)
		}
	}
	return m
}

// CourtMask is the background with a dashed centre line of value 1.
func CourtMask(w, h int) Mask {
	m := newMask(w, h)
	const dash, gap, thickness = 30, 20, 6
	cx := m.W / 2
	for y := 0; y < m.H; y++ {
		if y%(dash+gap) >= dash {
			continue
		}
		for x := cx - thickness/2; x < cx+thickness/2; x++ {
			m.set(x, y, 1)
		}
	}
	return m
}

// Binary renders the mask as on/off pixels.
func (m Mask) Binary(on, off color.Color) []byte {
	return twoTone(on, off).paint(m.Cells)
}

// Palette renders the mask through an indexed palette.
func (m Mask) Palette(palette []color.RGBA) []byte {
	return shades(palette).paint(m.Cells)
}

// Bitmap is an RGBA texture ready to upload.
type Bitmap struct {
	W, H int
	Pix  []byte
}

var (
	colorCourt   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	colorLine    = color.RGBA{R: 70, G: 70, B: 84, A: 255}
	colorBall    = color.RGBA{R: 240, G: 240, B: 232, A: 255}
	colorPaddleA = color.RGBA{R: 64, G: 164, B: 223, A: 255}
	colorPaddleB = color.RGBA{R: 255, G: 120, B: 40, A: 255}
	colorEdge    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Textures builds every texture key the match draws with, sized for the
// given canvas and ball radius.
func Textures(canvas core.Size, ballRadius float64) map[string]Bitmap {
	disc := DiscMask(int(math.Ceil(ballRadius)))
	paddle := PanelMask(int(pong.PaddleWidth), int(pong.PaddleHeight), 6)
	court := CourtMask(canvas.W, canvas.H)
	blank := newMask(1, 1)
	blank.Cells[0] = 1

	return map[string]Bitmap{
		pong.TextureBall:       {W: disc.W, H: disc.H, Pix: disc.Binary(colorBall, color.Transparent)},
		pong.TexturePaddleA:    {W: paddle.W, H: paddle.H, Pix: paddle.Palette([]color.RGBA{{}, colorPaddleA, colorEdge})},
		pong.TexturePaddleB:    {W: paddle.W, H: paddle.H, Pix: paddle.Palette([]color.RGBA{{}, colorPaddleB, colorEdge})},
		pong.TextureBackground: {W: court.W, H: court.H, Pix: court.Palette([]color.RGBA{colorCourt, colorLine})},
		pong.TextureBlank:      {W: 1, H: 1, Pix: blank.Binary(color.White, color.Transparent)},
	}
}
