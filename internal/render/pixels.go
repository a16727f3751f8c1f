package render

import "image/color"

// shades maps mask cell values to colours. Cells past the end take the last
// shade; an empty table paints nothing.
type shades []color.RGBA

func twoTone(on, off color.Color) shades {
	return shades{rgba(off), rgba(on)}
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (s shades) at(v uint8) color.RGBA {
	if int(v) >= len(s) {
		return s[len(s)-1]
	}
	return s[v]
}

// paint writes one RGBA pixel per cell into a fresh buffer.
func (s shades) paint(cells []uint8) []byte {
	buf := make([]byte, 4*len(cells))
	if len(s) == 0 {
		return buf
	}
	for i, v := range cells {
		c := s.at(v)
		copy(buf[4*i:], []byte{c.R, c.G, c.B, c.A})
	}
	return buf
}
