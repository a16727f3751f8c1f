package control

import (
	"math"

	"pong/internal/geom"
	"pong/internal/pong"
)

// minHorizontal keeps the slope finite for near-vertical flight.
const minHorizontal = 1e-6

// LeadPursuit predicts where the ball will reach this paddle's wall from the
// angle recorded at the last wall contact, folding the straight-line path
// back into the field instead of simulating each bounce.
//
// Two predictions run each frame, defend first:
//   - when the opponent records a new contact, aim for the point where that
//     shot crosses our wall;
//   - when we record a new contact ourselves, pre-aim for the return after a
//     flat bounce off the far wall.
type LeadPursuit struct {
	seenOpponent int
	seenOwn      int
}

func NewLeadPursuit() *LeadPursuit { return &LeadPursuit{} }

func (l *LeadPursuit) Update(p *pong.Paddle, w *pong.World) {
	l.tryDefend(p, w)
	l.prePredict(p, w)
}

func (l *LeadPursuit) tryDefend(p *pong.Paddle, w *pong.World) {
	other := p.Other()
	if other.HistoryCount() == l.seenOpponent {
		return
	}
	l.seenOpponent = other.HistoryCount()
	last, ok := other.LastState()
	if !ok {
		return
	}
	top, bottom, span := lanes(w)
	p.GoTo(Intercept(last.BallAngle, last.BallPosition, span, top, bottom))
}

func (l *LeadPursuit) prePredict(p *pong.Paddle, w *pong.World) {
	if p.HistoryCount() == l.seenOwn {
		return
	}
	l.seenOwn = p.HistoryCount()
	last, ok := p.LastState()
	if !ok {
		return
	}
	top, bottom, span := lanes(w)
	p.GoTo(Intercept(last.BallAngle, last.BallPosition, 2*span, top, bottom))
}

// lanes returns the range the ball centre can occupy vertically and the
// horizontal distance it travels between the two walls.
func lanes(w *pong.World) (top, bottom, span float64) {
	f, r := w.Field(), w.Ball().Radius
	return f.Top + r, f.Bottom - r, f.Width() - 2*r
}

// Intercept returns the height at which a ball leaving y with the given
// travel angle arrives after covering distance horizontally, reflecting off
// the top and bottom limits.
func Intercept(angle, y, distance, top, bottom float64) float64 {
	horizontal := math.Max(math.Abs(math.Cos(angle)), minHorizontal)
	slope := math.Sin(angle) / horizontal
	return geom.Fold(y+slope*distance, top, bottom)
}
