package pong

// PaddleState records the geometry at the moment the ball reached a
// paddle's wall.
type PaddleState struct {
	Success        bool
	PaddlePosition float64
	BallAngle      float64
	BallPosition   float64
}
