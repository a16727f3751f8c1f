package core

// Size describes the logical dimensions of the render target.
type Size struct {
	W int
	H int
}

// Canvas1080p is the logical resolution the match is laid out on.
var Canvas1080p = Size{W: 1920, H: 1080}
