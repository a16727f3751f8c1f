package pong

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pong/internal/core"
)

// ErrUnknownController is returned when no factory is registered for an AIType.
var ErrUnknownController = errors.New("pong: unknown paddle controller")

// Controller decides where a paddle should go each frame by calling
// p.GoTo. It receives non-owning handles to its paddle and the world.
type Controller interface {
	Update(p *Paddle, w *World)
}

// ControllerFunc adapts a plain function to the Controller interface.
type ControllerFunc func(p *Paddle, w *World)

func (f ControllerFunc) Update(p *Paddle, w *World) { f(p, w) }

// AIType enumerates the available controller strategies.
type AIType int

const (
	AIHuman AIType = iota
	AIRandom
	AIPurePursuit
	AILeadPursuit
)

var aiNames = map[AIType]string{
	AIHuman:       "human",
	AIRandom:      "random",
	AIPurePursuit: "pure",
	AILeadPursuit: "lead",
}

func (a AIType) String() string {
	if name, ok := aiNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AIType(%d)", int(a))
}

// ParseAIType converts a name to an AIType. Matching is case-insensitive and
// accepts both the short and the long strategy names.
func ParseAIType(s string) (AIType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return AIHuman, nil
	case "random":
		return AIRandom, nil
	case "pure", "purepursuit", "pure-pursuit":
		return AIPurePursuit, nil
	case "lead", "leadpursuit", "lead-pursuit":
		return AILeadPursuit, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownController, s)
}

// RandomAIType picks one of the non-human strategies.
func RandomAIType(rng *core.RNG) AIType {
	switch rng.IntN(3) {
	case 0:
		return AIPurePursuit
	case 1:
		return AIRandom
	default:
		return AILeadPursuit
	}
}

// Env carries the collaborators a match talks to. Nil members are replaced
// with no-op implementations and a time-seeded RNG.
type Env struct {
	Input VerticalInput
	Audio Audio
	RNG   *core.RNG
}

func (e Env) withDefaults() Env {
	if e.Input == nil {
		e.Input = StillInput{}
	}
	if e.Audio == nil {
		e.Audio = NopAudio{}
	}
	if e.RNG == nil {
		e.RNG = core.NewRNG(time.Now().UnixNano())
	}
	return e
}

// ControllerFactory constructs a Controller for a new match.
type ControllerFactory func(env Env) Controller

var controllers = map[AIType]ControllerFactory{}

// RegisterController adds a controller factory under the provided type.
func RegisterController(kind AIType, f ControllerFactory) {
	if f == nil {
		return
	}
	controllers[kind] = f
}

// Controllers exposes the registry of available controller factories.
func Controllers() map[AIType]ControllerFactory {
	return controllers
}

// NewController builds a controller of the given type.
func NewController(kind AIType, env Env) (Controller, error) {
	f, ok := controllers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownController, kind)
	}
	return f(env.withDefaults()), nil
}
