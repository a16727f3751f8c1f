package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"pong/internal/core"
	"pong/internal/pong"
)

// AIAuto picks a random non-human controller each round.
const AIAuto = "auto"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config represents the command-line and environment parameters for a game.
type Config struct {
	Scale       float64
	TPS         int
	Seed        int64
	BallSpeed   float64
	BallRadius  float64
	PaddleSpeed float64
	Rounded     bool
	LeftAI      string
	RightAI     string
	Mute        bool
}

// Default returns a Config populated with the standard match settings.
func Default() *Config {
	m := pong.DefaultConfig()
	return &Config{
		Scale:       0.5,
		TPS:         60,
		BallSpeed:   m.BallSpeed,
		BallRadius:  m.BallRadius,
		PaddleSpeed: m.MaxPaddleSpeed,
		Rounded:     m.RoundedPaddles,
		LeftAI:      m.LeftAI.String(),
		RightAI:     m.RightAI.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet. Current values
// become the flag defaults, so call LoadEnv first.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale relative to 1920x1080")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 seeds from the clock)")
	fs.Float64Var(&c.BallSpeed, "ball-speed", c.BallSpeed, "ball launch speed per tick")
	fs.Float64Var(&c.BallRadius, "ball-radius", c.BallRadius, "ball radius")
	fs.Float64Var(&c.PaddleSpeed, "paddle-speed", c.PaddleSpeed, "max paddle speed per tick")
	fs.BoolVar(&c.Rounded, "rounded", c.Rounded, "deflect by contact offset instead of mirroring")
	fs.StringVar(&c.LeftAI, "left", c.LeftAI, "left controller: human, random, pure, lead or auto")
	fs.StringVar(&c.RightAI, "right", c.RightAI, "right controller: human, random, pure, lead or auto")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "start with sound muted")
}

// LoadEnv reads .env style files (".env" when none are given) into the
// process environment and then applies any PONG_* variables. Missing files
// are ignored; variables already set in the environment win over files.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load env: %w", err)
	}
	r := envReader{}
	c.Scale = r.getEnvFloat("PONG_SCALE", c.Scale)
	c.TPS = r.getEnvInt("PONG_TPS", c.TPS)
	c.Seed = r.getEnvInt64("PONG_SEED", c.Seed)
	c.BallSpeed = r.getEnvFloat("PONG_BALL_SPEED", c.BallSpeed)
	c.BallRadius = r.getEnvFloat("PONG_BALL_RADIUS", c.BallRadius)
	c.PaddleSpeed = r.getEnvFloat("PONG_PADDLE_SPEED", c.PaddleSpeed)
	c.Rounded = r.getEnvBool("PONG_ROUNDED", c.Rounded)
	c.LeftAI = r.getEnv("PONG_LEFT_AI", c.LeftAI)
	c.RightAI = r.getEnv("PONG_RIGHT_AI", c.RightAI)
	c.Mute = r.getEnvBool("PONG_MUTE", c.Mute)
	return errors.Join(r.errs...)
}

// Validate reports every out-of-range field at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}
	if !positive(c.Scale) {
		bad("scale must be positive, got %v", c.Scale)
	}
	if c.TPS <= 0 {
		bad("tps must be positive, got %d", c.TPS)
	}
	if !positive(c.BallSpeed) {
		bad("ball speed must be positive, got %v", c.BallSpeed)
	}
	if math.IsNaN(c.BallRadius) || math.IsInf(c.BallRadius, 0) || c.BallRadius < 0 {
		bad("ball radius must be a non-negative number, got %v", c.BallRadius)
	}
	if !positive(c.PaddleSpeed) {
		bad("paddle speed must be positive, got %v", c.PaddleSpeed)
	}
	for _, ai := range []string{c.LeftAI, c.RightAI} {
		if _, err := parseAI(ai, nil); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		}
	}
	if err := c.matchConfig(pong.AIHuman, pong.AIHuman).Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}

// positive reports whether v is a finite number above zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Match builds the round configuration. AIAuto entries are resolved with rng.
func (c *Config) Match(rng *core.RNG) (pong.Config, error) {
	left, err := parseAI(c.LeftAI, rng)
	if err != nil {
		return pong.Config{}, fmt.Errorf("left: %w", err)
	}
	right, err := parseAI(c.RightAI, rng)
	if err != nil {
		return pong.Config{}, fmt.Errorf("right: %w", err)
	}
	return c.matchConfig(left, right), nil
}

func (c *Config) matchConfig(left, right pong.AIType) pong.Config {
	m := pong.DefaultConfig()
	m.BallSpeed = c.BallSpeed
	m.BallRadius = c.BallRadius
	m.MaxPaddleSpeed = c.PaddleSpeed
	m.RoundedPaddles = c.Rounded
	m.LeftAI = left
	m.RightAI = right
	return m
}

func parseAI(s string, rng *core.RNG) (pong.AIType, error) {
	if strings.EqualFold(strings.TrimSpace(s), AIAuto) {
		if rng == nil {
			return pong.AIRandom, nil
		}
		return pong.RandomAIType(rng), nil
	}
	return pong.ParseAIType(s)
}

type envReader struct {
	errs []error
}

func (r *envReader) lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *envReader) fail(key, value string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, value, err))
}

func (r *envReader) getEnv(key, fallback string) string {
	if v, ok := r.lookup(key); ok {
		return v
	}
	return fallback
}

func (r *envReader) getEnvInt(key string, fallback int) int {
	v, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return fallback
	}
	return n
}

func (r *envReader) getEnvInt64(key string, fallback int64) int64 {
	v, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(key, v, err)
		return fallback
	}
	return n
}

func (r *envReader) getEnvFloat(key string, fallback float64) float64 {
	v, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return fallback
	}
	return f
}

func (r *envReader) getEnvBool(key string, fallback bool) bool {
	v, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return fallback
	}
	return b
}
