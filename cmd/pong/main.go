//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/app"
	"pong/internal/audio"
	"pong/internal/config"
	"pong/internal/core"
	"pong/internal/input"
	"pong/internal/pong"
	_ "pong/internal/pong/control"
	"pong/internal/screen"
)

func main() {
	cfg := config.Default()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	speaker := audio.NewSpeaker()
	if err := speaker.Init(); err != nil {
		log.Printf("sound disabled: %v", err)
	}
	defer speaker.Close()
	speaker.SetMuted(cfg.Mute)

	keys := input.NewKeyboard()
	rng := core.NewRNG(cfg.Seed)
	env := pong.Env{Input: keys, Audio: speaker, RNG: rng}
	newMatch := func() (*pong.World, error) {
		m, err := cfg.Match(rng)
		if err != nil {
			return nil, err
		}
		log.Printf("new match: %s vs %s", m.LeftAI, m.RightAI)
		return pong.NewWorld(m, env)
	}

	size := core.Canvas1080p
	stack := screen.NewStack(screen.NewMain(size, newMatch))
	game := app.New(stack, keys, speaker, size, cfg.BallRadius)

	log.Printf("pong: seed=%d tps=%d scale=%.2f left=%s right=%s", cfg.Seed, cfg.TPS, cfg.Scale, cfg.LeftAI, cfg.RightAI)
	ebiten.SetWindowTitle("pong")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(math.Round(float64(size.W)*cfg.Scale)), int(math.Round(float64(size.H)*cfg.Scale)))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
