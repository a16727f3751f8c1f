package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"pong/internal/config"
	"pong/internal/core"
	"pong/internal/pong"
	"pong/internal/tournament"
)

func main() {
	frames := flag.Int("frames", 3600, "ticks to simulate per round")
	rounds := flag.Int("rounds", 4, "rounds per pairing")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	realtime := flag.Bool("realtime", false, "pace a single match at -tps and print the running score (Enter pauses)")

	cfg := config.Default()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.LeftAI = config.AIAuto
	cfg.RightAI = config.AIAuto
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := watch(ctx, cfg, *frames, lines(os.Stdin)); err != nil {
			log.Fatal(err)
		}
		return
	}

	base, err := cfg.Match(core.NewRNG(cfg.Seed))
	if err != nil {
		log.Fatal(err)
	}
	pairs := tournament.Pairings(tournament.Contenders)
	fmt.Printf("Playing %d pairings x %d rounds (%d workers, %d frames, seed %d)\n",
		len(pairs), *rounds, *workers, *frames, cfg.Seed)

	start := time.Now()
	results, err := tournament.Run(tournament.Options{
		Frames:  *frames,
		Rounds:  *rounds,
		Workers: *workers,
		Seed:    cfg.Seed,
		Base:    base,
	})
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nRounds (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, r := range results {
		fmt.Printf("%-16s round %d  left %4d/%-4d (%.2f)  right %4d/%-4d (%.2f)\n",
			r.Pair, r.Round+1,
			r.Left.Hits, r.Left.Attempts, r.Left.Accuracy(),
			r.Right.Hits, r.Right.Attempts, r.Right.Accuracy())
	}

	fmt.Printf("\nStandings:\n")
	for i, st := range tournament.Standings(results) {
		fmt.Printf("%d) %-8s accuracy=%.3f hits=%d attempts=%d rounds=%d\n",
			i+1, st.AI, st.Accuracy(), st.Hits, st.Attempts, st.Rounds)
	}
}

// lines forwards a signal for every line read from f.
func lines(f *os.File) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		defer close(out)
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			out <- struct{}{}
		}
	}()
	return out
}

// watch plays one match at the configured tick rate until frames ticks have
// run or ctx is cancelled, and returns the number of ticks played. Each value
// on toggle pauses or resumes the clock.
func watch(ctx context.Context, cfg *config.Config, frames int, toggle <-chan struct{}) (int, error) {
	rng := core.NewRNG(cfg.Seed)
	m, err := cfg.Match(rng)
	if err != nil {
		return 0, err
	}
	w, err := pong.NewWorld(m, pong.Env{RNG: rng})
	if err != nil {
		return 0, err
	}
	fmt.Printf("Watching %s vs %s at %d tps (seed %d)\n", m.LeftAI, m.RightAI, cfg.TPS, cfg.Seed)

	clock := core.NewFixedStep(cfg.TPS)
	ticker := time.NewTicker(clock.Step() / 4)
	defer ticker.Stop()

	report := func() {
		l, r := w.Left(), w.Right()
		fmt.Printf("frame %6d  %s %d/%d  %s %d/%d\n",
			w.Frame(), m.LeftAI, l.Hits(), l.Attempts(), m.RightAI, r.Hits(), r.Attempts())
	}
	for w.Frame() < frames {
		select {
		case <-ctx.Done():
			report()
			return w.Frame(), nil
		case _, ok := <-toggle:
			if !ok {
				toggle = nil
				continue
			}
			if clock.Paused() {
				clock.Resume()
				fmt.Println("resumed")
			} else {
				clock.Pause()
				fmt.Println("paused")
				report()
			}
			continue
		case <-ticker.C:
		}
		for clock.ShouldStep() && w.Frame() < frames {
			w.Update()
			if w.Frame()%cfg.TPS == 0 {
				report()
			}
		}
	}
	report()
	return w.Frame(), nil
}
