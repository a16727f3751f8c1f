// Package tournament plays headless AI-versus-AI matches on a worker pool.
package tournament

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"pong/internal/core"
	"pong/internal/pong"
	_ "pong/internal/pong/control"
)

// ErrNoRounds is returned when there is nothing to play.
var ErrNoRounds = errors.New("tournament: nothing to play")

// Contenders are the strategies that take part by default.
var Contenders = []pong.AIType{pong.AIRandom, pong.AIPurePursuit, pong.AILeadPursuit}

// Pairing is one ordered left/right matchup.
type Pairing struct {
	Left, Right pong.AIType
}

func (p Pairing) String() string { return p.Left.String() + " vs " + p.Right.String() }

// Pairings returns every ordered pair, self-play included.
func Pairings(types []pong.AIType) []Pairing {
	out := make([]Pairing, 0, len(types)*len(types))
	for _, l := range types {
		for _, r := range types {
			out = append(out, Pairing{Left: l, Right: r})
		}
	}
	return out
}

// Score is one side's tally.
type Score struct {
	Hits, Attempts int
}

func (s Score) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Attempts)
}

// Result is the outcome of one round.
type Result struct {
	Pair        Pairing
	Round       int
	Seed        int64
	Left, Right Score
}

// Options control a tournament. A zero Base plays on the default field and
// empty Types means Contenders.
type Options struct {
	Frames  int
	Rounds  int
	Workers int
	Seed    int64
	Base    pong.Config
	Types   []pong.AIType
}

type job struct {
	index int
	pair  Pairing
	round int
	seed  int64
}

// Play runs a single round for frames ticks.
func Play(base pong.Config, p Pairing, seed int64, frames int) (Result, error) {
	cfg := base
	cfg.LeftAI = p.Left
	cfg.RightAI = p.Right
	w, err := pong.NewWorld(cfg, pong.Env{RNG: core.NewRNG(seed)})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", p, err)
	}
	for i := 0; i < frames; i++ {
		w.Update()
	}
	return Result{
		Pair:  p,
		Seed:  seed,
		Left:  Score{Hits: w.Left().Hits(), Attempts: w.Left().Attempts()},
		Right: Score{Hits: w.Right().Hits(), Attempts: w.Right().Attempts()},
	}, nil
}

// Run plays every pairing Rounds times. Results come back in pairing and
// round order regardless of scheduling, and identical options give
// identical results.
func Run(opts Options) ([]Result, error) {
	types := opts.Types
	if len(types) == 0 {
		types = Contenders
	}
	if opts.Rounds <= 0 || opts.Frames < 0 {
		return nil, fmt.Errorf("%w: rounds=%d frames=%d", ErrNoRounds, opts.Rounds, opts.Frames)
	}
	base := opts.Base
	if base == (pong.Config{}) {
		base = pong.DefaultConfig()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var queue []job
	for _, pair := range Pairings(types) {
		for round := 0; round < opts.Rounds; round++ {
			queue = append(queue, job{
				index: len(queue),
				pair:  pair,
				round: round,
				seed:  opts.Seed + int64(len(queue)),
			})
		}
	}

	type outcome struct {
		index int
		res   Result
		err   error
	}
	jobs := make(chan job)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := Play(base, j.pair, j.seed, opts.Frames)
				res.Round = j.round
				results <- outcome{index: j.index, res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range queue {
			jobs <- j
		}
		close(jobs)
	}()

	all := make([]Result, len(queue))
	var errs []error
	for o := range results {
		if o.err != nil {
			errs = append(errs, o.err)
			continue
		}
		all[o.index] = o.res
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return all, nil
}

// Standing is a strategy's combined tally over all its rounds and sides.
type Standing struct {
	AI pong.AIType
	Score
	Rounds int
}

// Standings totals results per strategy, best accuracy first. Ties keep
// the strategy order.
func Standings(results []Result) []Standing {
	byAI := map[pong.AIType]*Standing{}
	var order []pong.AIType
	add := func(ai pong.AIType, s Score) {
		st, ok := byAI[ai]
		if !ok {
			st = &Standing{AI: ai}
			byAI[ai] = st
			order = append(order, ai)
		}
		st.Hits += s.Hits
		st.Attempts += s.Attempts
		st.Rounds++
	}
	for _, r := range results {
		add(r.Pair.Left, r.Left)
		add(r.Pair.Right, r.Right)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	out := make([]Standing, 0, len(order))
	for _, ai := range order {
		out = append(out, *byAI[ai])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Accuracy() > out[j].Accuracy() })
	return out
}
