// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/save"
	"go-wave-defense/internal/sim"
)

type report struct {
	Games     int          `yaml:"games"`
	Victories int          `yaml:"victories"`
	MeanWave  float64      `yaml:"mean_wave"`
	BestScore int          `yaml:"best_score"`
	Policy    sim.Policy   `yaml:"policy"`
	Results   []sim.Result `yaml:"results"`
}

func main() {
	games := flag.Int("games", 8, "number of games to simulate")
	parallel := flag.Int("parallel", 4, "games run at once")
	seed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	balancePath := flag.String("balance", "", "optional YAML balance override")
	stepMs := flag.Int64("step", 50, "simulated milliseconds per step")
	limit := flag.Duration("limit", 40*time.Minute, "simulated time limit per game")
	out := flag.String("out", "", "write the YAML report here instead of stdout")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	balance, err := config.LoadBalance(*balancePath)
	if err != nil {
		slog.Error("failed to load balance", "error", err)
		os.Exit(1)
	}

	policy := sim.DefaultPolicy()
	results := make([]sim.Result, *games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*parallel)
	for i := range results {
		opts := sim.Options{
			Seed:    *seed + int64(i),
			StepMs:  *stepMs,
			LimitMs: limit.Milliseconds(),
			Policy:  policy,
		}
		g.Go(func() error {
			res, err := sim.Play(gctx, save.NewMemoryStore(), balance, opts)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", opts.Seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	r := summarise(results, policy)
	slog.Info("simulation finished", "games", r.Games, "victories", r.Victories, "mean_wave", r.MeanWave, "best_score", r.BestScore)

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("failed to create report", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}
	enc.Close()
}

func summarise(results []sim.Result, policy sim.Policy) report {
	r := report{Games: len(results), Policy: policy, Results: results}
	if len(results) == 0 {
		return r
	}
	waves := 0
	for _, res := range results {
		if res.Phase == component.PhaseVictory {
			r.Victories++
		}
		waves += res.Wave
		r.BestScore = max(r.BestScore, res.Score)
	}
	r.MeanWave = float64(waves) / float64(len(results))
	return r
}
