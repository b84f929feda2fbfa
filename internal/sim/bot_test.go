package sim

import (
	"context"
	"errors"
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/save"
)

func shortRun(seed int64) Options {
	return Options{Seed: seed, StepMs: 50, LimitMs: 90_000, Policy: DefaultPolicy()}
}

func TestPlayIsReproducible(t *testing.T) {
	ctx := context.Background()
	a, err := Play(ctx, save.NewMemoryStore(), config.DefaultBalance(), shortRun(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Play(ctx, save.NewMemoryStore(), config.DefaultBalance(), shortRun(7))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestPlayMakesProgress(t *testing.T) {
	store := save.NewMemoryStore()
	res, err := Play(context.Background(), store, config.DefaultBalance(), shortRun(3))
	if err != nil {
		t.Fatal(err)
	}
	if res.Wave < 1 || res.Units == 0 || res.Kills == 0 {
		t.Fatalf("bot made no progress: %+v", res)
	}
	if res.Phase.Terminal() {
		return
	}
	if res.ElapsedMs != 90_000 {
		t.Fatalf("run stopped at %d", res.ElapsedMs)
	}
	// the limit is not an ending, so nothing is recorded
	rec, _ := store.Load(context.Background())
	if rec.HighScore != 0 || res.NewHigh {
		t.Fatalf("unfinished game recorded: %+v", rec)
	}
}

func TestPlayRecordsEndedGame(t *testing.T) {
	b := config.DefaultBalance()
	b.MaxEnemies = 5
	store := save.NewMemoryStore()
	res, err := Play(context.Background(), store, b, Options{Seed: 1, StepMs: 50, LimitMs: 600_000})
	if err != nil {
		t.Fatal(err)
	}
	if res.Phase != component.PhaseGameOver {
		t.Fatalf("phase = %s", res.Phase)
	}
	rec, _ := store.Load(context.Background())
	if rec.TotalGold != res.GoldEarned || rec.HighScore != res.Score {
		t.Fatalf("record %+v does not match %+v", rec, res)
	}
}

func TestPlayHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Play(ctx, save.NewMemoryStore(), config.DefaultBalance(), shortRun(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestPlayRejectsBadStep(t *testing.T) {
	if _, err := Play(context.Background(), save.NewMemoryStore(), config.DefaultBalance(), Options{}); err == nil {
		t.Fatal("zero step accepted")
	}
}
