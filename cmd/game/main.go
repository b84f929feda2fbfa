// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/audio"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/save"
	"go-wave-defense/internal/state"
	"go-wave-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine *state.StateMachine
	start        time.Time
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(time.Since(a.start).Milliseconds())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

type options struct {
	savePath    string
	balancePath string
	seed        int64
	volume      float64
	mute        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.savePath, "save", "wave-defense.db", "path of the SQLite save file")
	flag.StringVar(&opts.balancePath, "balance", "", "optional YAML balance override")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 uses the clock")
	flag.Float64Var(&opts.volume, "volume", -1, "sound volume as a power of two")
	flag.BoolVar(&opts.mute, "mute", false, "start with sound off")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(context.Background(), opts); err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	balance, err := config.LoadBalance(opts.balancePath)
	if err != nil {
		return fmt.Errorf("failed to load balance: %w", err)
	}
	store, err := save.OpenSQLite(opts.savePath)
	if err != nil {
		return fmt.Errorf("failed to open save: %w", err)
	}

	session, err := app.NewSession(ctx, store, balance, utils.NewPRNGService(opts.seed))
	if err != nil {
		store.Close()
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.Close()

	player := audio.NewPlayer(opts.volume)
	player.SetMuted(opts.mute)
	if err := player.Initialize(); err == nil {
		defer player.Close()
	}
	session.Game.EventDispatcher.Subscribe(player, event.AllEvents...)

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(ctx, sm, session, basicfont.Face7x13))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Defense")
	ebiten.SetTPS(config.TargetTPS)
	return ebiten.RunGame(&AppGame{stateMachine: sm, start: time.Now()})
}
