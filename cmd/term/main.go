// cmd/term/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/audio"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/save"
	"go-wave-defense/internal/termview"
	"go-wave-defense/internal/utils"
)

func main() {
	savePath := flag.String("save", "wave-defense.db", "path of the SQLite save file")
	balancePath := flag.String("balance", "", "optional YAML balance override")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	volume := flag.Float64("volume", -1, "sound volume as a power of two, e.g. -1 is half")
	mute := flag.Bool("mute", false, "start with sound off")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	if err := run(*savePath, *balancePath, *seed, *volume, *mute, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(savePath, balancePath string, seed int64, volume float64, mute bool, logPath string) error {
	// The screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug})))

	balance, err := config.LoadBalance(balancePath)
	if err != nil {
		return err
	}
	store, err := save.OpenSQLite(savePath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := app.NewSession(ctx, store, balance, utils.NewPRNGService(seed))
	if err != nil {
		store.Close()
		return err
	}
	defer session.Close()

	player := audio.NewPlayer(volume)
	player.SetMuted(mute)
	if err := player.Initialize(); err == nil {
		defer player.Close()
	}
	session.Game.EventDispatcher.Subscribe(player, event.AllEvents...)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	loop(ctx, screen, termview.NewController(session))
	return nil
}

func loop(ctx context.Context, screen tcell.Screen, c *termview.Controller) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	start := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if c.Apply(ctx, termview.CommandFor(ev)) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			c.Tick(ctx, time.Since(start).Milliseconds())
			screen.Clear()
			termview.Draw(screen, c)
			screen.Show()
		}
	}
}
