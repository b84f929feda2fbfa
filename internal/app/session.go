// internal/app/session.go
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/save"
	"go-wave-defense/internal/utils"
)

var (
	ErrUnknownCommander = errors.New("unknown commander")
	ErrCommanderLocked  = errors.New("commander not in roster")
	ErrRosterComplete   = errors.New("every commander is already recruited")
)

// Session ties a game to the persisted save record and the commander roster.
type Session struct {
	ID     string
	Game   *Game
	store  save.Store
	record save.Record
	ended  bool
}

// NewSession loads the save record and starts a game with the selected
// commander.
func NewSession(ctx context.Context, store save.Store, balance *config.Balance, rng *utils.PRNGService) (*Session, error) {
	rec, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}
	s := &Session{
		ID:     uuid.NewString(),
		store:  store,
		record: rec,
	}
	s.Game = NewGame(balance, defs.LookupCommander(rec.SelectedCommander), rng)
	slog.InfoContext(ctx, "session started",
		"session", s.ID,
		"commander", rec.SelectedCommander,
		"high_score", rec.HighScore,
		"seed", rng.Seed())
	return s, nil
}

// Record returns a copy of the current save record.
func (s *Session) Record() save.Record {
	r := s.record
	r.Roster = append([]string(nil), s.record.Roster...)
	return r
}

// UnlockCommander adds a commander to the roster and saves.
func (s *Session) UnlockCommander(ctx context.Context, id string) error {
	if defs.LookupCommander(id) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommander, id)
	}
	if s.record.Owns(id) {
		return nil
	}
	next := s.Record()
	next.Roster = append(next.Roster, id)
	return s.write(ctx, next)
}

// RecruitCommander adds a random commander the player does not own yet to
// the roster and saves. It returns ErrRosterComplete when nothing is left.
func (s *Session) RecruitCommander(ctx context.Context) (*defs.Commander, error) {
	var unowned []string
	for _, id := range defs.CommanderOrder {
		if !s.record.Owns(id) {
			unowned = append(unowned, id)
		}
	}
	if len(unowned) == 0 {
		return nil, ErrRosterComplete
	}
	c := defs.LookupCommander(utils.Pick(s.Game.Rng, unowned))
	if err := s.UnlockCommander(ctx, c.ID); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "commander recruited", "session", s.ID, "commander", c.ID)
	return c, nil
}

// SelectCommander picks a roster commander for the next game and saves.
func (s *Session) SelectCommander(ctx context.Context, id string) error {
	c := defs.LookupCommander(id)
	if c == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommander, id)
	}
	if !s.record.Owns(id) {
		return fmt.Errorf("%w: %s", ErrCommanderLocked, id)
	}
	next := s.Record()
	next.SelectedCommander = id
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.Game.SetCommander(c)
	return nil
}

// NextCommander selects the roster commander after the current one.
func (s *Session) NextCommander(ctx context.Context) (string, error) {
	roster := s.record.Roster
	if len(roster) == 0 {
		return "", fmt.Errorf("%w: empty roster", ErrCommanderLocked)
	}
	next := roster[(slices.Index(roster, s.record.SelectedCommander)+1)%len(roster)]
	if err := s.SelectCommander(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Finish records the result of an ended game: the high score if it improved
// and the gold earned. It reports whether a new high score was set. Calling
// it again for the same game does nothing.
func (s *Session) Finish(ctx context.Context) (bool, error) {
	w := s.Game.World
	if s.ended || !w.Phase.Terminal() {
		return false, nil
	}
	s.ended = true

	next := s.Record()
	newHigh := w.Score > next.HighScore
	if newHigh {
		next.HighScore = w.Score
	}
	next.TotalGold += w.GoldEarned
	if err := s.write(ctx, next); err != nil {
		return newHigh, err
	}
	slog.InfoContext(ctx, "session finished",
		"session", s.ID,
		"phase", w.Phase,
		"wave", w.Wave,
		"score", w.Score,
		"new_high", newHigh)
	return newHigh, nil
}

// Restart begins a new game with the selected commander.
func (s *Session) Restart() {
	s.Game.Reset()
	s.ended = false
}

func (s *Session) write(ctx context.Context, r save.Record) error {
	if err := s.store.Save(ctx, r); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	s.record = r
	return nil
}

// Close releases the save store.
func (s *Session) Close() error {
	return s.store.Close()
}
