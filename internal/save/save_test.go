package save

import (
	"context"
	"path/filepath"
	"testing"

	"go-wave-defense/internal/defs"
)

func TestDecodeNormalises(t *testing.T) {
	r, err := Decode([]byte(`{"roster":["cmd_crit","ghost","cmd_crit"],"selected_commander":"ghost","high_score":-5}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(r.Roster) != 2 || r.Roster[0] != defs.DefaultCommanderID || r.Roster[1] != "cmd_crit" {
		t.Errorf("roster = %v", r.Roster)
	}
	if r.SelectedCommander != defs.DefaultCommanderID {
		t.Errorf("selected = %q, want default", r.SelectedCommander)
	}
	if r.HighScore != 0 {
		t.Errorf("high score = %d, want 0", r.HighScore)
	}

	if _, err := Decode([]byte("{not json")); err == nil {
		t.Fatal("expected malformed error")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "save.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	r, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if r.SelectedCommander != defs.DefaultCommanderID || r.HighScore != 0 {
		t.Fatalf("fresh store should load default, got %+v", r)
	}

	r.Roster = append(r.Roster, "cmd_berserk")
	r.SelectedCommander = "cmd_berserk"
	r.HighScore = 1234
	r.TotalGold = 99
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	r.HighScore = 2000
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save again: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.HighScore != 2000 || got.TotalGold != 99 || got.SelectedCommander != "cmd_berserk" {
		t.Errorf("loaded %+v", got)
	}
}

func TestSQLiteStoreMalformedFallsBack(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "save.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if err := s.writeRaw(ctx, "garbage{"); err != nil {
		t.Fatal(err)
	}
	r, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.SelectedCommander != defs.DefaultCommanderID || len(r.Roster) != 1 {
		t.Errorf("expected default record, got %+v", r)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.SetRaw([]byte("[]"))
	r, err := m.Load(ctx)
	if err != nil || r.SelectedCommander != defs.DefaultCommanderID {
		t.Fatalf("malformed blob: %+v, %v", r, err)
	}

	r.HighScore = 10
	if err := m.Save(ctx, r); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Load(ctx); got.HighScore != 10 {
		t.Errorf("high score = %d", got.HighScore)
	}
}
