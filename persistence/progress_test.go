package persistence

import (
	"errors"
	"testing"

	"github.com/quasilyte/gdata"
)

type memoryStore struct {
	items   map[string][]byte
	loadErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string][]byte{}}
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func TestStars(t *testing.T) {
	tests := []struct {
		name  string
		score int
		pairs int
		want  int
	}{
		{"perfect plus half", 450, 3, 3},
		{"exactly pairs", 300, 3, 2},
		{"between", 400, 3, 2},
		{"below pairs", 200, 3, 1},
		{"zero", 0, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stars(tt.score, tt.pairs, 100); got != tt.want {
				t.Errorf("Stars(%d, %d) = %d, want %d", tt.score, tt.pairs, got, tt.want)
			}
		})
	}
}

func TestProgressCompleteLevelKeepsBest(t *testing.T) {
	store := newMemoryStore()
	p, err := NewProgress(store)
	if err != nil {
		t.Fatalf("NewProgress() error = %v", err)
	}
	if p.UnlockedLevel() != 1 {
		t.Fatalf("fresh progress unlocked = %d, want 1", p.UnlockedLevel())
	}

	if err := p.CompleteLevel(1, 300, 3); err != nil {
		t.Fatalf("CompleteLevel() error = %v", err)
	}
	if err := p.CompleteLevel(1, 200, 2); err != nil {
		t.Fatalf("CompleteLevel() error = %v", err)
	}

	if got := p.LevelStars(1); got != 3 {
		t.Errorf("LevelStars(1) = %d, want 3", got)
	}
	if got := p.BestScore(1); got != 300 {
		t.Errorf("BestScore(1) = %d, want 300", got)
	}
	if !p.IsUnlocked(2) || p.IsUnlocked(3) {
		t.Errorf("unlocked = %d, want 2", p.UnlockedLevel())
	}

	reloaded, err := NewProgress(store)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.LevelStars(1) != 3 || reloaded.UnlockedLevel() != 2 {
		t.Errorf("reloaded progress = stars %d unlocked %d", reloaded.LevelStars(1), reloaded.UnlockedLevel())
	}
}

func TestProgressResetAndUnlockAll(t *testing.T) {
	p, _ := NewProgress(newMemoryStore())
	if err := p.UnlockAll(10); err != nil {
		t.Fatalf("UnlockAll() error = %v", err)
	}
	if !p.IsUnlocked(10) {
		t.Error("level 10 should be unlocked")
	}
	_ = p.CompleteLevel(4, 100, 1)

	if err := p.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if p.UnlockedLevel() != 1 || p.LevelStars(4) != 0 {
		t.Errorf("after reset unlocked = %d stars = %d", p.UnlockedLevel(), p.LevelStars(4))
	}
}

func TestProgressLoadFailures(t *testing.T) {
	t.Run("load error starts fresh", func(t *testing.T) {
		store := newMemoryStore()
		store.loadErr = errors.New("disk gone")
		p, err := NewProgress(store)
		if err != nil {
			t.Fatalf("NewProgress() error = %v", err)
		}
		if p.UnlockedLevel() != 1 {
			t.Errorf("unlocked = %d, want 1", p.UnlockedLevel())
		}
	})

	t.Run("corrupt document", func(t *testing.T) {
		store := newMemoryStore()
		store.items[progressKey] = []byte("{not json")
		p, err := NewProgress(store)
		if err == nil {
			t.Fatal("NewProgress() should report corrupt data")
		}
		if p == nil || p.UnlockedLevel() != 1 {
			t.Error("corrupt data should still yield fresh progress")
		}
	})
}

func TestProgressWithGdata(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	m, err := gdata.Open(gdata.Config{AppName: "starlock_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	p, err := NewProgress(m)
	if err != nil {
		t.Fatalf("NewProgress() error = %v", err)
	}
	if err := p.CompleteLevel(2, 500, 3); err != nil {
		t.Fatalf("CompleteLevel() error = %v", err)
	}

	reloaded, err := NewProgress(m)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.BestScore(2) != 500 || reloaded.UnlockedLevel() != 3 {
		t.Errorf("reloaded best = %d unlocked = %d", reloaded.BestScore(2), reloaded.UnlockedLevel())
	}
}
