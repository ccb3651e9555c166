// Package persistence stores level progress and endless-mode highscores.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// ItemStore is the key/value storage progress is saved to. *gdata.Manager
// satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// LevelRecord is the best result on one level.
type LevelRecord struct {
	Stars     int `json:"stars"`
	BestScore int `json:"bestScore"`
}

// SavedProgress is the progress document stored on disk.
type SavedProgress struct {
	Unlocked int                 `json:"unlocked"`
	Levels   map[int]LevelRecord `json:"levels"`
}

// Progress tracks stars, best scores and the highest unlocked level.
type Progress struct {
	store ItemStore
	data  SavedProgress
}

// OpenProgress opens the gdata-backed progress store for an app.
func OpenProgress(appName string) (*Progress, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("persistence: open progress store: %w", err)
	}
	return NewProgress(m)
}

// NewProgress loads progress from store. A missing or unreadable document
// starts fresh with level 1 unlocked.
func NewProgress(store ItemStore) (*Progress, error) {
	p := &Progress{store: store}
	p.resetData()

	data, err := store.LoadItem(progressKey)
	if err != nil {
		log.Warn("could not load progress, starting fresh", "err", err)
		return p, nil
	}
	if len(data) == 0 {
		return p, nil
	}

	var saved SavedProgress
	if err := json.Unmarshal(data, &saved); err != nil {
		return p, fmt.Errorf("persistence: parse progress: %w", err)
	}
	if saved.Unlocked < 1 {
		saved.Unlocked = 1
	}
	if saved.Levels == nil {
		saved.Levels = map[int]LevelRecord{}
	}
	p.data = saved
	return p, nil
}

func (p *Progress) resetData() {
	p.data = SavedProgress{
		Unlocked: 1,
		Levels:   map[int]LevelRecord{},
	}
}

// Stars rates a level score: 3 stars at 1.5x the pair score, 2 at the pair
// score, otherwise 1.
func Stars(score, pairs, pointsPerMatch int) int {
	perfect := pairs * pointsPerMatch
	switch {
	case float64(score) >= 1.5*float64(perfect):
		return 3
	case score >= perfect:
		return 2
	}
	return 1
}

// CompleteLevel records a won level, keeping the best stars and score, and
// unlocks the next level.
func (p *Progress) CompleteLevel(level, score, stars int) error {
	record := p.data.Levels[level]
	if stars > record.Stars {
		record.Stars = stars
	}
	if score > record.BestScore {
		record.BestScore = score
	}
	p.data.Levels[level] = record
	if level+1 > p.data.Unlocked {
		p.data.Unlocked = level + 1
	}
	return p.save()
}

// LevelStars returns the best stars on a level, 0 when never completed.
func (p *Progress) LevelStars(level int) int {
	return p.data.Levels[level].Stars
}

// BestScore returns the best score on a level.
func (p *Progress) BestScore(level int) int {
	return p.data.Levels[level].BestScore
}

// UnlockedLevel returns the highest playable level.
func (p *Progress) UnlockedLevel() int {
	return p.data.Unlocked
}

func (p *Progress) IsUnlocked(level int) bool {
	return level >= 1 && level <= p.data.Unlocked
}

// UnlockAll makes every level up to total playable.
func (p *Progress) UnlockAll(total int) error {
	if total > p.data.Unlocked {
		p.data.Unlocked = total
	}
	return p.save()
}

// Reset forgets every record.
func (p *Progress) Reset() error {
	p.resetData()
	return p.save()
}

func (p *Progress) save() error {
	data, err := json.Marshal(p.data)
	if err != nil {
		return fmt.Errorf("persistence: serialize progress: %w", err)
	}
	if err := p.store.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("persistence: save progress: %w", err)
	}
	return nil
}
