// Package engine is the progression rule core: it grades level attempts,
// merges them into the player record, evaluates badge predicates and answers
// unlock queries. It is the single owner of the live player record; all
// mutation goes through it.
package engine

import (
	"log"
	"os"
	"sync"

	"github.com/ecoheroes/ecoheroes-go/internal/content"
	"github.com/ecoheroes/ecoheroes-go/internal/progress"
	"github.com/ecoheroes/ecoheroes-go/internal/store"
)

// AttemptLog receives every graded attempt. Implemented by store.SQLiteDB.
type AttemptLog interface {
	LogAttempt(store.Attempt) error
}

// Engine owns the live player record. Mutations are atomic under the lock;
// readers always get cloned snapshots. Persistence after a mutation is
// asynchronous but ordered: snapshots are handed to a single writer that
// drains them newest-first, so the last durable write always carries the
// newest state. The in-memory record is authoritative the moment the
// mutating call returns, and a failed write is logged and swallowed.
type Engine struct {
	mu       sync.RWMutex
	data     progress.PlayerData
	loaded   bool
	players  *store.PlayerStore
	attempts AttemptLog
	logger   *log.Logger
	wg       sync.WaitGroup

	// The pending snapshot is the newest unsaved state; the single writer
	// goroutine drains it. Newer snapshots replace older unsaved ones.
	saveMu  sync.Mutex
	pending *progress.PlayerData
	saving  bool
}

// New creates an engine over the given gateway. The attempt log may be nil.
// The engine starts with default data and Loading() true until Load runs.
func New(players *store.PlayerStore, attempts AttemptLog) *Engine {
	return &Engine{
		data:     progress.Default(),
		players:  players,
		attempts: attempts,
		logger:   log.New(os.Stdout, "[ENGINE] ", log.LstdFlags),
	}
}

// Load reads the stored record into memory. Called once at startup; until it
// returns, queries answer from defaults and report the loading status.
func (e *Engine) Load() {
	data := e.players.Load()
	e.mu.Lock()
	e.data = data
	e.loaded = true
	e.mu.Unlock()
}

// Loading reports whether the startup load has not yet completed. Callers
// must not treat unlock results as final while this is true.
func (e *Engine) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.loaded
}

// Snapshot returns a copy of the player record and whether it is loaded.
func (e *Engine) Snapshot() (progress.PlayerData, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.data.Clone(), e.loaded
}

// TotalStars returns the global star total across all levels.
func (e *Engine) TotalStars() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.data.TotalStars()
}

// CompleteLevel grades an attempt, merges it into the record and returns the
// stars earned by this attempt (not the stored best).
//
// Merge rules: stars and high score keep their maximum, completed flips to
// true for any attempt. Green score grows by 5 per star of this attempt even
// if the stored best did not move; correct answers accumulate uncapped.
// Badges are then evaluated in catalog order. The update is visible to
// queries immediately; persistence and the attempt log run asynchronously.
func (e *Engine) CompleteLevel(levelID string, score, maxScore, correctAnswers int) int {
	stars := Grade(score, maxScore)

	e.mu.Lock()
	lp := e.data.LevelProgress[levelID]
	if stars > lp.Stars {
		lp.Stars = stars
	}
	lp.Completed = true
	if score > lp.HighScore {
		lp.HighScore = score
	}
	e.data.LevelProgress[levelID] = lp

	e.data.GreenScore += stars * greenScorePerStar
	e.data.TotalCorrectAnswers += correctAnswers

	e.evaluateBadges(stars)
	snap := e.data.Clone()
	e.mu.Unlock()

	e.persistAsync(snap)
	e.logAttemptAsync(store.Attempt{
		LevelID:        levelID,
		Score:          score,
		MaxScore:       maxScore,
		CorrectAnswers: correctAnswers,
		Stars:          stars,
	})

	return stars
}

// evaluateBadges grants every badge whose condition now holds. Must be
// called with the write lock held. Each grant is idempotent, so re-running
// the sweep never changes membership.
func (e *Engine) evaluateBadges(attemptStars int) {
	for _, b := range content.Badges {
		switch b.Condition.Kind {
		case content.ConditionFirstStar:
			if attemptStars > 0 {
				e.data.AddBadge(b.ID)
			}
		case content.ConditionPerfectLevel:
			if attemptStars == 3 {
				e.data.AddBadge(b.ID)
			}
		case content.ConditionCorrectAnswers:
			if e.data.TotalCorrectAnswers >= b.Condition.Threshold {
				e.data.AddBadge(b.ID)
			}
		case content.ConditionGreenScore:
			if e.data.GreenScore >= b.Condition.Threshold {
				e.data.AddBadge(b.ID)
			}
		case content.ConditionWorldComplete:
			if e.worldCompleted(b.Condition.WorldID) {
				e.data.AddBadge(b.ID)
			}
		case content.ConditionAllComplete:
			if e.allCompleted() {
				e.data.AddBadge(b.ID)
			}
		}
	}
}

func (e *Engine) worldCompleted(worldID string) bool {
	levels := content.LevelsForWorld(worldID)
	if len(levels) == 0 {
		return false
	}
	for _, l := range levels {
		if !e.data.LevelProgress[l.ID].Completed {
			return false
		}
	}
	return true
}

func (e *Engine) allCompleted() bool {
	for _, l := range content.Levels {
		if !e.data.LevelProgress[l.ID].Completed {
			return false
		}
	}
	return true
}

// WorldUnlocked reports whether the global star total in a snapshot meets
// the world's gate. Unknown world ids are locked. Pure function of its
// arguments, so callers holding one snapshot get unlock answers consistent
// with that snapshot's star counts.
func WorldUnlocked(data progress.PlayerData, worldID string) bool {
	w := content.WorldByID(worldID)
	if w == nil {
		return false
	}
	return data.TotalStars() >= w.StarsToUnlock
}

// LevelUnlocked reports whether a level is playable in a snapshot: its world
// must be unlocked and the star sum within that world must meet the level's
// gate. Star totals never combine across worlds here. Unknown ids are
// locked.
func LevelUnlocked(data progress.PlayerData, levelID string) bool {
	lvl := content.LevelByID(levelID)
	if lvl == nil {
		return false
	}
	if !WorldUnlocked(data, lvl.WorldID) {
		return false
	}
	worldStars := 0
	for _, l := range content.LevelsForWorld(lvl.WorldID) {
		worldStars += data.LevelProgress[l.ID].Stars
	}
	return worldStars >= lvl.StarsRequired
}

// IsWorldUnlocked answers the world gate against the live record.
func (e *Engine) IsWorldUnlocked(worldID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return WorldUnlocked(e.data, worldID)
}

// IsLevelUnlocked answers the level gate against the live record.
func (e *Engine) IsLevelUnlocked(levelID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return LevelUnlocked(e.data, levelID)
}

// SetPlayerName updates the player name and persists.
func (e *Engine) SetPlayerName(name string) {
	e.mu.Lock()
	e.data.Name = name
	snap := e.data.Clone()
	e.mu.Unlock()
	e.persistAsync(snap)
}

// SetCurrentWorld records the world the player is browsing. Unknown world
// ids are ignored.
func (e *Engine) SetCurrentWorld(worldID string) {
	if content.WorldByID(worldID) == nil {
		return
	}
	e.mu.Lock()
	e.data.CurrentWorldID = worldID
	snap := e.data.Clone()
	e.mu.Unlock()
	e.persistAsync(snap)
}

// ResetProgress clears the durable record and swaps in a fresh default
// record. The swap is atomic: no reader sees a half-reset state. Queued
// saves are discarded and any in-flight write is waited out first, so a
// pre-reset snapshot can never land after the delete. It returns once the
// durable delete has been applied; a delete failure is logged and the
// in-memory reset proceeds anyway.
func (e *Engine) ResetProgress() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.saveMu.Lock()
	e.pending = nil
	e.saveMu.Unlock()
	e.wg.Wait()

	if err := e.players.Reset(); err != nil {
		e.logger.Printf("reset stored progress: %v", err)
	}
	e.data = progress.Default()
	e.loaded = true
}

// Flush waits for in-flight persistence writes. Used at shutdown and in
// tests; gameplay never waits on it.
func (e *Engine) Flush() {
	e.wg.Wait()
}

// persistAsync queues a snapshot for the save writer. At most one writer
// runs at a time and it always saves the newest queued snapshot, so durable
// writes land in mutation order and an older snapshot can never overwrite a
// newer one.
func (e *Engine) persistAsync(snap progress.PlayerData) {
	e.saveMu.Lock()
	e.pending = &snap
	if e.saving {
		e.saveMu.Unlock()
		return
	}
	e.saving = true
	e.wg.Add(1)
	e.saveMu.Unlock()

	go func() {
		defer e.wg.Done()
		for {
			e.saveMu.Lock()
			next := e.pending
			e.pending = nil
			if next == nil {
				e.saving = false
				e.saveMu.Unlock()
				return
			}
			e.saveMu.Unlock()

			if err := e.players.Save(*next); err != nil {
				e.logger.Printf("save progress: %v", err)
			}
		}
	}()
}

func (e *Engine) logAttemptAsync(a store.Attempt) {
	if e.attempts == nil {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.attempts.LogAttempt(a); err != nil {
			e.logger.Printf("log attempt: %v", err)
		}
	}()
}
