// Package progress holds the player progress record: the single mutable
// save state the progression engine owns and the persistence gateway stores.
package progress

import (
	"github.com/ecoheroes/ecoheroes-go/internal/content"
)

// DefaultName is the player name used until the player picks one.
const DefaultName = "Eco Hero"

// LevelProgress tracks the best results for one level. Stars and HighScore
// only ever go up; Completed only ever flips to true.
type LevelProgress struct {
	Stars     int  `json:"stars"`
	Completed bool `json:"completed"`
	HighScore int  `json:"highScore"`
}

// PlayerData is the full per-installation save record.
type PlayerData struct {
	Name                string                   `json:"name"`
	GreenScore          int                      `json:"greenScore"`
	TotalCorrectAnswers int                      `json:"totalCorrectAnswers"`
	LevelProgress       map[string]LevelProgress `json:"levelProgress"`
	Badges              []string                 `json:"badges"`
	CurrentWorldID      string                   `json:"currentWorldId"`
}

// Default returns the documented fresh-install record.
func Default() PlayerData {
	return PlayerData{
		Name:           DefaultName,
		LevelProgress:  make(map[string]LevelProgress),
		Badges:         []string{},
		CurrentWorldID: content.DefaultWorldID(),
	}
}

// TotalStars sums the stars over every level entry. Computed on demand so it
// always reflects the receiver it is called on.
func (d PlayerData) TotalStars() int {
	total := 0
	for _, lp := range d.LevelProgress {
		total += lp.Stars
	}
	return total
}

// HasBadge reports whether the badge id has been earned.
func (d PlayerData) HasBadge(id string) bool {
	for _, b := range d.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// AddBadge grants a badge id. Adding one the player already holds is a
// no-op, so the badge slice behaves as a set.
func (d *PlayerData) AddBadge(id string) {
	if d.HasBadge(id) {
		return
	}
	d.Badges = append(d.Badges, id)
}

// Clone returns a deep copy, so snapshots handed to readers or to the
// persistence gateway never alias the live record.
func (d PlayerData) Clone() PlayerData {
	out := d
	out.LevelProgress = make(map[string]LevelProgress, len(d.LevelProgress))
	for k, v := range d.LevelProgress {
		out.LevelProgress[k] = v
	}
	out.Badges = make([]string, len(d.Badges))
	copy(out.Badges, d.Badges)
	return out
}
