package api

import (
	"github.com/ecoheroes/ecoheroes-go/internal/content"
	"github.com/ecoheroes/ecoheroes-go/internal/progress"
)

// ErrorResponse is the shape of every error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PlayerResponse carries the current snapshot plus the startup-loading flag.
// While Loading is true the snapshot is default-valued and unlock results
// must not be treated as final.
type PlayerResponse struct {
	Player  progress.PlayerData `json:"player"`
	Loading bool                `json:"loading"`
}

// StarsResponse is the global star total.
type StarsResponse struct {
	TotalStars int `json:"totalStars"`
}

// CompleteLevelRequest is the attempt outcome reported by a mini-game.
type CompleteLevelRequest struct {
	Score          int `json:"score"`
	MaxScore       int `json:"maxScore"`
	CorrectAnswers int `json:"correctAnswers"`
}

// CompleteLevelResponse returns this attempt's grade and the merged record.
type CompleteLevelResponse struct {
	StarsAwarded int                 `json:"starsAwarded"`
	Player       progress.PlayerData `json:"player"`
}

// WorldSummary pairs a world definition with the player's standing in it.
type WorldSummary struct {
	content.WorldDefinition
	Unlocked    bool `json:"unlocked"`
	StarsEarned int  `json:"starsEarned"`
}

// WorldsResponse lists all worlds in author order.
type WorldsResponse struct {
	Worlds     []WorldSummary `json:"worlds"`
	TotalStars int            `json:"totalStars"`
}

// LevelSummary pairs a level definition with unlock state and progress.
type LevelSummary struct {
	content.LevelDefinition
	Unlocked bool                   `json:"unlocked"`
	Progress progress.LevelProgress `json:"progress"`
}

// WorldLevelsResponse lists one world's levels in author order.
type WorldLevelsResponse struct {
	WorldID string         `json:"worldId"`
	Levels  []LevelSummary `json:"levels"`
}

// BadgeStatus pairs a badge definition with whether it has been earned.
type BadgeStatus struct {
	content.BadgeDefinition
	Earned bool `json:"earned"`
}

// BadgesResponse lists all badges in award order.
type BadgesResponse struct {
	Badges []BadgeStatus `json:"badges"`
}

// SetNameRequest updates the player name.
type SetNameRequest struct {
	Name string `json:"name"`
}

// SetWorldRequest updates the world the player is browsing.
type SetWorldRequest struct {
	WorldID string `json:"worldId"`
}
