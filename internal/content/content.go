// Package content defines the immutable catalog of worlds, levels and
// badges. The tables are authored at build time and never mutated; every
// lookup is a pure function that returns nil (or an empty slice) for an
// unknown id.
package content

// GameType identifies which mini-game a level runs.
type GameType string

const (
	GameQuiz         GameType = "quiz"
	GameFloodDefense GameType = "flood_defense"
	GameEcoBuilder   GameType = "eco_builder"
	GameRecycleSort  GameType = "recycle_sort"
	GameInsulation   GameType = "insulation"
)

// Difficulty is the authored difficulty tier of a level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ConditionKind enumerates the badge unlock condition categories.
type ConditionKind string

const (
	ConditionFirstStar      ConditionKind = "first_star"
	ConditionPerfectLevel   ConditionKind = "perfect_level"
	ConditionCorrectAnswers ConditionKind = "correct_answers"
	ConditionGreenScore     ConditionKind = "green_score"
	ConditionWorldComplete  ConditionKind = "world_complete"
	ConditionAllComplete    ConditionKind = "all_complete"
)

// BadgeCondition is the unlock predicate attached to a badge definition.
// Threshold is used by the counter conditions, WorldID by world completion.
type BadgeCondition struct {
	Kind      ConditionKind `json:"kind"`
	Threshold int           `json:"threshold,omitempty"`
	WorldID   string        `json:"worldId,omitempty"`
}

// WorldDefinition is a themed group of levels. StarsToUnlock is the global
// star total required before the world opens.
type WorldDefinition struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Position      int    `json:"position"`
	StarsToUnlock int    `json:"starsToUnlock"`
}

// LevelDefinition is a single playable mini-game instance. StarsRequired is
// the star total within the owning world required before the level opens.
type LevelDefinition struct {
	ID            string     `json:"id"`
	WorldID       string     `json:"worldId"`
	Name          string     `json:"name"`
	Game          GameType   `json:"game"`
	Difficulty    Difficulty `json:"difficulty"`
	StarsRequired int        `json:"starsRequired"`
}

// BadgeDefinition is a persistent achievement flag.
type BadgeDefinition struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Condition   BadgeCondition `json:"condition"`
}

// Worlds lists every world in author order.
var Worlds = []WorldDefinition{
	{ID: "w1", Name: "Water World", Description: "Rivers, rain and flood defense", Icon: "💧", Position: 1, StarsToUnlock: 0},
	{ID: "w2", Name: "Energy World", Description: "Sun, wind and smart power", Icon: "⚡", Position: 2, StarsToUnlock: 9},
	{ID: "w3", Name: "Recycling World", Description: "Sort it out, waste nothing", Icon: "♻️", Position: 3, StarsToUnlock: 18},
	{ID: "w4", Name: "Cozy Home", Description: "Keep the warmth inside", Icon: "🏠", Position: 4, StarsToUnlock: 27},
}

// Levels lists every level in author order, grouped by world.
var Levels = []LevelDefinition{
	{ID: "w1-l1", WorldID: "w1", Name: "Water Quiz", Game: GameQuiz, Difficulty: DifficultyEasy, StarsRequired: 0},
	{ID: "w1-l2", WorldID: "w1", Name: "Sandbag Sprint", Game: GameFloodDefense, Difficulty: DifficultyEasy, StarsRequired: 2},
	{ID: "w1-l3", WorldID: "w1", Name: "River Rising", Game: GameFloodDefense, Difficulty: DifficultyMedium, StarsRequired: 4},
	{ID: "w1-l4", WorldID: "w1", Name: "Flood Master Quiz", Game: GameQuiz, Difficulty: DifficultyHard, StarsRequired: 6},

	{ID: "w2-l1", WorldID: "w2", Name: "Energy Quiz", Game: GameQuiz, Difficulty: DifficultyEasy, StarsRequired: 0},
	{ID: "w2-l2", WorldID: "w2", Name: "Solar Village", Game: GameEcoBuilder, Difficulty: DifficultyEasy, StarsRequired: 2},
	{ID: "w2-l3", WorldID: "w2", Name: "Wind Farm", Game: GameEcoBuilder, Difficulty: DifficultyMedium, StarsRequired: 4},
	{ID: "w2-l4", WorldID: "w2", Name: "Power Saver Quiz", Game: GameQuiz, Difficulty: DifficultyHard, StarsRequired: 6},

	{ID: "w3-l1", WorldID: "w3", Name: "Waste Quiz", Game: GameQuiz, Difficulty: DifficultyEasy, StarsRequired: 0},
	{ID: "w3-l2", WorldID: "w3", Name: "Bin Basics", Game: GameRecycleSort, Difficulty: DifficultyEasy, StarsRequired: 2},
	{ID: "w3-l3", WorldID: "w3", Name: "Conveyor Chaos", Game: GameRecycleSort, Difficulty: DifficultyMedium, StarsRequired: 4},
	{ID: "w3-l4", WorldID: "w3", Name: "Zero Waste Quiz", Game: GameQuiz, Difficulty: DifficultyHard, StarsRequired: 6},

	{ID: "w4-l1", WorldID: "w4", Name: "Home Quiz", Game: GameQuiz, Difficulty: DifficultyEasy, StarsRequired: 0},
	{ID: "w4-l2", WorldID: "w4", Name: "Draft Hunt", Game: GameInsulation, Difficulty: DifficultyEasy, StarsRequired: 2},
	{ID: "w4-l3", WorldID: "w4", Name: "Winter Proof", Game: GameInsulation, Difficulty: DifficultyMedium, StarsRequired: 4},
	{ID: "w4-l4", WorldID: "w4", Name: "Eco Home Quiz", Game: GameQuiz, Difficulty: DifficultyHard, StarsRequired: 6},
}

// Badges lists every badge in evaluation order. The engine walks this slice
// top to bottom after each graded attempt, so the order here is the award
// order.
var Badges = []BadgeDefinition{
	{ID: "first_star", Name: "First Star", Description: "Earn your very first star", Icon: "⭐", Condition: BadgeCondition{Kind: ConditionFirstStar}},
	{ID: "perfect_score", Name: "Perfect Score", Description: "Finish a level with three stars", Icon: "🌟", Condition: BadgeCondition{Kind: ConditionPerfectLevel}},
	{ID: "quiz_master", Name: "Quiz Master", Description: "Answer 20 questions correctly", Icon: "🧠", Condition: BadgeCondition{Kind: ConditionCorrectAnswers, Threshold: 20}},
	{ID: "green_champion", Name: "Green Champion", Description: "Collect 100 green points", Icon: "🌱", Condition: BadgeCondition{Kind: ConditionGreenScore, Threshold: 100}},
	{ID: "world_w1_complete", Name: "Water Guardian", Description: "Play every level in Water World", Icon: "🌊", Condition: BadgeCondition{Kind: ConditionWorldComplete, WorldID: "w1"}},
	{ID: "world_w2_complete", Name: "Energy Expert", Description: "Play every level in Energy World", Icon: "🔋", Condition: BadgeCondition{Kind: ConditionWorldComplete, WorldID: "w2"}},
	{ID: "world_w3_complete", Name: "Recycling Ranger", Description: "Play every level in Recycling World", Icon: "🦝", Condition: BadgeCondition{Kind: ConditionWorldComplete, WorldID: "w3"}},
	{ID: "world_w4_complete", Name: "Home Hero", Description: "Play every level in Cozy Home", Icon: "🔥", Condition: BadgeCondition{Kind: ConditionWorldComplete, WorldID: "w4"}},
	{ID: "planet_hero", Name: "Planet Hero", Description: "Play every level in the game", Icon: "🌍", Condition: BadgeCondition{Kind: ConditionAllComplete}},
}

// WorldByID returns the world definition for id, or nil if unknown.
func WorldByID(id string) *WorldDefinition {
	for i := range Worlds {
		if Worlds[i].ID == id {
			return &Worlds[i]
		}
	}
	return nil
}

// LevelByID returns the level definition for id, or nil if unknown.
func LevelByID(id string) *LevelDefinition {
	for i := range Levels {
		if Levels[i].ID == id {
			return &Levels[i]
		}
	}
	return nil
}

// LevelsForWorld returns the levels belonging to worldID in author order.
// Unknown world ids yield an empty slice.
func LevelsForWorld(worldID string) []LevelDefinition {
	var out []LevelDefinition
	for _, l := range Levels {
		if l.WorldID == worldID {
			out = append(out, l)
		}
	}
	return out
}

// BadgeByID returns the badge definition for id, or nil if unknown.
func BadgeByID(id string) *BadgeDefinition {
	for i := range Badges {
		if Badges[i].ID == id {
			return &Badges[i]
		}
	}
	return nil
}

// WorldBadgeID returns the id of the completion badge mapped to worldID, or
// "" if the world has no completion badge.
func WorldBadgeID(worldID string) string {
	for _, b := range Badges {
		if b.Condition.Kind == ConditionWorldComplete && b.Condition.WorldID == worldID {
			return b.ID
		}
	}
	return ""
}

// DefaultWorldID is the world a fresh player starts in.
func DefaultWorldID() string {
	return Worlds[0].ID
}
