package progress

import "testing"

func TestTotalStars(t *testing.T) {
	d := Default()
	if d.TotalStars() != 0 {
		t.Errorf("Fresh record has %d stars, want 0", d.TotalStars())
	}

	d.LevelProgress["w1-l1"] = LevelProgress{Stars: 3}
	d.LevelProgress["w1-l2"] = LevelProgress{Stars: 1}
	d.LevelProgress["w2-l1"] = LevelProgress{Stars: 2}
	if d.TotalStars() != 6 {
		t.Errorf("TotalStars() = %d, want 6", d.TotalStars())
	}
}

func TestAddBadgeIsIdempotent(t *testing.T) {
	d := Default()
	d.AddBadge("first_star")
	d.AddBadge("first_star")
	d.AddBadge("perfect_score")

	if len(d.Badges) != 2 {
		t.Errorf("Expected 2 badges, got %v", d.Badges)
	}
	if !d.HasBadge("first_star") || !d.HasBadge("perfect_score") {
		t.Errorf("Missing expected badges: %v", d.Badges)
	}
	if d.HasBadge("planet_hero") {
		t.Error("HasBadge reported an unearned badge")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := Default()
	d.LevelProgress["w1-l1"] = LevelProgress{Stars: 2, Completed: true, HighScore: 7}
	d.AddBadge("first_star")

	c := d.Clone()
	c.LevelProgress["w1-l1"] = LevelProgress{Stars: 3}
	c.LevelProgress["w1-l2"] = LevelProgress{Stars: 1}
	c.AddBadge("perfect_score")
	c.Name = "Else"

	if d.LevelProgress["w1-l1"].Stars != 2 {
		t.Error("Clone mutation leaked into the original map")
	}
	if _, ok := d.LevelProgress["w1-l2"]; ok {
		t.Error("Clone insertion leaked into the original map")
	}
	if len(d.Badges) != 1 {
		t.Errorf("Clone badge append leaked: %v", d.Badges)
	}
	if d.Name != DefaultName {
		t.Error("Clone field write leaked into the original")
	}
}
