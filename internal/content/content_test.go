package content

import "testing"

func TestLookupsReturnNilForUnknownIDs(t *testing.T) {
	if w := WorldByID("nope"); w != nil {
		t.Errorf("WorldByID(nope) = %+v, want nil", w)
	}
	if l := LevelByID("nope"); l != nil {
		t.Errorf("LevelByID(nope) = %+v, want nil", l)
	}
	if b := BadgeByID("nope"); b != nil {
		t.Errorf("BadgeByID(nope) = %+v, want nil", b)
	}
	if lvls := LevelsForWorld("nope"); len(lvls) != 0 {
		t.Errorf("LevelsForWorld(nope) = %d levels, want 0", len(lvls))
	}
	if id := WorldBadgeID("nope"); id != "" {
		t.Errorf("WorldBadgeID(nope) = %q, want empty", id)
	}
}

func TestEveryLevelBelongsToAKnownWorld(t *testing.T) {
	for _, lvl := range Levels {
		if WorldByID(lvl.WorldID) == nil {
			t.Errorf("Level %s references unknown world %s", lvl.ID, lvl.WorldID)
		}
	}
}

func TestLevelsForWorldPreservesAuthorOrder(t *testing.T) {
	lvls := LevelsForWorld("w1")
	if len(lvls) != 4 {
		t.Fatalf("Expected 4 levels in w1, got %d", len(lvls))
	}
	want := []string{"w1-l1", "w1-l2", "w1-l3", "w1-l4"}
	for i, id := range want {
		if lvls[i].ID != id {
			t.Errorf("Level %d = %s, want %s", i, lvls[i].ID, id)
		}
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i].StarsRequired < lvls[i-1].StarsRequired {
			t.Errorf("In-world star gates must not decrease: %s", lvls[i].ID)
		}
	}
}

func TestEveryWorldHasACompletionBadge(t *testing.T) {
	for _, w := range Worlds {
		id := WorldBadgeID(w.ID)
		if id == "" {
			t.Errorf("World %s has no completion badge", w.ID)
			continue
		}
		b := BadgeByID(id)
		if b == nil {
			t.Fatalf("WorldBadgeID(%s) = %q does not resolve", w.ID, id)
		}
		if b.Condition.Kind != ConditionWorldComplete || b.Condition.WorldID != w.ID {
			t.Errorf("Badge %s condition mismatch: %+v", id, b.Condition)
		}
	}
}

func TestBadgeEvaluationOrder(t *testing.T) {
	if Badges[0].ID != "first_star" {
		t.Errorf("First badge must be first_star, got %s", Badges[0].ID)
	}
	if last := Badges[len(Badges)-1]; last.Condition.Kind != ConditionAllComplete {
		t.Errorf("Last badge must be the full-completion badge, got %s", last.ID)
	}
}

func TestWorldGatesIncreaseByPosition(t *testing.T) {
	for i := 1; i < len(Worlds); i++ {
		if Worlds[i].StarsToUnlock <= Worlds[i-1].StarsToUnlock {
			t.Errorf("World %s gate must exceed %s", Worlds[i].ID, Worlds[i-1].ID)
		}
		if Worlds[i].Position != Worlds[i-1].Position+1 {
			t.Errorf("World positions must be consecutive at %s", Worlds[i].ID)
		}
	}
	if Worlds[0].StarsToUnlock != 0 {
		t.Error("The first world must be open from the start")
	}
}

func TestDefaultWorld(t *testing.T) {
	if DefaultWorldID() != "w1" {
		t.Errorf("DefaultWorldID() = %s, want w1", DefaultWorldID())
	}
}
