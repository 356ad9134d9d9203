package store

import (
	"testing"

	"github.com/ecoheroes/ecoheroes-go/internal/progress"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestKVRoundTrip(t *testing.T) {
	db := newTestDB(t)

	if _, ok, err := db.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want absent without error", ok, err)
	}

	if err := db.Set("k", "v1"); err != nil {
		t.Fatalf("Failed to set: %v", err)
	}
	if err := db.Set("k", "v2"); err != nil {
		t.Fatalf("Failed to overwrite: %v", err)
	}

	v, ok, err := db.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get(k) = ok=%v err=%v, want present", ok, err)
	}
	if v != "v2" {
		t.Errorf("Expected overwritten value v2, got %q", v)
	}

	if err := db.Delete("k"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, ok, _ := db.Get("k"); ok {
		t.Error("Expected key to be gone after delete")
	}

	// Deleting a missing key is fine.
	if err := db.Delete("k"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestPlayerStoreMissingRecord(t *testing.T) {
	ps := NewPlayerStore(newTestDB(t))

	data := ps.Load()
	want := progress.Default()
	if data.Name != want.Name || data.GreenScore != 0 || data.TotalCorrectAnswers != 0 ||
		data.CurrentWorldID != want.CurrentWorldID {
		t.Errorf("Expected default record, got %+v", data)
	}
	if data.LevelProgress == nil || data.Badges == nil {
		t.Error("Default record must have non-nil map and badge slice")
	}
}

func TestPlayerStoreCorruptRecord(t *testing.T) {
	db := newTestDB(t)
	if err := db.Set("player", "{not json"); err != nil {
		t.Fatalf("Failed to seed corrupt record: %v", err)
	}

	data := NewPlayerStore(db).Load()
	if data.Name != progress.DefaultName || data.GreenScore != 0 {
		t.Errorf("Corrupt record must load as defaults, got %+v", data)
	}
}

// Records written by older versions may be missing newer fields; those fill
// in from the defaults instead of being rejected.
func TestPlayerStorePartialRecordMerge(t *testing.T) {
	db := newTestDB(t)
	if err := db.Set("player", `{"name":"Rio","greenScore":40}`); err != nil {
		t.Fatalf("Failed to seed partial record: %v", err)
	}

	data := NewPlayerStore(db).Load()
	if data.Name != "Rio" {
		t.Errorf("Expected stored name, got %q", data.Name)
	}
	if data.GreenScore != 40 {
		t.Errorf("Expected stored green score 40, got %d", data.GreenScore)
	}
	if data.CurrentWorldID != progress.Default().CurrentWorldID {
		t.Errorf("Expected default current world, got %q", data.CurrentWorldID)
	}
	if data.LevelProgress == nil || data.Badges == nil {
		t.Error("Merged record must have non-nil map and badge slice")
	}
}

func TestPlayerStoreNullFieldsNormalized(t *testing.T) {
	db := newTestDB(t)
	if err := db.Set("player", `{"name":"Rio","levelProgress":null,"badges":null}`); err != nil {
		t.Fatalf("Failed to seed record: %v", err)
	}

	data := NewPlayerStore(db).Load()
	if data.LevelProgress == nil {
		t.Error("null levelProgress must normalize to an empty map")
	}
	if data.Badges == nil {
		t.Error("null badges must normalize to an empty slice")
	}
}

func TestPlayerStoreSaveLoadReset(t *testing.T) {
	db := newTestDB(t)
	ps := NewPlayerStore(db)

	data := progress.Default()
	data.Name = "Rio"
	data.GreenScore = 35
	data.TotalCorrectAnswers = 7
	data.LevelProgress["w1-l1"] = progress.LevelProgress{Stars: 3, Completed: true, HighScore: 10}
	data.AddBadge("first_star")
	data.CurrentWorldID = "w2"

	if err := ps.Save(data); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded := ps.Load()
	if loaded.Name != "Rio" || loaded.GreenScore != 35 || loaded.TotalCorrectAnswers != 7 {
		t.Errorf("Loaded record mismatch: %+v", loaded)
	}
	if lp := loaded.LevelProgress["w1-l1"]; lp.Stars != 3 || !lp.Completed || lp.HighScore != 10 {
		t.Errorf("Loaded level progress mismatch: %+v", lp)
	}
	if !loaded.HasBadge("first_star") {
		t.Error("Expected first_star badge in loaded record")
	}
	if loaded.CurrentWorldID != "w2" {
		t.Errorf("Expected current world w2, got %q", loaded.CurrentWorldID)
	}

	if err := ps.Reset(); err != nil {
		t.Fatalf("Failed to reset: %v", err)
	}
	after := ps.Load()
	if after.GreenScore != 0 || len(after.LevelProgress) != 0 || len(after.Badges) != 0 {
		t.Errorf("Expected defaults after reset, got %+v", after)
	}
}

func TestAttemptLogPagination(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 5; i++ {
		err := db.LogAttempt(Attempt{
			LevelID:        "w1-l1",
			Score:          i,
			MaxScore:       10,
			CorrectAnswers: i,
			Stars:          1,
		})
		if err != nil {
			t.Fatalf("Failed to log attempt %d: %v", i, err)
		}
	}
	if err := db.LogAttempt(Attempt{LevelID: "w2-l1", Score: 10, MaxScore: 10, Stars: 3}); err != nil {
		t.Fatalf("Failed to log attempt: %v", err)
	}

	page, err := db.ListAttempts("w1-l1", 1, 2)
	if err != nil {
		t.Fatalf("Failed to list attempts: %v", err)
	}
	if page.TotalCount != 5 {
		t.Errorf("Expected 5 attempts for w1-l1, got %d", page.TotalCount)
	}
	if len(page.Attempts) != 2 {
		t.Errorf("Expected 2 attempts per page, got %d", len(page.Attempts))
	}
	if page.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", page.TotalPages)
	}
	for _, a := range page.Attempts {
		if a.ID == "" {
			t.Error("Expected attempt id to be assigned")
		}
		if a.LevelID != "w1-l1" {
			t.Errorf("Unexpected level id %q", a.LevelID)
		}
		if a.CreatedAt.IsZero() {
			t.Error("Expected created_at to be set")
		}
	}

	// Defaults kick in for out-of-range paging arguments.
	page, err = db.ListAttempts("w1-l1", 0, 0)
	if err != nil {
		t.Fatalf("Failed to list with default paging: %v", err)
	}
	if page.Page != 1 || page.PerPage != 50 {
		t.Errorf("Expected default paging 1/50, got %d/%d", page.Page, page.PerPage)
	}

	// An unplayed level has an empty, well-formed page.
	page, err = db.ListAttempts("w4-l4", 1, 10)
	if err != nil {
		t.Fatalf("Failed to list empty attempts: %v", err)
	}
	if page.TotalCount != 0 || len(page.Attempts) != 0 {
		t.Errorf("Expected empty page, got %+v", page)
	}
}
