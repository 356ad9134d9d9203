package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ecoheroes/ecoheroes-go/internal/progress"
)

// saveKey is the single save slot. One installation, one player record.
const saveKey = "player"

// PlayerStore is the persistence gateway for the player record. It treats a
// missing or unreadable record as a fresh install and overlays partial
// records onto the documented defaults, so saves written by older versions
// load safely.
type PlayerStore struct {
	kv     KV
	logger *log.Logger
}

// NewPlayerStore wraps a KV as the player save gateway.
func NewPlayerStore(kv KV) *PlayerStore {
	return &PlayerStore{
		kv:     kv,
		logger: log.New(os.Stdout, "[STORE] ", log.LstdFlags),
	}
}

// Load reads the stored record. Absence, a read failure or a corrupt payload
// all yield the default record; parse faults are never propagated.
func (p *PlayerStore) Load() progress.PlayerData {
	raw, ok, err := p.kv.Get(saveKey)
	if err != nil {
		p.logger.Printf("load player record: %v", err)
		return progress.Default()
	}
	if !ok {
		return progress.Default()
	}

	// Unmarshal over a default record: fields the stored payload omits keep
	// their default values, which is the schema-evolution merge rule.
	data := progress.Default()
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		p.logger.Printf("corrupt player record, using defaults: %v", err)
		return progress.Default()
	}
	if data.LevelProgress == nil {
		data.LevelProgress = make(map[string]progress.LevelProgress)
	}
	if data.Badges == nil {
		data.Badges = []string{}
	}
	return data
}

// Save serializes and writes the full record, replacing any prior value.
func (p *PlayerStore) Save(data progress.PlayerData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("store: marshal player record: %w", err)
	}
	if err := p.kv.Set(saveKey, string(raw)); err != nil {
		return fmt.Errorf("store: save player record: %w", err)
	}
	return nil
}

// Reset deletes the stored record.
func (p *PlayerStore) Reset() error {
	if err := p.kv.Delete(saveKey); err != nil {
		return fmt.Errorf("store: reset player record: %w", err)
	}
	return nil
}
