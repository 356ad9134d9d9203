package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ecoheroes/ecoheroes-go/internal/content"
	"github.com/ecoheroes/ecoheroes-go/internal/engine"
)

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	snap, loaded := s.engine.Snapshot()
	s.writeJSON(w, http.StatusOK, PlayerResponse{Player: snap, Loading: !loaded})
}

func (s *Server) handleGetStars(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, StarsResponse{TotalStars: s.engine.TotalStars()})
}

func (s *Server) handleListWorlds(w http.ResponseWriter, r *http.Request) {
	// One snapshot for the whole response: unlock flags, per-world stars and
	// the global total all describe the same record state.
	snap, _ := s.engine.Snapshot()

	worlds := make([]WorldSummary, 0, len(content.Worlds))
	for _, def := range content.Worlds {
		earned := 0
		for _, lvl := range content.LevelsForWorld(def.ID) {
			earned += snap.LevelProgress[lvl.ID].Stars
		}
		worlds = append(worlds, WorldSummary{
			WorldDefinition: def,
			Unlocked:        engine.WorldUnlocked(snap, def.ID),
			StarsEarned:     earned,
		})
	}

	s.writeJSON(w, http.StatusOK, WorldsResponse{Worlds: worlds, TotalStars: snap.TotalStars()})
}

func (s *Server) handleListWorldLevels(w http.ResponseWriter, r *http.Request) {
	worldID := chi.URLParam(r, "worldID")
	if content.WorldByID(worldID) == nil {
		s.writeError(w, http.StatusNotFound, "unknown world id")
		return
	}

	snap, _ := s.engine.Snapshot()
	defs := content.LevelsForWorld(worldID)
	levels := make([]LevelSummary, 0, len(defs))
	for _, def := range defs {
		levels = append(levels, LevelSummary{
			LevelDefinition: def,
			Unlocked:        engine.LevelUnlocked(snap, def.ID),
			Progress:        snap.LevelProgress[def.ID],
		})
	}

	s.writeJSON(w, http.StatusOK, WorldLevelsResponse{WorldID: worldID, Levels: levels})
}

func (s *Server) handleListBadges(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.engine.Snapshot()

	badges := make([]BadgeStatus, 0, len(content.Badges))
	for _, def := range content.Badges {
		badges = append(badges, BadgeStatus{
			BadgeDefinition: def,
			Earned:          snap.HasBadge(def.ID),
		})
	}

	s.writeJSON(w, http.StatusOK, BadgesResponse{Badges: badges})
}

func (s *Server) handleCompleteLevel(w http.ResponseWriter, r *http.Request) {
	levelID := chi.URLParam(r, "levelID")

	var req CompleteLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stars := s.engine.CompleteLevel(levelID, req.Score, req.MaxScore, req.CorrectAnswers)
	snap, _ := s.engine.Snapshot()

	s.writeJSON(w, http.StatusOK, CompleteLevelResponse{StarsAwarded: stars, Player: snap})
}

func (s *Server) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	if s.attempts == nil {
		s.writeError(w, http.StatusNotFound, "attempt log disabled")
		return
	}

	levelID := chi.URLParam(r, "levelID")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))

	result, err := s.attempts.ListAttempts(levelID, page, perPage)
	if err != nil {
		s.logger.Printf("list attempts: %v", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list attempts")
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSetName(w http.ResponseWriter, r *http.Request) {
	var req SetNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.engine.SetPlayerName(name)
	snap, loaded := s.engine.Snapshot()
	s.writeJSON(w, http.StatusOK, PlayerResponse{Player: snap, Loading: !loaded})
}

func (s *Server) handleSetWorld(w http.ResponseWriter, r *http.Request) {
	var req SetWorldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if content.WorldByID(req.WorldID) == nil {
		s.writeError(w, http.StatusNotFound, "unknown world id")
		return
	}

	s.engine.SetCurrentWorld(req.WorldID)
	snap, loaded := s.engine.Snapshot()
	s.writeJSON(w, http.StatusOK, PlayerResponse{Player: snap, Loading: !loaded})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.engine.ResetProgress()
	snap, loaded := s.engine.Snapshot()
	s.writeJSON(w, http.StatusOK, PlayerResponse{Player: snap, Loading: !loaded})
}
