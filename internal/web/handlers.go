package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edvart/padel-americano/internal/scheduler"
	"github.com/edvart/padel-americano/internal/tournament"
)

const handlerTimeout = 10 * time.Second

// waitForResponse waits for a command response with a timeout.
func waitForResponse(resp <-chan error) error {
	select {
	case err := <-resp:
		return err
	case <-time.After(handlerTimeout):
		return fmt.Errorf("request timed out")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type stateResponse struct {
	Roster      []scheduler.Player `json:"roster"`
	Courts      int                `json:"courts"`
	Pending     *scheduler.Plan    `json:"pending,omitempty"`
	RoundsSaved int                `json:"roundsSaved"`
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	snap := s.tournament.GetState()
	writeJSON(w, http.StatusOK, stateResponse{
		Roster:      snap.Roster,
		Courts:      snap.Courts,
		Pending:     snap.Pending,
		RoundsSaved: len(snap.History),
	})
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp := make(chan error, 1)
	s.tournament.Send(tournament.AddPlayer{Name: req.Name, Response: resp})

	if err := waitForResponse(resp); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenamePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp := make(chan error, 1)
	s.tournament.Send(tournament.RenamePlayer{PlayerID: playerID, Name: req.Name, Response: resp})

	if err := waitForResponse(resp); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	resp := make(chan error, 1)
	s.tournament.Send(tournament.RemovePlayer{PlayerID: playerID, Response: resp})

	if err := waitForResponse(resp); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetCourts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Courts int `json:"courts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp := make(chan error, 1)
	s.tournament.Send(tournament.SetCourts{Courts: req.Courts, Response: resp})

	if err := waitForResponse(resp); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGenerateRound(w http.ResponseWriter, r *http.Request) {
	resp := make(chan error, 1)
	s.tournament.Send(tournament.GenerateRound{Response: resp})

	if err := waitForResponse(resp); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap := s.tournament.GetState()
	if snap.Pending == nil {
		writeError(w, http.StatusInternalServerError, "round generation produced no plan")
		return
	}
	writeJSON(w, http.StatusOK, snap.Pending)
}

func (s *Server) handleSaveRound(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Scores map[int]scheduler.Score `json:"scores"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp := make(chan error, 1)
	s.tournament.Send(tournament.SaveRound{Scores: req.Scores, Response: resp})

	if err := waitForResponse(resp); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteLastRound(w http.ResponseWriter, r *http.Request) {
	resp := make(chan error, 1)
	s.tournament.Send(tournament.DeleteLastRound{Response: resp})

	if err := waitForResponse(resp); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRounds(w http.ResponseWriter, r *http.Request) {
	snap := s.tournament.GetState()
	writeJSON(w, http.StatusOK, map[string]interface{}{"rounds": snap.History})
}

func (s *Server) handleCoverage(w http.ResponseWriter, r *http.Request) {
	snap := s.tournament.GetState()
	writeJSON(w, http.StatusOK, scheduler.PartnerCoverage(snap.Roster, snap.History))
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	snap := s.tournament.GetState()
	writeJSON(w, http.StatusOK, map[string]int{
		"rounds": scheduler.RecommendRounds(len(snap.Roster), snap.Courts),
	})
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	snap := s.tournament.GetState()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"standings": scheduler.Standings(snap.Roster, snap.History),
	})
}
