// Package server exposes the agent over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/planora/planora/internal/agent"
	"github.com/planora/planora/internal/plan"
	"github.com/planora/planora/internal/store"
)

type Server struct {
	agent *agent.Agent
	mux   *http.ServeMux
}

func New(a *agent.Agent) *Server {
	s := &Server{agent: a, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/plans", s.handlePlans)
	s.mux.HandleFunc("/api/plans/", s.handlePlanByID)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handlePlans(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createPlan(w, r)
	case http.MethodGet:
		s.listPlans(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) createPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Goal string `json:"goal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.agent.CreatePlan(r.Context(), strings.TrimSpace(req.Goal))
	if errors.Is(err, agent.ErrEmptyGoal) {
		writeError(w, http.StatusBadRequest, "goal is required")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create plan")
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	sums, err := s.agent.ListPlans(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list plans")
		return
	}
	if sums == nil {
		sums = []plan.Summary{}
	}
	writeJSON(w, http.StatusOK, sums)
}

func (s *Server) handlePlanByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/plans/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	p, err := s.agent.GetPlan(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load plan")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
