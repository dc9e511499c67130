// Package playerapitest provides an in-memory roster API speaking the same envelope as the real one
package playerapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/Amund211/roster/internal/domain"
)

const CohortPath = "/api/test-cohort"

type Server struct {
	mux *http.ServeMux

	mu       sync.Mutex
	players  []domain.Player
	nextID   int
	requests []string
	failWith int
}

func NewServer(players ...domain.Player) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		players: slices.Clone(players),
		nextID:  1,
	}
	for _, player := range players {
		if id, err := strconv.Atoi(string(player.ID)); err == nil && id >= s.nextID {
			s.nextID = id + 1
		}
	}

	s.mux.HandleFunc("GET /api/{cohort}/players", s.list)
	s.mux.HandleFunc("GET /api/{cohort}/players/{id}", s.get)
	s.mux.HandleFunc("POST /api/{cohort}/players", s.create)
	s.mux.HandleFunc("DELETE /api/{cohort}/players/{id}", s.delete)

	return s
}

// Players returns a snapshot of the stored roster
func (s *Server) Players() []domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.players)
}

// Requests returns "METHOD escaped-path" for every request received so far
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// FailWith makes every following request answer with the given status and a non-JSON body.
// 0 restores normal operation.
func (s *Server) FailWith(statusCode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = statusCode
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, fmt.Sprintf("%s %s", r.Method, r.URL.EscapedPath()))
	failWith := s.failWith
	s.mu.Unlock()

	if failWith != 0 {
		w.WriteHeader(failWith)
		w.Write([]byte("<html>upstream error</html>"))
		return
	}

	s.mux.ServeHTTP(w, r)
}

type wirePlayer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Status    string    `json:"status"`
	ImageURL  string    `json:"imageUrl"`
	TeamID    *int      `json:"teamId"`
	CohortID  int       `json:"cohortId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toWire(player domain.Player) wirePlayer {
	id, _ := strconv.Atoi(string(player.ID))
	return wirePlayer{
		ID:        id,
		Name:      player.Name,
		Breed:     player.Breed,
		Status:    player.Status,
		ImageURL:  player.ImageURL,
		TeamID:    player.TeamID,
		CohortID:  player.CohortID,
		CreatedAt: player.CreatedAt,
		UpdatedAt: player.UpdatedAt,
	}
}

func writeEnvelope(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"error":   nil,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, statusCode int, name string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error": map[string]string{
			"name":    name,
			"message": message,
		},
		"data": nil,
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	players := make([]wirePlayer, 0, len(s.players))
	for _, player := range s.players {
		players = append(players, toWire(player))
	}
	s.mu.Unlock()

	writeEnvelope(w, http.StatusOK, map[string]any{"players": players})
}

func (s *Server) indexOf(id string) int {
	return slices.IndexFunc(s.players, func(player domain.Player) bool {
		return string(player.ID) == id
	})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(r.PathValue("id"))
	if index == -1 {
		writeError(w, http.StatusNotFound, "NotFoundError", fmt.Sprintf("Player with id %s not found", r.PathValue("id")))
		return
	}

	writeEnvelope(w, http.StatusOK, map[string]any{"player": toWire(s.players[index])})
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Breed    string `json:"breed"`
		Status   string `json:"status"`
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "BadRequestError", "invalid body")
		return
	}
	if body.Name == "" || body.Breed == "" {
		writeError(w, http.StatusBadRequest, "ValidationError", "name and breed are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Date(2023, 5, 12, 19, 42, 53, 0, time.UTC)
	player := domain.Player{
		ID:        domain.PlayerID(strconv.Itoa(s.nextID)),
		Name:      body.Name,
		Breed:     body.Breed,
		Status:    body.Status,
		ImageURL:  body.ImageURL,
		CohortID:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.players = append(s.players, player)

	writeEnvelope(w, http.StatusOK, map[string]any{"newPlayer": toWire(player)})
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(r.PathValue("id"))
	if index == -1 {
		writeError(w, http.StatusNotFound, "NotFoundError", fmt.Sprintf("Player with id %s not found", r.PathValue("id")))
		return
	}
	s.players = slices.Delete(s.players, index, index+1)

	writeEnvelope(w, http.StatusOK, nil)
}
