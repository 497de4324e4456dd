// internal/httpserver/routes_puzzle.go
//
// Public puzzle routes:
//   - GET /words.json → the active word list (what clients load)
//   - GET /puzzle     → schedule parameters and the current slot
//   - GET /archive    → puzzles served before the current slot
//
// Every client derives the same word from these parameters, so the current
// solution is never sent here.

package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/slotword/internal/puzzle"
	"github.com/robalobadob/slotword/internal/schedule"
	"github.com/robalobadob/slotword/internal/store"
)

// mountPuzzle registers the public puzzle routes.
func (s *Server) mountPuzzle(r chi.Router) {
	r.Get("/words.json", s.handleWords)
	r.Get("/puzzle", s.handlePuzzle)
	r.Get("/archive", s.handleArchive)
}

// handleWords serves the active list with its version as ETag.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	list := s.svc.List()
	etag := `"` + list.Version() + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, list)
}

// puzzleRes is returned by /puzzle.
type puzzleRes struct {
	SlotIndex   int       `json:"slotIndex"`
	Label       string    `json:"label"`
	Date        string    `json:"date"`
	NextAt      time.Time `json:"nextAt"`
	Epoch       time.Time `json:"epoch"`
	SlotsPerDay int       `json:"slotsPerDay"`
	Boundaries  []int     `json:"boundaries"`
	Timezone    string    `json:"timezone"`
	WordLength  int       `json:"wordLength"`
	MaxGuesses  int       `json:"maxGuesses"`
	Salt        string    `json:"salt"`
	ListVersion string    `json:"listVersion"`
}

// handlePuzzle describes the current slot. ?at=RFC3339 evaluates another
// instant without recording it in the archive.
func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	at, explicit, ok := s.instant(w, r)
	if !ok {
		return
	}
	var (
		p   puzzle.Puzzle
		err error
	)
	if explicit {
		p, err = s.svc.At(at)
	} else {
		p, err = s.svc.Current(r.Context(), at)
	}
	if err != nil {
		s.puzzleError(w, err)
		return
	}
	sched := s.svc.Schedule()
	writeJSON(w, puzzleRes{
		SlotIndex:   p.Slot,
		Label:       p.Label,
		Date:        p.Date,
		NextAt:      p.NextAt,
		Epoch:       sched.Epoch,
		SlotsPerDay: sched.SlotsPerDay,
		Boundaries:  sched.Boundaries,
		Timezone:    sched.Location.String(),
		WordLength:  s.svc.List().Length(),
		MaxGuesses:  s.svc.MaxGuesses(),
		Salt:        s.svc.Salt(),
		ListVersion: p.ListVersion,
	})
}

// archiveRes is returned by /archive.
type archiveRes struct {
	Puzzles []store.Record `json:"puzzles"`
}

// handleArchive lists past puzzles, newest first (?limit=N, max 100).
func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = min(n, 100)
	}
	recs, err := s.svc.History(r.Context(), s.now(), limit)
	if err != nil {
		s.puzzleError(w, err)
		return
	}
	writeJSON(w, archiveRes{Puzzles: recs})
}

// instant returns ?at when present (explicit=true), otherwise the server clock.
func (s *Server) instant(w http.ResponseWriter, r *http.Request) (t time.Time, explicit, ok bool) {
	v := r.URL.Query().Get("at")
	if v == "" {
		return s.now(), false, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_at")
		return time.Time{}, false, false
	}
	return t, true, true
}

func (s *Server) puzzleError(w http.ResponseWriter, err error) {
	if errors.Is(err, schedule.ErrBeforeEpoch) {
		writeError(w, http.StatusBadRequest, "before_epoch")
		return
	}
	log.Error().Err(err).Msg("resolve puzzle")
	writeError(w, http.StatusInternalServerError, "server_error")
}
