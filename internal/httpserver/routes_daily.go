// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily gauntlet mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's round (creates or reuses session)
//   - POST /daily/guess       → submit a letter for today's round
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user gets one scored play per day (enforced by DB + in-memory
// session). Everyone faces the same adversary: word length, guess budget,
// and difficulty are derived deterministically from date + salt, and the
// engine itself has no hidden word to vary.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/joshuaxchen/Evil-Hangman/internal/daily"
	"github.com/joshuaxchen/Evil-Hangman/internal/hangman"
	"github.com/joshuaxchen/Evil-Hangman/internal/store"
	"github.com/joshuaxchen/Evil-Hangman/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily round.
type dailySession struct {
	RoundID  string
	UserID   string
	Date     string
	Params   daily.Params
	Start    time.Time
	Finished bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// paramsNow returns today's date key and round parameters.
func (d *dailyServer) paramsNow() (date string, params daily.Params) {
	now := time.Now().UTC()
	return daily.DateKey(now), daily.ParamsFor(now, d.salt, words.Lengths())
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	RoundID string       `json:"roundId"`
	Date    string       `json:"date"`
	Params  daily.Params `json:"params"`
	Played  bool         `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return RoundID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, _ := d.srv.ownerID(w, r)
	date, params := d.paramsNow()
	if params.WordLen == 0 {
		http.Error(w, `{"error":"no_dictionary"}`, http.StatusInternalServerError)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{RoundID: "", Date: date, Params: params, Played: true})
		return
	}

	// Prep the round before taking the lock; the check-and-insert below
	// must stay a single critical section so one user gets one session.
	m, err := hangman.New(words.Words(), nil)
	if err == nil {
		err = m.PrepForRound(params.WordLen, params.NumGuesses, params.Difficulty)
	}
	if err != nil {
		log.Error().Err(err).Msg("prep daily round")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	rd := store.NewRound(m, uid)
	if err := d.srv.store.Save(r.Context(), rd); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok {
		// Won the race: register the freshly saved round. A loser's round
		// stays saved but unreferenced.
		sess = &dailySession{
			RoundID: rd.ID,
			UserID:  uid,
			Date:    date,
			Params:  params,
			Start:   time.Now(),
		}
		d.sessions[key] = sess
	}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{RoundID: sess.RoundID, Date: date, Params: params, Played: false})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	RoundID string `json:"roundId"`
	Letter  string `json:"letter"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	roundView
	Date string `json:"date"`
}

// handleGuess validates and applies a letter to today's daily round.
// - Rejects if no session, mismatched round ID, or session finished.
// - Applies the guess through the shared round store.
// - Persists the result to DB when the round ends.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid, _ := d.srv.ownerID(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	letter := strings.ToLower(strings.TrimSpace(p.Letter))
	if p.RoundID == "" || len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	date, _ := d.paramsNow()

	// Find session.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.RoundID != p.RoundID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	if sess.Finished {
		http.Error(w, `{"error":"locked"}`, http.StatusConflict)
		return
	}

	rd, err := d.srv.store.Get(r.Context(), sess.RoundID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	families, err := rd.Manager.MakeGuess(rune(letter[0]))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	view := viewOf(rd)
	view.Families = families

	// Persist the scored result once the round ends.
	if view.State != "playing" {
		d.mu.Lock()
		sess.Finished = true
		d.mu.Unlock()

		elapsed := int(time.Since(sess.Start).Milliseconds())
		if err := d.store.InsertResult(r.Context(), daily.Result{
			UserID:    uid,
			Date:      date,
			WordLen:   sess.Params.WordLen,
			Won:       view.State == "won",
			Guesses:   len(rd.Manager.GuessedLetters()),
			ElapsedMs: elapsed,
		}); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("insert daily result")
		}
	}

	_ = json.NewEncoder(w).Encode(dailyGuessRes{roundView: view, Date: date})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _ = d.paramsNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
