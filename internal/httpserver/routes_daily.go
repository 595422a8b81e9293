// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Puzzle" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's puzzle (creates or reuses session)
//   - POST /daily/move        → apply an edge toggle to today's puzzle
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can finish the daily once per day (enforced by DB + in-memory
// session). Sessions are held in memory for active play and persisted to DB
// on win. Everyone gets the same board: the generator seed is derived
// deterministically from date + salt.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/daily"
	"github.com/robalobadob/loopy/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	size     board.Size
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	Game  *game.Game
	Date  string
	Seed  int64
	Start time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	size, err := board.ParseSize(getEnv("DAILY_SIZE", "medium"))
	if err != nil {
		size = board.Medium
	}
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		size:     size,
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/move", dd.handleMove)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dateKeyNow returns today's date key and deterministic generator seed.
func (d *dailyServer) dateKeyNow() (date string, seed int64) {
	now := time.Now().UTC()
	return daily.DateKey(now), daily.Seed(now, d.salt)
}

// evictStale drops in-memory sessions from previous dates. The board
// rolls over at midnight UTC and old sessions can never be played
// again, so they would otherwise pile up for the life of the process.
func (d *dailyServer) evictStale(date string) {
	d.mu.Lock()
	for k, sess := range d.sessions {
		if sess.Date != date {
			delete(d.sessions, k)
		}
	}
	d.mu.Unlock()
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) (string, bool) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, true
	}
	return d.srv.ensureAnonID(w, r), true
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID string    `json:"gameId"`
	Date   string    `json:"date"`
	Played bool      `json:"played"`
	Board  boardView `json:"board"`
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB result row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return its board.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	date, seed := d.dateKeyNow()
	d.evictStale(date)

	// Check if already finished (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: "", Date: date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	if sess, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: sess.Game.ID, Date: date, Played: false, Board: viewOf(sess.Game.Board)})
		return
	}
	d.mu.Unlock()

	// Same seed for everyone on this date, so the same board.
	g, err := game.New(game.ModeSolo, d.size, seed)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("generate daily puzzle")
		http.Error(w, `{"error":"generation_failed"}`, http.StatusServiceUnavailable)
		return
	}
	sess := &dailySession{Game: g, Date: date, Seed: seed, Start: time.Now()}
	d.mu.Lock()
	d.sessions[key] = sess
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: g.ID, Date: date, Played: false, Board: viewOf(g.Board)})
}

// -----------------------------------------------------------------------------
// /daily/move

// dailyMoveReq is the request payload for /daily/move.
type dailyMoveReq struct {
	GameID string `json:"gameId"`
	Edge   int    `json:"edge"`
	State  string `json:"state"`
}

// dailyMoveRes is the response payload for /daily/move.
type dailyMoveRes struct {
	Verdict  string    `json:"verdict"`
	Rejected bool      `json:"rejected"`
	State    string    `json:"state"` // playing | won | stalemate | locked
	Moves    int       `json:"moves"`
	Board    boardView `json:"board"`
}

// handleMove validates and applies an edge toggle for today's daily session.
// - Ensures valid GameID and edge state.
// - Rejects if no session or session finished.
// - Applies the toggle through the usual validate-then-commit path.
// - Persists result to DB on win.
func (d *dailyServer) handleMove(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var p dailyMoveReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	st, ok := parseEdgeState(p.State)
	if !ok || p.GameID == "" {
		http.Error(w, "invalid", http.StatusBadRequest)
		return
	}

	date, _ := d.dateKeyNow()

	// Find session.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.Game.ID != p.GameID {
		http.Error(w, "no session", http.StatusConflict)
		return
	}
	g := sess.Game
	if g.Finished {
		_ = json.NewEncoder(w).Encode(dailyMoveRes{State: "locked", Moves: g.Moves, Board: viewOf(g.Board)})
		return
	}

	v, err := g.ApplyMove(board.EdgeID(p.Edge), st)
	if err != nil {
		http.Error(w, "invalid move", http.StatusBadRequest)
		return
	}

	// Persist and return.
	if g.Won {
		elapsed := int(time.Since(sess.Start).Milliseconds())
		_ = d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, Seed: sess.Seed, Moves: g.Moves, Hints: g.Hints, ElapsedMs: elapsed,
		})
	}
	_ = json.NewEncoder(w).Encode(dailyMoveRes{
		Verdict:  v.Kind.String(),
		Rejected: v.Rejected(),
		State:    g.State(),
		Moves:    g.Moves,
		Board:    viewOf(g.Board),
	})
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
		date, _ = d.dateKeyNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
