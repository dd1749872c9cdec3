// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's board (creates or reuses session)
//   - POST /daily/click       → forward a click into today's daily game
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can win once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on win.
// Deterministic level + shuffle selection is based on date + salt, so every
// player faces the identical board.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mahjong/go-server/internal/daily"
	"github.com/robalobadob/mahjong/go-server/internal/layout"
	"github.com/robalobadob/mahjong/go-server/internal/session"
)

// dailyServer wraps dependencies for /daily endpoints.
// Active daily sessions live in the shared session store, keyed userID|date.
type dailyServer struct {
	srv   *Server
	store *daily.Store
	salt  string
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:   s,
		store: daily.NewStore(s.db),
		salt:  getEnv("DAILY_SALT", "local_dev_salt"),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/click", dd.handleClick)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// challengeNow returns today's date key and the deterministic level + seed.
func (d *dailyServer) challengeNow() (date string, level layout.Level, seed int64) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	idx, seed := daily.Challenge(now, d.salt, len(layout.Levels()))
	return date, layout.Level(idx), seed
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// newRes is returned by /daily/new.
type newRes struct {
	Date   string    `json:"date"`
	Played bool      `json:"played"`
	State  *stateRes `json:"state,omitempty"`
}

// handleNew creates or reuses the daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return the board.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, level, seed := d.challengeNow()

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(newRes{Date: date, Played: true})
		return
	}

	// Reuse or create session. Store uses the composite key directly; daily
	// sessions never collide with normal game IDs.
	key := uid + "|" + date
	if sess, err := d.srv.store.Get(r.Context(), key); err == nil {
		st := snapshot(sess)
		_ = json.NewEncoder(w).Encode(newRes{Date: date, Played: false, State: &st})
		return
	}
	sess, err := session.New(level, seed)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("create daily session")
		http.Error(w, `{"error":"create_failed"}`, http.StatusInternalServerError)
		return
	}
	sess.ID = key
	sess.Daily = true
	if err := d.srv.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	st := snapshot(sess)
	_ = json.NewEncoder(w).Encode(newRes{Date: date, Played: false, State: &st})
}

// -----------------------------------------------------------------------------
// /daily/click

// dailyClickReq is the request payload for /daily/click.
type dailyClickReq struct {
	TileID int `json:"tileId"`
}

// handleClick forwards a click into today's daily session.
// - Rejects if no session exists for the user+date.
// - Persists the result to DB when the board is cleared.
func (d *dailyServer) handleClick(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyClickReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	date, _, _ := d.challengeNow()
	key := uid + "|" + date
	sess, err := d.srv.store.Get(r.Context(), key)
	if err != nil {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	outcome := sess.Click(p.TileID)

	// Persist and return.
	if outcome.Result == session.ClickMatched && outcome.Won {
		res := daily.Result{
			UserID:    uid,
			Date:      date,
			Level:     int(sess.Level),
			Matches:   sess.Matches(),
			ElapsedMs: int(sess.Elapsed().Milliseconds()),
		}
		if err := d.store.InsertResult(r.Context(), res); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("insert daily result")
		}
	}
	_ = json.NewEncoder(w).Encode(clickRes{Outcome: outcome, State: snapshot(sess)})
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
		date, _, _ = d.challengeNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
