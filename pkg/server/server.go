// Package server exposes the game engine over a WebSocket endpoint.
// It owns connection admission (capacity and lifecycle rejections),
// frame decoding into engine actions, and the serialized dispatch of
// everything that touches game state.
package server

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/jjoak3/dumptrick/pkg/hearts"
	"github.com/jjoak3/dumptrick/pkg/hub"
	"github.com/jjoak3/dumptrick/pkg/session"
	"github.com/jjoak3/dumptrick/pkg/worker"
)

// Server wires the engine, the session registry and the serialized
// action queue behind the HTTP surface
type Server struct {
	engine   *hearts.Engine
	queue    *worker.Serial
	sessions *session.Registry
	upgrader websocket.Upgrader
}

// New builds a server from the ambient viper configuration
func New() *Server {
	expires := viper.GetDuration("game.expires")

	s := &Server{
		engine: hearts.NewEngine(
			hearts.WithTurnDelay(viper.GetDuration("game.turn_delay")),
			hearts.WithBotDelay(viper.GetDuration("game.bot_delay")),
			hearts.WithScoreStep(viper.GetDuration("game.score_step")),
		),
		queue:    worker.NewSerial(viper.GetInt("server.queue_size")),
		sessions: session.New(session.WithTTL(expires)),
	}

	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r.Header.Get("Origin"))
		},
	}

	return s
}

// Handler returns the HTTP surface: a health endpoint and the
// WebSocket endpoint, both behind the CORS middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/ws", s.handleWS)
	return withCORS(mux)
}

// Run serves until the context's process receives a shutdown; callers
// own the http.Server so they can drain it. Run also starts the
// expiration janitor.
func (s *Server) Run(addr string) *http.Server {
	s.startJanitor()

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	return srv
}

// Close stops the action queue
func (s *Server) Close() {
	s.queue.Close()
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	data, _ := json.Marshal(map[string]string{"message": "Server running"})
	w.Write(data)
}

// handleWS upgrades the connection, resolves the session identity and
// pumps inbound frames into the serialized queue until the client
// disconnects
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("upgrade failed")
		return
	}

	conn := hub.NewConn(ws)
	playerID, ok := s.admit(r.URL.Query().Get("player_id"), conn)
	if !ok {
		// close through the Conn so its write loop exits too; the
		// loop's defer closes the underlying socket
		conn.Close()
		return
	}

	logger := log.With().Str("player_id", playerID).Stringer("conn_id", conn.ID()).Logger()
	logger.Info().Msg("client connected")

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			logger.Info().Err(err).Msg("client disconnected")
			break
		}

		action, err := decodeAction(data)
		if err != nil {
			logger.Warn().Err(err).Msg("dropping undecodable frame")
			continue
		}

		if err := s.dispatch(playerID, action); err != nil {
			logger.Warn().Err(err).Msg("dropping action")
		}
	}

	conn.Close()
	s.detach(playerID)
}

// admit maps an incoming connection to a stable player identity, all
// inside the serialized queue. A connection with no usable identity
// joins as a new player unless the lobby is full or a game is already
// in progress, in which case it is refused.
func (s *Server) admit(claimed string, conn *hub.Conn) (string, bool) {
	type verdict struct {
		playerID string
		ok       bool
	}

	reply := make(chan verdict, 1)
	err := s.queue.Do(func() {
		players := s.engine.Players()
		state := s.engine.State()

		playerID := claimed
		if !s.sessions.Known(playerID) || players.IsNew(playerID) {
			if players.IsFull() || state.GamePhase != hearts.GameNotStarted {
				reply <- verdict{}
				return
			}

			playerID = s.sessions.Issue()
			players.Add(hearts.NewHuman(playerID))
			players.Broadcast(hearts.PlayersPayload{Players: players.Snapshot()})
		}

		p, _ := players.Get(playerID)
		p.SetSink(conn)
		s.sessions.Touch(playerID)

		p.Send(s.engine.SessionPayload(playerID))
		reply <- verdict{playerID: playerID, ok: true}
	})
	if err != nil {
		return "", false
	}

	// a queue shutting down drops buffered jobs, so the verdict may
	// never come
	select {
	case v := <-reply:
		return v.playerID, v.ok
	case <-s.queue.Done():
		return "", false
	}
}

// dispatch hands one action to the engine through the queue
func (s *Server) dispatch(playerID string, action hearts.Action) error {
	return s.queue.Do(func() {
		s.engine.Dispatch(playerID, action)
	})
}

// detach clears the player's transport handle; players who leave
// before a game starts give their seat back
func (s *Server) detach(playerID string) {
	s.queue.Do(func() {
		players := s.engine.Players()
		p, ok := players.Get(playerID)
		if !ok {
			return
		}

		p.ClearSink()

		if s.engine.State().GamePhase == hearts.GameNotStarted {
			players.Remove(playerID)
			s.sessions.Forget(playerID)
			players.Broadcast(hearts.PlayersPayload{Players: players.Snapshot()})
		}
	})
}

// startJanitor periodically resets a game that has outlived
// game.expires, through the same serialized queue as every other
// state change
func (s *Server) startJanitor() {
	expires := viper.GetDuration("game.expires")
	interval := viper.GetDuration("game.expiry_check")
	if expires <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			s.queue.Do(func() {
				if s.engine.State().IsExpired(expires) {
					log.Info().Msg("game expired, resetting")
					s.engine.Dispatch("", hearts.ResetGame{})
				}
			})
		}
	}()
}
