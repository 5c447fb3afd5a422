// Package server is the browser shell: a small HTTP server with an embedded
// single-page UI and a websocket endpoint that answers catalog and cycle
// computation requests. The cycle model itself stays in pkg/cycle; this
// package only moves messages.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vcycle/vcycle/pkg/props"
)

type Server struct {
	cfg      Config
	upgrader websocket.Upgrader
	provider props.Provider
	log      *slog.Logger
}

// New builds a server around the given property backend.
func New(cfg Config, p props.Provider, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// local tool: the page and the socket share the same origin,
			// but file:// and localhost aliases are fine too
			CheckOrigin: func(*http.Request) bool { return true },
		},
		provider: p,
		log:      log,
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade", "err", err)
		return
	}
	defer conn.Close()
	s.log.Info("client connected", "remote", r.RemoteAddr)
	newHub(conn, s.provider, s.cfg, s.log).run()
	s.log.Info("client disconnected", "remote", r.RemoteAddr)
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// ListenAndServe blocks serving the UI page on / and the socket on /ws.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWS)
	s.log.Info("listening", "addr", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, mux)
}
