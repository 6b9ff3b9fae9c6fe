// Package preview streams the frames scanned by the host display driver to
// websocket clients.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"shimmer/matrix"
)

const writeWait = 2 * time.Second

// FrameSource returns the most recently completed frame and its sequence
// number. hal.Host implements it.
type FrameSource interface {
	Frame() (matrix.Image, uint64)
}

// Frame is the JSON message sent on /frames.
type Frame struct {
	Seq  uint64       `json:"seq"`
	Rows matrix.Image `json:"rows"`
}

// Config tunes the feed. Zero values take the defaults.
type Config struct {
	// FPS is how often the source is polled for a new frame.
	FPS int
	Log *zerolog.Logger
}

// Server fans frames out to every connected client.
type Server struct {
	src   FrameSource
	fps   int
	log   zerolog.Logger
	start time.Time
	up    websocket.Upgrader

	mu sync.Mutex
	// clients maps each connection to the last frame sequence it was sent.
	clients map[*websocket.Conn]uint64
	sent    uint64
}

// New returns a feed for src. Nothing is served until Handler or
// ListenAndServe is used.
func New(src FrameSource, cfg Config) *Server {
	zl := zerolog.Nop()
	if cfg.Log != nil {
		zl = *cfg.Log
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	return &Server{
		src:     src,
		fps:     cfg.FPS,
		log:     zl.With().Str("component", "preview").Logger(),
		start:   time.Now(),
		up:      websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients: map[*websocket.Conn]uint64{},
	}
}

// Handler routes /frames and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frames", s.HandleFrames)
	mux.HandleFunc("/healthz", s.HandleHealth)
	return mux
}

// HandleFrames upgrades the request to a websocket, sends the current frame
// and registers the client for later ones.
func (s *Server) HandleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := s.up.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug().Err(err).Msg("upgrade failed")
		return
	}
	img, seq := s.src.Frame()

	s.mu.Lock()
	s.clients[conn] = seq
	err = s.send(conn, Frame{Seq: seq, Rows: img})
	n := len(s.clients)
	s.mu.Unlock()
	if err != nil {
		s.drop(conn)
		return
	}
	s.log.Info().Str("remote", r.RemoteAddr).Int("clients", n).Msg("client connected")

	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// HandleHealth reports the frame counter, messages sent and client count.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	_, seq := s.src.Frame()
	s.mu.Lock()
	resp := map[string]any{
		"frames":   seq,
		"sent":     s.sent,
		"clients":  len(s.clients),
		"uptime_s": time.Since(s.start).Seconds(),
	}
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Poll sends the current frame to every client that has not seen it yet and
// returns how many clients it reached.
func (s *Server) Poll() int {
	img, seq := s.src.Frame()
	f := Frame{Seq: seq, Rows: img}

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for conn, have := range s.clients {
		if have >= seq {
			continue
		}
		if err := s.send(conn, f); err != nil {
			s.log.Debug().Err(err).Msg("dropping client")
			delete(s.clients, conn)
			conn.Close()
			continue
		}
		s.clients[conn] = seq
		n++
	}
	return n
}

// send must be called with s.mu held; it serializes writers per connection.
func (s *Server) send(conn *websocket.Conn, f Frame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(f); err != nil {
		return err
	}
	s.sent++
	return nil
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		delete(s.clients, conn)
		conn.Close()
	}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Run polls the source at the configured rate until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	t := time.NewTicker(time.Second / time.Duration(s.fps))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			s.Poll()
		}
	}
}

// ListenAndServe serves the feed on addr and polls the source until ctx is
// done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.closeAll()
		return err
	})
	g.Go(func() error {
		s.log.Info().Str("addr", addr).Msg("preview feed listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return g.Wait()
}
