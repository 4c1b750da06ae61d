// Package server owns the connection runtime: the TCP acceptor and the bounded
// worker pool that runs one task per accepted connection (spec.md §5). Adapted
// from the teacher's PaysysServer accept loop (internal/server/server.go), which
// spawned a bare goroutine per connection and had no pool capacity knob.
package server

import (
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/alitto/pond/v2"

	"mc-protocol-server/internal/config"
)

// Server listens for TCP connections and submits each to a bounded pool.
type Server struct {
	cfg      config.Config
	log      *slog.Logger
	pool     pond.Pool
	listener net.Listener

	closeOnce sync.Once
	shutdown  chan struct{}
}

// New builds a Server. The pool isn't started until ListenAndServe runs.
func New(cfg config.Config, log *slog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		pool:     pond.NewPool(cfg.PoolSize),
		shutdown: make(chan struct{}),
	}
}

// ListenAndServe binds the listen address and accepts connections until Shutdown
// is called. It returns an error only if binding fails; an Accept error outside
// shutdown is logged and accepting continues. Each accepted connection runs as one
// pool task (spec.md §5 "parallel tasks, one per connection").
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", addr, err)
	}
	s.listener = ln
	s.log.Info("listening", "addr", addr, "pool_size", s.cfg.PoolSize, "compression_threshold", s.cfg.CompressionThreshold)

	for {
		nc, err := ln.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return nil
			default:
				s.log.Error("accept", "error", err)
				continue
			}
		}
		s.pool.Submit(func() {
			handleConnection(nc, s.cfg, s.log)
		})
	}
}

// Shutdown stops accepting new connections and drains already-running connection
// tasks (spec.md §5 "existing connections run until their socket closes").
func (s *Server) Shutdown() {
	s.closeOnce.Do(func() {
		close(s.shutdown)
		if s.listener != nil {
			_ = s.listener.Close()
		}
	})
	s.pool.StopAndWait()
}
