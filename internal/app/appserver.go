package app

import (
	"errors"
	"net"
	"net/http"
	"sync"

	"wsgreet/internal/greeter"
	"wsgreet/internal/shared/logger"
	"wsgreet/internal/shared/types"
)

// AppServer is the application's main struct. It owns the HTTP listener and
// routes the configured websocket path to the greeting handler.
type AppServer struct {
	cfg *types.Config

	listener   net.Listener
	httpServer *http.Server

	stopOnce sync.Once
}

func New(cfg *types.Config) *AppServer {
	mux := http.NewServeMux()
	mux.Handle(cfg.ServerConf.WSPath, greeter.NewHandler(logger.WithComponent("greeter")))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &AppServer{
		cfg:        cfg,
		httpServer: &http.Server{Handler: mux},
	}
}

// Listen binds the configured listen address without serving yet.
func (s *AppServer) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.ServerConf.ListenAddr)
	if err != nil {
		return err
	}
	s.listener = ln
	logger.Info().
		Str("addr", ln.Addr().String()).
		Str("path", s.cfg.ServerConf.WSPath).
		Msg("wsgreet server listening")
	return nil
}

// Serve blocks serving connections until Stop is called or the listener
// fails. A Stop-initiated shutdown is not an error.
func (s *AppServer) Serve() error {
	err := s.httpServer.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *AppServer) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Addr returns the bound listen address. Only valid after Listen.
func (s *AppServer) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the server.
func (s *AppServer) Stop() {
	s.stopOnce.Do(func() {
		logger.Info().Msg("Stopping server...")
		_ = s.httpServer.Close()
	})
}
