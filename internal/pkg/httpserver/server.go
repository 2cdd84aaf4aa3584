package httpserver

import (
	"context"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr string
	srv  *http.Server
}

func New(addr string, handler http.Handler) *Server {
	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves until Stop is called; it returns http.ErrServerClosed after a
// graceful shutdown.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Stop drains in-flight requests within the shutdown timeout.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = s.srv.Shutdown(ctx)
}
