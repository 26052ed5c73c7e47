package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer wraps http.Server with start and stop helpers.
type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer builds the server from config. The write timeout is raised
// above the generation budget when needed: a generate request holds its
// connection for the whole provider round trip.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	writeTimeout := cfg.HTTPWriteTimeout
	if writeTimeout > 0 && writeTimeout < cfg.GenerationTimeout {
		writeTimeout = cfg.GenerationTimeout + 10*time.Second
	}

	return &HTTPServer{srv: &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		MaxHeaderBytes:    1 << 20,
	}}
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *HTTPServer) Start() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests within the context deadline.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
