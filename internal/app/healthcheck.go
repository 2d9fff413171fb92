package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// healthHandler reports liveness while a long sweep is running.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// startHealthcheckServer initializes and runs the health check HTTP server.
// The returned stop function shuts the server down.
func (a *App) startHealthcheckServer(ctx context.Context, port int) (func(), error) {
	a.logger.Debug("Configuring health check server.")
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	addr := fmt.Sprintf(":%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{Handler: mux}
	go func() {
		a.logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			a.logger.Error("Health check server failed", "error", err)
		}
	}()

	stop := func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			a.logger.Warn("Health check server shutdown failed", "error", err)
		}
	}
	return stop, nil
}
