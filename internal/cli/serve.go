package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/sirupsen/logrus"
)

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig   config.ServerConfig
	Logger         logrus.FieldLogger
	IndexHandler   http.Handler
	CartHandler    http.Handler
	ProductHandler http.Handler
	StaticHandler  http.Handler
	// APIHandlers are mounted under /api/. A name ending in "/" is a subtree.
	APIHandlers map[string]http.Handler
}

// RunServe starts the storefront web server and blocks until SIGINT or SIGTERM
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil, deps.Logger)
}

// NewRouter maps the storefront paths onto the handlers in deps
func NewRouter(deps ServerDependencies) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/{$}", deps.IndexHandler)
	mux.Handle("/index.html", deps.IndexHandler)
	mux.Handle("/cart.html", deps.CartHandler)
	mux.Handle("/prod.html", deps.ProductHandler)
	mux.Handle("/static/", http.StripPrefix("/static/", deps.StaticHandler))
	for name, handler := range deps.APIHandlers {
		mux.Handle("/api/"+name, handler)
	}
	return RequestLogger(deps.Logger, mux)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		deps.Logger.WithField("addr", listener.Addr().String()).Info("Server listening")
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			deps.Logger.WithError(err).Error("Server error")
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, logger logrus.FieldLogger) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second, logger)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration, logger logrus.FieldLogger) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	logger.WithField("signal", sig.String()).Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// http.Server.Close does not surface listener close errors, so this
		// branch only fires on a failing custom listener.
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	logger.Info("Server stopped")
	return nil
}
