// Package lifecycle owns process startup and graceful shutdown.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	ShutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Service defines the interface that all background services must
// implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// ServerOptions holds configuration for running a server process.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Handler     http.Handler
	Services    []Service
}

// RunServer starts the HTTP server and the background services, then
// blocks until a signal or a fatal error triggers shutdown.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Printf("*** Starting service %s", opts.ServiceName)

	httpServer := &http.Server{
		Addr:              opts.ListenAddr,
		Handler:           opts.Handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)

	for _, svc := range opts.Services {
		go func(svc Service) {
			if err := svc.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				select {
				case errChan <- err:
				default:
					log.Printf("Service error: %v", err)
				}
			}
		}(svc)
	}

	go func() {
		log.Printf("Starting HTTP server on %s", opts.ListenAddr)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case errChan <- err:
			default:
				log.Printf("HTTP server error: %v", err)
			}
		}
	}()

	return handleShutdown(ctx, cancel, httpServer, opts.Services, errChan)
}

func handleShutdown(
	ctx context.Context, cancel context.CancelFunc, httpServer *http.Server, services []Service, errChan chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		log.Printf("Received error: %v, initiating shutdown", err)
		runErr = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		log.Printf("Context canceled, initiating shutdown")
		runErr = ctx.Err()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during HTTP server shutdown: %v", err)
	}

	for _, svc := range services {
		if err := svc.Stop(shutdownCtx); err != nil {
			log.Printf("Error during service shutdown: %v", err)
		}
	}

	return runErr
}
