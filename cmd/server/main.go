package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/formen/formen/internal/config"
	"github.com/formen/formen/internal/export"
	mw "github.com/formen/formen/internal/middleware"
	"github.com/formen/formen/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	hub := session.NewHub()
	go hub.Run()

	exportHandler := export.NewHandler(cfg.MaxImportBytes, cfg.CanvasWidth, cfg.CanvasHeight)

	r := newRouter(cfg, hub, exportHandler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Close sessions first so their read loops return
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "origins", cfg.Origins())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newRouter(cfg *config.Config, hub *session.Hub, exportHandler *export.Handler) *mux.Router {
	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, hub.Count())
	}).Methods("GET")

	// Export / import endpoints
	r.HandleFunc("/export/png", exportHandler.ExportPNG).Methods("POST", "OPTIONS")
	r.HandleFunc("/export/svg", exportHandler.ExportSVG).Methods("POST", "OPTIONS")
	r.HandleFunc("/import", exportHandler.Import).Methods("POST", "OPTIONS")

	// WebSocket endpoint
	r.HandleFunc("/ws/session", session.ServeWS(hub, session.Options{
		OriginPatterns: cfg.Origins(),
		Width:          cfg.CanvasWidth,
		Height:         cfg.CanvasHeight,
	}))

	return r
}
