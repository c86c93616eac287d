package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/joanrios/insultari/internal/assets"
	"github.com/joanrios/insultari/internal/config"
	"github.com/joanrios/insultari/internal/insults"
	"github.com/joanrios/insultari/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	templates, err := assets.ParsePageTemplates(cfg.Templates.Directory)
	if err != nil {
		return fmt.Errorf("assets.ParsePageTemplates() > %w", err)
	}

	repository := insults.NewJSONInsultRepository(cfg.Insults.File)
	if _, err := repository.Load(); err != nil {
		return fmt.Errorf("repository.Load() > %w", err)
	}

	handler := server.NewHandler(repository, templates)
	mux := handler.NewServeMux()

	log.Printf("Starting server on %s", cfg.Server.Address)
	return http.ListenAndServe(cfg.Server.Address,
		corsMiddleware(cfg.Server.AllowedOrigin, h2c.NewHandler(mux, &http2.Server{})))
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(os.Getenv("INSULTARI_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func corsMiddleware(allowedOrigin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if allowedOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
