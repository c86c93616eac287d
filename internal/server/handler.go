// Package server provides the HTTP handlers for the insultari website: the
// static pages, the raw collection document, and a small JSON API.
package server

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/joanrios/insultari/internal/assets"
	"github.com/joanrios/insultari/internal/insults"
)

// Handler serves the insultari pages and API. The collection is re-read on
// every request so edits to the document show up without a restart.
type Handler struct {
	repository *insults.JSONInsultRepository
	templates  *assets.PageTemplates

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewHandler creates a new Handler.
func NewHandler(repository *insults.JSONInsultRepository, templates *assets.PageTemplates) *Handler {
	return &Handler{
		repository: repository,
		templates:  templates,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewServeMux registers all routes on a fresh mux.
func (h *Handler) NewServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /aleatori", h.handleAleatoriPage)
	mux.HandleFunc("GET /insults.json", h.handleDocument)
	mux.HandleFunc("GET /api/insults", h.handleAPIInsults)
	mux.HandleFunc("GET /api/insults/aleatori", h.handleAPIAleatori)
	mux.HandleFunc("/", h.handleFallback)
	return mux
}

// getOnlyPaths lists every registered route. All of them are GET-only, so a
// request reaching the fallback for one of these paths carries a wrong method.
var getOnlyPaths = map[string]struct{}{
	"/":                     {},
	"/aleatori":             {},
	"/insults.json":         {},
	"/api/insults":          {},
	"/api/insults/aleatori": {},
}

func (h *Handler) random(collection *insults.Collection) *insults.Insult {
	h.mu.Lock()
	defer h.mu.Unlock()
	return collection.Random(h.rnd)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	collection, err := h.repository.Load()
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Index.Execute(w, map[string]any{"Count": collection.Len()}); err != nil {
		slog.Default().Error("failed to render the index page", slog.Any("error", err))
	}
}

func (h *Handler) handleAleatoriPage(w http.ResponseWriter, r *http.Request) {
	collection, err := h.repository.Load()
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	insult := h.random(collection)
	if insult == nil {
		h.renderError(w, r, http.StatusNotFound, nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.templates.Aleatori.Execute(w, map[string]any{"Insult": insult}); err != nil {
		slog.Default().Error("failed to render the aleatori page", slog.Any("error", err))
	}
}

// handleDocument serves the raw document exactly as persisted. The no-store
// header plus the widget's timestamp parameter keep caches out of the way.
func (h *Handler) handleDocument(w http.ResponseWriter, r *http.Request) {
	contents, err := os.ReadFile(h.repository.Path())
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(contents)
}

func (h *Handler) handleAPIInsults(w http.ResponseWriter, r *http.Request) {
	collection, err := h.repository.Load()
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, collection.Insults)
}

func (h *Handler) handleAPIAleatori(w http.ResponseWriter, r *http.Request) {
	collection, err := h.repository.Load()
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	insult := h.random(collection)
	if insult == nil {
		h.renderError(w, r, http.StatusNotFound, nil)
		return
	}
	h.writeJSON(w, insult)
}

func (h *Handler) handleFallback(w http.ResponseWriter, r *http.Request) {
	if _, known := getOnlyPaths[r.URL.Path]; known && r.Method != http.MethodGet {
		h.renderError(w, r, http.StatusMethodNotAllowed, nil)
		return
	}
	h.renderError(w, r, http.StatusNotFound, nil)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Default().Error("failed to encode a JSON response", slog.Any("error", err))
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, code int, cause error) {
	if cause != nil {
		slog.Default().Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Int("code", code),
			slog.Any("error", cause),
		)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := h.templates.Error.Execute(w, map[string]any{"Code": code}); err != nil {
		slog.Default().Error("failed to render the error page", slog.Any("error", err))
	}
}
