package handlers

import (
	"NoteKeeper/internal/config"
	"NoteKeeper/internal/middleware"
	"NoteKeeper/internal/service"
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger проверяет доступность БД для /healthz.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	noteService *service.NoteService,
	db Pinger,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	noteHandler := NewNoteHandler(noteService, logger)

	r.Get("/healthz", healthz(db, logger))

	// Notes routes
	r.Route("/notes", func(r chi.Router) {
		r.Use(middleware.WithAuth(config.AuthSecret))
		r.Get("/", noteHandler.List)
		r.Post("/", noteHandler.Create)
		r.Get("/{id}", noteHandler.Get)
		r.Put("/{id}", noteHandler.Update)
		r.Delete("/{id}", noteHandler.Delete)
	})

	// Статический фронтенд
	if config.StaticDir != "" {
		if st, err := os.Stat(config.StaticDir); err == nil && st.IsDir() {
			fs := http.FileServer(http.Dir(config.StaticDir))
			r.Get("/*", fs.ServeHTTP)
		} else {
			logger.Warnw("static dir is not available, frontend disabled", "dir", config.StaticDir, "error", err)
		}
	}

	return &Handler{Router: r}
}

func healthz(db Pinger, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.Errorw("healthz: database ping failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
