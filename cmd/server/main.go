package main

import (
	"NoteKeeper/internal/config"
	"NoteKeeper/internal/crypto"
	"NoteKeeper/internal/handlers"
	"NoteKeeper/internal/logger"
	"NoteKeeper/internal/middleware"
	"NoteKeeper/internal/repo"
	"NoteKeeper/internal/service"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём регистратор zap (консоль + файл с ротацией, если задан LOG_FILE)
	zl := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	// делаем регистратор SugaredLogger
	sugar := zl.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = zl.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		sugar.Fatalw("invalid configuration", "error", err)
	}

	// ключ проверяется до старта: пустой или нулевой ключ — дефект конфигурации
	cipher, err := crypto.NewCipher([]byte(cfg.XORKey))
	if err != nil {
		sugar.Fatalw("invalid XOR_KEY", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DBDriver, cfg.DatabaseDSN, repo.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		sugar.Fatalw("failed to get sql.DB", "error", err)
	}
	defer sqlDB.Close()

	noteRepo := repo.NewNoteRepository(gormDB, cipher)
	noteService := service.NewNoteService(noteRepo, sugar)

	h := handlers.NewHandler(noteService, sqlDB, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow(
		"Starting server",
		"addr", cfg.BaseURL,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DBDriver", cfg.DBDriver,
		"StaticDir", cfg.StaticDir,
		"AuthEnabled", cfg.AuthSecret != "",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	case <-ctx.Done():
		shutdown(srv, cfg.ShutdownTimeout, sugar)
	}
}

func shutdown(srv *http.Server, timeout time.Duration, sugar *zap.SugaredLogger) {
	sugar.Infow("Shutting down server", "timeout", timeout)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
}
