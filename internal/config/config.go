package config

import (
	"flag"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	XORKey      string `env:"XOR_KEY"`
	StaticDir   string `env:"STATIC_DIR"`

	// Части DSN, если DATABASE_URI не задан
	DBHost    string `env:"DB_HOST"`
	DBPort    string `env:"DB_PORT" envDefault:"5432"`
	DBUser    string `env:"DB_USER"`
	DBPass    string `env:"DB_PASS"`
	DBName    string `env:"DB_NAME" envDefault:"encrypted_notes"`
	DBSSLMode string `env:"DB_SSLMODE" envDefault:"disable"`

	// Пул соединений
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Shared settings
	AuthSecret  string `env:"AUTH_SECRET"`
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "драйвер БД: postgres|sqlite")
	flag.StringVar(&cfg.XORKey, "key", cfg.XORKey, "ключ затемнения текста заметок")
	flag.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "каталог статического фронтенда")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "файл журнала (с ротацией)")
	// Shared flags
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT (пусто — без авторизации)")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the NoteKeeper server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	// Defaults (на случай пустых переменных окружения)
	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBName == "" {
		cfg.DBName = "encrypted_notes"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = 25
	}
	if cfg.DBMaxIdleConns <= 0 {
		cfg.DBMaxIdleConns = 5
	}
	if cfg.DBConnMaxLifetime <= 0 {
		cfg.DBConnMaxLifetime = time.Hour
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = cfg.composeDSN()
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.StaticDir != "" {
		if abs, err := filepath.Abs(cfg.StaticDir); err == nil {
			cfg.StaticDir = abs
		}
	}
}

// composeDSN собирает postgres DSN из DB_* переменных.
// Без DB_HOST (или для sqlite) возвращает пустую строку: тогда нужен DATABASE_URI.
func (cfg *Config) composeDSN() string {
	if cfg.DBHost == "" || cfg.DBDriver == "sqlite" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     cfg.DBHost + ":" + cfg.DBPort,
		Path:     "/" + cfg.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(cfg.DBSSLMode),
	}
	if cfg.DBUser != "" {
		u.User = url.UserPassword(cfg.DBUser, cfg.DBPass)
	}
	return u.String()
}

// Validate проверяет настройки, без которых сервер не должен стартовать.
func (cfg *Config) Validate() error {
	if cfg.XORKey == "" {
		return fmt.Errorf("XOR_KEY is not set")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("database is not configured: set DATABASE_URI or DB_HOST")
	}
	return nil
}
