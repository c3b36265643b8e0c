// Package config содержит настройки приложения
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config содержит настройки приложения
type Config struct {
	RunAddr     string
	BaseURL     string
	DatabaseDSN string
	APIToken    string
	GRPCAddr    string
	CodeLength  int
}

// NewConfig создает и возвращает новый объект Config: значения по умолчанию,
// затем флаги командной строки, затем переменные окружения (окружение важнее)
func NewConfig() *Config {
	// Подхватываем .env, если он есть
	_ = godotenv.Load()

	cfg := &Config{
		RunAddr:     ":8080",
		BaseURL:     "http://localhost:8080",
		DatabaseDSN: "",
		APIToken:    "default_api_token",
		GRPCAddr:    "",
		CodeLength:  4,
	}

	// Регистрируем флаги
	flagRunAddr := flag.String("a", ":8080", "address and port to run server")
	flagBaseURL := flag.String("b", "http://localhost:8080", "base URL for short links")
	flagDatabaseDSN := flag.String("d", "", "database DSN for PostgreSQL")
	flagAPIToken := flag.String("t", "default_api_token", "bearer token for the management API")
	flagGRPCAddr := flag.String("g", "", "address and port for the gRPC server (disabled when empty)")
	flagCodeLength := flag.Int("l", 4, "length of generated short codes")
	flag.Parse()

	// Проверяем переменные окружения
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		cfg.RunAddr = addr
	} else if *flagRunAddr != "" {
		cfg.RunAddr = *flagRunAddr
	}

	if url := os.Getenv("BASE_URL"); url != "" {
		cfg.BaseURL = url
	} else if *flagBaseURL != "" {
		cfg.BaseURL = *flagBaseURL
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.DatabaseDSN = dsn
	} else if *flagDatabaseDSN != "" {
		cfg.DatabaseDSN = *flagDatabaseDSN
	}

	if token := os.Getenv("API_TOKEN"); token != "" {
		cfg.APIToken = token
	} else if *flagAPIToken != "" {
		cfg.APIToken = *flagAPIToken
	}

	if addr := os.Getenv("GRPC_ADDRESS"); addr != "" {
		cfg.GRPCAddr = addr
	} else if *flagGRPCAddr != "" {
		cfg.GRPCAddr = *flagGRPCAddr
	}

	if raw := os.Getenv("CODE_LENGTH"); raw != "" {
		if length, err := strconv.Atoi(raw); err == nil && length > 0 {
			cfg.CodeLength = length
		}
	} else if *flagCodeLength > 0 {
		cfg.CodeLength = *flagCodeLength
	}

	// Валидация значений
	if !strings.Contains(cfg.RunAddr, ":") {
		cfg.RunAddr = ":" + cfg.RunAddr
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		cfg.BaseURL = "http://" + cfg.BaseURL
	}

	return cfg
}
