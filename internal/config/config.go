package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAddr = ":8080"

type Config struct {
	Addr   string
	AppEnv string

	TracesExport string // stdout|none
	TracesPretty bool
}

// LoadDotEnv reads .env from the working directory if there is one.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func LoadFromEnv() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:         strings.TrimSpace(os.Getenv("BACKEND_ADDR")),
		AppEnv:       strings.TrimSpace(os.Getenv("APP_ENV")),
		TracesExport: strings.ToLower(strings.TrimSpace(os.Getenv("OTEL_TRACES_EXPORTER"))),
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.TracesExport == "" {
		cfg.TracesExport = "stdout"
	}

	if v := strings.TrimSpace(os.Getenv("OTEL_PRETTY_PRINT")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TracesPretty = b
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid OTEL_PRETTY_PRINT=%q, using default false\n", v)
		}
	}

	// BACKEND_ADDR is optional if PORT is set by the hosting environment.
	if cfg.Addr == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			// If PORT is a bare port, accept ":<port>". If it already includes host, keep it.
			if strings.Contains(port, ":") {
				cfg.Addr = port
			} else {
				cfg.Addr = ":" + port
			}
		}
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}

	switch cfg.TracesExport {
	case "stdout", "none", "noop":
	default:
		return Config{}, fmt.Errorf("missing/invalid env: OTEL_TRACES_EXPORTER=%q (want stdout|none)", cfg.TracesExport)
	}

	return cfg, nil
}

// IsDevelopment reports whether dev-only behaviour (CORS for local
// frontends, pretty traces) should be enabled.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
