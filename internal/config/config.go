package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Addr           string
	Env            string
	CSRFKey        []byte
	LogLevel       slog.Level
	ProfilePath    string   // optional JSON profile override
	Features       string   // feature toggles, e.g. "zeffy_modal=off"
	RateLimit      int      // requests per second per IP
	SlowRequestMs  int      // slow request log threshold
	Debug          bool     // exposes /debug/perf
	TrustProxy     bool     // take client IPs from X-Forwarded-For
	TrustedOrigins []string // extra CSRF trusted origins
}

// ErrCSRFKeyRequired is returned when production runs without a CSRF key.
var ErrCSRFKeyRequired = errors.New("PDGC_CSRF_KEY is required in production")

// IsProduction reports whether the process runs in production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env files (if present) and the PDGC_* environment variables.
// PRE: none
// POST: returns a complete Config or an error for invalid values
func Load() (Config, error) {
	c, err := load()
	if err != nil {
		return Config{}, err
	}
	if c.CSRFKey, err = loadCSRFKey(c.IsProduction()); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadOffline is Load for commands that never serve requests, such as the
// static export. CSRFKey is left nil and PDGC_CSRF_KEY is not required.
func LoadOffline() (Config, error) {
	return load()
}

func load() (Config, error) {
	// Missing .env files are fine.
	_ = godotenv.Load(".env", ".env.local")

	c := Config{
		Addr:          envOrDefault("PDGC_ADDR", ":8080"),
		Env:           envOrDefault("PDGC_ENV", "development"),
		ProfilePath:   os.Getenv("PDGC_PROFILE"),
		Features:      os.Getenv("PDGC_FEATURES"),
		RateLimit:     10,
		SlowRequestMs: 200,
		LogLevel:      slog.LevelInfo,
	}

	var err error
	if c.RateLimit, err = intEnv("PDGC_RATE_LIMIT", c.RateLimit); err != nil {
		return Config{}, err
	}
	if c.SlowRequestMs, err = intEnv("PDGC_SLOW_REQUEST_MS", c.SlowRequestMs); err != nil {
		return Config{}, err
	}
	c.Debug = boolEnv("PDGC_DEBUG")
	c.TrustProxy = boolEnv("PDGC_TRUST_PROXY")

	if lvl := os.Getenv("PDGC_LOG_LEVEL"); lvl != "" {
		if err := c.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return Config{}, fmt.Errorf("PDGC_LOG_LEVEL: %w", err)
		}
	}

	if origins := os.Getenv("PDGC_TRUSTED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.TrustedOrigins = append(c.TrustedOrigins, o)
			}
		}
	}

	return c, nil
}

// loadCSRFKey reads the CSRF secret from PDGC_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey(production bool) ([]byte, error) {
	if keyHex := os.Getenv("PDGC_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return nil, errors.New("PDGC_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key, nil
	}
	if production {
		return nil, ErrCSRFKeyRequired
	}
	return RandomKey()
}

// RandomKey returns a fresh 32-byte key.
func RandomKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate CSRF key: %w", err)
	}
	return key, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	return v == "1" || strings.EqualFold(v, "true")
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
