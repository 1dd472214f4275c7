package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"greenhouse-sync/internal/models"
)

// Config is the resolved, immutable runtime configuration. It is built once
// at startup and passed by value to every component that needs it; there is
// no mutable configuration global anywhere.
type Config struct {
	// Board settings (the plugin-options surface).
	URLToken         string
	APIKey           string
	CacheExpiry      time.Duration // 0 disables caching entirely
	BoardType        string        // accordion | cycle
	FormType         string        // iframe | inline
	CycleFx          string        // fade | fadeout | none | scrollHorz
	Debug            bool
	Disabled         bool
	DisableDashboard bool

	// Upstream client + sync knobs.
	BoardsBaseURL     string
	HarvestBaseURL    string
	HTTPTimeout       time.Duration
	SyncTimeout       time.Duration
	SyncInterval      time.Duration // 0 = background watcher off
	EnrichConcurrency int
	DashboardRows     int
}

// Options are explicitly passed settings, the highest-priority source.
// Pointer fields distinguish "set to zero value" from "not set".
type Options struct {
	URLToken         string
	APIKey           string
	CacheExpirySecs  *int
	BoardType        string
	FormType         string
	CycleFx          string
	Debug            *bool
	Disabled         *bool
	DisableDashboard *bool
}

// Resolve merges the three configuration sources in priority order (explicit
// option, then environment variable, then persisted settings document);
// first non-empty wins, falling back to defaults. persisted may be nil (no
// settings document yet).
func Resolve(opts Options, persisted *models.Setting) Config {
	if persisted == nil {
		persisted = &models.Setting{}
	}

	expiry := 3600
	if v := firstInt(opts.CacheExpirySecs, envInt("GREENHOUSE_CACHE_EXPIRY"), persisted.CacheExpirySecs); v != nil {
		expiry = *v
	}
	if expiry < 0 {
		log.Printf("⚠️ negative cache expiry %d, falling back to 3600s", expiry)
		expiry = 3600
	}

	cfg := Config{
		URLToken:         firstString(opts.URLToken, os.Getenv("GREENHOUSE_URL_TOKEN"), persisted.URLToken),
		APIKey:           firstString(opts.APIKey, os.Getenv("GREENHOUSE_API_KEY"), persisted.APIKey),
		CacheExpiry:      time.Duration(expiry) * time.Second,
		BoardType:        choice("boardType", firstString(opts.BoardType, os.Getenv("GREENHOUSE_BOARD_TYPE"), persisted.BoardType), "accordion", "cycle"),
		FormType:         choice("formType", firstString(opts.FormType, os.Getenv("GREENHOUSE_FORM_TYPE"), persisted.FormType), "iframe", "inline"),
		CycleFx:          choice("cycleFx", firstString(opts.CycleFx, os.Getenv("GREENHOUSE_CYCLE_FX"), persisted.CycleFx), "fade", "fadeout", "none", "scrollHorz"),
		Debug:            firstBool(opts.Debug, envBool("GREENHOUSE_DEBUG")),
		Disabled:         firstBool(opts.Disabled, envBool("GREENHOUSE_DISABLED")),
		DisableDashboard: firstBool(opts.DisableDashboard, envBool("GREENHOUSE_DISABLE_DASHBOARD")),

		BoardsBaseURL:     envOr("GREENHOUSE_BOARDS_URL", ""),
		HarvestBaseURL:    envOr("GREENHOUSE_HARVEST_URL", ""),
		HTTPTimeout:       durationOr("GREENHOUSE_HTTP_TIMEOUT", 15*time.Second),
		SyncTimeout:       durationOr("GREENHOUSE_SYNC_TIMEOUT", 2*time.Minute),
		SyncInterval:      durationOr("GREENHOUSE_SYNC_INTERVAL", 0),
		EnrichConcurrency: intOr("GREENHOUSE_ENRICH_CONCURRENCY", 5),
		DashboardRows:     intOr("GREENHOUSE_DASHBOARD_ROWS", 10),
	}

	if cfg.EnrichConcurrency < 1 {
		cfg.EnrichConcurrency = 1
	}
	if cfg.DashboardRows < 1 {
		cfg.DashboardRows = 10
	}
	return cfg
}

// CachingDisabled reports whether the job cache is bypassed entirely: jobs
// are fetched fresh on every read and never persisted.
func (c Config) CachingDisabled() bool {
	return c.CacheExpiry == 0
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstBool(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}

// choice validates an enum-like setting, falling back to the first allowed
// value (the default) when the given one is empty or unknown.
func choice(name, value string, allowed ...string) string {
	if value == "" {
		return allowed[0]
	}
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	log.Printf("⚠️ unknown %s %q, falling back to %q", name, value, allowed[0])
	return allowed[0]
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// envInt returns nil when the variable is unset or unparseable, so the
// priority chain can fall through. A set-but-zero value still counts.
func envInt(key string) *int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️ %s=%q is not an integer, ignoring", key, value)
		return nil
	}
	return &parsed
}

func envBool(key string) *bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a boolean, ignoring", key, value)
		return nil
	}
	return &parsed
}

func intOr(key string, fallback int) int {
	if v := envInt(key); v != nil {
		return *v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a duration, ignoring", key, value)
		return fallback
	}
	return parsed
}
