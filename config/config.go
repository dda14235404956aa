// Package config resolves runtime settings from defaults, an optional
// config file and MODELDECK_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/qyinm/modeldeck/backdrop"
	"github.com/qyinm/modeldeck/types"
)

const (
	EnvConfig = "MODELDECK_CONFIG"

	EnvCatalog            = "MODELDECK_CATALOG"
	EnvCategory           = "MODELDECK_CATEGORY"
	EnvSort               = "MODELDECK_SORT"
	EnvBackdrop           = "MODELDECK_BACKDROP"
	EnvBackdropSpacing    = "MODELDECK_BACKDROP_SPACING"
	EnvBackdropRadius     = "MODELDECK_BACKDROP_RADIUS"
	EnvBackdropFPS        = "MODELDECK_BACKDROP_FPS"
	EnvLogFile            = "MODELDECK_LOG_FILE"
	EnvLogLevel           = "MODELDECK_LOG_LEVEL"
	EnvMCPEnableAdmin     = "MODELDECK_MCP_ENABLE_ADMIN"
	EnvMCPCacheClearEvery = "MODELDECK_MCP_CACHE_CLEAR_INTERVAL"
)

type Config struct {
	Catalog  string
	Category string
	Sort     string

	Backdrop        bool
	BackdropSpacing float64
	BackdropRadius  float64
	BackdropFPS     int

	LogFile  string
	LogLevel string

	MCPEnableAdmin        bool
	MCPCacheClearInterval time.Duration
}

func Default() Config {
	p := backdrop.DefaultParams()
	return Config{
		Category:              types.All.String(),
		Sort:                  types.Newest.String(),
		Backdrop:              true,
		BackdropSpacing:       p.Spacing,
		BackdropRadius:        p.Radius,
		BackdropFPS:           p.FPS,
		LogLevel:              "info",
		MCPCacheClearInterval: 30 * time.Minute,
	}
}

// Load resolves the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom applies, in order, defaults, the file named by MODELDECK_CONFIG
// and the environment read through getenv.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(getenv(EnvConfig)); path != "" {
		f, err := ReadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.Merge(f)
	}

	cfg.Catalog = parseString(getenv(EnvCatalog), cfg.Catalog)
	cfg.Category = parseString(getenv(EnvCategory), cfg.Category)
	cfg.Sort = parseString(getenv(EnvSort), cfg.Sort)
	cfg.Backdrop = parseBool(getenv(EnvBackdrop), cfg.Backdrop)
	cfg.BackdropSpacing = parseFloat(getenv(EnvBackdropSpacing), cfg.BackdropSpacing)
	cfg.BackdropRadius = parseFloat(getenv(EnvBackdropRadius), cfg.BackdropRadius)
	cfg.BackdropFPS = parseInt(getenv(EnvBackdropFPS), cfg.BackdropFPS)
	cfg.LogFile = parseString(getenv(EnvLogFile), cfg.LogFile)
	cfg.LogLevel = parseString(getenv(EnvLogLevel), cfg.LogLevel)
	cfg.MCPEnableAdmin = parseBool(getenv(EnvMCPEnableAdmin), cfg.MCPEnableAdmin)
	cfg.MCPCacheClearInterval = parseDuration(getenv(EnvMCPCacheClearEvery), cfg.MCPCacheClearInterval)

	return cfg, cfg.Validate()
}

// Validate checks the values that have a fixed vocabulary.
func (c Config) Validate() error {
	if _, err := types.ParseCategory(c.Category); err != nil {
		return fmt.Errorf("config category: %w", err)
	}
	if _, err := types.ParseSortKey(c.Sort); err != nil {
		return fmt.Errorf("config sort: %w", err)
	}
	return nil
}

// FilterState returns the initial browser state described by c.
func (c Config) FilterState() (types.FilterState, error) {
	state := types.DefaultFilterState()
	cat, err := types.ParseCategory(c.Category)
	if err != nil {
		return state, err
	}
	sort, err := types.ParseSortKey(c.Sort)
	if err != nil {
		return state, err
	}
	state.Category = cat
	state.Sort = sort
	return state, nil
}

// BackdropParams returns the grid parameters, keeping defaults for
// unset or non-positive values.
func (c Config) BackdropParams() backdrop.Params {
	p := backdrop.DefaultParams()
	if c.BackdropSpacing > 0 {
		p.Spacing = c.BackdropSpacing
	}
	if c.BackdropRadius > 0 {
		p.Radius = c.BackdropRadius
	}
	if c.BackdropFPS > 0 {
		p.FPS = c.BackdropFPS
	}
	return p
}

func parseString(raw, fallback string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	return v
}

func parseBool(raw string, fallback bool) bool {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func parseInt(raw string, fallback int) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func parseFloat(raw string, fallback float64) float64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return n
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
