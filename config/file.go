package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File mirrors Config as stored on disk. Nil fields leave the current
// value untouched.
type File struct {
	Catalog  *string `json:"catalog" yaml:"catalog" toml:"catalog"`
	Category *string `json:"category" yaml:"category" toml:"category"`
	Sort     *string `json:"sort" yaml:"sort" toml:"sort"`

	Backdrop        *bool    `json:"backdrop" yaml:"backdrop" toml:"backdrop"`
	BackdropSpacing *float64 `json:"backdrop_spacing" yaml:"backdrop_spacing" toml:"backdrop_spacing"`
	BackdropRadius  *float64 `json:"backdrop_radius" yaml:"backdrop_radius" toml:"backdrop_radius"`
	BackdropFPS     *int     `json:"backdrop_fps" yaml:"backdrop_fps" toml:"backdrop_fps"`

	LogFile  *string `json:"log_file" yaml:"log_file" toml:"log_file"`
	LogLevel *string `json:"log_level" yaml:"log_level" toml:"log_level"`

	MCP struct {
		EnableAdmin        *bool   `json:"enable_admin" yaml:"enable_admin" toml:"enable_admin"`
		CacheClearInterval *string `json:"cache_clear_interval" yaml:"cache_clear_interval" toml:"cache_clear_interval"`
	} `json:"mcp" yaml:"mcp" toml:"mcp"`
}

// ReadFile reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func ReadFile(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &f)
	case ".json":
		err = json.Unmarshal(b, &f)
	case ".toml":
		err = toml.Unmarshal(b, &f)
	default:
		return f, fmt.Errorf("unsupported config extension: %q", ext)
	}
	if err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

// Merge returns c with every field set in f applied.
func (c Config) Merge(f File) Config {
	if f.Catalog != nil {
		c.Catalog = *f.Catalog
	}
	if f.Category != nil {
		c.Category = *f.Category
	}
	if f.Sort != nil {
		c.Sort = *f.Sort
	}
	if f.Backdrop != nil {
		c.Backdrop = *f.Backdrop
	}
	if f.BackdropSpacing != nil {
		c.BackdropSpacing = *f.BackdropSpacing
	}
	if f.BackdropRadius != nil {
		c.BackdropRadius = *f.BackdropRadius
	}
	if f.BackdropFPS != nil {
		c.BackdropFPS = *f.BackdropFPS
	}
	if f.LogFile != nil {
		c.LogFile = *f.LogFile
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.MCP.EnableAdmin != nil {
		c.MCPEnableAdmin = *f.MCP.EnableAdmin
	}
	if f.MCP.CacheClearInterval != nil {
		c.MCPCacheClearInterval = parseDuration(*f.MCP.CacheClearInterval, c.MCPCacheClearInterval)
	}
	return c
}
