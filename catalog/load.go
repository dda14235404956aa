package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/qyinm/modeldeck/types"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for catalog files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Format identifies a catalog file encoding
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
	FormatHTML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
// Supports: .yaml/.yml, .json, .toml, .html/.htm
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

type rawRecord struct {
	ID          string   `json:"id" yaml:"id" toml:"id"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Developer   string   `json:"developer" yaml:"developer" toml:"developer"`
	ReleaseDate string   `json:"releaseDate" yaml:"releaseDate" toml:"releaseDate"`
	Category    string   `json:"category" yaml:"category" toml:"category"`
	Price       string   `json:"price" yaml:"price" toml:"price"`
	APIPrice    string   `json:"apiPrice,omitempty" yaml:"apiPrice,omitempty" toml:"apiPrice,omitempty"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Features    []string `json:"features" yaml:"features" toml:"features"`
	Tags        []string `json:"tags" yaml:"tags" toml:"tags"`
	Badge       string   `json:"badge,omitempty" yaml:"badge,omitempty" toml:"badge,omitempty"`
	Link        string   `json:"link,omitempty" yaml:"link,omitempty" toml:"link,omitempty"`
}

type rawCatalog struct {
	Models []rawRecord `json:"models" yaml:"models" toml:"models"`
}

func (r rawRecord) toRecord() (types.ModelRecord, error) {
	category, err := types.ParseCategory(r.Category)
	if err != nil {
		return types.ModelRecord{}, fmt.Errorf("record %q: %w", r.ID, err)
	}
	if category == types.All {
		return types.ModelRecord{}, fmt.Errorf("record %q: %w %q", r.ID, types.ErrUnknownCategory, r.Category)
	}
	return types.NewModelRecord(types.RecordData{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Developer:   strings.TrimSpace(r.Developer),
		ReleaseDate: strings.TrimSpace(r.ReleaseDate),
		Category:    category,
		Price:       strings.TrimSpace(r.Price),
		APIPrice:    strings.TrimSpace(r.APIPrice),
		Description: strings.TrimSpace(r.Description),
		Features:    r.Features,
		Tags:        r.Tags,
		Badge:       strings.TrimSpace(r.Badge),
		Link:        strings.TrimSpace(r.Link),
	}), nil
}

// Load reads a catalog file, choosing the decoder from its extension.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty catalog path")
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	records, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog %s: %w", format, path, err)
	}
	return New(path, records)
}

// Decode parses records in the given format. JSON input may be either an
// object with a "models" array or a bare array of records.
func Decode(reader io.Reader, format Format) ([]types.ModelRecord, error) {
	if format == FormatHTML {
		return ParseHTML(reader)
	}

	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var raw rawCatalog
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
	case FormatJSON:
		if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &raw.Models); err != nil {
				return nil, err
			}
		} else if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	records := make([]types.ModelRecord, 0, len(raw.Models))
	for _, r := range raw.Models {
		rec, err := r.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
