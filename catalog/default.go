package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed data/models.yaml
var builtinYAML []byte

// BuiltinOrigin is the origin reported by the embedded catalog.
const BuiltinOrigin = "builtin"

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	records, err := Decode(bytes.NewReader(builtinYAML), FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("decode builtin catalog: %w", err)
	}
	return New(BuiltinOrigin, records)
}

// Open loads the catalog at path, or the builtin catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}
	return Load(path)
}
