package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrUnknownFormat is returned for files that are neither JSON nor HCL.
var ErrUnknownFormat = errors.New("unknown manifest format")

// Load reads a manifest file; the extension (.json or .hcl) picks the decoder.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Decode(data, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	m.Dir = filepath.Dir(path)
	return m, nil
}

// Decode decodes data, choosing the format from filename's extension.
func Decode(data []byte, filename string) (*Manifest, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return DecodeJSON(data)
	case ".hcl":
		return DecodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("%w: %s (want .json or .hcl)", ErrUnknownFormat, filename)
	}
}

// DecodeJSON decodes a JSON manifest.
func DecodeJSON(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse JSON manifest: %w", err)
	}
	return &m, nil
}

// DecodeHCL decodes an HCL manifest.
func DecodeHCL(data []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL manifest %s: %w", filename, diags)
	}
	var m Manifest
	diags = gohcl.DecodeBody(file.Body, nil, &m)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL manifest %s: %w", filename, diags)
	}
	return &m, nil
}
