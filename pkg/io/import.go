package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/wordmark/pkg/errors"
)

// ReadManifest decodes an export manifest from r.
//
// The configuration inside is returned as written; callers normalize it
// before rendering.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode manifest")
	}
	if m.RunID == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "manifest has no run_id")
	}
	return &m, nil
}

// ImportManifest reads a manifest file at path.
//
// A directory path is resolved to the manifest inside it.
func ImportManifest(path string) (*Manifest, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, ManifestFile)
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadManifest(f)
}
