package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/observability"
	"github.com/matzehuels/wordmark/pkg/pipeline"
	"github.com/matzehuels/wordmark/pkg/render"
	"github.com/matzehuels/wordmark/pkg/render/preview"
)

// Fixed file names inside an export directory.
const (
	PreviewFile  = "preview.html"
	ManifestFile = "manifest.json"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Manifest describes one export directory.
type Manifest struct {
	RunID   string       `json:"run_id"`
	Version string       `json:"version,omitempty"`
	Format  string       `json:"format"`
	Created time.Time    `json:"created"`
	Config  brand.Config `json:"config"`
	Files   []File       `json:"files"`
}

// File is one written variant.
type File struct {
	Number int    `json:"number"`
	ID     string `json:"id"`
	Label  string `json:"label"`
	Name   string `json:"file"`
	Error  string `json:"error,omitempty"`
}

// Sanitize maps a label to a file-name-safe stem.
func Sanitize(label string) string {
	return unsafeChars.ReplaceAllString(label, "_")
}

// FileName returns the export name for a variant: "NN_<label>.<ext>".
func FileName(number int, label, format string) string {
	return fmt.Sprintf("%02d_%s.%s", number, Sanitize(label), format)
}

// SingleFileName returns the name used when exporting one variant on its own.
func SingleFileName(label, format string) string {
	return Sanitize(label) + "." + format
}

// ExportOptions controls [ExportAll].
type ExportOptions struct {
	Version     string // recorded in the manifest
	SkipPreview bool
}

// ExportAll writes every output of res into dir, followed by the preview
// gallery and the manifest. dir is created if needed.
func ExportAll(ctx context.Context, res *pipeline.Result, format, dir string, opts ExportOptions) (*Manifest, error) {
	start := time.Now()
	m, err := exportAll(res, format, dir, opts)
	files := 0
	if m != nil {
		files = len(m.Files)
	}
	observability.Pipeline().OnExport(ctx, format, files, time.Since(start), err)
	return m, err
}

func exportAll(res *pipeline.Result, format, dir string, opts ExportOptions) (*Manifest, error) {
	if format == "" {
		format = render.FormatSVG
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	m := &Manifest{
		RunID:   res.RunID,
		Version: opts.Version,
		Format:  format,
		Created: time.Now().UTC(),
		Config:  res.Config,
	}
	for _, o := range res.Outputs {
		ext := format
		data, ok := res.Artifacts[o.ID]
		if !ok || o.Failed() {
			// Placeholders have no converted artifact; keep the empty SVG.
			data, ext = []byte(o.SVG), render.FormatSVG
		}
		name := FileName(o.Number, o.Label, ext)
		if err := errors.ValidateFileName(name); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		m.Files = append(m.Files, File{Number: o.Number, ID: o.ID, Label: o.Label, Name: name, Error: o.Error})
	}

	if !opts.SkipPreview {
		page := preview.Gallery(res.Outputs, preview.NoSelection)
		if err := os.WriteFile(filepath.Join(dir, PreviewFile), []byte(page), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", PreviewFile, err)
		}
	}

	if err := ExportManifest(m, filepath.Join(dir, ManifestFile)); err != nil {
		return nil, err
	}
	return m, nil
}

// ExportOne writes a single document to dir under [SingleFileName] and
// returns the written path.
func ExportOne(label string, data []byte, format, dir string) (string, error) {
	name := SingleFileName(label, format)
	if err := errors.ValidateFileName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// WriteManifest encodes m as indented JSON.
func WriteManifest(m *Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportManifest writes m to a file at path.
// This is a convenience wrapper around [WriteManifest] for file-based output.
func ExportManifest(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteManifest(m, f)
}
