// Package io writes rendered logo variants to disk and reads export
// manifests back.
//
// # Export layout
//
// [ExportAll] writes one SVG (or PNG/PDF) per variant, a preview gallery and
// a manifest into a directory:
//
//	out/
//	  01_01___Basic.svg
//	  02_02___German_flag_underline.svg
//	  ...
//	  preview.html
//	  manifest.json
//
// File names are built from the two-digit catalog number and the variant
// label passed through [Sanitize], which replaces every character outside
// [A-Za-z0-9_-] with an underscore. A variant that failed to render is
// still written, as a placeholder named after [variants.PlaceholderLabel].
//
// # Manifest
//
// The manifest records the run id, the normalized configuration and the
// written files:
//
//	{
//	  "run_id": "9b1c...",
//	  "version": "v1.2.0",
//	  "format": "svg",
//	  "config": { "left": "WALZLAGER", ... },
//	  "files": [
//	    {"number": 1, "id": "basic", "label": "01 - Basic", "file": "01_01___Basic.svg"}
//	  ]
//	}
//
// Use [ImportManifest] to recover the configuration of an earlier export,
// for example to re-render it in another format.
//
// [variants.PlaceholderLabel]: github.com/matzehuels/wordmark/pkg/render/variants.PlaceholderLabel
package io
