package cache

import (
	"slices"
)

// Keyer derives cache keys.
type Keyer interface {
	// CatalogKey identifies the rendered outputs for a configuration and a
	// variant selection. Selection order does not matter.
	CatalogKey(config any, variants []string) string
	// ArtifactKey identifies a converted (PNG/PDF) rendering of one variant.
	ArtifactKey(catalogKey, variant string, opts ArtifactKeyOpts) string
	// ReleaseKey identifies the latest-release lookup for a repository.
	ReleaseKey(repo string) string
}

// ArtifactKeyOpts are the conversion settings that affect an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes inputs into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// CatalogKey implements [Keyer].
func (DefaultKeyer) CatalogKey(config any, variants []string) string {
	ids := slices.Clone(variants)
	slices.Sort(ids)
	return hashKey("catalog", config, ids)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(catalogKey, variant string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", catalogKey, variant, opts)
}

// ReleaseKey implements [Keyer].
func (DefaultKeyer) ReleaseKey(repo string) string {
	return "release:" + repo
}
