package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by build
// version so a new renderer never serves output cached by an older one.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// CatalogKey generates a prefixed catalog key.
func (k *ScopedKeyer) CatalogKey(config any, variants []string) string {
	return k.prefix + k.inner.CatalogKey(config, variants)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(catalogKey, variant string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(catalogKey, variant, opts)
}

// ReleaseKey generates a prefixed release key.
func (k *ScopedKeyer) ReleaseKey(repo string) string {
	return k.prefix + k.inner.ReleaseKey(repo)
}
