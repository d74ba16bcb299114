package resolve

import "github.com/HaldisBrandt/relpick/internal/manifest"

// SelectAsset returns the first asset in manifest order whose target triple
// equals target exactly. No normalization, no fuzzy matching, no fallback;
// callers wanting degraded behavior go through Resolver.SelectWithFallback.
func SelectAsset(m *manifest.Manifest, target string) (*manifest.Asset, error) {
	for i := range m.Assets {
		if m.Assets[i].Target == target {
			return &m.Assets[i], nil
		}
	}
	return nil, &NoMatchingAssetError{Target: target}
}
