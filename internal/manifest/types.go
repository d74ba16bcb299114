// Package manifest models release manifests: the documents that describe
// the pre-built artifacts published for each target triple.
//
// A manifest is parsed once from JSON or YAML and is read-only afterwards,
// so any number of concurrent resolutions may share it without
// synchronization.
package manifest

// Libc flavor values recognized in asset compat metadata.
const (
	LibcGlibc = "glibc"
	LibcMusl  = "musl"
)

// Manifest is a parsed release manifest. Assets keep document order; the
// first asset for a target is authoritative when targets repeat.
type Manifest struct {
	Version      string      `json:"version" yaml:"version"`
	Channel      string      `json:"channel,omitempty" yaml:"channel,omitempty"`
	PublishedAt  string      `json:"published_at,omitempty" yaml:"published_at,omitempty"`
	Assets       []Asset     `json:"assets" yaml:"assets"`
	ReleaseNotes *Attachment `json:"release_notes,omitempty" yaml:"release_notes,omitempty"`
	ReleaseURL   string      `json:"release_url,omitempty" yaml:"release_url,omitempty"`
	SBOM         *Attachment `json:"sbom,omitempty" yaml:"sbom,omitempty"`
	Provenance   *Attachment `json:"provenance,omitempty" yaml:"provenance,omitempty"`
}

// Asset describes one downloadable artifact for a single target triple.
// Never mutated after parse.
type Asset struct {
	Name      string     `json:"name" yaml:"name"`
	Target    string     `json:"target" yaml:"target"`
	URL       string     `json:"url" yaml:"url"`
	SHA256    string     `json:"sha256" yaml:"sha256"`
	Compat    *Compat    `json:"compat,omitempty" yaml:"compat,omitempty"`
	Signature *Signature `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// Compat declares C-runtime requirements for an asset. Assets without
// compat metadata are universally compatible.
type Compat struct {
	Libc     string `json:"libc" yaml:"libc"`
	MinGlibc string `json:"min_glibc,omitempty" yaml:"min_glibc,omitempty"`
}

// Signature is detached-signature metadata for the downstream verifier;
// resolution carries it through untouched.
type Signature struct {
	Type      string `json:"type" yaml:"type"`
	Value     string `json:"value" yaml:"value"`
	PublicKey string `json:"public_key,omitempty" yaml:"public_key,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Attachment is a non-binary release artifact (notes, SBOM, provenance).
type Attachment struct {
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url" yaml:"url"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}
