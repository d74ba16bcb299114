// Package platform provides host introspection for release-asset resolution.
//
// It detects OS, architecture, C runtime flavor (glibc vs musl), and the
// running glibc version, and maps hosts onto the canonical target triples
// used by release manifests. Distro identity comes from gopsutil; libc facts
// come from short, bounded probes with graceful fallback when probing fails.
package platform

import "context"

// GlibcVersionUnknown is the sentinel reported when the host glibc version
// cannot be determined. It is never the empty string, so callers can tell
// "version fact missing" apart from "field not populated".
const GlibcVersionUnknown = "unknown"

// Info contains the host profile used for asset resolution.
// Immutable once Detect returns it.
type Info struct {
	OS           string // "linux", "darwin", "windows"
	Arch         string // "amd64", "arm64" (normalized)
	ArchRaw      string // original GOARCH (e.g., "amd64", "arm64")
	Musl         bool   // true when the C runtime is musl (Linux only)
	GlibcVersion string // e.g. "2.31", or GlibcVersionUnknown
	Platform     string // distro ID (Linux only, e.g., "ubuntu")
	Family       string // distro family (Linux only, e.g., "debian")
	Version      string // distro version (Linux only, e.g., "22.04")
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// UsesGlibc returns true for Linux hosts whose C runtime is glibc.
func (i *Info) UsesGlibc() bool {
	return i.OS == "linux" && !i.Musl
}

// Detector is the interface for host profile detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
