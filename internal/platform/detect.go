package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using live host introspection.
type RealDetector struct{}

// NewDetector creates a new host profile detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect builds the host profile. It uses runtime.GOOS and runtime.GOARCH
// for OS and architecture, gopsutil for Linux distribution details, and
// bounded subprocess probes for libc facts.
//
// Probe and distro-detection failures degrade rather than fail: Musl stays
// false, GlibcVersion becomes GlibcVersionUnknown, and distro fields stay
// empty. Only unsupported architectures and context cancellation are errors.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:           runtime.GOOS,
		ArchRaw:      runtime.GOARCH,
		GlibcVersion: GlibcVersionUnknown,
	}

	arch, err := normalizeArch(runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("host detection failed: %w", err)
	}
	info.Arch = arch

	if runtime.GOOS != "linux" {
		return info, nil
	}

	info.Musl = detectMusl(ctx)
	if !info.Musl {
		info.GlibcVersion = DetectGlibcVersion(ctx)
	}

	platformID, family, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("host detection cancelled: %w", ctx.Err())
		}
		// Distro identity is advisory; the libc facts above are all that
		// resolution needs.
		return info, nil
	}

	if platformID != "" {
		info.Platform = normalizeToken(platformID)
		info.Family = normalizeToken(family)
		info.Version = normalizeToken(version)
	}

	return info, nil
}

// normalizeArch converts GOARCH values to normalized architecture names.
// Only amd64 and arm64 hosts have release targets.
func normalizeArch(arch string) (string, error) {
	switch arch {
	case "amd64", "x86_64":
		return "amd64", nil
	case "arm64", "aarch64":
		return "arm64", nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", arch)
	}
}

// normalizeToken lowercases and trims distro identifiers for consistency.
func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
