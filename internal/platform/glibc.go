package platform

import (
	"context"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"time"
)

// probeTimeout bounds libc probes; a stuck subprocess must not stall
// resolution. Probe results are advisory only.
const probeTimeout = 2 * time.Second

var glibcVersionRe = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// DetectGlibcVersion reports the host glibc version (e.g. "2.31").
// It shells out to getconf, falling back to ldd, and returns
// GlibcVersionUnknown on any failure. An unknown version is a safe,
// well-defined fallback trigger for resolution, so no error is ever
// returned.
func DetectGlibcVersion(ctx context.Context) string {
	if runtime.GOOS != "linux" {
		return GlibcVersionUnknown
	}
	if v := glibcFromGetconf(ctx); v != "" {
		return v
	}
	if v := glibcFromLdd(ctx); v != "" {
		return v
	}
	return GlibcVersionUnknown
}

// glibcFromGetconf parses output such as "glibc 2.31".
func glibcFromGetconf(ctx context.Context) string {
	out, err := runProbe(ctx, "getconf", "GNU_LIBC_VERSION")
	if err != nil {
		return ""
	}
	return parseGlibcVersion(firstLine(out))
}

// glibcFromLdd parses banners such as
// "ldd (Ubuntu GLIBC 2.31-0ubuntu9.9) 2.31".
func glibcFromLdd(ctx context.Context) string {
	out, err := runProbe(ctx, "ldd", "--version")
	if err != nil {
		return ""
	}
	if strings.Contains(strings.ToLower(out), "musl") {
		return ""
	}
	return parseGlibcVersion(firstLine(out))
}

// detectMusl reports whether the host C runtime is musl, by inspecting the
// dynamic loader output for the running executable. musl's ldd exits
// nonzero but still prints an identifying banner, so the exit status is
// ignored. Any probe failure means "not musl".
func detectMusl(ctx context.Context) bool {
	if runtime.GOOS != "linux" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	out, _ := exec.CommandContext(ctx, "ldd", "/proc/self/exe").CombinedOutput()
	return strings.Contains(string(out), "musl")
}

// parseGlibcVersion extracts the first dotted version number from probe
// output, or "" when none is present.
func parseGlibcVersion(s string) string {
	return glibcVersionRe.FindString(s)
}

func runProbe(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
