package resolve

import (
	"context"

	"github.com/HaldisBrandt/relpick/internal/manifest"
	"github.com/HaldisBrandt/relpick/internal/platform"
)

// GlibcVersionFunc reports the host glibc version, or
// platform.GlibcVersionUnknown when it cannot be determined. It must never
// return the empty string.
type GlibcVersionFunc func(ctx context.Context) string

// Resolver applies override and degradation policy on top of SelectAsset.
type Resolver struct {
	glibcVersion GlibcVersionFunc
	logger       Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGlibcVersionFunc replaces the live glibc probe, for tests or callers
// that already hold the host's libc facts.
func WithGlibcVersionFunc(fn GlibcVersionFunc) Option {
	return func(r *Resolver) {
		r.glibcVersion = fn
	}
}

// WithLogger sets the logger used for resolution decisions.
func WithLogger(logger Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver. By default it probes the live host for
// the glibc version and logs nothing.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		glibcVersion: platform.DetectGlibcVersion,
		logger:       defaultLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SelectWithFallback resolves the asset to install for detectedTarget under
// the given overrides. Rules fire in order; the first applicable rule wins:
//
//  1. ov.ForcedTarget replaces detectedTarget for the rest of resolution.
//  2. ov.NoFallback degrades to a plain SelectAsset call; any
//     incompatibility below surfaces as an error instead.
//  3. ov.PreferMusl rewrites a linux-gnu target to its musl equivalent
//     before lookup.
//  4. A found asset whose declared glibc floor exceeds the host version
//     (or whose floor cannot be checked because the version is unknown) is
//     discarded and the musl equivalent is looked up instead. When that
//     equivalent is absent the error reports the original target; the
//     caller only needs to know nothing usable was found.
//
// The glibc probe runs lazily, only when rule 4 needs it, and the manifest
// is never consulted to "guess" a musl asset: the substitute target comes
// from textual ABI substitution alone.
func (r *Resolver) SelectWithFallback(ctx context.Context, m *manifest.Manifest, detectedTarget string, ov Overrides) (*manifest.Asset, error) {
	target := detectedTarget
	if ov.ForcedTarget != "" {
		r.logger.Debug("target forced by override", "target", ov.ForcedTarget, "detected", detectedTarget)
		target = ov.ForcedTarget
	}

	if ov.NoFallback {
		r.logger.Debug("fallback disabled by override", "target", target)
		return SelectAsset(m, target)
	}

	if ov.PreferMusl {
		if musl, ok := platform.MuslTarget(target); ok {
			r.logger.Debug("musl preferred by override", "target", musl)
			target = musl
		}
	}

	asset, err := SelectAsset(m, target)
	if err != nil {
		return nil, err
	}

	if r.glibcFloorSatisfied(ctx, asset) {
		return asset, nil
	}

	musl, ok := platform.MuslTarget(target)
	if !ok {
		return nil, &NoMatchingAssetError{Target: target}
	}
	r.logger.Info("host glibc below asset floor, substituting musl target",
		"target", target, "musl_target", musl, "min_glibc", asset.Compat.MinGlibc)

	muslAsset, muslErr := SelectAsset(m, musl)
	if muslErr != nil {
		return nil, &NoMatchingAssetError{Target: target}
	}
	return muslAsset, nil
}

// glibcFloorSatisfied reports whether asset's declared glibc floor is met
// by the host. Assets without compat metadata, or without a floor, are
// always compatible. An unknown host version fails the check: unknown must
// not be assumed new enough.
func (r *Resolver) glibcFloorSatisfied(ctx context.Context, asset *manifest.Asset) bool {
	compat := asset.Compat
	if compat == nil || compat.Libc != manifest.LibcGlibc || compat.MinGlibc == "" {
		return true
	}

	hostVersion := r.glibcVersion(ctx)
	if hostVersion == platform.GlibcVersionUnknown {
		r.logger.Debug("host glibc version unknown, treating floor as unmet",
			"min_glibc", compat.MinGlibc)
		return false
	}
	return compareDotted(hostVersion, compat.MinGlibc) >= 0
}
