// Package resolve selects the release asset to install for a host.
//
// It layers two contracts. SelectAsset is the strict exact-match lookup:
// first asset in manifest order whose target triple matches, or a
// NoMatchingAssetError. Resolver.SelectWithFallback wraps it with policy:
// caller-supplied overrides (forced target, no-fallback, prefer-musl) and
// graceful degradation to a musl artifact when the ideal asset declares a
// glibc floor the host cannot meet.
//
// Resolution is a pure function of its inputs. The Resolver retains no
// state between calls and reads no ambient process state; overrides are a
// value object constructed by the caller (see OverridesFromEnv), and the
// glibc probe is an injected function. A single Resolver may therefore be
// shared across goroutines against the same immutable manifest.
package resolve
