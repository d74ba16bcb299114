package resolve

import "strings"

// Environment variables read by OverridesFromEnv.
const (
	// EnvPreferMusl forces the musl artifact for Linux glibc targets.
	EnvPreferMusl = "RELPICK_PREFER_MUSL"
	// EnvTarget replaces the detected target triple entirely.
	EnvTarget = "RELPICK_TARGET"
	// EnvNoFallback surfaces incompatibilities instead of degrading.
	EnvNoFallback = "RELPICK_NO_FALLBACK"
)

// Overrides carries caller-supplied resolution policy. The engine never
// reads ambient process state itself; construct one per resolution call so
// repeated calls re-evaluate the environment independently.
type Overrides struct {
	PreferMusl   bool
	ForcedTarget string
	NoFallback   bool
}

// LookupFunc is the environment lookup used by OverridesFromEnv, normally
// os.LookupEnv. Injected so tests never mutate shared process state.
type LookupFunc func(key string) (string, bool)

// OverridesFromEnv builds an Overrides value from environment variables.
func OverridesFromEnv(lookup LookupFunc) Overrides {
	ov := Overrides{
		PreferMusl: envTrue(lookup, EnvPreferMusl),
		NoFallback: envTrue(lookup, EnvNoFallback),
	}
	if v, ok := lookup(EnvTarget); ok {
		ov.ForcedTarget = strings.TrimSpace(v)
	}
	return ov
}

// envTrue treats a set, non-empty value as true unless it spells a
// conventional "off" value.
func envTrue(lookup LookupFunc, key string) bool {
	v, ok := lookup(key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no":
		return false
	}
	return true
}
