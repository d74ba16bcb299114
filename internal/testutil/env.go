// Package testutil provides utilities for testing relpick in isolation.
package testutil

import "testing"

// ResolutionEnvVars are the environment variables that influence asset
// resolution. Kept in one place so env-clearing helpers and tests cannot
// drift from the resolver's override surface.
var ResolutionEnvVars = []string{
	"RELPICK_PREFER_MUSL",
	"RELPICK_TARGET",
	"RELPICK_NO_FALLBACK",
}

// ClearResolutionEnv blanks the resolution override variables for the
// duration of the test, so tests never inherit policy from the invoking
// shell. t.Setenv restores the previous values automatically.
func ClearResolutionEnv(t *testing.T) {
	t.Helper()
	for _, key := range ResolutionEnvVars {
		t.Setenv(key, "")
	}
}
