package resolve

import (
	"os"
	"testing"

	"github.com/HaldisBrandt/relpick/internal/testutil"
)

func lookupFromMap(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestOverridesFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Overrides
	}{
		{
			name: "nothing set",
			env:  map[string]string{},
			want: Overrides{},
		},
		{
			name: "prefer musl",
			env:  map[string]string{EnvPreferMusl: "1"},
			want: Overrides{PreferMusl: true},
		},
		{
			name: "no fallback",
			env:  map[string]string{EnvNoFallback: "true"},
			want: Overrides{NoFallback: true},
		},
		{
			name: "forced target",
			env:  map[string]string{EnvTarget: "aarch64-unknown-linux-musl"},
			want: Overrides{ForcedTarget: "aarch64-unknown-linux-musl"},
		},
		{
			name: "forced target trimmed",
			env:  map[string]string{EnvTarget: "  x86_64-apple-darwin  "},
			want: Overrides{ForcedTarget: "x86_64-apple-darwin"},
		},
		{
			name: "all together",
			env: map[string]string{
				EnvPreferMusl: "yes please",
				EnvNoFallback: "1",
				EnvTarget:     "x86_64-unknown-linux-gnu",
			},
			want: Overrides{
				PreferMusl:   true,
				NoFallback:   true,
				ForcedTarget: "x86_64-unknown-linux-gnu",
			},
		},
		{
			name: "off values are false",
			env: map[string]string{
				EnvPreferMusl: "0",
				EnvNoFallback: "FALSE",
			},
			want: Overrides{},
		},
		{
			name: "no spelled out",
			env:  map[string]string{EnvPreferMusl: "no"},
			want: Overrides{},
		},
		{
			name: "empty values are false",
			env: map[string]string{
				EnvPreferMusl: "",
				EnvNoFallback: "   ",
				EnvTarget:     "",
			},
			want: Overrides{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverridesFromEnv(lookupFromMap(tt.env))
			if got != tt.want {
				t.Errorf("OverridesFromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOverridesFromEnv_ProcessEnvironment(t *testing.T) {
	testutil.ClearResolutionEnv(t)
	t.Setenv(EnvPreferMusl, "1")
	t.Setenv(EnvTarget, "x86_64-unknown-linux-musl")

	got := OverridesFromEnv(os.LookupEnv)
	want := Overrides{PreferMusl: true, ForcedTarget: "x86_64-unknown-linux-musl"}
	if got != want {
		t.Errorf("OverridesFromEnv(os.LookupEnv) = %+v, want %+v", got, want)
	}
}
