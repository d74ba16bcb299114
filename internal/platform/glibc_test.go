package platform

import (
	"context"
	"testing"
	"time"
)

func TestParseGlibcVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{
			name:   "getconf output",
			output: "glibc 2.31",
			want:   "2.31",
		},
		{
			name:   "ubuntu ldd banner",
			output: "ldd (Ubuntu GLIBC 2.31-0ubuntu9.9) 2.31",
			want:   "2.31",
		},
		{
			name:   "debian ldd banner",
			output: "ldd (Debian GLIBC 2.36-9+deb12u4) 2.36",
			want:   "2.36",
		},
		{
			name:   "three components",
			output: "glibc 2.17.1",
			want:   "2.17.1",
		},
		{
			name:   "no version",
			output: "not a libc banner",
			want:   "",
		},
		{
			name:   "empty",
			output: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseGlibcVersion(tt.output); got != tt.want {
				t.Errorf("parseGlibcVersion(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"glibc 2.31\nextra", "glibc 2.31"},
		{"single line", "single line"},
		{"", ""},
		{"\ntrailing", ""},
	}

	for _, tt := range tests {
		if got := firstLine(tt.in); got != tt.want {
			t.Errorf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectGlibcVersion_NeverEmpty(t *testing.T) {
	got := DetectGlibcVersion(context.Background())
	if got == "" {
		t.Fatal("DetectGlibcVersion() returned empty string, want version or sentinel")
	}
}

func TestDetectGlibcVersion_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A dead context must degrade to the sentinel, not panic or hang.
	got := DetectGlibcVersion(ctx)
	if got == "" {
		t.Fatal("DetectGlibcVersion() returned empty string")
	}
}

func TestDetectGlibcVersion_ExpiredDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	got := DetectGlibcVersion(ctx)
	if got == "" {
		t.Fatal("DetectGlibcVersion() returned empty string")
	}
}
