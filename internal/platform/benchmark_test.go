package platform

import "testing"

func BenchmarkDetectTarget(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = DetectTarget("Linux", "x86_64", false)
	}
}

func BenchmarkMuslTarget(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = MuslTarget("x86_64-unknown-linux-gnu")
	}
}

func BenchmarkParseGlibcVersion(b *testing.B) {
	banner := "ldd (Ubuntu GLIBC 2.31-0ubuntu9.9) 2.31"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parseGlibcVersion(banner)
	}
}
