// Package sysinfo reports CPU feature flags for diagnostic output. It is
// informational only: the block codec never branches on these flags, since
// the format calls for a single-hash greedy matcher and a byte-by-byte
// overlap-correct copy loop with no SIMD fast paths.
package sysinfo

import (
	"fmt"
	"runtime"
	"sync"
)

// Features reports which CPU capabilities were detected on this host.
type Features struct {
	Arch      string
	HasSSE2   bool
	HasSSE41  bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool
}

func (f Features) String() string {
	switch f.Arch {
	case "amd64":
		return fmt.Sprintf("%s (sse2=%v sse4.1=%v avx2=%v avx512=%v)",
			f.Arch, f.HasSSE2, f.HasSSE41, f.HasAVX2, f.HasAVX512)
	case "arm64":
		return fmt.Sprintf("%s (neon=%v)", f.Arch, f.HasNEON)
	default:
		return f.Arch
	}
}

var (
	detectOnce sync.Once
	cached     Features
)

// Detect returns the host's CPU feature flags, caching the result after the
// first call.
func Detect() Features {
	detectOnce.Do(func() {
		cached = Features{Arch: runtime.GOARCH}
		detectArchFeatures(&cached)
	})
	return cached
}
