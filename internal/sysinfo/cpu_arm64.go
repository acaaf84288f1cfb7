//go:build arm64

package sysinfo

import "golang.org/x/sys/cpu"

func detectArchFeatures(f *Features) {
	f.HasNEON = cpu.ARM64.HasASIMD
}
