//go:build amd64

package sysinfo

import "golang.org/x/sys/cpu"

func detectArchFeatures(f *Features) {
	f.HasSSE2 = cpu.X86.HasSSE2
	f.HasSSE41 = cpu.X86.HasSSE41
	f.HasAVX2 = cpu.X86.HasAVX2
	f.HasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
}
