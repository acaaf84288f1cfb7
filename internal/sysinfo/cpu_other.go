//go:build !amd64 && !arm64

package sysinfo

func detectArchFeatures(f *Features) {}
