package foldz4

import "errors"

// Sentinel errors surfaced by the high-level compressor/extractor. The
// underlying frame, block, and archive packages return their own more
// specific sentinels; callers that only care about the coarse failure kind
// can match against these with errors.Is.
var (
	// ErrBadFile is returned when an archive or frame fails to decode: bad
	// magic, unsupported descriptor, a checksum mismatch, or a malformed
	// archive record. It wraps the more specific underlying error.
	ErrBadFile = errors.New("foldz4: bad file")
	// ErrIO is returned when a read or write at the file-system boundary
	// fails or returns fewer bytes than required.
	ErrIO = errors.New("foldz4: i/o failure")
)
