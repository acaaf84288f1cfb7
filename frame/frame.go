// Package frame implements the simplified LZ4 frame container: magic
// number, fixed frame descriptor with header checksum, a length-prefixed
// stream of independent blocks, an end marker, and a trailing content
// checksum over the uncompressed byte stream.
package frame

import (
	"errors"
	"io"

	"github.com/pierrec/xxHash/xxHash32"

	"github.com/ndyakov/foldz4/internal/bytesio"
	"github.com/ndyakov/foldz4/internal/lz4block"
	"github.com/ndyakov/foldz4/internal/postab"
)

// Magic is the fixed LZ4 frame magic number.
const Magic = 0x184D2204

// FLG and BD fix the only supported frame-descriptor profile: version 01,
// blocks independent, no block checksum, no content size, content checksum
// on; max block size 4 MiB.
const (
	FLG = 0b01100100
	BD  = 0b01110000
)

// BlockSize is the maximum amount of source data folded into one block.
const BlockSize = 4 << 20

var (
	// ErrBadMagic is returned when a frame's first 4 bytes are not Magic.
	ErrBadMagic = errors.New("foldz4: bad frame magic")
	// ErrUnsupportedDescriptor is returned when FLG or BD differs from the
	// one fixed profile this codec supports.
	ErrUnsupportedDescriptor = errors.New("foldz4: unsupported FLG/BD")
	// ErrHeaderChecksum is returned when the header checksum byte does not
	// match xxh32({FLG,BD}, seed=0).
	ErrHeaderChecksum = errors.New("foldz4: header checksum mismatch")
	// ErrContentChecksum is returned when the trailing content checksum
	// does not match the xxh32 of the decoded byte stream.
	ErrContentChecksum = errors.New("foldz4: content checksum mismatch")
	// ErrShortBlock is returned when a block's payload is shorter than its
	// length prefix promised.
	ErrShortBlock = errors.New("foldz4: truncated block payload")
	// ErrShortTrailer is returned when the trailing content checksum is
	// truncated. A stream that ends where a block length or the end marker
	// is expected yields the underlying read error instead.
	ErrShortTrailer = errors.New("foldz4: truncated frame trailer")
)

func headerChecksum() byte {
	sum := xxHash32.Checksum32([]byte{FLG, BD}, 0)
	// digest() is big-endian; byte index 2 is (sum >> 8) & 0xFF.
	return byte(sum >> 8)
}

// WriteHeader writes the 7-byte frame header (magic, FLG, BD, HC) to w.
func WriteHeader(w io.Writer) error {
	hdr := make([]byte, 7)
	bytesio.WriteU32LE(hdr, 0, Magic)
	hdr[4] = FLG
	hdr[5] = BD
	hdr[6] = headerChecksum()
	_, err := w.Write(hdr)
	return err
}

// Compress reads all of src, folds it into independent 4 MiB blocks, and
// writes a complete frame to dst: header, compressed blocks, end marker,
// and trailing content checksum. It is single-pass and never seeks.
func Compress(dst io.Writer, src io.Reader) error {
	if err := WriteHeader(dst); err != nil {
		return err
	}

	srcBuf := make([]byte, BlockSize)
	dstBuf := make([]byte, lz4block.WorstCaseBlockLength(BlockSize)+4)
	table := postab.New()
	hasher := xxHash32.New(0)

	for {
		n, err := io.ReadFull(src, srcBuf)
		if n > 0 {
			block, cerr := lz4block.CompressBlock(dstBuf, srcBuf[:n], table)
			if cerr != nil {
				return cerr
			}
			if _, werr := dst.Write(dstBuf[:block]); werr != nil {
				return werr
			}
			if _, herr := hasher.Write(srcBuf[:n]); herr != nil {
				return herr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return err
		}
	}

	endMark := make([]byte, 4)
	if _, err := dst.Write(endMark); err != nil {
		return err
	}

	trailer := make([]byte, 4)
	bytesio.WriteU32LE(trailer, 0, hasher.Sum32())
	_, err := dst.Write(trailer)
	return err
}

// Decompress reads a complete frame from src, validates its header and
// trailing content checksum, and writes the decoded byte stream to dst.
func Decompress(dst io.Writer, src io.Reader) error {
	hdr := make([]byte, 7)
	if _, err := io.ReadFull(src, hdr); err != nil {
		return err
	}
	if bytesio.ReadU32LE(hdr, 0) != Magic {
		return ErrBadMagic
	}
	if hdr[4] != FLG || hdr[5] != BD {
		return ErrUnsupportedDescriptor
	}
	if hdr[6] != headerChecksum() {
		return ErrHeaderChecksum
	}

	hasher := xxHash32.New(0)
	lenBuf := make([]byte, 4)
	var payload []byte

	for {
		if _, err := io.ReadFull(src, lenBuf); err != nil {
			return err
		}
		blockLen := bytesio.ReadU32LE(lenBuf, 0)
		if blockLen == 0 {
			break
		}
		if blockLen&0x80000000 != 0 {
			// Uncompressed-passthrough marker: reserved, never emitted by
			// Compress, but a conforming reader still has to honor it.
			n := int(blockLen &^ 0x80000000)
			raw := make([]byte, n)
			if _, err := io.ReadFull(src, raw); err != nil {
				return ErrShortBlock
			}
			if _, err := dst.Write(raw); err != nil {
				return err
			}
			if _, err := hasher.Write(raw); err != nil {
				return err
			}
			continue
		}

		if cap(payload) < int(blockLen) {
			payload = make([]byte, blockLen)
		} else {
			payload = payload[:blockLen]
		}
		if _, err := io.ReadFull(src, payload); err != nil {
			return ErrShortBlock
		}

		decoded, err := lz4block.DecompressBlock(nil, payload)
		if err != nil {
			return err
		}
		if _, err := dst.Write(decoded); err != nil {
			return err
		}
		if _, err := hasher.Write(decoded); err != nil {
			return err
		}
	}

	trailer := make([]byte, 4)
	if _, err := io.ReadFull(src, trailer); err != nil {
		return ErrShortTrailer
	}
	if bytesio.ReadU32LE(trailer, 0) != hasher.Sum32() {
		return ErrContentChecksum
	}
	return nil
}
