package lz4block

import (
	"errors"

	"github.com/ndyakov/foldz4/internal/bytesio"
	"github.com/ndyakov/foldz4/internal/match"
	"github.com/ndyakov/foldz4/internal/postab"
)

// MFLIMIT is the minimum tail length that must always be emitted as literal:
// a match may never start within the last MFLIMIT bytes of a block, and
// Count never extends a match into them.
const MFLIMIT = 12

// MaxBlockInputSize is the largest source length CompressBlock will accept
// for a single block. The on-wire block length prefix reserves its top bit
// for the (currently unused) uncompressed-passthrough marker, leaving 31
// bits for the payload length.
const MaxBlockInputSize = 0x7E000000

var (
	// ErrInputTooLarge is returned when a block's source exceeds MaxBlockInputSize.
	ErrInputTooLarge = errors.New("foldz4: block input too large")
	// ErrInvalidOffset is returned when a decoded match references offset 0
	// or an offset beyond the bytes produced so far.
	ErrInvalidOffset = errors.New("foldz4: invalid match offset")
	// ErrTruncatedSequence is returned when a block payload ends in the
	// middle of a sequence's literal bytes or its 2-byte offset. A payload
	// that ends inside a length extension yields ErrUnterminatedVarint.
	ErrTruncatedSequence = errors.New("foldz4: truncated sequence")
	// ErrUnterminatedVarint is returned when a varint length extension runs
	// off the end of the payload without a terminating non-0xFF byte.
	ErrUnterminatedVarint = errors.New("foldz4: unterminated length varint")
)

// CompressBlock compresses src into dst using a single-hash greedy matcher
// and writes the 4-byte little-endian payload length prefix into dst[0:4].
// dst must be preallocated to at least WorstCaseBlockLength(len(src))+4
// bytes. It returns the total bytes written (prefix + payload), or an error
// if src is too large.
//
// table is the caller-owned position table for this block; it is reset
// here so the caller may reuse the same allocation across blocks.
func CompressBlock(dst []byte, src []byte, table *postab.Table) (int, error) {
	if len(src) > MaxBlockInputSize {
		return 0, ErrInputTooLarge
	}
	table.Reset()

	dstPtr := 4 // reserve length prefix
	maxIndex := len(src) - MFLIMIT

	srcPtr := 0
	literalHead := 0

	for srcPtr < maxIndex {
		v := bytesio.ReadU32LE(src, srcPtr)
		q, ok := match.Find(table, v, src, srcPtr)
		if !ok {
			table.Set(v, srcPtr)
			srcPtr++
			continue
		}

		// maxIndex itself is the first of the last MFLIMIT bytes, so the
		// last byte a match may cover is maxIndex-1.
		length := match.Count(src, q, srcPtr, maxIndex-1)
		if length < match.MinMatch {
			break
		}

		dstPtr += EncodeSequence(dst, dstPtr, src[literalHead:srcPtr], Match{
			Offset: srcPtr - q,
			Length: length,
		})
		srcPtr += length
		literalHead = srcPtr
	}

	dstPtr += EncodeSequence(dst, dstPtr, src[literalHead:], Match{Empty: true})

	payloadLen := dstPtr - 4
	bytesio.WriteU32LE(dst, 0, uint32(payloadLen))
	return dstPtr, nil
}

// decodeVarLen reads the LZ4 varint length extension starting at
// payload[p]: each 0xFF byte adds 255 and continues; the first non-0xFF
// byte adds its value and terminates. Returns the accumulated extra length
// and the index just past the extension.
func decodeVarLen(payload []byte, p int) (extra, next int, err error) {
	for {
		if p >= len(payload) {
			return 0, 0, ErrUnterminatedVarint
		}
		b := payload[p]
		p++
		extra += int(b)
		if b != 0xFF {
			return extra, p, nil
		}
	}
}

// DecompressBlock interprets payload (the bytes after the 4-byte length
// prefix) as a sequence of encoded sequences and appends the decoded bytes
// to dst, returning the extended slice.
func DecompressBlock(dst []byte, payload []byte) ([]byte, error) {
	p := 0
	for p < len(payload) {
		token := payload[p]
		p++
		litLen := int(token >> 4)
		matchCode := int(token & 0x0F)

		if litLen == 15 {
			extra, next, err := decodeVarLen(payload, p)
			if err != nil {
				return dst, err
			}
			litLen += extra
			p = next
		}

		if p+litLen > len(payload) {
			return dst, ErrTruncatedSequence
		}
		dst = append(dst, payload[p:p+litLen]...)
		p += litLen

		if p >= len(payload) {
			// Tail-only sequence: no match follows the final literal run.
			break
		}

		if p+2 > len(payload) {
			return dst, ErrTruncatedSequence
		}
		offset := int(payload[p]) | int(payload[p+1])<<8
		p += 2

		if offset == 0 {
			return dst, ErrInvalidOffset
		}

		matchLen := matchCode
		if matchCode == 15 {
			extra, next, err := decodeVarLen(payload, p)
			if err != nil {
				return dst, err
			}
			matchLen += extra
			p = next
		}
		matchLen += match.MinMatch

		if offset > len(dst) {
			return dst, ErrInvalidOffset
		}

		// Byte-by-byte copy: offset < matchLen is legal (run-length
		// expansion) and relies on reading bytes just appended above.
		from := len(dst) - offset
		for i := 0; i < matchLen; i++ {
			dst = append(dst, dst[from+i])
		}
	}

	return dst, nil
}
