// Package lz4block implements one independent LZ4 block: the sequence
// encoder, the greedy block compressor, and the symmetric block decoder.
package lz4block

import "github.com/ndyakov/foldz4/internal/match"

// Match is a back-reference (offset, length). A Sequence with Match.Empty
// true is tail-only: literal bytes with no following back-reference.
type Match struct {
	Offset int
	Length int
	Empty  bool
}

// WorstCaseBlockLength upper-bounds the encoded size of a block whose
// source is n bytes, before the 4-byte length prefix.
func WorstCaseBlockLength(n int) int {
	return n + n/255 + 16
}

// encodeVarLen emits the LZ4 varint length extension for remaining (the
// portion of a length field past the in-token nibble value 15): a run of
// 0xFF bytes each worth 255, terminated by a byte holding what's left.
func encodeVarLen(dst []byte, dstPtr int, remaining int) int {
	for remaining >= 255 {
		dst[dstPtr] = 0xFF
		dstPtr++
		remaining -= 255
	}
	dst[dstPtr] = byte(remaining)
	dstPtr++
	return dstPtr
}

// EncodeSequence writes one (literal, match) sequence to dst at dstPtr and
// returns the number of bytes written. dst must have room for
// len(literal)+match overhead; callers size it via WorstCaseBlockLength.
func EncodeSequence(dst []byte, dstPtr int, literal []byte, m Match) int {
	start := dstPtr
	litLen := len(literal)

	l4 := litLen
	if l4 > 15 {
		l4 = 15
	}
	m4 := 0
	if !m.Empty {
		m4 = m.Length - match.MinMatch
		if m4 > 15 {
			m4 = 15
		} else if m4 < 0 {
			m4 = 0
		}
	}

	dst[dstPtr] = byte(l4<<4) | byte(m4)
	dstPtr++

	if l4 == 15 {
		dstPtr = encodeVarLen(dst, dstPtr, litLen-15)
	}

	dstPtr += copy(dst[dstPtr:], literal)

	if m.Empty {
		return dstPtr - start
	}

	dst[dstPtr] = byte(m.Offset)
	dst[dstPtr+1] = byte(m.Offset >> 8)
	dstPtr += 2

	if m4 == 15 {
		dstPtr = encodeVarLen(dst, dstPtr, m.Length-match.MinMatch-15)
	}

	return dstPtr - start
}
