// Package match implements the block matcher's candidate search: given a
// position table and a source cursor, find a back-reference candidate and
// measure how far it extends.
package match

import (
	"github.com/ndyakov/foldz4/internal/bytesio"
	"github.com/ndyakov/foldz4/internal/postab"
)

// MinMatch is the smallest match length the encoder may emit.
const MinMatch = 4

// MaxOffset is the widest back-reference the wire format can express.
const MaxOffset = 65535

// Find looks up v in table and returns a candidate position iff the
// candidate's source bytes actually equal v (guarding against hash
// collisions and a dirty/overwritten slot) and the resulting offset is
// within MaxOffset. table is not mutated; callers insert on their own
// schedule (§4.5: only on non-matching bytes, never inside a match).
func Find(table *postab.Table, v uint32, src []byte, p int) (candidate int, ok bool) {
	q, present := table.Get(v)
	if !present {
		return 0, false
	}
	if bytesio.ReadU32LE(src, q) != v {
		return 0, false
	}
	if p-q > MaxOffset {
		return 0, false
	}
	return q, true
}

// Count returns the largest k >= 0 such that src[front:front+k] ==
// src[back:back+k] and back+k-1 <= limit. limit bounds the comparison so a
// match can never cover the caller's reserved tail bytes.
func Count(src []byte, front, back, limit int) int {
	k := 0
	max := limit - back + 1
	for k < max && src[front+k] == src[back+k] {
		k++
	}
	return k
}
