// Package postab implements the position table used by the block matcher: a
// fixed-size hash-indexed table mapping a 4-byte fingerprint to the most
// recent source position that produced it.
package postab

// Slots is the fixed number of entries in a Table. A 12-bit slot space with
// greedy overwrite trades missed matches for a tiny, cache-friendly table;
// this is the simplified matcher the format calls for, not a production LZ4
// hash chain.
const Slots = 4096

const hashMultiplier = 2654435761

// noPos marks an empty slot. Position 0 is a legitimate stored value, so the
// empty state cannot be represented by the zero value and needs its own
// sentinel.
const noPos = -1

// Table is a per-block hash table from 4-byte fingerprint to source offset.
// Its contents never carry over from one block to the next: the block
// compressor calls Reset, which marks every slot empty, before each block,
// so one allocation can serve a whole frame.
type Table struct {
	slots [Slots]int32
}

// New returns an empty Table, all slots unset.
func New() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset empties every slot so t can be reused for a new block without a
// fresh allocation.
func (t *Table) Reset() {
	for i := range t.slots {
		t.slots[i] = noPos
	}
}

func hash(v uint32) uint32 {
	return (v * hashMultiplier) & (Slots - 1)
}

// Get returns the position currently stored at v's slot, and whether the
// slot is occupied. It does not verify that the stored position actually
// produced the fingerprint v; that is the caller's duty (see match.Find).
func (t *Table) Get(v uint32) (pos int, ok bool) {
	p := t.slots[hash(v)]
	if p == noPos {
		return 0, false
	}
	return int(p), true
}

// Set overwrites v's slot with p, silently discarding any prior occupant.
func (t *Table) Set(v uint32, p int) {
	t.slots[hash(v)] = int32(p)
}
