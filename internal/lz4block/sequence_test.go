package lz4block

import (
	"bytes"
	"testing"
)

func TestEncodeSequenceTailOnlyShort(t *testing.T) {
	dst := make([]byte, 32)
	n := EncodeSequence(dst, 0, []byte("hello"), Match{Empty: true})
	want := []byte{0x50, 'h', 'e', 'l', 'l', 'o'}
	if !bytes.Equal(dst[:n], want) {
		t.Fatalf("EncodeSequence = % x, want % x", dst[:n], want)
	}
}

func TestEncodeSequenceWithMatch(t *testing.T) {
	dst := make([]byte, 32)
	n := EncodeSequence(dst, 0, []byte("AAAA"), Match{Offset: 1, Length: 8})
	want := []byte{0x44, 'A', 'A', 'A', 'A', 0x01, 0x00}
	if !bytes.Equal(dst[:n], want) {
		t.Fatalf("EncodeSequence = % x, want % x", dst[:n], want)
	}
}

func TestEncodeSequenceLongLiteralVarint(t *testing.T) {
	lit := bytes.Repeat([]byte{0}, 300)
	for i := range lit {
		lit[i] = byte(i)
	}
	dst := make([]byte, WorstCaseBlockLength(300))
	n := EncodeSequence(dst, 0, lit, Match{Empty: true})
	if dst[0] != 0xF0 {
		t.Fatalf("token = %#x, want 0xF0", dst[0])
	}
	if dst[1] != 0xFF || dst[2] != 0x1E {
		t.Fatalf("varint ext = %#x %#x, want 0xFF 0x1E", dst[1], dst[2])
	}
	if !bytes.Equal(dst[3:3+300], lit) {
		t.Fatalf("literal bytes mismatch")
	}
	if n != 3+300 {
		t.Fatalf("n = %d, want %d", n, 3+300)
	}
}

func TestWorstCaseBlockLength(t *testing.T) {
	if got := WorstCaseBlockLength(1000); got != 1000+1000/255+16 {
		t.Fatalf("WorstCaseBlockLength = %d", got)
	}
}
