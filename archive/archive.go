// Package archive implements the TAR-like file packer named as an external
// collaborator in the frame codec's specification: it concatenates a
// directory's regular files into one byte stream, and reverses the process
// on extraction. The codec is unaware of this format; it only ever sees a
// byte stream.
package archive

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrChecksum is returned when a record's header checksum does not
	// match its recomputed MD5.
	ErrChecksum = errors.New("archive: record header checksum mismatch")
	// ErrUnsafePath is returned when a record's name escapes the
	// destination root (absolute path, or a ".." path segment).
	ErrUnsafePath = errors.New("archive: unsafe record name")
	// ErrTruncated is returned when a record's header or content runs off
	// the end of the stream.
	ErrTruncated = errors.New("archive: truncated record")
)

// Pack walks root and returns a reader over the archive stream: one record
// per regular file, in WalkDir's lexical order, with Name set to the
// slash-joined path relative to root. Symlinks and other non-regular files
// are skipped.
func Pack(root string) (io.Reader, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("archive: %s is not a directory", root)
	}

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(packInto(pw, root))
	}()
	return pr, nil
}

func packInto(w io.Writer, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("archive: read %s: %w", path, err)
		}
		return writeRecord(w, name, content)
	})
}

func writeRecord(w io.Writer, name string, content []byte) error {
	nameBytes := []byte(name)
	header := make([]byte, 8+len(nameBytes))
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(nameBytes)))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(content)))
	copy(header[8:], nameBytes)

	sum := md5.Sum(header)
	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(sum[:]); err != nil {
		return err
	}
	_, err := w.Write(content)
	return err
}

// Unpack reads records from r until EOF, recreating the directory tree
// under destRoot. Each record's MD5 header guard is verified before its
// content is written; a name containing ".." segments or an absolute path
// is rejected.
func Unpack(r io.Reader, destRoot string) error {
	br := newByteReader(r)
	for {
		name, content, err := readRecord(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if err := safeJoin(destRoot, name); err != nil {
			return err
		}
		dest := filepath.Join(destRoot, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return err
		}
	}
}

func safeJoin(root, name string) error {
	if filepath.IsAbs(name) {
		return fmt.Errorf("%w: %q is absolute", ErrUnsafePath, name)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return fmt.Errorf("%w: %q escapes destination", ErrUnsafePath, name)
		}
	}
	return nil
}

func readRecord(r *byteReader) (name string, content []byte, err error) {
	header8, err := r.readN(8)
	if err == io.EOF {
		return "", nil, io.EOF
	}
	if err != nil {
		return "", nil, ErrTruncated
	}
	nameLen := binary.LittleEndian.Uint32(header8[0:4])
	contentLen := binary.LittleEndian.Uint32(header8[4:8])

	nameBytes, err := r.readN(int(nameLen))
	if err != nil {
		return "", nil, ErrTruncated
	}

	sum, err := r.readN(16)
	if err != nil {
		return "", nil, ErrTruncated
	}
	want := md5.Sum(append(append([]byte{}, header8...), nameBytes...))
	if !bytesEqual(sum, want[:]) {
		return "", nil, ErrChecksum
	}

	content, err = r.readN(int(contentLen))
	if err != nil {
		return "", nil, ErrTruncated
	}

	return string(nameBytes), content, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// byteReader adapts io.Reader to the exact-N-bytes-or-error reads the
// record format needs, distinguishing a clean EOF before any header bytes
// from a short read mid-record.
type byteReader struct {
	r io.Reader
}

func newByteReader(r io.Reader) *byteReader { return &byteReader{r: r} }

func (b *byteReader) readN(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(b.r, buf)
	if read == 0 && err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}
