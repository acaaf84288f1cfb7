package archive

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	got := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		got[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	return got
}

func TestPackUnpackRoundTrip(t *testing.T) {
	src := t.TempDir()
	files := map[string]string{
		"a.txt":        "hello",
		"nested/b.txt": "world, nested",
		"nested/deep/c": "deep file content",
	}
	writeTree(t, src, files)

	r, err := Pack(src)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	stream, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read archive stream: %v", err)
	}

	dest := t.TempDir()
	if err := Unpack(bytes.NewReader(stream), dest); err != nil {
		t.Fatalf("Unpack: %v", err)
	}

	got := readTree(t, dest)
	if len(got) != len(files) {
		t.Fatalf("got %d files, want %d", len(got), len(files))
	}
	for name, want := range files {
		if got[name] != want {
			t.Fatalf("file %s = %q, want %q", name, got[name], want)
		}
	}
}

func TestPackOrdersRecordsLexically(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"b": "2", "a": "1", "c": "3"})

	r, _ := Pack(src)
	stream, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read archive stream: %v", err)
	}

	var names []string
	br := newByteReader(bytes.NewReader(stream))
	for {
		name, _, err := readRecord(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("readRecord: %v", err)
		}
		names = append(names, name)
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for i := range names {
		if names[i] != sorted[i] {
			t.Fatalf("names not lexically ordered: %v", names)
		}
	}
}

func TestUnpackRejectsChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRecord(&buf, "f.txt", []byte("data")); err != nil {
		t.Fatalf("writeRecord: %v", err)
	}
	corrupt := buf.Bytes()
	corrupt[4] ^= 0xFF // corrupt the content-length field covered by the checksum
	if err := Unpack(bytes.NewReader(corrupt), t.TempDir()); err != ErrChecksum {
		t.Fatalf("err = %v, want ErrChecksum", err)
	}
}

func TestUnpackRejectsPathTraversal(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRecord(&buf, "../escape.txt", []byte("x")); err != nil {
		t.Fatalf("writeRecord: %v", err)
	}
	err := Unpack(bytes.NewReader(buf.Bytes()), t.TempDir())
	if err == nil {
		t.Fatalf("expected rejection of a path-traversal record name")
	}
}

func TestUnpackRejectsTruncatedRecord(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRecord(&buf, "f.txt", []byte("some content")); err != nil {
		t.Fatalf("writeRecord: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()-5]
	if err := Unpack(bytes.NewReader(truncated), t.TempDir()); err != ErrTruncated {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestPackRejectsNonDirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Pack(f); err == nil {
		t.Fatalf("expected Pack to reject a non-directory root")
	}
}
