package foldz4

import (
	"fmt"
	"io"
	"os"

	"github.com/ndyakov/foldz4/archive"
	"github.com/ndyakov/foldz4/frame"
)

// CompressDir packs root into an archive stream (package archive) and
// writes it, compressed as a single LZ4 frame, to outPath.
func CompressDir(root, outPath string) error {
	stream, err := archive.Pack(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadFile, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer out.Close()

	if err := frame.Compress(out, stream); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return out.Close()
}

// ExtractFile decodes the LZ4 frame at inPath and unpacks the recovered
// archive stream into destRoot.
func ExtractFile(inPath, destRoot string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer in.Close()

	pr, pw := io.Pipe()
	decodeErr := make(chan error, 1)
	go func() {
		err := frame.Decompress(pw, in)
		pw.CloseWithError(err)
		decodeErr <- err
	}()

	if err := archive.Unpack(pr, destRoot); err != nil {
		pr.Close()
		<-decodeErr
		return fmt.Errorf("%w: %w", ErrBadFile, err)
	}
	if err := <-decodeErr; err != nil {
		return fmt.Errorf("%w: %w", ErrBadFile, err)
	}
	return nil
}
