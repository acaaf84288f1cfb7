// SPDX-License-Identifier: MIT

/*
Package foldz4 implements a self-contained folder archiver: it concatenates
a directory's regular files into a simple archive stream (package archive)
and compresses that stream with a simplified LZ4 frame codec (package
frame, built on internal/lz4block).

# Compress a directory

	err := foldz4.CompressDir("testdata/project", "project.fz4")

# Extract an archive

	err := foldz4.ExtractFile("project.fz4", "restored/")

The frame format is a fixed, simplified subset of the reference LZ4 frame
spec: one frame-descriptor profile, no block checksums, no content size
field, no dictionaries or skippable/legacy frames. See package frame for the
on-wire layout.
*/
package foldz4
