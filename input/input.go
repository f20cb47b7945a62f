// Package input supplies blueprint text: the embedded worked example, the
// embedded puzzle input, or a file on disk (optionally zstd-compressed).
package input

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/geodeforge/blueprint"
)

// Sample is the two-blueprint worked example.
//
//go:embed data/sample.txt
var Sample string

// Puzzle is the full puzzle input.
//
//go:embed data/puzzle.txt
var Puzzle string

// Embedded returns Puzzle when puzzle is true and Sample otherwise.
func Embedded(puzzle bool) string {
	if puzzle {
		return Puzzle
	}

	return Sample
}

// Open opens a blueprint file. Files ending in ".zst" are decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("input: zstd %s: %w", path, err)
	}

	return &zstdFile{dec: dec, f: f}, nil
}

// Load parses the blueprints from path, or from the embedded text when path is empty.
func Load(path string, puzzle bool) ([]blueprint.Blueprint, error) {
	if path == "" {
		return blueprint.ParseString(Embedded(puzzle))
	}
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	bps, err := blueprint.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return bps, nil
}

// zstdFile closes both the decoder and the file underneath it.
type zstdFile struct {
	dec *zstd.Decoder
	f   *os.File
}

func (z *zstdFile) Read(p []byte) (int, error) { return z.dec.Read(p) }

func (z *zstdFile) Close() error {
	z.dec.Close()

	return z.f.Close()
}
