// Package edgelist reads and writes graphs as plain-text edge lists.
//
// Format, one entry per line:
//
//	source target [weight]   relationship (weight is accepted and ignored)
//	node                     isolated node
//	# comment / % comment    skipped, as are blank lines
//
// Fields are separated by whitespace, tabs or commas. Files ending in ".zst"
// or ".lz4" are transparently (de)compressed by Open and Create.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrMalformedLine is returned for a line with more than three fields.
var ErrMalformedLine = errors.New("edgelist: malformed line")

// maxLineBytes bounds a single line.
const maxLineBytes = 1 << 20

// Option configures Read.
type Option func(*options)

type options struct {
	graph []core.GraphOption
}

// WithGraphOptions forwards opts to the core.Builder.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) { o.graph = append(o.graph, opts...) }
}

// Read parses an edge list from r into a CSR.
//
// Errors: ErrMalformedLine, core builder errors (loops, multi-edges), I/O errors;
// all carry the line number.
func Read(r io.Reader, opts ...Option) (*core.CSR, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	b := core.NewBuilder(o.graph...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var line int
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		fields := strings.FieldsFunc(text, isSeparator)

		var err error
		switch len(fields) {
		case 1:
			_, err = b.AddNode(fields[0])
		case 2, 3:
			err = b.AddRelationship(fields[0], fields[1])
		default:
			err = fmt.Errorf("%d fields: %w", len(fields), ErrMalformedLine)
		}
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: line %d: %w", line+1, err)
	}

	return b.Build(), nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

// Write emits every stored relationship of g as "source\ttarget", followed by
// one line per node without relationships. Undirected graphs emit each pair
// once, so Read with the Undirected orientation restores g.
func Write(w io.Writer, g *core.CSR) error {
	bw := bufio.NewWriter(w)
	undirected := g.Orientation() == core.Undirected
	name := func(n int) string {
		id, err := g.ToOriginal(n)
		if err != nil {
			return fmt.Sprint(n)
		}
		return id
	}

	linked := make([]bool, g.NodeCount())
	var node int
	for node = 0; node < g.NodeCount(); node++ {
		for _, t := range g.Targets(node) {
			linked[node], linked[t] = true, true
			if undirected && t < node {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%s\t%s\n", name(node), name(t)); err != nil {
				return err
			}
		}
	}
	for node = range linked {
		if linked[node] {
			continue
		}
		if _, err := fmt.Fprintln(bw, name(node)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Open reads the edge list at path, decompressing ".zst" and ".lz4" files.
func Open(path string, opts ...Option) (*core.CSR, error) {
	rc, err := OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := Read(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// OpenReader opens path and wraps it in the decompressor its extension names.
func OpenReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: zstd: %w", path, err)
		}
		return &readCloser{Reader: dec, close: func() error { dec.Close(); return f.Close() }}, nil
	case ".lz4":
		return &readCloser{Reader: lz4.NewReader(f), close: f.Close}, nil
	default:
		return f, nil
	}
}

// Create creates path for writing, compressing by extension like OpenReader.
// Closing the writer flushes the compressor and closes the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: zstd: %w", path, err)
		}
		return &writeCloser{Writer: enc, close: func() error { return errors.Join(enc.Close(), f.Close()) }}, nil
	case ".lz4":
		zw := lz4.NewWriter(f)
		return &writeCloser{Writer: zw, close: func() error { return errors.Join(zw.Close(), f.Close()) }}, nil
	default:
		return f, nil
	}
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error { return r.close() }

type writeCloser struct {
	io.Writer
	close func() error
}

func (w *writeCloser) Close() error { return w.close() }
