package graph

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
)

// FormatForPath guesses the RDF serialization from a file extension.
// Turtle is the default.
func FormatForPath(path string) rdf.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt":
		return rdf.NTriples
	case ".rdf", ".owl", ".xml":
		return rdf.RDFXML
	default:
		return rdf.Turtle
	}
}

// Parse reads triples from r into a new store.
func Parse(r io.Reader, format rdf.Format) (*Store, error) {
	dec := rdf.NewTripleDecoder(r, format)
	g := NewStore()
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode triple: %w", err)
		}
		g.AddTriple(t)
	}
	return g, nil
}

// ParseFile reads the RDF file at path into a new store, picking the format
// from the file extension.
func ParseFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// WriteFile serializes the store as Turtle and writes it to path.
func (g *Store) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(g.Serialize()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EncodeNTriples writes the store to w in N-Triples format.
func (g *Store) EncodeNTriples(w io.Writer) error {
	enc := rdf.NewTripleEncoder(w, rdf.NTriples)
	for _, t := range g.triples {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode triple: %w", err)
		}
	}
	return enc.Close()
}
