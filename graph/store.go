// Package graph provides an in-memory RDF triple store with pattern queries,
// blank-node identity, RDF collection handling and deterministic Turtle
// serialization.
package graph

import (
	"github.com/knakk/rdf"
)

// Store is an insertion-ordered, duplicate-free set of RDF triples with a
// prefix map for QName shortening. The zero value is not usable; call
// NewStore.
type Store struct {
	triples  []rdf.Triple
	seen     map[string]struct{}
	prefixes map[string]string
}

// NewStore returns an empty store with no prefix bindings.
func NewStore() *Store {
	return &Store{
		seen:     make(map[string]struct{}),
		prefixes: make(map[string]string),
	}
}

func tripleKey(t rdf.Triple) string {
	return t.Serialize(rdf.NTriples)
}

// Add inserts the triple (s, p, o). It reports whether the triple was new.
func (g *Store) Add(s rdf.Subject, p rdf.Predicate, o rdf.Object) bool {
	return g.AddTriple(rdf.Triple{Subj: s, Pred: p, Obj: o})
}

// AddTriple inserts t, reporting whether it was new.
func (g *Store) AddTriple(t rdf.Triple) bool {
	key := tripleKey(t)
	if _, ok := g.seen[key]; ok {
		return false
	}
	g.seen[key] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

// Remove deletes every triple matching the pattern and returns the number
// removed. Nil terms act as wildcards.
func (g *Store) Remove(s rdf.Subject, p rdf.Predicate, o rdf.Object) int {
	kept := g.triples[:0]
	removed := 0
	for _, t := range g.triples {
		if matches(t, s, p, o) {
			delete(g.seen, tripleKey(t))
			removed++
			continue
		}
		kept = append(kept, t)
	}
	g.triples = kept
	return removed
}

// Has reports whether any triple matches the pattern. Nil terms act as
// wildcards.
func (g *Store) Has(s rdf.Subject, p rdf.Predicate, o rdf.Object) bool {
	for _, t := range g.triples {
		if matches(t, s, p, o) {
			return true
		}
	}
	return false
}

// Len returns the number of triples in the store.
func (g *Store) Len() int {
	return len(g.triples)
}

// Triples returns a copy of the store's triples in insertion order.
func (g *Store) Triples() []rdf.Triple {
	out := make([]rdf.Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Subjects returns the distinct subjects of triples matching (p, o), in
// insertion order. Nil terms act as wildcards.
func (g *Store) Subjects(p rdf.Predicate, o rdf.Object) []rdf.Subject {
	var out []rdf.Subject
	emitted := make(map[string]struct{})
	for _, t := range g.triples {
		if !termMatch(t.Pred, p) || !termMatch(t.Obj, o) {
			continue
		}
		key := t.Subj.Serialize(rdf.NTriples)
		if _, ok := emitted[key]; ok {
			continue
		}
		emitted[key] = struct{}{}
		out = append(out, t.Subj)
	}
	return out
}

// Objects returns the distinct objects of triples matching (s, p), in
// insertion order. Nil terms act as wildcards.
func (g *Store) Objects(s rdf.Subject, p rdf.Predicate) []rdf.Object {
	var out []rdf.Object
	emitted := make(map[string]struct{})
	for _, t := range g.triples {
		if !termMatch(t.Subj, s) || !termMatch(t.Pred, p) {
			continue
		}
		key := t.Obj.Serialize(rdf.NTriples)
		if _, ok := emitted[key]; ok {
			continue
		}
		emitted[key] = struct{}{}
		out = append(out, t.Obj)
	}
	return out
}

// Value returns the object of the first triple matching (s, p).
func (g *Store) Value(s rdf.Subject, p rdf.Predicate) (rdf.Object, bool) {
	for _, t := range g.triples {
		if termMatch(t.Subj, s) && termMatch(t.Pred, p) {
			return t.Obj, true
		}
	}
	return nil, false
}

// Bind associates a prefix with a namespace IRI for QName shortening and
// Turtle output. The empty prefix is the default namespace.
func (g *Store) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

func matches(t rdf.Triple, s rdf.Subject, p rdf.Predicate, o rdf.Object) bool {
	return termMatch(t.Subj, s) && termMatch(t.Pred, p) && termMatch(t.Obj, o)
}

func termMatch(have, want rdf.Term) bool {
	if want == nil {
		return true
	}
	return TermEqual(have, want)
}

// TermEqual reports whether a and b denote the same RDF node.
func TermEqual(a, b rdf.Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Type() == b.Type() && a.Serialize(rdf.NTriples) == b.Serialize(rdf.NTriples)
}
