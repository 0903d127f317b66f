package graph

import (
	"testing"

	"github.com/knakk/rdf"
)

func iri(t *testing.T, s string) rdf.IRI {
	t.Helper()
	out, err := rdf.NewIRI(s)
	if err != nil {
		t.Fatalf("NewIRI(%q): %v", s, err)
	}
	return out
}

func TestAddDeduplicates(t *testing.T) {
	g := NewStore()
	s := iri(t, "http://example.org/s")
	p := iri(t, "http://example.org/p")
	o := iri(t, "http://example.org/o")

	if !g.Add(s, p, o) {
		t.Fatal("first Add should report new")
	}
	if g.Add(s, p, o) {
		t.Fatal("second Add should report duplicate")
	}
	if got := g.Len(); got != 1 {
		t.Fatalf("Len = %d, want 1", got)
	}
}

func TestRemoveWildcards(t *testing.T) {
	g := NewStore()
	s := iri(t, "http://example.org/s")
	p := iri(t, "http://example.org/p")
	q := iri(t, "http://example.org/q")
	g.Add(s, p, iri(t, "http://example.org/o1"))
	g.Add(s, p, iri(t, "http://example.org/o2"))
	g.Add(s, q, iri(t, "http://example.org/o3"))

	if got := g.Remove(s, p, nil); got != 2 {
		t.Fatalf("Remove(s, p, nil) = %d, want 2", got)
	}
	if g.Len() != 1 {
		t.Fatalf("Len = %d, want 1", g.Len())
	}
	if !g.Has(s, q, nil) {
		t.Fatal("unmatched triple should survive Remove")
	}

	// Removed triples can be re-added.
	if !g.Add(s, p, iri(t, "http://example.org/o1")) {
		t.Fatal("re-adding a removed triple should report new")
	}
}

func TestSubjectsAndObjectsAreDistinct(t *testing.T) {
	g := NewStore()
	p := iri(t, "http://example.org/p")
	a := iri(t, "http://example.org/a")
	b := iri(t, "http://example.org/b")
	o := iri(t, "http://example.org/o")

	g.Add(a, p, o)
	g.Add(b, p, o)
	g.Add(a, p, iri(t, "http://example.org/other"))

	subjects := g.Subjects(p, o)
	if len(subjects) != 2 {
		t.Fatalf("Subjects = %d, want 2", len(subjects))
	}
	if !TermEqual(subjects[0], a) || !TermEqual(subjects[1], b) {
		t.Fatalf("Subjects order = %v, want insertion order [a, b]", subjects)
	}

	objects := g.Objects(a, p)
	if len(objects) != 2 {
		t.Fatalf("Objects = %d, want 2", len(objects))
	}
}

func TestValue(t *testing.T) {
	g := NewStore()
	s := iri(t, "http://example.org/s")
	p := iri(t, "http://example.org/p")

	if _, ok := g.Value(s, p); ok {
		t.Fatal("Value on empty store should report absent")
	}

	g.Add(s, p, Text("hello"))
	v, ok := g.Value(s, p)
	if !ok {
		t.Fatal("Value should find the triple")
	}
	lit, ok := v.(rdf.Literal)
	if !ok || lit.String() != "hello" {
		t.Fatalf("Value = %v, want literal hello", v)
	}
}

func TestTermEqual(t *testing.T) {
	a := iri(t, "http://example.org/a")
	if !TermEqual(a, iri(t, "http://example.org/a")) {
		t.Fatal("identical IRIs should be equal")
	}
	if TermEqual(a, iri(t, "http://example.org/b")) {
		t.Fatal("distinct IRIs should not be equal")
	}
	if TermEqual(a, Text("http://example.org/a")) {
		t.Fatal("an IRI and a literal should not be equal")
	}
	if !TermEqual(nil, nil) {
		t.Fatal("two nil terms should be equal")
	}
	if TermEqual(a, nil) {
		t.Fatal("a term and nil should not be equal")
	}
}

func TestListRoundTrip(t *testing.T) {
	g := NewStore()
	members := []rdf.Object{
		iri(t, "http://example.org/a"),
		iri(t, "http://example.org/b"),
		iri(t, "http://example.org/c"),
	}

	head := g.AddList(members)
	got := g.List(head)
	if len(got) != len(members) {
		t.Fatalf("List = %d members, want %d", len(got), len(members))
	}
	for i := range members {
		if !TermEqual(got[i], members[i]) {
			t.Fatalf("member %d = %v, want %v", i, got[i], members[i])
		}
	}
}

func TestEmptyListIsNil(t *testing.T) {
	g := NewStore()
	head := g.AddList(nil)
	if head.Serialize(rdf.NTriples) != "<http://www.w3.org/1999/02/22-rdf-syntax-ns#nil>" {
		t.Fatalf("empty list head = %v, want rdf:nil", head)
	}
	if got := g.List(head); got != nil {
		t.Fatalf("List(rdf:nil) = %v, want nil", got)
	}
}
