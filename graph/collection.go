package graph

import (
	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/vocabulary/rdfns"
)

// List decodes the RDF collection starting at head and returns its members
// in order. A malformed chain terminates the walk at the broken link; an
// empty or non-list head yields nil.
func (g *Store) List(head rdf.Term) []rdf.Object {
	first := MustIRI(rdfns.First)
	rest := MustIRI(rdfns.Rest)
	nilIRI := MustIRI(rdfns.Nil)

	var out []rdf.Object
	node := head
	for node != nil && !TermEqual(node, nilIRI) {
		subj, ok := node.(rdf.Subject)
		if !ok {
			break
		}
		member, ok := g.Value(subj, first)
		if !ok {
			break
		}
		out = append(out, member)
		next, ok := g.Value(subj, rest)
		if !ok {
			break
		}
		node = next
	}
	return out
}

// AddList stores members as an RDF collection and returns its head node.
// The empty collection is rdf:nil.
func (g *Store) AddList(members []rdf.Object) rdf.Object {
	first := MustIRI(rdfns.First)
	rest := MustIRI(rdfns.Rest)
	nilIRI := MustIRI(rdfns.Nil)

	if len(members) == 0 {
		return nilIRI
	}
	head := NewBlankNode()
	node := head
	for i, m := range members {
		g.Add(node, first, m)
		if i == len(members)-1 {
			g.Add(node, rest, nilIRI)
			break
		}
		next := NewBlankNode()
		g.Add(node, rest, next)
		node = next
	}
	return head
}

// isListHead reports whether node starts an RDF collection in the store.
func (g *Store) isListHead(node rdf.Subject) bool {
	_, ok := g.Value(node, MustIRI(rdfns.First))
	return ok
}
