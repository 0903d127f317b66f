package ontology

import (
	"strconv"
	"strings"

	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/graph"
	"github.com/Kurrawong/ontoshacl/vocabulary/owl"
)

var (
	owlOnClass       = graph.MustIRI(owl.OnClass)
	owlOnProperty    = graph.MustIRI(owl.OnProperty)
	owlUnionOf       = graph.MustIRI(owl.UnionOf)
	owlMinQualified  = graph.MustIRI(owl.MinQualifiedCardinality)
	owlMaxQualified  = graph.MustIRI(owl.MaxQualifiedCardinality)
	owlQualifiedCard = graph.MustIRI(owl.QualifiedCardinality)
	owlHasSelf       = graph.MustIRI(owl.HasSelf)
)

// Restriction identifies an owl:Restriction node that some class declares
// as a superclass. The node is anonymous in well-formed ontologies, so the
// handle carries the graph term rather than an IRI.
type Restriction struct {
	Node rdf.Subject
	ont  *Ontology
}

// Subklass returns the class that owns this restriction, found by locating
// which class declares it as a superclass. ok is false when no local class
// does; callers must treat that as a malformed restriction.
func (r Restriction) Subklass() (Klass, bool) {
	for _, k := range r.ont.Classes() {
		obj, isObj := rdf.Term(r.Node).(rdf.Object)
		if !isObj {
			return Klass{}, false
		}
		if r.ont.store.Has(k.URI, rdfsSubClassOf, obj) {
			return k, true
		}
	}
	return Klass{}, false
}

// OnKlasses returns the restriction's target classes: the owl:onClass
// value, or the members of its owl:unionOf collection when the value is an
// anonymous union. Empty when the restriction names no target.
func (r Restriction) OnKlasses() []Klass {
	v, ok := r.ont.store.Value(r.Node, owlOnClass)
	if !ok {
		return nil
	}
	if b, isBlank := v.(rdf.Blank); isBlank {
		head, ok := r.ont.store.Value(b, owlUnionOf)
		if !ok {
			return nil
		}
		var out []Klass
		for _, m := range r.ont.store.List(head) {
			if iri, ok := m.(rdf.IRI); ok {
				out = append(out, Klass{URI: iri, ont: r.ont})
			}
		}
		return out
	}
	if iri, ok := v.(rdf.IRI); ok {
		return []Klass{{URI: iri, ont: r.ont}}
	}
	return nil
}

// OnProperty returns the object property the restriction constrains.
func (r Restriction) OnProperty() (ObjectProperty, bool) {
	v, ok := r.ont.store.Value(r.Node, owlOnProperty)
	if !ok {
		return ObjectProperty{}, false
	}
	iri, ok := v.(rdf.IRI)
	if !ok {
		return ObjectProperty{}, false
	}
	return ObjectProperty{URI: iri, ont: r.ont}, true
}

// MinCardinality returns the restriction's lower qualified bound, nil when
// absent. owl:qualifiedCardinality counts as both bounds.
func (r Restriction) MinCardinality() *int {
	return r.cardinality(owlMinQualified)
}

// MaxCardinality returns the restriction's upper qualified bound (inclusive),
// nil when absent. owl:qualifiedCardinality counts as both bounds.
func (r Restriction) MaxCardinality() *int {
	return r.cardinality(owlMaxQualified)
}

func (r Restriction) cardinality(pred rdf.IRI) *int {
	v, ok := r.ont.store.Value(r.Node, pred)
	if !ok {
		v, ok = r.ont.store.Value(r.Node, owlQualifiedCard)
		if !ok {
			return nil
		}
	}
	lit, ok := v.(rdf.Literal)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(lit.String()))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// HasSelf reports the owl:hasSelf reflexivity flag. It is read for
// completeness; no generation rule consumes it yet.
func (r Restriction) HasSelf() bool {
	v, ok := r.ont.store.Value(r.Node, owlHasSelf)
	if !ok {
		return false
	}
	lit, ok := v.(rdf.Literal)
	return ok && lit.String() == "true"
}
