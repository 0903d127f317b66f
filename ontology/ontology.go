// Package ontology provides read-only views over an OWL ontology graph.
//
// Klass, ObjectProperty and Restriction are lightweight value handles: an
// identifier plus a reference to the shared store. Derived facts (domains,
// ranges, cardinalities, restriction targets) are recomputed from the store
// on every call and never cached on the handle.
package ontology

import (
	"errors"
	"sort"
	"strings"

	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/graph"
	"github.com/Kurrawong/ontoshacl/vocabulary/owl"
	"github.com/Kurrawong/ontoshacl/vocabulary/rdfns"
	"github.com/Kurrawong/ontoshacl/vocabulary/rdfs"
)

var (
	rdfType        = graph.MustIRI(rdfns.Type)
	owlClass       = graph.MustIRI(owl.Class)
	owlObjectProp  = graph.MustIRI(owl.ObjectProperty)
	owlRestriction = graph.MustIRI(owl.Restriction)
	rdfsDomain     = graph.MustIRI(rdfs.Domain)
	rdfsRange      = graph.MustIRI(rdfs.Range)
	rdfsSubClassOf = graph.MustIRI(rdfs.SubClassOf)
)

// ErrConflictingFilter reports a FilterClasses call with both filter fields
// set. The filters are mutually exclusive; violating this is a programming
// error, not a data condition, and aborts the run.
var ErrConflictingFilter = errors.New("ontology: InDomainOf and InRangeOf are mutually exclusive")

// Ontology aggregates a parsed ontology graph and scopes enumeration to the
// ontology's own namespace.
type Ontology struct {
	store *graph.Store
	iri   rdf.IRI

	// base is the declared IRI with trailing "/" and "#" trimmed, so both
	// spellings of a namespace scope the same terms.
	base string
}

// New wraps an already-parsed ontology graph identified by iri.
func New(store *graph.Store, iri rdf.IRI) *Ontology {
	return &Ontology{
		store: store,
		iri:   iri,
		base:  strings.TrimRight(iri.String(), "/#"),
	}
}

// Load parses the RDF file at path (format chosen from the extension) and
// wraps it as an Ontology identified by iri.
func Load(path string, iri rdf.IRI) (*Ontology, error) {
	store, err := graph.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return New(store, iri), nil
}

// IRI returns the ontology's declared identifier.
func (o *Ontology) IRI() rdf.IRI {
	return o.iri
}

// Store returns the underlying graph store.
func (o *Ontology) Store() *graph.Store {
	return o.store
}

// InNamespace reports whether t is an IRI inside the ontology's own
// namespace. The declared IRI is trimmed of trailing "/" and "#"; a term
// matches when it equals the trimmed base or extends it via "/" or "#".
func (o *Ontology) InNamespace(t rdf.Term) bool {
	iri, ok := t.(rdf.IRI)
	if !ok {
		return false
	}
	s := iri.String()
	if s == o.base {
		return true
	}
	if !strings.HasPrefix(s, o.base) {
		return false
	}
	rest := s[len(o.base):]
	return rest[0] == '/' || rest[0] == '#'
}

// Classes returns every named owl:Class declared in the ontology's
// namespace, sorted by IRI. Anonymous classes are excluded. Absence yields
// an empty result, never an error.
func (o *Ontology) Classes() []Klass {
	var out []Klass
	for _, s := range o.store.Subjects(rdfType, owlClass) {
		iri, ok := s.(rdf.IRI)
		if !ok || !o.InNamespace(iri) {
			continue
		}
		out = append(out, Klass{URI: iri, ont: o})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URI.String() < out[j].URI.String() })
	return out
}

// Properties returns every named owl:ObjectProperty declared in the
// ontology's namespace, sorted by IRI.
func (o *Ontology) Properties() []ObjectProperty {
	var out []ObjectProperty
	for _, s := range o.store.Subjects(rdfType, owlObjectProp) {
		iri, ok := s.(rdf.IRI)
		if !ok || !o.InNamespace(iri) {
			continue
		}
		out = append(out, ObjectProperty{URI: iri, ont: o})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URI.String() < out[j].URI.String() })
	return out
}

// Restrictions returns every owl:Restriction node in the graph, in graph
// order. Restrictions are anonymous, so no namespace filter applies;
// ownership is resolved per restriction via Subklass.
func (o *Ontology) Restrictions() []Restriction {
	var out []Restriction
	for _, s := range o.store.Subjects(rdfType, owlRestriction) {
		out = append(out, Restriction{Node: s, ont: o})
	}
	return out
}

// ClassFilter narrows FilterClasses to classes standing in a domain or
// range relation to an object property. At most one field may be set.
type ClassFilter struct {
	InDomainOf *ObjectProperty
	InRangeOf  *ObjectProperty
}

// FilterClasses returns the locally defined classes selected by f, sorted
// by IRI. A zero filter selects all classes. Setting both filter fields
// returns ErrConflictingFilter.
func (o *Ontology) FilterClasses(f ClassFilter) ([]Klass, error) {
	if f.InDomainOf != nil && f.InRangeOf != nil {
		return nil, ErrConflictingFilter
	}
	all := o.Classes()
	switch {
	case f.InDomainOf != nil:
		return intersect(all, o.store.Objects(f.InDomainOf.URI, rdfsDomain)), nil
	case f.InRangeOf != nil:
		return intersect(all, o.store.Objects(f.InRangeOf.URI, rdfsRange)), nil
	}
	return all, nil
}

// intersect keeps the classes whose IRI appears among terms, preserving the
// sorted order of klasses.
func intersect(klasses []Klass, terms []rdf.Object) []Klass {
	wanted := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if iri, ok := t.(rdf.IRI); ok {
			wanted[iri.String()] = struct{}{}
		}
	}
	var out []Klass
	for _, k := range klasses {
		if _, ok := wanted[k.URI.String()]; ok {
			out = append(out, k)
		}
	}
	return out
}

// localName returns the fragment of an IRI, or its last path segment when
// no fragment is present.
func localName(iri rdf.IRI) string {
	s := iri.String()
	if i := strings.Index(s, "#"); i >= 0 && i < len(s)-1 {
		return s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "#"), "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}
