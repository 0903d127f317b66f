package ontology

import (
	"github.com/knakk/rdf"
)

// Klass identifies an owl:Class by IRI within the source ontology.
// Identity is IRI equality.
type Klass struct {
	URI rdf.IRI
	ont *Ontology
}

// Name returns the IRI's fragment, or its final path segment when no
// fragment is present. It is used for human labels and shape naming.
func (k Klass) Name() string {
	return localName(k.URI)
}

// Restrictions returns the restrictions this class declares as superclasses.
func (k Klass) Restrictions() []Restriction {
	var out []Restriction
	for _, obj := range k.ont.store.Objects(k.URI, rdfsSubClassOf) {
		subj, ok := obj.(rdf.Subject)
		if !ok {
			continue
		}
		if !k.ont.store.Has(subj, rdfType, owlRestriction) {
			continue
		}
		out = append(out, Restriction{Node: subj, ont: k.ont})
	}
	return out
}
