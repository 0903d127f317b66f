package ontology

import (
	"github.com/knakk/rdf"
)

// ObjectProperty identifies an owl:ObjectProperty by IRI. Domain and range
// facts are recomputed per query so they always reflect the current store.
type ObjectProperty struct {
	URI rdf.IRI
	ont *Ontology
}

// Name returns the IRI's fragment or final path segment.
func (p ObjectProperty) Name() string {
	return localName(p.URI)
}

// Domains returns the locally defined classes declared as the property's
// rdfs:domain. Classes outside the ontology's namespace are excluded.
func (p ObjectProperty) Domains() []Klass {
	ks, _ := p.ont.FilterClasses(ClassFilter{InDomainOf: &p})
	return ks
}

// Ranges returns the locally defined classes declared as the property's
// rdfs:range. Classes outside the ontology's namespace are excluded.
func (p ObjectProperty) Ranges() []Klass {
	ks, _ := p.ont.FilterClasses(ClassFilter{InRangeOf: &p})
	return ks
}
