package shapes

import (
	"sort"

	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/ontology"
	"github.com/Kurrawong/ontoshacl/vocabulary/sh"
)

type ruleKind int

const (
	ruleDomainRange ruleKind = iota
	ruleRestriction
)

// shapeKey identifies one property shape: the rule source, the constrained
// property, and (for restriction rules) the owning class. It is the
// deduplication key — rules computing the same key merge their constraints
// onto one builder instead of creating a duplicate shape.
type shapeKey struct {
	kind  ruleKind
	path  string
	owner string
}

// propertyShape accumulates the constraints contributed to a single shape
// URI before the builder is flushed to the graph.
type propertyShape struct {
	uri         rdf.IRI
	path        rdf.IRI
	severity    rdf.IRI
	kind        ruleKind
	owner       *ontology.Klass
	derivedFrom rdf.IRI

	classes  []rdf.IRI
	classSet map[string]struct{}

	minCount *int
	maxCount *int
}

// builder returns the accumulated shape for key, creating it on first use.
func (s *Shacl) builder(key shapeKey, prop ontology.ObjectProperty, owner *ontology.Klass) *propertyShape {
	if b, ok := s.builders[key]; ok {
		return b
	}
	b := &propertyShape{
		uri:      s.propertyShapeURI(prop, owner),
		path:     prop.URI,
		kind:     key.kind,
		owner:    owner,
		classSet: make(map[string]struct{}),
	}
	if owner != nil {
		b.derivedFrom = owner.URI
	} else {
		b.derivedFrom = prop.URI
	}
	s.builders[key] = b
	s.keys = append(s.keys, key)
	return b
}

func (b *propertyShape) addClass(iri rdf.IRI) {
	if _, ok := b.classSet[iri.String()]; ok {
		return
	}
	b.classSet[iri.String()] = struct{}{}
	b.classes = append(b.classes, iri)
}

func (b *propertyShape) sortedClasses() []rdf.IRI {
	out := make([]rdf.IRI, len(b.classes))
	copy(out, b.classes)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// escalate raises the shape's severity, never lowering it: Violation wins
// over Warning, which wins over Info. Restriction rules therefore keep
// their Violation severity even when a domain/range rule merges onto the
// same key.
func (b *propertyShape) escalate(severity rdf.IRI) {
	if severityRank(severity) > severityRank(b.severity) {
		b.severity = severity
	}
}

func severityRank(severity rdf.IRI) int {
	switch severity.String() {
	case sh.Violation:
		return 3
	case sh.Warning:
		return 2
	case sh.Info:
		return 1
	}
	return 0
}

// tighten merges cardinality bounds, keeping the most restrictive pair:
// the larger minimum and the smaller maximum.
func (b *propertyShape) tighten(min, max *int) {
	if min != nil && (b.minCount == nil || *min > *b.minCount) {
		v := *min
		b.minCount = &v
	}
	if max != nil && (b.maxCount == nil || *max < *b.maxCount) {
		v := *max
		b.maxCount = &v
	}
}
