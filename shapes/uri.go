package shapes

import (
	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/graph"
	"github.com/Kurrawong/ontoshacl/ontology"
)

// Shape URIs are deterministic functions of the source entity: the same
// ontology and configuration always yield byte-identical identifiers.
//
// Node shapes:      <namespace><Class>-NS
// Property shapes:  <namespace><prop>-PS           (domain/range rule)
//                   <namespace><Owner>-<prop>-PS   (restriction rule)
//
// The owner prefix keeps the same property constrained by different classes
// distinct; the two rule sources therefore never collide on a URI and
// coexist as separate shapes.

func (s *Shacl) nodeShapeURI(k ontology.Klass) rdf.IRI {
	return graph.MustIRI(s.ns + k.Name() + "-NS")
}

func (s *Shacl) propertyShapeURI(prop ontology.ObjectProperty, owner *ontology.Klass) rdf.IRI {
	name := prop.Name() + "-PS"
	if owner != nil {
		name = owner.Name() + "-" + name
	}
	return graph.MustIRI(s.ns + name)
}
