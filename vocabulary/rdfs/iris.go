// Package rdfs provides IRI constants for the RDF Schema vocabulary.
package rdfs

// Namespace is the RDF Schema namespace.
const Namespace = "http://www.w3.org/2000/01/rdf-schema#"

const (
	// Domain declares the subject class of a property.
	Domain = Namespace + "domain"

	// Range declares the object class of a property.
	Range = Namespace + "range"

	// SubClassOf links a class to a superclass, including anonymous
	// restriction nodes.
	SubClassOf = Namespace + "subClassOf"

	// Label is the human-readable label of a resource.
	Label = Namespace + "label"

	// IsDefinedBy links a resource to the ontology defining it.
	IsDefinedBy = Namespace + "isDefinedBy"
)
