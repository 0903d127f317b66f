// Package prov provides IRI constants for the PROV-O vocabulary.
package prov

// Namespace is the W3C provenance ontology namespace.
const Namespace = "http://www.w3.org/ns/prov#"

const (
	// WasDerivedFrom links a generated resource to the source entity it was
	// derived from.
	WasDerivedFrom = Namespace + "wasDerivedFrom"
)
