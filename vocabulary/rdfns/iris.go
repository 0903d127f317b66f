// Package rdfns provides IRI constants for the RDF core vocabulary.
package rdfns

// Namespace is the RDF syntax namespace.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

const (
	// Type is the rdf:type predicate.
	Type = Namespace + "type"

	// First is the head element of an RDF collection node.
	First = Namespace + "first"

	// Rest links an RDF collection node to its tail.
	Rest = Namespace + "rest"

	// Nil terminates an RDF collection.
	Nil = Namespace + "nil"

	// LangString is the datatype of language-tagged literals.
	LangString = Namespace + "langString"
)
