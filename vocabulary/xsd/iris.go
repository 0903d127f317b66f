// Package xsd provides IRI constants for XML Schema datatypes.
package xsd

// Namespace is the XML Schema datatypes namespace.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

const (
	// String is the plain string datatype.
	String = Namespace + "string"

	// Integer is the arbitrary-size integer datatype.
	Integer = Namespace + "integer"

	// Boolean is the boolean datatype.
	Boolean = Namespace + "boolean"

	// Date is the calendar date datatype (YYYY-MM-DD).
	Date = Namespace + "date"

	// AnyURI is the URI-valued literal datatype.
	AnyURI = Namespace + "anyURI"
)
