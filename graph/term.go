package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/vocabulary/xsd"
)

// MustIRI returns s as an IRI and panics when s is not a valid IRI. It is
// intended for vocabulary constants and other compile-time-known IRIs.
func MustIRI(s string) rdf.IRI {
	iri, err := rdf.NewIRI(s)
	if err != nil {
		panic(fmt.Sprintf("graph: invalid IRI %q: %v", s, err))
	}
	return iri
}

// NewBlankNode mints a blank node with a fresh uuid-derived label.
func NewBlankNode() rdf.Blank {
	b, err := rdf.NewBlank("b" + strings.ReplaceAll(uuid.NewString(), "-", ""))
	if err != nil {
		panic(fmt.Sprintf("graph: blank node: %v", err))
	}
	return b
}

// Text returns a plain string literal.
func Text(s string) rdf.Literal {
	return rdf.NewTypedLiteral(s, MustIRI(xsd.String))
}

// Integer returns an xsd:integer literal.
func Integer(n int) rdf.Literal {
	return rdf.NewTypedLiteral(strconv.Itoa(n), MustIRI(xsd.Integer))
}

// Date returns an xsd:date literal from a YYYY-MM-DD string.
func Date(s string) rdf.Literal {
	return rdf.NewTypedLiteral(s, MustIRI(xsd.Date))
}

// AnyURI returns an xsd:anyURI literal.
func AnyURI(s string) rdf.Literal {
	return rdf.NewTypedLiteral(s, MustIRI(xsd.AnyURI))
}
