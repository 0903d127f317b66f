// Package owl provides IRI constants for the subset of the OWL 2 vocabulary
// read by the ontology facts model: class and property typing, restriction
// predicates, and ontology header metadata.
package owl
