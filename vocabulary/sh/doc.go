// Package sh provides IRI constants for the subset of the SHACL vocabulary
// written by the shape synthesis engine.
package sh
