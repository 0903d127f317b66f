// Package sdo provides IRI constants for the schema.org terms used to
// decorate the generated validator ontology with creator, publisher and
// descriptive metadata.
package sdo
