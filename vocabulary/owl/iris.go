package owl

// Namespace is the OWL 2 namespace.
const Namespace = "http://www.w3.org/2002/07/owl#"

// Entity class IRIs.
const (
	// Class is the type of named and anonymous OWL classes.
	Class = Namespace + "Class"

	// ObjectProperty is the type of object-valued properties.
	ObjectProperty = Namespace + "ObjectProperty"

	// Restriction is the type of anonymous class expressions narrowing a
	// class via a property constraint.
	Restriction = Namespace + "Restriction"

	// Ontology is the type of an ontology header resource.
	Ontology = Namespace + "Ontology"
)

// Restriction predicates recognized by shape generation.
const (
	// OnProperty names the property a restriction constrains.
	OnProperty = Namespace + "onProperty"

	// OnClass names the class (or union of classes) a qualified restriction
	// targets.
	OnClass = Namespace + "onClass"

	// UnionOf links an anonymous class to an RDF collection of member
	// classes.
	UnionOf = Namespace + "unionOf"

	// MinQualifiedCardinality is the lower bound of a qualified cardinality
	// restriction.
	MinQualifiedCardinality = Namespace + "minQualifiedCardinality"

	// MaxQualifiedCardinality is the upper bound of a qualified cardinality
	// restriction. The bound is inclusive.
	MaxQualifiedCardinality = Namespace + "maxQualifiedCardinality"

	// QualifiedCardinality is an exact qualified count; it implies equal
	// lower and upper bounds.
	QualifiedCardinality = Namespace + "qualifiedCardinality"

	// HasSelf marks a reflexive restriction.
	HasSelf = Namespace + "hasSelf"
)

// Ontology header predicates.
const (
	// VersionIRI identifies a particular version of an ontology.
	VersionIRI = Namespace + "versionIRI"

	// VersionInfo carries a human-readable version note.
	VersionInfo = Namespace + "versionInfo"
)
