package sh

// Namespace is the SHACL namespace.
const Namespace = "http://www.w3.org/ns/shacl#"

// Shape class IRIs.
const (
	// NodeShape scopes validation to instances of a target class.
	NodeShape = Namespace + "NodeShape"

	// PropertyShape constrains one property path on matched instances.
	PropertyShape = Namespace + "PropertyShape"
)

// Shape predicates emitted by generation.
const (
	// TargetClass names the class whose instances a node shape validates.
	TargetClass = Namespace + "targetClass"

	// Property links a node shape to a property shape.
	Property = Namespace + "property"

	// Path names the property a property shape constrains.
	Path = Namespace + "path"

	// Severity is the strictness of a reported violation.
	Severity = Namespace + "severity"

	// Class asserts the permitted class of a property's values.
	Class = Namespace + "class"

	// Or links a shape to an RDF collection of alternative constraints.
	Or = Namespace + "or"

	// MinCount is the inclusive lower bound on value count.
	MinCount = Namespace + "minCount"

	// MaxCount is the inclusive upper bound on value count.
	MaxCount = Namespace + "maxCount"

	// Message is the human-readable explanation reported on failure.
	Message = Namespace + "message"
)

// Severity level IRIs.
const (
	// Info marks advisory results.
	Info = Namespace + "Info"

	// Warning marks non-fatal results.
	Warning = Namespace + "Warning"

	// Violation marks failing results.
	Violation = Namespace + "Violation"
)
