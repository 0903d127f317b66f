package sdo

// Namespace is the schema.org namespace.
const Namespace = "https://schema.org/"

// Agent class IRIs used for creator and publisher decoration.
const (
	// Person types an individual agent.
	Person = Namespace + "Person"

	// Organization types an organisational agent.
	Organization = Namespace + "Organization"
)

// Metadata predicates for the validator ontology header.
const (
	// Creator links an ontology to the agent that created it.
	Creator = Namespace + "creator"

	// Publisher links an ontology to the agent publishing it.
	Publisher = Namespace + "publisher"

	// Name is the display name of a resource or agent.
	Name = Namespace + "name"

	// Description is the prose description of a resource.
	Description = Namespace + "description"

	// Email is an agent's contact email.
	Email = Namespace + "email"

	// URL is an agent's web page.
	URL = Namespace + "url"

	// DateCreated is the creation date of a resource.
	DateCreated = Namespace + "dateCreated"

	// DateModified is the last modification date of a resource.
	DateModified = Namespace + "dateModified"
)
