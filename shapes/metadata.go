package shapes

import (
	"fmt"
	"strings"

	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/graph"
	"github.com/Kurrawong/ontoshacl/vocabulary/owl"
	"github.com/Kurrawong/ontoshacl/vocabulary/sdo"
)

var (
	owlOntology     = graph.MustIRI(owl.Ontology)
	owlVersionIRI   = graph.MustIRI(owl.VersionIRI)
	owlVersionInfo  = graph.MustIRI(owl.VersionInfo)
	sdoCreator      = graph.MustIRI(sdo.Creator)
	sdoPublisher    = graph.MustIRI(sdo.Publisher)
	sdoName         = graph.MustIRI(sdo.Name)
	sdoDescription  = graph.MustIRI(sdo.Description)
	sdoEmail        = graph.MustIRI(sdo.Email)
	sdoURL          = graph.MustIRI(sdo.URL)
	sdoDateCreated  = graph.MustIRI(sdo.DateCreated)
	sdoDateModified = graph.MustIRI(sdo.DateModified)
	sdoPerson       = graph.MustIRI(sdo.Person)
	sdoOrganization = graph.MustIRI(sdo.Organization)
)

// addMetadata writes the validator ontology header and the creator and
// publisher agent descriptions.
func (s *Shacl) addMetadata() {
	g := s.graph
	g.Add(s.id, rdfType, owlOntology)

	versionIRI := s.resolveVersionIRI()
	if versionIRI != nil {
		g.Add(s.id, owlVersionIRI, *versionIRI)
		info := fmt.Sprintf("%s Generated by ontoshacl v%s <https://github.com/Kurrawong/ontoshacl>",
			s.qname(*versionIRI), generatorVersion)
		g.Add(s.id, owlVersionInfo, graph.Text(info))
	} else {
		info := fmt.Sprintf("Generated by ontoshacl v%s <https://github.com/Kurrawong/ontoshacl>",
			generatorVersion)
		g.Add(s.id, owlVersionInfo, graph.Text(info))
	}

	creator := graph.MustIRI(s.opts.Creator)
	g.Add(s.id, sdoCreator, creator)
	s.addAgent(creator, s.opts.CreatorType, s.opts.CreatorName, s.opts.CreatorEmail, s.opts.CreatorURL)

	modified := s.opts.Now().Format("2006-01-02")
	created := s.opts.DateCreated
	if created == "" {
		created = modified
	}
	g.Add(s.id, sdoDateCreated, graph.Date(created))
	g.Add(s.id, sdoDateModified, graph.Date(modified))

	description := s.opts.Description
	if description == "" {
		description = fmt.Sprintf("ontoshacl generated validator for %s", s.ont.IRI().String())
	}
	g.Add(s.id, sdoDescription, graph.Text(description))

	name := s.opts.Name
	if name == "" {
		name = fmt.Sprintf("%s Validator", s.ont.IRI().String())
	}
	g.Add(s.id, sdoName, graph.Text(name))

	if s.opts.Publisher != "" {
		publisher := graph.MustIRI(s.opts.Publisher)
		g.Add(s.id, sdoPublisher, publisher)
		s.addAgent(publisher, s.opts.PublisherType, s.opts.PublisherName, s.opts.PublisherEmail, s.opts.PublisherURL)
	}
}

// resolveVersionIRI returns the configured version IRI, resolving bare
// names against the shape namespace. Nil when unconfigured.
func (s *Shacl) resolveVersionIRI() *rdf.IRI {
	v := s.opts.VersionIRI
	if v == "" {
		return nil
	}
	if !strings.Contains(v, "://") {
		v = s.ns + v
	}
	iri := graph.MustIRI(v)
	return &iri
}

// addAgent types the agent as a person or organisation and attaches the
// configured contact details.
func (s *Shacl) addAgent(agent rdf.IRI, agentType, name, email, url string) {
	g := s.graph
	switch agentType {
	case "organisation":
		g.Add(agent, rdfType, sdoOrganization)
	default:
		g.Add(agent, rdfType, sdoPerson)
	}
	if name != "" {
		g.Add(agent, sdoName, graph.Text(name))
	}
	if email != "" {
		g.Add(agent, sdoEmail, graph.AnyURI(email))
	}
	if url != "" {
		g.Add(agent, sdoURL, graph.AnyURI(url))
	}
}
