// Package shapes derives a SHACL shapes graph from an OWL ontology: one
// node shape per constrained class, and one property shape per rule source
// (domain/range statement or owl:Restriction) touching that class.
//
// The whole graph is constructed synchronously by New in a single pass —
// property shapes first, node shapes after, since a class only receives a
// node shape once at least one property shape links to it. Afterwards the
// engine answers read-only queries over the finished graph.
package shapes

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/graph"
	"github.com/Kurrawong/ontoshacl/ontology"
	"github.com/Kurrawong/ontoshacl/vocabulary/owl"
	"github.com/Kurrawong/ontoshacl/vocabulary/prov"
	"github.com/Kurrawong/ontoshacl/vocabulary/rdfns"
	"github.com/Kurrawong/ontoshacl/vocabulary/rdfs"
	"github.com/Kurrawong/ontoshacl/vocabulary/sdo"
	"github.com/Kurrawong/ontoshacl/vocabulary/sh"
	"github.com/Kurrawong/ontoshacl/vocabulary/xsd"
)

// generatorVersion is stamped into the owl:versionInfo of every generated
// validator ontology.
const generatorVersion = "0.2.0"

var (
	rdfType            = graph.MustIRI(rdfns.Type)
	rdfsLabel          = graph.MustIRI(rdfs.Label)
	rdfsIsDefinedBy    = graph.MustIRI(rdfs.IsDefinedBy)
	provWasDerivedFrom = graph.MustIRI(prov.WasDerivedFrom)
	shNodeShape        = graph.MustIRI(sh.NodeShape)
	shPropertyShape    = graph.MustIRI(sh.PropertyShape)
	shTargetClass      = graph.MustIRI(sh.TargetClass)
	shProperty         = graph.MustIRI(sh.Property)
	shPath             = graph.MustIRI(sh.Path)
	shSeverity         = graph.MustIRI(sh.Severity)
	shClass            = graph.MustIRI(sh.Class)
	shOr               = graph.MustIRI(sh.Or)
	shMinCount         = graph.MustIRI(sh.MinCount)
	shMaxCount         = graph.MustIRI(sh.MaxCount)
	shMessage          = graph.MustIRI(sh.Message)
	shViolation        = graph.MustIRI(sh.Violation)
)

// Options configures a generation run.
type Options struct {
	// Namespace is the base IRI for generated shapes and the identifier of
	// the validator ontology. Required. Shape names are appended directly,
	// so it normally ends in "/" or "#".
	Namespace string

	// VersionIRI is the validator's owl:versionIRI. A value without a
	// scheme is resolved against Namespace.
	VersionIRI string

	// Creator is the IRI of the creating agent. Required.
	Creator      string
	CreatorType  string // "person" (default) or "organisation"
	CreatorName  string
	CreatorEmail string
	CreatorURL   string

	// Publisher is the IRI of the publishing agent, with the same optional
	// decoration as Creator.
	Publisher      string
	PublisherType  string
	PublisherName  string
	PublisherEmail string
	PublisherURL   string

	// Name and Description default to values derived from the base
	// ontology IRI.
	Name        string
	Description string

	// DateCreated (YYYY-MM-DD) defaults to the current date.
	DateCreated string

	// BaseOntologyPrefix, when set, is bound to the source ontology's
	// namespace in the output for readability.
	BaseOntologyPrefix string

	// IncludeDomainRangeRestrictions enables the domain/range rule source.
	IncludeDomainRangeRestrictions bool

	// DomainRangeSeverity is the severity of domain/range-derived shapes.
	// Defaults to sh:Warning. Restriction-derived shapes are always
	// sh:Violation regardless of this setting.
	DomainRangeSeverity rdf.IRI

	// Now supplies the clock for sdo:dateModified; defaults to time.Now.
	Now func() time.Time
}

// Summary reports the outcome of a generation run.
type Summary struct {
	NodeShapes          int
	PropertyShapes      int
	SkippedRestrictions int
}

// Shacl owns the generated shapes graph. The graph is fully constructed by
// New; there is no mutation API afterwards.
type Shacl struct {
	graph  *graph.Store
	ont    *ontology.Ontology
	id     rdf.IRI
	ns     string
	opts   Options
	logger *slog.Logger

	builders map[shapeKey]*propertyShape
	keys     []shapeKey
	links    map[string][]rdf.IRI

	skipped int
}

// New generates the shapes graph for ont. Configuration and contract
// violations abort with an error and no partial result; malformed
// restrictions are logged at Warn and skipped.
func New(ont *ontology.Ontology, opts Options, logger *slog.Logger) (*Shacl, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Namespace == "" {
		return nil, errors.New("shapes: namespace is required")
	}
	if opts.Creator == "" {
		return nil, errors.New("shapes: creator is required")
	}
	id, err := rdf.NewIRI(opts.Namespace)
	if err != nil {
		return nil, fmt.Errorf("shapes: invalid namespace %q: %w", opts.Namespace, err)
	}
	if _, err := rdf.NewIRI(opts.Creator); err != nil {
		return nil, fmt.Errorf("shapes: invalid creator IRI %q: %w", opts.Creator, err)
	}
	if opts.Publisher != "" {
		if _, err := rdf.NewIRI(opts.Publisher); err != nil {
			return nil, fmt.Errorf("shapes: invalid publisher IRI %q: %w", opts.Publisher, err)
		}
	}
	if opts.DomainRangeSeverity.String() == "" {
		opts.DomainRangeSeverity = graph.MustIRI(sh.Warning)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Shacl{
		graph:    graph.NewStore(),
		ont:      ont,
		id:       id,
		ns:       opts.Namespace,
		opts:     opts,
		logger:   logger,
		builders: make(map[shapeKey]*propertyShape),
		links:    make(map[string][]rdf.IRI),
	}
	s.bindPrefixes()
	s.addMetadata()

	if opts.IncludeDomainRangeRestrictions {
		if err := s.addDomainRangeShapes(); err != nil {
			return nil, err
		}
	}
	s.addRestrictionShapes()
	s.flushPropertyShapes()
	s.addNodeShapes()

	return s, nil
}

func (s *Shacl) bindPrefixes() {
	s.graph.Bind("", s.ns)
	if s.opts.BaseOntologyPrefix != "" {
		s.graph.Bind(s.opts.BaseOntologyPrefix, s.ont.IRI().String())
	}
	s.graph.Bind("rdf", rdfns.Namespace)
	s.graph.Bind("rdfs", rdfs.Namespace)
	s.graph.Bind("owl", owl.Namespace)
	s.graph.Bind("sh", sh.Namespace)
	s.graph.Bind("xsd", xsd.Namespace)
	s.graph.Bind("schema", sdo.Namespace)
	s.graph.Bind("prov", prov.Namespace)
}

// addDomainRangeShapes emits one property shape per object property whose
// declared range intersects the locally defined classes, linked from the
// node shape of every domain class.
func (s *Shacl) addDomainRangeShapes() error {
	for _, p := range s.ont.Properties() {
		prop := p
		ranges, err := s.ont.FilterClasses(ontology.ClassFilter{InRangeOf: &prop})
		if err != nil {
			return err
		}
		if len(ranges) == 0 {
			// Nothing to validate values against.
			s.logger.Debug("no local classes in property range",
				slog.String("property", prop.URI.String()))
			continue
		}
		domains, err := s.ont.FilterClasses(ontology.ClassFilter{InDomainOf: &prop})
		if err != nil {
			return err
		}
		if len(domains) == 0 {
			continue
		}
		b := s.builder(shapeKey{kind: ruleDomainRange, path: prop.URI.String()}, prop, nil)
		b.escalate(s.opts.DomainRangeSeverity)
		for _, k := range ranges {
			b.addClass(k.URI)
		}
		for _, k := range domains {
			s.link(k, b.uri)
		}
	}
	return nil
}

// addRestrictionShapes emits a Violation-severity property shape for every
// well-formed restriction, attached to its owning class. Restrictions
// lacking an owner, a property or a target class are warned about and
// skipped.
func (s *Shacl) addRestrictionShapes() {
	for _, r := range s.ont.Restrictions() {
		owner, ok := r.Subklass()
		if !ok {
			s.skip(r, "no owning class declares it as a superclass")
			continue
		}
		prop, ok := r.OnProperty()
		if !ok {
			s.skip(r, "no owl:onProperty")
			continue
		}
		targets := r.OnKlasses()
		if len(targets) == 0 {
			s.skip(r, "no owl:onClass target")
			continue
		}

		key := shapeKey{kind: ruleRestriction, path: prop.URI.String(), owner: owner.URI.String()}
		b := s.builder(key, prop, &owner)
		b.escalate(shViolation)
		for _, k := range targets {
			b.addClass(k.URI)
		}
		b.tighten(r.MinCardinality(), r.MaxCardinality())
		s.link(owner, b.uri)
	}
}

func (s *Shacl) skip(r ontology.Restriction, reason string) {
	s.skipped++
	s.logger.Warn("skipping malformed restriction",
		slog.String("restriction", r.Node.String()),
		slog.String("reason", reason))
}

// link records that klass's node shape must reference shape. A property
// shape can be linked from several node shapes when a rule scopes multiple
// classes.
func (s *Shacl) link(k ontology.Klass, shape rdf.IRI) {
	key := k.URI.String()
	for _, u := range s.links[key] {
		if u == shape {
			return
		}
	}
	s.links[key] = append(s.links[key], shape)
}

// flushPropertyShapes writes the accumulated builders to the graph in
// shape-URI order.
func (s *Shacl) flushPropertyShapes() {
	bs := make([]*propertyShape, 0, len(s.keys))
	for _, k := range s.keys {
		bs = append(bs, s.builders[k])
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].uri.String() < bs[j].uri.String() })
	for _, b := range bs {
		s.emitPropertyShape(b)
	}
}

func (s *Shacl) emitPropertyShape(b *propertyShape) {
	g := s.graph
	g.Add(b.uri, rdfType, shPropertyShape)
	g.Add(b.uri, shPath, b.path)
	g.Add(b.uri, shSeverity, b.severity)
	g.Add(b.uri, rdfsIsDefinedBy, s.id)
	g.Add(b.uri, provWasDerivedFrom, b.derivedFrom)

	classes := b.sortedClasses()
	switch len(classes) {
	case 0:
	case 1:
		g.Add(b.uri, shClass, classes[0])
	default:
		members := make([]rdf.Object, 0, len(classes))
		for _, c := range classes {
			m := graph.NewBlankNode()
			g.Add(m, shClass, c)
			members = append(members, m)
		}
		g.Add(b.uri, shOr, s.asObjectList(members))
	}

	if b.minCount != nil {
		g.Add(b.uri, shMinCount, graph.Integer(*b.minCount))
	}
	if b.maxCount != nil {
		g.Add(b.uri, shMaxCount, graph.Integer(*b.maxCount))
	}
	if msg := s.propertyMessage(b); msg != "" {
		g.Add(b.uri, shMessage, graph.Text(msg))
	}
}

func (s *Shacl) asObjectList(members []rdf.Object) rdf.Object {
	return s.graph.AddList(members)
}

// addNodeShapes runs after all property shapes exist: a class receives a
// node shape only when at least one property shape links to it.
func (s *Shacl) addNodeShapes() {
	g := s.graph
	for _, k := range s.ont.Classes() {
		linked := s.links[k.URI.String()]
		if len(linked) == 0 {
			continue
		}
		uri := s.nodeShapeURI(k)
		g.Add(uri, rdfType, shNodeShape)
		g.Add(uri, shTargetClass, k.URI)
		g.Add(uri, rdfsLabel, graph.Text(k.Name()))
		g.Add(uri, rdfsIsDefinedBy, s.id)
		g.Add(uri, provWasDerivedFrom, k.URI)

		sorted := make([]rdf.IRI, len(linked))
		copy(sorted, linked)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })
		for _, ps := range sorted {
			g.Add(uri, shProperty, ps)
		}
		g.Add(uri, shMessage, graph.Text(s.nodeMessage(k)))
	}
}

// Graph exposes the finished shapes graph.
func (s *Shacl) Graph() *graph.Store {
	return s.graph
}

// NodeShapes returns the URIs of every generated sh:NodeShape, sorted.
func (s *Shacl) NodeShapes() []rdf.IRI {
	return s.shapesOfType(shNodeShape)
}

// PropertyShapes returns the URIs of every generated sh:PropertyShape,
// sorted.
func (s *Shacl) PropertyShapes() []rdf.IRI {
	return s.shapesOfType(shPropertyShape)
}

func (s *Shacl) shapesOfType(class rdf.IRI) []rdf.IRI {
	var out []rdf.IRI
	for _, subj := range s.graph.Subjects(rdfType, class) {
		if iri, ok := subj.(rdf.IRI); ok {
			out = append(out, iri)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// NodeShapeFor returns the node shape targeting klass, if one was emitted.
func (s *Shacl) NodeShapeFor(klass rdf.IRI) (rdf.IRI, bool) {
	for _, subj := range s.graph.Subjects(shTargetClass, klass) {
		if iri, ok := subj.(rdf.IRI); ok {
			return iri, true
		}
	}
	return rdf.IRI{}, false
}

// PropertyShapesFor returns the property shapes linked from the given node
// shape.
func (s *Shacl) PropertyShapesFor(node rdf.IRI) []rdf.IRI {
	var out []rdf.IRI
	for _, obj := range s.graph.Objects(node, shProperty) {
		if iri, ok := obj.(rdf.IRI); ok {
			out = append(out, iri)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Summary reports the generated shape counts and the number of skipped
// restrictions.
func (s *Shacl) Summary() Summary {
	return Summary{
		NodeShapes:          len(s.NodeShapes()),
		PropertyShapes:      len(s.PropertyShapes()),
		SkippedRestrictions: s.skipped,
	}
}

func (s *Shacl) qname(t rdf.Term) string {
	return s.graph.QName(t)
}
