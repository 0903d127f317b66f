package ontology

import (
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kurrawong/ontoshacl/graph"
	"github.com/Kurrawong/ontoshacl/vocabulary/owl"
)

const testNS = "http://example.org/ont"

func classIRI(name string) rdf.IRI {
	return graph.MustIRI(testNS + "#" + name)
}

// testOntology builds a small ontology: three local classes, one external
// class, and two object properties with domain and range declarations.
func testOntology(t *testing.T) *Ontology {
	t.Helper()
	g := graph.NewStore()

	for _, name := range []string{"Report", "Person", "Organisation"} {
		g.Add(classIRI(name), rdfType, owlClass)
	}
	external := graph.MustIRI("http://other.org/X")
	g.Add(external, rdfType, owlClass)

	author := classIRI("author")
	g.Add(author, rdfType, owlObjectProp)
	g.Add(author, rdfsDomain, classIRI("Report"))
	g.Add(author, rdfsRange, classIRI("Person"))
	g.Add(author, rdfsRange, classIRI("Organisation"))

	cites := classIRI("cites")
	g.Add(cites, rdfType, owlObjectProp)
	g.Add(cites, rdfsDomain, classIRI("Report"))
	g.Add(cites, rdfsRange, external)

	return New(g, graph.MustIRI(testNS))
}

func TestClassesScopedToNamespace(t *testing.T) {
	ont := testOntology(t)

	classes := ont.Classes()
	require.Len(t, classes, 3)
	// Sorted by IRI.
	assert.Equal(t, "Organisation", classes[0].Name())
	assert.Equal(t, "Person", classes[1].Name())
	assert.Equal(t, "Report", classes[2].Name())
}

func TestPropertiesScopedToNamespace(t *testing.T) {
	ont := testOntology(t)

	props := ont.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, "author", props[0].Name())
	assert.Equal(t, "cites", props[1].Name())
}

func TestInNamespace(t *testing.T) {
	ont := testOntology(t)

	assert.True(t, ont.InNamespace(graph.MustIRI(testNS)))
	assert.True(t, ont.InNamespace(graph.MustIRI(testNS+"#Report")))
	assert.True(t, ont.InNamespace(graph.MustIRI(testNS+"/Report")))
	assert.False(t, ont.InNamespace(graph.MustIRI(testNS+"ology#X")), "prefix match alone is not enough")
	assert.False(t, ont.InNamespace(graph.MustIRI("http://other.org/X")))
	assert.False(t, ont.InNamespace(graph.Text("not an iri")))
}

func TestInNamespaceTrimsTrailingSeparators(t *testing.T) {
	g := graph.NewStore()
	// Declared with a trailing slash, scoping must behave identically.
	ont := New(g, graph.MustIRI("http://example.org/ont/"))

	assert.True(t, ont.InNamespace(graph.MustIRI("http://example.org/ont#A")))
	assert.True(t, ont.InNamespace(graph.MustIRI("http://example.org/ont/A")))
	assert.False(t, ont.InNamespace(graph.MustIRI("http://example.org/ontology")))
}

func TestFilterClasses(t *testing.T) {
	ont := testOntology(t)
	author := ont.Properties()[0]

	domains, err := ont.FilterClasses(ClassFilter{InDomainOf: &author})
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, "Report", domains[0].Name())

	ranges, err := ont.FilterClasses(ClassFilter{InRangeOf: &author})
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, "Organisation", ranges[0].Name())
	assert.Equal(t, "Person", ranges[1].Name())

	all, err := ont.FilterClasses(ClassFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFilterClassesConflict(t *testing.T) {
	ont := testOntology(t)
	author := ont.Properties()[0]

	_, err := ont.FilterClasses(ClassFilter{InDomainOf: &author, InRangeOf: &author})
	assert.ErrorIs(t, err, ErrConflictingFilter)
}

func TestRangesExcludeExternalClasses(t *testing.T) {
	ont := testOntology(t)
	cites := ont.Properties()[1]

	assert.Empty(t, cites.Ranges(), "external range classes are not local")
	assert.Len(t, cites.Domains(), 1)
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "Report", localName(graph.MustIRI("http://example.org/ont#Report")))
	assert.Equal(t, "Report", localName(graph.MustIRI("http://example.org/ont/Report")))
	assert.Equal(t, "Report", localName(graph.MustIRI("http://example.org/ont/Report/")))
	assert.Equal(t, "ont", localName(graph.MustIRI("http://example.org/ont#")))
}

// addRestriction attaches an owl:Restriction to owner and returns its node.
func addRestriction(g *graph.Store, owner rdf.IRI) rdf.Blank {
	node := graph.NewBlankNode()
	g.Add(node, rdfType, owlRestriction)
	g.Add(owner, rdfsSubClassOf, node)
	return node
}

func TestRestrictionAccessors(t *testing.T) {
	ont := testOntology(t)
	g := ont.Store()

	node := addRestriction(g, classIRI("Report"))
	g.Add(node, owlOnProperty, classIRI("author"))
	g.Add(node, owlOnClass, classIRI("Person"))
	g.Add(node, owlMinQualified, graph.Integer(1))

	rs := ont.Restrictions()
	require.Len(t, rs, 1)
	r := rs[0]

	owner, ok := r.Subklass()
	require.True(t, ok)
	assert.Equal(t, "Report", owner.Name())

	prop, ok := r.OnProperty()
	require.True(t, ok)
	assert.Equal(t, "author", prop.Name())

	targets := r.OnKlasses()
	require.Len(t, targets, 1)
	assert.Equal(t, "Person", targets[0].Name())

	min := r.MinCardinality()
	require.NotNil(t, min)
	assert.Equal(t, 1, *min)
	assert.Nil(t, r.MaxCardinality())
	assert.False(t, r.HasSelf())
}

func TestRestrictionUnionTargets(t *testing.T) {
	ont := testOntology(t)
	g := ont.Store()

	node := addRestriction(g, classIRI("Report"))
	g.Add(node, owlOnProperty, classIRI("author"))
	union := graph.NewBlankNode()
	g.Add(node, owlOnClass, union)
	head := g.AddList([]rdf.Object{classIRI("Person"), classIRI("Organisation")})
	g.Add(union, owlUnionOf, head)

	rs := ont.Restrictions()
	require.Len(t, rs, 1)
	targets := rs[0].OnKlasses()
	require.Len(t, targets, 2)
	assert.Equal(t, "Person", targets[0].Name())
	assert.Equal(t, "Organisation", targets[1].Name())
}

func TestQualifiedCardinalitySetsBothBounds(t *testing.T) {
	ont := testOntology(t)
	g := ont.Store()

	node := addRestriction(g, classIRI("Report"))
	g.Add(node, owlOnProperty, classIRI("author"))
	g.Add(node, owlOnClass, classIRI("Person"))
	g.Add(node, owlQualifiedCard, graph.Integer(2))

	r := ont.Restrictions()[0]
	min, max := r.MinCardinality(), r.MaxCardinality()
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 2, *min)
	assert.Equal(t, 2, *max)
}

func TestNegativeCardinalityRejected(t *testing.T) {
	ont := testOntology(t)
	g := ont.Store()

	node := addRestriction(g, classIRI("Report"))
	g.Add(node, owlMinQualified, graph.Integer(-1))

	assert.Nil(t, ont.Restrictions()[0].MinCardinality())
}

func TestOrphanRestrictionHasNoSubklass(t *testing.T) {
	ont := testOntology(t)
	g := ont.Store()

	node := graph.NewBlankNode()
	g.Add(node, rdfType, owlRestriction)
	g.Add(node, owlOnProperty, classIRI("author"))

	_, ok := ont.Restrictions()[0].Subklass()
	assert.False(t, ok)
}

func TestKlassRestrictions(t *testing.T) {
	ont := testOntology(t)
	g := ont.Store()

	node := addRestriction(g, classIRI("Report"))
	g.Add(node, owlOnProperty, classIRI("author"))
	// A plain superclass must not be mistaken for a restriction.
	g.Add(classIRI("Report"), rdfsSubClassOf, graph.MustIRI(owl.Namespace+"Thing"))

	report := Klass{URI: classIRI("Report"), ont: ont}
	assert.Len(t, report.Restrictions(), 1)

	person := Klass{URI: classIRI("Person"), ont: ont}
	assert.Empty(t, person.Restrictions())
}
