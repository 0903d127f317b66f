package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kurrawong/ontoshacl/config"
)

const fixtureNT = `<http://example.org/ont#Report> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .
<http://example.org/ont#Person> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .
<http://example.org/ont#author> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#ObjectProperty> .
<http://example.org/ont#author> <http://www.w3.org/2000/01/rdf-schema#domain> <http://example.org/ont#Report> .
<http://example.org/ont#author> <http://www.w3.org/2000/01/rdf-schema#range> <http://example.org/ont#Person> .
`

func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "ontology.nt")
	require.NoError(t, os.WriteFile(src, []byte(fixtureNT), 0o644))

	cfg := config.DefaultConfig()
	cfg.Src = src
	cfg.URI = "http://example.org/ont#"
	cfg.Target = filepath.Join(dir, "shapes.ttl")
	cfg.Namespace = "https://example.org/shapes/"
	cfg.Creator = "https://example.org/me"
	cfg.BaseOntologyPrefix = "ont"
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := fixtureConfig(t)

	summary, err := Generate(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NodeShapes)
	assert.Equal(t, 1, summary.PropertyShapes)
	assert.Equal(t, 0, summary.SkippedRestrictions)

	out, err := os.ReadFile(cfg.Target)
	require.NoError(t, err)
	ttl := string(out)
	assert.Contains(t, ttl, "@prefix sh: <http://www.w3.org/ns/shacl#> .")
	assert.Contains(t, ttl, ":Report-NS")
	assert.Contains(t, ttl, ":author-PS")
	assert.Contains(t, ttl, "sh:targetClass ont:Report")
}

func TestGenerateInvalidConfig(t *testing.T) {
	_, err := Generate(&config.Config{}, nil)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestGenerateInvalidURI(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.URI = "not a valid iri"
	_, err := Generate(cfg, nil)
	assert.ErrorContains(t, err, "invalid ontology uri")
}
