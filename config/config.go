// Package config provides configuration loading and validation for
// ontoshacl generation runs.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/graph"
	"github.com/Kurrawong/ontoshacl/vocabulary/sh"
)

// Severity names accepted by domain_range_restriction_severity. The legacy
// "SH.Warning" and "sh:Warning" spellings are also recognized.
const (
	SeverityWarning   = "Warning"
	SeverityViolation = "Violation"
	SeverityInfo      = "Info"
)

// Config holds a full generation configuration. Field tags mirror the
// config file keys.
type Config struct {
	// Base ontology details.
	Src string `json:"src" yaml:"src"`
	URI string `json:"uri" yaml:"uri"`

	// Target validator details.
	Target     string `json:"target" yaml:"target"`
	Namespace  string `json:"namespace" yaml:"namespace"`
	VersionIRI string `json:"versionIRI" yaml:"versionIRI"`

	Creator      string `json:"creator" yaml:"creator"`
	CreatorType  string `json:"creator_type" yaml:"creator_type"`
	CreatorName  string `json:"creator_name" yaml:"creator_name"`
	CreatorEmail string `json:"creator_email" yaml:"creator_email"`
	CreatorURL   string `json:"creator_url" yaml:"creator_url"`

	Publisher      string `json:"publisher" yaml:"publisher"`
	PublisherType  string `json:"publisher_type" yaml:"publisher_type"`
	PublisherName  string `json:"publisher_name" yaml:"publisher_name"`
	PublisherEmail string `json:"publisher_email" yaml:"publisher_email"`
	PublisherURL   string `json:"publisher_url" yaml:"publisher_url"`

	Name               string `json:"name" yaml:"name"`
	Description        string `json:"description" yaml:"description"`
	DateCreated        string `json:"dateCreated" yaml:"dateCreated"`
	BaseOntologyPrefix string `json:"base_ontology_prefix" yaml:"base_ontology_prefix"`

	// SHACL generation options.
	IncludeDomainRangeRestrictions *bool  `json:"include_domain_range_restrictions" yaml:"include_domain_range_restrictions"`
	DomainRangeRestrictionSeverity string `json:"domain_range_restriction_severity" yaml:"domain_range_restriction_severity"`
}

// DefaultConfig returns the documented defaults: domain/range rules enabled
// at Warning severity, person-typed agents.
func DefaultConfig() *Config {
	include := true
	return &Config{
		CreatorType:                    "person",
		PublisherType:                  "person",
		IncludeDomainRangeRestrictions: &include,
		DomainRangeRestrictionSeverity: SeverityWarning,
	}
}

// IncludeDomainRange reports the include_domain_range_restrictions setting,
// defaulting to true when unset.
func (c *Config) IncludeDomainRange() bool {
	if c.IncludeDomainRangeRestrictions == nil {
		return true
	}
	return *c.IncludeDomainRangeRestrictions
}

// Severity maps the configured severity name to its SHACL IRI.
func (c *Config) Severity() (rdf.IRI, error) {
	name := c.DomainRangeRestrictionSeverity
	name = strings.TrimPrefix(name, "SH.")
	name = strings.TrimPrefix(name, "sh:")
	switch name {
	case "", SeverityWarning:
		return graph.MustIRI(sh.Warning), nil
	case SeverityViolation:
		return graph.MustIRI(sh.Violation), nil
	case SeverityInfo:
		return graph.MustIRI(sh.Info), nil
	}
	return rdf.IRI{}, fmt.Errorf("unknown severity %q (want Warning, Violation or Info)",
		c.DomainRangeRestrictionSeverity)
}

// Merge overlays other onto c: fields set in other win.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	mergeString(&c.Src, other.Src)
	mergeString(&c.URI, other.URI)
	mergeString(&c.Target, other.Target)
	mergeString(&c.Namespace, other.Namespace)
	mergeString(&c.VersionIRI, other.VersionIRI)
	mergeString(&c.Creator, other.Creator)
	mergeString(&c.CreatorType, other.CreatorType)
	mergeString(&c.CreatorName, other.CreatorName)
	mergeString(&c.CreatorEmail, other.CreatorEmail)
	mergeString(&c.CreatorURL, other.CreatorURL)
	mergeString(&c.Publisher, other.Publisher)
	mergeString(&c.PublisherType, other.PublisherType)
	mergeString(&c.PublisherName, other.PublisherName)
	mergeString(&c.PublisherEmail, other.PublisherEmail)
	mergeString(&c.PublisherURL, other.PublisherURL)
	mergeString(&c.Name, other.Name)
	mergeString(&c.Description, other.Description)
	mergeString(&c.DateCreated, other.DateCreated)
	mergeString(&c.BaseOntologyPrefix, other.BaseOntologyPrefix)
	mergeString(&c.DomainRangeRestrictionSeverity, other.DomainRangeRestrictionSeverity)
	if other.IncludeDomainRangeRestrictions != nil {
		v := *other.IncludeDomainRangeRestrictions
		c.IncludeDomainRangeRestrictions = &v
	}
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Validate checks required fields, agent types, the severity name and the
// source path. It must pass before generation begins; a failure aborts the
// run with no output written.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"src", c.Src},
		{"uri", c.URI},
		{"target", c.Target},
		{"namespace", c.Namespace},
		{"creator", c.Creator},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration fields: %s", strings.Join(missing, ", "))
	}
	if _, err := os.Stat(c.Src); err != nil {
		return fmt.Errorf("source ontology file does not exist: %s", c.Src)
	}
	if err := validAgentType("creator_type", c.CreatorType); err != nil {
		return err
	}
	if err := validAgentType("publisher_type", c.PublisherType); err != nil {
		return err
	}
	if _, err := c.Severity(); err != nil {
		return err
	}
	return nil
}

func validAgentType(field, value string) error {
	switch value {
	case "", "person", "organisation":
		return nil
	}
	return fmt.Errorf("%s must be person or organisation, got %q", field, value)
}
