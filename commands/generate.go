// Package commands implements the ontoshacl operations invoked from the
// CLI, decoupled from flag parsing so they can be driven from tests.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/config"
	"github.com/Kurrawong/ontoshacl/ontology"
	"github.com/Kurrawong/ontoshacl/shapes"
)

// Generate runs the full pipeline: validate the configuration, load the
// source ontology, derive the shapes graph and write it to the target file.
func Generate(cfg *config.Config, logger *slog.Logger) (shapes.Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := cfg.Validate(); err != nil {
		return shapes.Summary{}, fmt.Errorf("invalid configuration: %w", err)
	}

	iri, err := rdf.NewIRI(cfg.URI)
	if err != nil {
		return shapes.Summary{}, fmt.Errorf("invalid ontology uri %q: %w", cfg.URI, err)
	}

	logger.Info("loading ontology",
		slog.String("src", cfg.Src),
		slog.String("uri", iri.String()))

	ont, err := ontology.Load(cfg.Src, iri)
	if err != nil {
		return shapes.Summary{}, fmt.Errorf("load ontology: %w", err)
	}

	severity, err := cfg.Severity()
	if err != nil {
		return shapes.Summary{}, err
	}

	engine, err := shapes.New(ont, shapes.Options{
		Namespace:                      cfg.Namespace,
		VersionIRI:                     cfg.VersionIRI,
		Creator:                        cfg.Creator,
		CreatorType:                    cfg.CreatorType,
		CreatorName:                    cfg.CreatorName,
		CreatorEmail:                   cfg.CreatorEmail,
		CreatorURL:                     cfg.CreatorURL,
		Publisher:                      cfg.Publisher,
		PublisherType:                  cfg.PublisherType,
		PublisherName:                  cfg.PublisherName,
		PublisherEmail:                 cfg.PublisherEmail,
		PublisherURL:                   cfg.PublisherURL,
		Name:                           cfg.Name,
		Description:                    cfg.Description,
		DateCreated:                    cfg.DateCreated,
		BaseOntologyPrefix:             cfg.BaseOntologyPrefix,
		IncludeDomainRangeRestrictions: cfg.IncludeDomainRange(),
		DomainRangeSeverity:            severity,
	}, logger)
	if err != nil {
		return shapes.Summary{}, fmt.Errorf("generate shapes: %w", err)
	}

	if err := engine.Graph().WriteFile(cfg.Target); err != nil {
		return shapes.Summary{}, fmt.Errorf("write shapes graph: %w", err)
	}

	summary := engine.Summary()
	logger.Info("shapes graph written",
		slog.String("target", cfg.Target),
		slog.Int("node_shapes", summary.NodeShapes),
		slog.Int("property_shapes", summary.PropertyShapes),
		slog.Int("skipped_restrictions", summary.SkippedRestrictions))

	return summary, nil
}
