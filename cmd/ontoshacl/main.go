// Package main provides the ontoshacl binary entry point.
// Ontoshacl derives a SHACL validator from an OWL ontology.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kurrawong/ontoshacl/commands"
	"github.com/Kurrawong/ontoshacl/config"
)

const (
	Version   = "0.2.0"
	BuildTime = "dev"
	appName   = "ontoshacl"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Derive a SHACL validator from an OWL ontology",
		Long: `Ontoshacl reads an OWL ontology and generates a SHACL shapes graph
validating instance data against the ontology's class model.

It derives:
- one sh:NodeShape per class referenced by at least one constraint
- one sh:PropertyShape per rdfs:domain/rdfs:range rule (configurable severity)
- one sh:PropertyShape per owl:Restriction (always sh:Violation)`,
	}

	cmd.AddCommand(generateCmd())

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func generateCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		overrides  config.Config
		includeDR  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a SHACL shapes graph from an OWL ontology",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel)
			slog.SetDefault(logger)

			// The include flag only overrides the config file when it was
			// passed explicitly; an absent bool flag is indistinguishable
			// from --include-domain-range-restrictions=false otherwise.
			if cmd.Flags().Changed("include-domain-range-restrictions") {
				overrides.IncludeDomainRangeRestrictions = &includeDR
			}

			cfg, err := config.Load(configPath, &overrides)
			if err != nil {
				return err
			}

			summary, err := commands.Generate(cfg, logger)
			if err != nil {
				return err
			}

			fmt.Printf("Generated\n\n\t%d sh:NodeShape's\n\t%d sh:PropertyShape's\n\n\t%s\n",
				summary.NodeShapes, summary.PropertyShapes, cfg.Target)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "Config file path (JSON or YAML)")
	f.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	f.StringVar(&overrides.Src, "src", "", "Source ontology file")
	f.StringVar(&overrides.URI, "uri", "", "Base ontology IRI")
	f.StringVar(&overrides.Target, "target", "", "Output file for the shapes graph")
	f.StringVar(&overrides.Namespace, "namespace", "", "Namespace for generated shape IRIs")
	f.StringVar(&overrides.VersionIRI, "version-iri", "", "owl:versionIRI of the validator")
	f.StringVar(&overrides.Creator, "creator", "", "IRI of the creating agent")
	f.StringVar(&overrides.CreatorType, "creator-type", "", "Creator agent type (person or organisation)")
	f.StringVar(&overrides.CreatorName, "creator-name", "", "Creator name")
	f.StringVar(&overrides.CreatorEmail, "creator-email", "", "Creator email")
	f.StringVar(&overrides.CreatorURL, "creator-url", "", "Creator URL")
	f.StringVar(&overrides.Publisher, "publisher", "", "IRI of the publishing agent")
	f.StringVar(&overrides.PublisherType, "publisher-type", "", "Publisher agent type (person or organisation)")
	f.StringVar(&overrides.PublisherName, "publisher-name", "", "Publisher name")
	f.StringVar(&overrides.PublisherEmail, "publisher-email", "", "Publisher email")
	f.StringVar(&overrides.PublisherURL, "publisher-url", "", "Publisher URL")
	f.StringVar(&overrides.Name, "name", "", "Validator name")
	f.StringVar(&overrides.Description, "description", "", "Validator description")
	f.StringVar(&overrides.DateCreated, "date-created", "", "Creation date (YYYY-MM-DD)")
	f.StringVar(&overrides.BaseOntologyPrefix, "base-ontology-prefix", "", "Prefix bound to the source ontology namespace")
	f.BoolVar(&includeDR, "include-domain-range-restrictions", true, "Emit shapes for rdfs:domain/rdfs:range rules")
	f.StringVar(&overrides.DomainRangeRestrictionSeverity, "domain-range-restriction-severity", "", "Severity for domain/range shapes (Warning, Violation, Info)")

	return cmd
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
