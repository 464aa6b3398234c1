// Package main contains the pgmapper command line tool. It validates
// declarative TOML schema files and renders them to PostgreSQL DDL.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pgmapper/internal/parser/toml"
	"pgmapper/internal/render/postgres"
)

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "pgmapper",
		Short: "Entity metadata tool – validate and render TOML schema definitions",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	validateCmd := &cobra.Command{
		Use:   "validate <schema.toml>",
		Short: "Validate a schema file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			schema, err := toml.NewParser().ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}

			for _, e := range schema.Entities {
				log.Debug().
					Str("entity", e.QualifiedName()).
					Int("columns", len(e.Columns())).
					Strs("primary_key", e.PrimaryKey().Columns()).
					Msg("validated")
			}
			log.Info().Int("entities", len(schema.Entities)).Str("file", args[0]).Msg("schema is valid")
			return nil
		},
	}

	var renderOutFile string
	renderCmd := &cobra.Command{
		Use:   "render <schema.toml>",
		Short: "Render a schema file to PostgreSQL DDL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			schema, err := toml.NewParser().ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			g := postgres.NewGenerator()
			statements := make([]string, 0, len(schema.Entities))
			for _, e := range schema.Entities {
				log.Debug().Str("entity", e.QualifiedName()).Msg("rendering")
				statements = append(statements, g.CreateTable(e))
			}
			ddl := strings.Join(statements, "\n\n") + "\n"

			if renderOutFile == "" {
				fmt.Print(ddl)
				return nil
			}
			if err := os.WriteFile(renderOutFile, []byte(ddl), 0o644); err != nil {
				return fmt.Errorf("render: write %q: %w", renderOutFile, err)
			}
			log.Info().Str("file", renderOutFile).Msg("DDL written")
			return nil
		},
	}
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "", "write DDL to a file instead of stdout")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
