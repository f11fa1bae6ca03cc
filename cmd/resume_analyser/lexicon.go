package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lachho/resume/internal/lexicon"
	"github.com/lachho/resume/internal/schemas"
)

func newLexiconCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect and check lexicon files",
	}

	cmd.AddCommand(newLexiconDumpCmd(c), newLexiconValidateCmd(c))
	return cmd
}

func newLexiconDumpCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the active lexicon as JSON",
		Long:  "Print the active lexicon (the built-in tables, or the file given with --lexicon) as JSON. The output is a valid lexicon file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.Lexicon == "" {
				_, err := cmd.OutOrStdout().Write(lexicon.DefaultJSON())
				return err
			}
			return writeJSON(cmd.OutOrStdout(), c.lex.Tables())
		},
	}
}

func newLexiconValidateCmd(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a lexicon file",
		Long:  "Check a lexicon file against the lexicon schema, then load and compile it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read lexicon file: %w", err)
			}

			if schemaPath := schemas.ResolveSchemaPath(filepath.Join(c.cfg.SchemaDir, schemas.LexiconSchema)); schemaPath != "" {
				if err := schemas.ValidateJSON(schemaPath, file); err != nil {
					var validationErr *schemas.ValidationError
					if errors.As(err, &validationErr) {
						return fmt.Errorf("lexicon does not match schema: %w", err)
					}
					c.logger.Warn("could not validate lexicon against schema", "error", err)
				}
			} else {
				c.logger.Warn("schema not found, skipping schema check", "schema", schemas.LexiconSchema)
			}

			if _, err := lexicon.Parse(data); err != nil {
				return fmt.Errorf("invalid lexicon: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Lexicon %s is valid\n", file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the lexicon JSON file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
