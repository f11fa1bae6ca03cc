package main

import (
	"github.com/spf13/cobra"

	"github.com/lachho/resume/internal/ingestion"
	"github.com/lachho/resume/internal/jobmatch"
	"github.com/lachho/resume/internal/schemas"
)

func newMatchJobCmd(c *cli) *cobra.Command {
	var (
		file     string
		format   string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "match-job",
		Short: "Match a resume against the reference job requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := c.outputFormat(format)
			if err != nil {
				return err
			}

			doc, _, err := ingestion.IngestFile(cmd.Context(), file)
			if err != nil {
				return err
			}

			result := jobmatch.New(c.lex).Match(doc.Text)
			c.logger.Info("job match complete", "file", file, "score", result.Score)

			if validate {
				if err := validateOutput(c.logger, c.cfg.SchemaDir, schemas.JobMatchSchema, result); err != nil {
					return err
				}
			}
			return writeJobMatch(cmd.OutOrStdout(), outFormat, &result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the resume (required)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: json, text or markdown")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate the JSON output against the bundled schema")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
