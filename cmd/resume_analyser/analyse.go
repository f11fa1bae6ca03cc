package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lachho/resume/internal/ingestion"
	"github.com/lachho/resume/internal/schemas"
	"github.com/lachho/resume/internal/types"
)

type analyseOptions struct {
	file     string
	format   string
	outDir   string
	jobMatch bool
	validate bool
}

func newAnalyseCmd(c *cli) *cobra.Command {
	opts := &analyseOptions{}

	cmd := &cobra.Command{
		Use:   "analyse",
		Short: "Analyse a resume file",
		Long: "Extract the text of a PDF, DOCX, TXT or HTML resume and report its ATS compatibility, " +
			"content quality, sections and overall score.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runAnalyse(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the resume (required)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: json, text or markdown")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Directory to write the extracted text and metadata to")
	cmd.Flags().BoolVar(&opts.jobMatch, "job-match", false, "Also match the resume against the reference job requirements")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Validate the JSON output against the bundled schemas")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (c *cli) runAnalyse(cmd *cobra.Command, opts *analyseOptions) error {
	format, err := c.outputFormat(opts.format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	doc, metadata, err := ingestion.IngestFile(ctx, opts.file)
	if err != nil {
		return err
	}
	c.logger.Info("document extracted",
		"file", opts.file,
		"format", metadata.Format,
		"sha256", metadata.Hash,
		"size_bytes", metadata.SizeBytes,
	)

	outDir := opts.outDir
	if outDir == "" {
		outDir = c.cfg.OutputDir
	}
	if outDir != "" {
		base, err := ingestion.WriteOutput(outDir, doc, metadata)
		if err != nil {
			return err
		}
		c.logger.Info("extracted text written", "dir", outDir, "base", base)
	}

	orchestrator := c.orchestrator()
	bundle, err := orchestrator.Analyse(ctx, *doc)
	if err != nil {
		return err
	}

	var match *types.JobMatchResult
	if opts.jobMatch {
		result := orchestrator.MatchJob(bundle)
		match = &result
	}

	if opts.validate {
		if err := validateOutput(c.logger, c.cfg.SchemaDir, schemas.BundleSchema, bundle); err != nil {
			return err
		}
		if match != nil {
			if err := validateOutput(c.logger, c.cfg.SchemaDir, schemas.JobMatchSchema, match); err != nil {
				return err
			}
		}
	}

	if err := writeBundle(cmd.OutOrStdout(), format, bundle, match); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
