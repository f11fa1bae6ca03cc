package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lachho/resume/internal/analysis"
	"github.com/lachho/resume/internal/ingestion"
	"github.com/lachho/resume/internal/observability"
)

// batchExtensions are the file types picked up from a batch directory
var batchExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// batchFailure is a document that could not be extracted
type batchFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type batchReport struct {
	Results  []analysis.BatchItem `json:"results"`
	Failures []batchFailure       `json:"failures"`
}

type batchOptions struct {
	dir         string
	format      string
	concurrency int
	metricsFile string
}

func newBatchCmd(c *cli) *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyse every resume in a directory",
		Long: "Analyse every PDF, DOCX, TXT and HTML file in a directory in parallel. " +
			"Files that cannot be extracted are reported and skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runBatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Directory of resumes (required)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: json, text or markdown")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 0, "Maximum documents analysed at once (0 means unlimited)")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics for the batch to this file")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func (c *cli) runBatch(cmd *cobra.Command, opts *batchOptions) error {
	format, err := c.outputFormat(opts.format)
	if err != nil {
		return err
	}
	concurrency := opts.concurrency
	if concurrency == 0 {
		concurrency = c.cfg.Concurrency
	}
	if concurrency < 0 {
		return fmt.Errorf("--concurrency must be non-negative")
	}
	metricsFile := opts.metricsFile
	if metricsFile == "" {
		metricsFile = c.cfg.MetricsFile
	}

	paths, err := listResumes(opts.dir)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	batchID := uuid.New().String()
	logger := c.logger.With("batch_id", batchID)
	metrics := observability.NewMetrics()

	report := batchReport{Results: []analysis.BatchItem{}, Failures: []batchFailure{}}
	docs := make([]analysis.NamedDocument, 0, len(paths))
	for _, path := range paths {
		doc, _, err := ingestion.IngestFile(ctx, path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			logger.Warn("skipping document", "file", path, "error", err)
			metrics.ObserveExtractionFailure(failureReason(err))
			report.Failures = append(report.Failures, batchFailure{Name: filepath.Base(path), Error: err.Error()})
			continue
		}
		docs = append(docs, analysis.NamedDocument{Name: filepath.Base(path), Document: *doc})
	}

	items, err := c.orchestrator(analysis.WithMetrics(metrics)).AnalyseBatch(ctx, docs, concurrency)
	if err != nil {
		return err
	}
	report.Results = append(report.Results, items...)
	logger.Info("batch complete", "analysed", len(report.Results), "failed", len(report.Failures))

	if metricsFile != "" {
		if err := metrics.WriteTextfile(metricsFile); err != nil {
			return err
		}
	}

	return writeBatch(cmd.OutOrStdout(), format, report)
}

// listResumes returns the supported files directly inside dir, sorted by name
func listResumes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !batchExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// failureReason labels an extraction error for metrics
func failureReason(err error) string {
	var unsupported *ingestion.UnsupportedTypeError
	var extraction *ingestion.ExtractionError
	var read *ingestion.FileReadError
	switch {
	case errors.As(err, &unsupported):
		return "unsupported"
	case errors.As(err, &extraction):
		return string(extraction.Format)
	case errors.As(err, &read):
		return "read"
	default:
		return "unknown"
	}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func writeBatch(w io.Writer, format string, report batchReport) error {
	switch format {
	case formatText:
		fmt.Fprintf(w, "%-40s %7s %5s %9s %8s\n", "FILE", "OVERALL", "ATS", "CONTENT", "SECTIONS")
		for _, item := range report.Results {
			b := item.Bundle
			fmt.Fprintf(w, "%-40s %7d %5d %9d %6d/%d\n", item.Name, b.Overall.FinalScore, b.ATS.Score,
				b.Content.Score, b.Sections.PresentSections(), len(b.Sections.Sections))
		}
		for _, f := range report.Failures {
			fmt.Fprintf(w, "%-40s failed: %s\n", f.Name, f.Error)
		}
		return nil
	case formatMarkdown:
		for i, item := range report.Results {
			if i > 0 {
				fmt.Fprint(w, "\n---\n\n")
			}
			fmt.Fprintf(w, "<!-- %s -->\n", item.Name)
			fmt.Fprint(w, observability.RenderMarkdown(item.Bundle))
		}
		if len(report.Failures) > 0 {
			fmt.Fprint(w, "\n## Failed documents\n\n")
			for _, f := range report.Failures {
				fmt.Fprintf(w, "- %s: %s\n", f.Name, f.Error)
			}
		}
		return nil
	default:
		return writeJSON(w, report)
	}
}
