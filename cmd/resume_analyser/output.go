package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/lachho/resume/internal/observability"
	"github.com/lachho/resume/internal/schemas"
	"github.com/lachho/resume/internal/types"
)

const (
	formatJSON     = "json"
	formatText     = "text"
	formatMarkdown = "markdown"
)

// analyseReport is the JSON shape of `analyse --job-match`
type analyseReport struct {
	Analysis *types.AnalysisBundle `json:"analysis"`
	JobMatch *types.JobMatchResult `json:"job_match"`
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeBundle renders an analysis, followed by its job match when one is given
func writeBundle(w io.Writer, format string, bundle *types.AnalysisBundle, match *types.JobMatchResult) error {
	switch format {
	case formatText:
		p := observability.NewPrinter(w)
		p.PrintBundle(bundle)
		p.PrintJobMatch(match)
		return nil
	case formatMarkdown:
		out := observability.RenderMarkdown(bundle)
		if match != nil {
			out += "\n" + observability.RenderJobMatchMarkdown(match)
		}
		_, err := io.WriteString(w, out)
		return err
	default:
		if match != nil {
			return writeJSON(w, analyseReport{Analysis: bundle, JobMatch: match})
		}
		return writeJSON(w, bundle)
	}
}

func writeJobMatch(w io.Writer, format string, match *types.JobMatchResult) error {
	switch format {
	case formatText:
		observability.NewPrinter(w).PrintJobMatch(match)
		return nil
	case formatMarkdown:
		_, err := io.WriteString(w, observability.RenderJobMatchMarkdown(match))
		return err
	default:
		return writeJSON(w, match)
	}
}

// validateOutput checks v against a schema from schemaDir.
// A schema that cannot be found or loaded only produces a warning.
func validateOutput(logger *slog.Logger, schemaDir, schemaFile string, v any) error {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join(schemaDir, schemaFile))
	if schemaPath == "" {
		logger.Warn("schema not found, skipping validation", "schema", schemaFile, "dir", schemaDir)
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.ValidateJSONBytes(schemaPath, data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("output does not validate against %s: %w", schemaFile, err)
		}
		logger.Warn("could not validate output against schema", "schema", schemaFile, "error", err)
	}
	return nil
}
