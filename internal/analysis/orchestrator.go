// Package analysis runs the resume analysers over an extracted document and combines their results.
package analysis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/lachho/resume/internal/ats"
	"github.com/lachho/resume/internal/content"
	"github.com/lachho/resume/internal/jobmatch"
	"github.com/lachho/resume/internal/lexicon"
	"github.com/lachho/resume/internal/scoring"
	"github.com/lachho/resume/internal/sections"
	"github.com/lachho/resume/internal/types"
)

const tracerName = "github.com/lachho/resume/internal/analysis"

// Component names used in logs, spans and metrics
const (
	ComponentATS      = "ats"
	ComponentContent  = "content"
	ComponentSections = "sections"
)

// Recorder receives every completed analysis
type Recorder interface {
	ObserveAnalysis(bundle *types.AnalysisBundle, elapsed time.Duration)
}

// Orchestrator sequences the analysers for a single document
type Orchestrator struct {
	ats      *ats.Analyser
	content  *content.Analyser
	sections *sections.Extractor
	matcher  *jobmatch.Matcher

	logger   *slog.Logger
	tracer   trace.Tracer
	recorder Recorder
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithLogger sets the logger used for per-component diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTracer sets the tracer used for analysis spans
func WithTracer(tracer trace.Tracer) Option {
	return func(o *Orchestrator) {
		if tracer != nil {
			o.tracer = tracer
		}
	}
}

// WithMetrics registers a recorder that is told about every completed analysis
func WithMetrics(r Recorder) Option {
	return func(o *Orchestrator) {
		o.recorder = r
	}
}

// New creates an Orchestrator whose analysers all share lex
func New(lex *lexicon.Lexicon, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		ats:      ats.New(lex),
		content:  content.New(lex),
		sections: sections.New(lex),
		matcher:  jobmatch.New(lex),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Analyse runs the ATS, content and section analysers over doc and aggregates their scores.
// It fails only when ctx is done before the analysers finish.
func (o *Orchestrator) Analyse(ctx context.Context, doc types.ParsedDocument) (*types.AnalysisBundle, error) {
	runID := uuid.New().String()
	started := time.Now()

	ctx, span := o.tracer.Start(ctx, "analysis.Analyse", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Int("text_length", len(doc.Text)),
		attribute.Bool("has_images", doc.HasImages),
	))
	defer span.End()

	var (
		atsResult      types.ATSResult
		contentResult  types.ContentResult
		sectionsResult types.SectionsResult
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return o.runComponent(gCtx, runID, ComponentATS, func() int {
			atsResult = o.ats.Analyse(doc)
			return atsResult.Score
		})
	})
	g.Go(func() error {
		return o.runComponent(gCtx, runID, ComponentContent, func() int {
			contentResult = o.content.Analyse(doc.Text)
			return contentResult.Score
		})
	})
	g.Go(func() error {
		return o.runComponent(gCtx, runID, ComponentSections, func() int {
			sectionsResult = o.sections.Parse(doc.Text)
			return sectionsResult.PresentSections()
		})
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis cancelled")
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	bundle := &types.AnalysisBundle{
		ATS:          atsResult,
		Content:      contentResult,
		Sections:     sectionsResult,
		Overall:      scoring.Aggregate(atsResult, contentResult, sectionsResult),
		OriginalText: doc.Text,
	}

	elapsed := time.Since(started)
	span.SetAttributes(attribute.Int("final_score", bundle.Overall.FinalScore))
	o.logger.Info("analysis complete",
		"run_id", runID,
		"final_score", bundle.Overall.FinalScore,
		"duration", elapsed,
	)
	if o.recorder != nil {
		o.recorder.ObserveAnalysis(bundle, elapsed)
	}

	return bundle, nil
}

// MatchJob compares the text retained in bundle against the reference job requirements
func (o *Orchestrator) MatchJob(bundle *types.AnalysisBundle) types.JobMatchResult {
	return o.matcher.Match(bundle.OriginalText)
}

func (o *Orchestrator) runComponent(ctx context.Context, runID, component string, analyse func() int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, span := o.tracer.Start(ctx, "analysis."+component)
	defer span.End()

	started := time.Now()
	score := analyse()
	span.SetAttributes(attribute.Int("score", score))

	o.logger.Debug("component finished",
		"run_id", runID,
		"component", component,
		"score", score,
		"duration", time.Since(started),
	)
	return nil
}
