package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lachho/resume/internal/types"
)

// NamedDocument is an extracted document and the name it is reported under
type NamedDocument struct {
	Name     string
	Document types.ParsedDocument
}

// BatchItem is the analysis of one document in a batch
type BatchItem struct {
	Name   string                `json:"name"`
	Bundle *types.AnalysisBundle `json:"analysis"`
}

// AnalyseBatch analyses unrelated documents in parallel, at most limit at a time when limit > 0.
// Items come back in input order.
func (o *Orchestrator) AnalyseBatch(ctx context.Context, docs []NamedDocument, limit int) ([]BatchItem, error) {
	items := make([]BatchItem, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, d := range docs {
		i, d := i, d
		g.Go(func() error {
			bundle, err := o.Analyse(gCtx, d.Document)
			if err != nil {
				return err
			}
			items[i] = BatchItem{Name: d.Name, Bundle: bundle}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
