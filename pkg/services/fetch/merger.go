package fetch

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
)

// Source is one bank integration's fetch collaborator. Implementations live
// under pkg/store; each returns raw documents in its own native shape.
type Source interface {
	Name() string
	Fetch(ctx context.Context, entity domain.Entity, start, end time.Time) ([]store.Document, error)
}

// Merger issues one independent query per bank and merges the results.
// A failing bank is logged and contributes an empty batch instead of
// aborting the gather, so a report is still produced from whichever
// integrations answered.
type Merger struct {
	sources []Source
}

func NewMerger(sources ...Source) *Merger {
	return &Merger{sources: sources}
}

func (m *Merger) FetchAll(
	ctx context.Context,
	entity domain.Entity,
	start, end time.Time,
) []store.SourceBatch {
	logger := zerolog.Ctx(ctx)
	batches := make([]store.SourceBatch, len(m.sources))

	var g errgroup.Group
	for i, src := range m.sources {
		i, src := i, src
		g.Go(func() error {
			docs, err := src.Fetch(ctx, entity, start, end)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("bank", src.Name()).
					Str("entity", string(entity)).
					Msg("bank fetch failed, continuing with partial results")
				docs = nil
			}
			batches[i] = store.SourceBatch{Bank: src.Name(), Docs: docs}
			return nil
		})
	}

	// goroutines never return an error; failures degrade to empty batches
	_ = g.Wait()
	return batches
}
