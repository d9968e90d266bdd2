package report

import (
	"context"
	"errors"
	"time"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
)

// Fetcher gathers the raw per-bank contributions for one entity. The report
// pipeline never talks to a bank integration directly; it only ever sees the
// already-merged batches.
type Fetcher interface {
	FetchAll(ctx context.Context, entity domain.Entity, start, end time.Time) []store.SourceBatch
}

// Service runs one report per call: fetch, then a pure transformation.
type Service struct {
	registry  Registry
	fetcher   Fetcher
	locale    Locale
	chartTopN int
}

type ServiceOptions struct {
	Registry  Registry // defaults to the full report registry
	Fetcher   Fetcher  // required for Generate
	Locale    Locale
	ChartTopN int
}

func NewService(opts ServiceOptions) *Service {
	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	return &Service{
		registry:  registry,
		fetcher:   opts.Fetcher,
		locale:    opts.Locale,
		chartTopN: opts.ChartTopN,
	}
}

func (s *Service) ListReports() []Descriptor {
	return s.registry.List()
}

// Generate resolves the report descriptor, fetches every bank's records for
// the range, and hands the merged batches to the transformer. The fetch is
// the only asynchronous step; everything after it is CPU-bound.
func (s *Service) Generate(
	ctx context.Context,
	entity domain.Entity,
	grouping domain.Grouping,
	start, end time.Time,
) (domain.ReportViewModel, error) {
	descriptor, err := s.registry.Lookup(entity, grouping)
	if err != nil {
		return domain.ReportViewModel{}, err
	}
	if s.fetcher == nil {
		return domain.ReportViewModel{}, errors.New("no fetcher configured")
	}

	batches := s.fetcher.FetchAll(ctx, entity, start, end)

	return descriptor.Transform(Input{
		Batches:   batches,
		Start:     start,
		End:       end,
		Locale:    s.locale,
		ChartTopN: s.chartTopN,
	}), nil
}
