package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/lotto-tools/report-center/pkg/adapters"
	"github.com/lotto-tools/report-center/pkg/models/api"
	"github.com/lotto-tools/report-center/pkg/models/domain"
	reportsvc "github.com/lotto-tools/report-center/pkg/services/report"
	"github.com/lotto-tools/report-center/pkg/server/middleware"
)

const dateLayout = "02-01-2006"

// Generator is the report service surface the handler depends on.
type Generator interface {
	ListReports() []reportsvc.Descriptor
	Generate(
		ctx context.Context,
		entity domain.Entity,
		grouping domain.Grouping,
		start, end time.Time,
	) (domain.ReportViewModel, error)
}

type Handler struct {
	reports Generator
}

func NewHandler(reports Generator) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	descriptors := h.reports.ListReports()
	response := make([]api.ReportDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		response = append(response, adapters.MapDescriptorDomainToApi(d))
	}
	writeEnvelope(r.Context(), w, http.StatusOK, api.Envelope{
		Success:   true,
		Data:      response,
		RequestID: middleware.RequestID(r.Context()),
	})
}

func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entity := domain.Entity(chi.URLParam(r, "entity"))
	grouping := domain.Grouping(chi.URLParam(r, "grouping"))

	now := time.Now().UTC()
	start, err := parseDateParam(r, "from", now.AddDate(0, 0, -7))
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid `from` date, expected DD-MM-YYYY")
		return
	}
	end, err := parseDateParam(r, "to", now)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid `to` date, expected DD-MM-YYYY")
		return
	}
	if start.After(end) {
		writeError(ctx, w, http.StatusBadRequest, "`from` must not be after `to`")
		return
	}

	vm, err := h.reports.Generate(ctx, entity, grouping, start, end)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reportsvc.ErrUnknownReport) {
			status = http.StatusNotFound
		}
		writeError(ctx, w, status, err.Error())
		return
	}

	writeEnvelope(ctx, w, http.StatusOK, api.Envelope{
		Success:   true,
		Data:      adapters.MapReportDomainToApi(vm),
		RequestID: middleware.RequestID(ctx),
	})
}

func parseDateParam(r *http.Request, name string, defaultDate time.Time) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultDate, nil
	}
	return time.Parse(dateLayout, value)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeEnvelope(ctx, w, status, api.Envelope{
		Success:   false,
		Error:     message,
		RequestID: middleware.RequestID(ctx),
	})
}

func writeEnvelope(ctx context.Context, w http.ResponseWriter, status int, body api.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
