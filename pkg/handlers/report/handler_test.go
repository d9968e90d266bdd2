package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lotto-tools/report-center/pkg/models/api"
	"github.com/lotto-tools/report-center/pkg/models/domain"
	reportsvc "github.com/lotto-tools/report-center/pkg/services/report"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) ListReports() []reportsvc.Descriptor {
	args := m.Called()
	return args.Get(0).([]reportsvc.Descriptor)
}

func (m *mockGenerator) Generate(
	ctx context.Context,
	entity domain.Entity,
	grouping domain.Grouping,
	start, end time.Time,
) (domain.ReportViewModel, error) {
	args := m.Called(ctx, entity, grouping, start, end)
	return args.Get(0).(domain.ReportViewModel), args.Error(1)
}

func TestListReports(t *testing.T) {
	generator := new(mockGenerator)
	generator.On("ListReports").Return([]reportsvc.Descriptor{
		{Entity: domain.EntityDeposits, Grouping: domain.GroupingBank, Title: "Depósitos por banco", ChartType: "pie"},
		{Entity: domain.EntityReloads, Grouping: domain.GroupingShop, Title: "Recargas por comercio", ChartType: "pie"},
	})

	handler := NewHandler(generator)
	req := httptest.NewRequest("GET", "/reports", nil)
	rec := httptest.NewRecorder()

	handler.ListReports(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response api.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.True(t, response.Success)

	generator.AssertExpectations(t)
}

func TestGenerateReport(t *testing.T) {
	startTimeTest := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	endTimeTest := time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		entity         string
		grouping       string
		queryParams    map[string]string
		setupMock      func(*mockGenerator)
		expectedStatus int
		expectSuccess  bool
	}{
		{
			name:     "successful response",
			entity:   "deposits",
			grouping: "bank",
			queryParams: map[string]string{
				"from": "01-07-2025",
				"to":   "13-07-2025",
			},
			setupMock: func(m *mockGenerator) {
				m.On("Generate",
					mock.Anything,
					domain.EntityDeposits,
					domain.GroupingBank,
					startTimeTest,
					endTimeTest,
				).Return(domain.ReportViewModel{
					Title: "Depósitos por banco",
					ChartData: []domain.ChartPoint{
						{Name: "BNCR", Value: 3000},
						{Name: "BCR", Value: 500},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectSuccess:  true,
		},
		{
			name:     "equal from and to accepted",
			entity:   "deposits",
			grouping: "bank",
			queryParams: map[string]string{
				"from": "13-07-2025",
				"to":   "13-07-2025",
			},
			setupMock: func(m *mockGenerator) {
				m.On("Generate",
					mock.Anything,
					domain.EntityDeposits,
					domain.GroupingBank,
					endTimeTest,
					endTimeTest,
				).Return(domain.ReportViewModel{Title: "Depósitos por banco"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectSuccess:  true,
		},
		{
			name:     "invalid date format",
			entity:   "deposits",
			grouping: "bank",
			queryParams: map[string]string{
				"from": "2025-07-01",
			},
			setupMock:      func(m *mockGenerator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "start after end",
			entity:   "deposits",
			grouping: "bank",
			queryParams: map[string]string{
				"from": "13-07-2025",
				"to":   "01-07-2025",
			},
			setupMock:      func(m *mockGenerator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "unknown report",
			entity:   "deposits",
			grouping: "tier",
			queryParams: map[string]string{
				"from": "01-07-2025",
				"to":   "13-07-2025",
			},
			setupMock: func(m *mockGenerator) {
				m.On("Generate",
					mock.Anything,
					domain.EntityDeposits,
					domain.GroupingTier,
					startTimeTest,
					endTimeTest,
				).Return(domain.ReportViewModel{}, fmt.Errorf("%w: deposits/tier", reportsvc.ErrUnknownReport))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := new(mockGenerator)
			tt.setupMock(generator)
			handler := NewHandler(generator)

			url := "/reports/" + tt.entity + "/" + tt.grouping
			first := true
			for k, v := range tt.queryParams {
				if first {
					url += "?"
					first = false
				} else {
					url += "&"
				}
				url += k + "=" + v
			}

			req := httptest.NewRequest("GET", url, nil)
			rec := httptest.NewRecorder()

			// Set up chi context with URL parameters
			ctx := chi.NewRouteContext()
			ctx.URLParams.Add("entity", tt.entity)
			ctx.URLParams.Add("grouping", tt.grouping)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))

			handler.GenerateReport(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response api.Envelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			assert.Equal(t, tt.expectSuccess, response.Success)

			generator.AssertExpectations(t)
		})
	}
}

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		name         string
		paramValue   string
		defaultDate  time.Time
		expectedDate time.Time
		expectError  bool
	}{
		{
			name:         "valid date",
			paramValue:   "13-07-2025",
			defaultDate:  time.Now(),
			expectedDate: time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			expectError:  false,
		},
		{
			name:         "invalid date format",
			paramValue:   "2025-07-13",
			defaultDate:  time.Now(),
			expectedDate: time.Time{},
			expectError:  true,
		},
		{
			name:         "empty date uses default",
			paramValue:   "",
			defaultDate:  time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			expectError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/?from="+tt.paramValue, nil)
			result, err := parseDateParam(req, "from", tt.defaultDate)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDate, result)
			}
		})
	}
}
