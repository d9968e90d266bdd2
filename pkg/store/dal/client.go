package dal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
	"github.com/lotto-tools/report-center/pkg/services/fetch"
	"github.com/lotto-tools/report-center/pkg/services/registry"
)

// Client fetches one bank's transaction documents from the external Data
// Access Layer service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	bank       string
}

type envelope struct {
	Success bool             `json:"success"`
	Data    []store.Document `json:"data"`
	Error   string           `json:"error"`
}

func NewClient(httpClient *http.Client, baseURL, bank string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if bank == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		bank:       bank,
	}, nil
}

func (c *Client) Name() string { return c.bank }

func (c *Client) Fetch(
	ctx context.Context,
	entity domain.Entity,
	start, end time.Time,
) ([]store.Document, error) {
	query := url.Values{}
	query.Set("from", start.Format(time.RFC3339))
	query.Set("to", end.Format(time.RFC3339))

	endpoint := fmt.Sprintf("%s/api/%s?%s", c.baseURL, entity, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", entity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", entity, resp.StatusCode)
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", entity, err)
	}
	if !body.Success {
		return nil, fmt.Errorf("fetch %s: DAL error: %s", entity, body.Error)
	}
	return body.Data, nil
}

// SourceFactory builds a DAL-backed source from a bank profile.
func SourceFactory(_ context.Context, profile registry.BankProfile) (fetch.Source, error) {
	return NewClient(nil, profile.BaseURL, profile.Name)
}
