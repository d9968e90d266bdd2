package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasvc "github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
	"github.com/lotto-tools/report-center/pkg/services/fetch"
	"github.com/lotto-tools/report-center/pkg/services/registry"
)

// Invoker is the subset of the Lambda client the source needs.
type Invoker interface {
	Invoke(ctx context.Context, params *lambdasvc.InvokeInput, optFns ...func(*lambdasvc.Options)) (*lambdasvc.InvokeOutput, error)
}

type request struct {
	Entity string `json:"entity"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type response struct {
	Items []store.Document `json:"items"`
}

// Source fetches one bank's transaction documents through the Lambda
// function that fronts its integration.
type Source struct {
	client   Invoker
	bank     string
	function string
}

func NewSource(client Invoker, bank, function string) (*Source, error) {
	if client == nil {
		return nil, fmt.Errorf("lambda client is nil")
	}
	if bank == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	if function == "" {
		return nil, fmt.Errorf("function name is required")
	}
	return &Source{client: client, bank: bank, function: function}, nil
}

func (s *Source) Name() string { return s.bank }

func (s *Source) Fetch(
	ctx context.Context,
	entity domain.Entity,
	start, end time.Time,
) ([]store.Document, error) {
	payload, err := json.Marshal(request{
		Entity: string(entity),
		From:   start.Format(time.RFC3339),
		To:     end.Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	out, err := s.client.Invoke(ctx, &lambdasvc.InvokeInput{
		FunctionName: aws.String(s.function),
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", s.function, err)
	}
	if out.FunctionError != nil {
		return nil, fmt.Errorf("function %s failed: %s", s.function, *out.FunctionError)
	}

	var resp response
	if err := json.Unmarshal(out.Payload, &resp); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", s.function, err)
	}
	return resp.Items, nil
}

// SourceFactory builds a Lambda-backed source from a bank profile.
func SourceFactory(ctx context.Context, profile registry.BankProfile) (fetch.Source, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(profile.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config for %q: %w", profile.Name, err)
	}
	return NewSource(lambdasvc.NewFromConfig(cfg), profile.Name, profile.Function)
}
