package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
	"github.com/lotto-tools/report-center/pkg/services/fetch"
	"github.com/lotto-tools/report-center/pkg/services/registry"
)

// Per-entity ledger queries. Columns are aliased to the field names the
// report normalizer resolves, so a SQL-backed bank needs no family-specific
// handling downstream.
var entityQueries = map[domain.Entity]string{
	domain.EntityDeposits: `
		SELECT credit, created_at AS "createdAt", customer_id AS "customerId",
		       customer_name AS "customerName", shop_id AS "shopId",
		       payment_method AS "paymentMethod"
		FROM deposits
		WHERE created_at >= $1 AND created_at < $2`,
	domain.EntityReloads: `
		SELECT amount, created_at AS "createdAt", customer_id AS "customerId",
		       customer_name AS "customerName", shop_id AS "shopId"
		FROM reloads
		WHERE created_at >= $1 AND created_at < $2`,
	domain.EntityWithdrawals: `
		SELECT cash_amount, created_at AS "createdAt", customer_id AS "customerId",
		       customer_name AS "customerName"
		FROM redemptions
		WHERE created_at >= $1 AND created_at < $2`,
	domain.EntityPromotions: `
		SELECT amount, created_at AS "createdAt", customer_id AS "customerId",
		       customer_name AS "customerName", bonus_tier AS "bonusTier"
		FROM promotions
		WHERE created_at >= $1 AND created_at < $2`,
}

// Source reads one bank's transaction ledger from a SQL database.
type Source struct {
	db   *sql.DB
	bank string
}

func NewSource(db *sql.DB, bank string) (*Source, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if bank == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	return &Source{db: db, bank: bank}, nil
}

func (s *Source) Name() string { return s.bank }

func (s *Source) Fetch(
	ctx context.Context,
	entity domain.Entity,
	start, end time.Time,
) ([]store.Document, error) {
	query, ok := entityQueries[entity]
	if !ok {
		return nil, fmt.Errorf("unsupported entity: %s", entity)
	}

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", entity, err)
	}
	defer rows.Close()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", entity, err)
	}
	return docs, rows.Err()
}

// scanDocuments turns a result set into raw documents keyed by the aliased
// column names. NULL columns are dropped so the normalizer's field-presence
// checks behave the same as for document stores.
func scanDocuments(rows *sql.Rows) ([]store.Document, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var docs []store.Document
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		doc := make(store.Document, len(columns))
		for i, col := range columns {
			if values[i] == nil {
				continue
			}
			doc[col] = normalizeSQLValue(values[i])
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func normalizeSQLValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	default:
		return v
	}
}

// SourceFactory builds a SQL-backed source from a bank profile.
func SourceFactory(_ context.Context, profile registry.BankProfile) (fetch.Source, error) {
	db, err := sql.Open("pgx", profile.DSN)
	if err != nil {
		return nil, fmt.Errorf("open ledger for %q: %w", profile.Name, err)
	}
	return NewSource(db, profile.Name)
}
