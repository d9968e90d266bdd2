package report

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
)

// Per-family field adapters. Deposits carry their amount under `credit`;
// reloads and redemptions under `amount` with a `cash_amount` fallback;
// promotions under `amount` plus a bonus tier label.
type familyAdapter struct {
	amount func(doc store.Document) float64
	keys   func(doc store.Document, keys map[string]string)
}

var familyAdapters = map[domain.Family]familyAdapter{
	domain.FamilyDeposit: {
		amount: func(doc store.Document) float64 {
			v, _ := asFloat(doc["credit"])
			return v
		},
		keys: func(doc store.Document, keys map[string]string) {
			if m := asString(doc["paymentMethod"], doc["method"]); m != "" {
				keys["method"] = m
			}
		},
	},
	domain.FamilyReload: {
		amount: cashAmount,
		keys:   func(store.Document, map[string]string) {},
	},
	domain.FamilyRedemption: {
		amount: cashAmount,
		keys:   func(store.Document, map[string]string) {},
	},
	domain.FamilyPromotion: {
		amount: func(doc store.Document) float64 {
			v, _ := asFloat(doc["amount"])
			return v
		},
		keys: func(doc store.Document, keys map[string]string) {
			if t := asString(doc["bonusTier"], doc["tier"]); t != "" {
				keys["tier"] = t
			}
		},
	},
}

func cashAmount(doc store.Document) float64 {
	if v, ok := asFloat(doc["amount"]); ok {
		return v
	}
	v, _ := asFloat(doc["cash_amount"])
	return v
}

// Normalize extracts the common record shape from a raw bank document.
// It never fails: a missing amount becomes 0, an unparsable timestamp
// becomes the Unix epoch so downstream min/max tracking stays total, and a
// missing customer reference only excludes the record from customer-keyed
// grouping.
func Normalize(doc store.Document, family domain.Family, bank string) domain.NormalizedRecord {
	adapter, ok := familyAdapters[family]
	if !ok {
		adapter = familyAdapters[domain.FamilyDeposit]
	}

	rec := domain.NormalizedRecord{
		Amount:    adapter.amount(doc),
		Timestamp: resolveTimestamp(doc),
		Keys:      map[string]string{"bank": bank},
	}
	adapter.keys(doc, rec.Keys)
	resolveCustomer(doc, &rec)
	resolveShop(doc, &rec)
	return rec
}

// NormalizeBatch normalizes every document of one bank's contribution.
func NormalizeBatch(batch store.SourceBatch, family domain.Family) []domain.NormalizedRecord {
	records := make([]domain.NormalizedRecord, 0, len(batch.Docs))
	for _, doc := range batch.Docs {
		records = append(records, Normalize(doc, family, batch.Bank))
	}
	return records
}

// NormalizeAll flattens the contributions of every bank into one record
// stream for a single aggregation pass.
func NormalizeAll(batches []store.SourceBatch, family domain.Family) []domain.NormalizedRecord {
	var records []domain.NormalizedRecord
	for _, batch := range batches {
		records = append(records, NormalizeBatch(batch, family)...)
	}
	return records
}

func resolveTimestamp(doc store.Document) time.Time {
	for _, field := range []string{"createdAt", "date", "transactionDate"} {
		if ts, ok := asTime(doc[field]); ok {
			return ts
		}
	}
	return time.UnixMilli(0).UTC()
}

func resolveCustomer(doc store.Document, rec *domain.NormalizedRecord) {
	if nested, ok := doc["customer"].(map[string]any); ok {
		if id, ok := asInt(nested["id"]); ok {
			rec.CustomerID = id
			rec.HasCustomer = true
			rec.CustomerLabel = asString(nested["name"], nested["username"])
			if rec.CustomerLabel == "" {
				rec.CustomerLabel = strconv.FormatInt(id, 10)
			}
			return
		}
	}
	if id, ok := asInt(doc["customerId"]); ok {
		rec.CustomerID = id
		rec.HasCustomer = true
		rec.CustomerLabel = asString(doc["customerName"])
		if rec.CustomerLabel == "" {
			rec.CustomerLabel = strconv.FormatInt(id, 10)
		}
	}
}

func resolveShop(doc store.Document, rec *domain.NormalizedRecord) {
	if id, ok := asInt(doc["shopId"]); ok {
		rec.ShopID = id
		rec.HasShop = true
		return
	}
	if nested, ok := doc["shop"].(map[string]any); ok {
		if id, ok := asInt(nested["id"]); ok {
			rec.ShopID = id
			rec.HasShop = true
		}
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

func asString(candidates ...any) string {
	for _, v := range candidates {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	case int64:
		return time.UnixMilli(t).UTC(), true
	case float64:
		return time.UnixMilli(int64(t)).UTC(), true
	}
	return time.Time{}, false
}
