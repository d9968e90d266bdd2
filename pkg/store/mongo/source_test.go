package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

func TestToDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2025, 7, 3, 14, 30, 0, 0, time.UTC)

	doc := toDocument(bson.M{
		"_id":       oid,
		"credit":    1500.0,
		"createdAt": primitive.DateTime(created.UnixMilli()),
		"customer": bson.M{
			"id":   int32(42),
			"name": "Ana Mora",
		},
		"tags": primitive.A{"vip", int32(3)},
		"shop": bson.D{{Key: "id", Value: int64(7)}},
	})

	assert.Equal(t, oid.Hex(), doc["_id"])
	assert.Equal(t, 1500.0, doc["credit"])
	assert.Equal(t, created, doc["createdAt"])

	customer, ok := doc["customer"].(map[string]any)
	require.True(t, ok, "nested bson.M becomes a plain map")
	assert.Equal(t, int32(42), customer["id"])
	assert.Equal(t, "Ana Mora", customer["name"])

	tags, ok := doc["tags"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"vip", int32(3)}, tags)

	shop, ok := doc["shop"].(map[string]any)
	require.True(t, ok, "nested bson.D becomes a plain map")
	assert.Equal(t, int64(7), shop["id"])
}

func TestCollectionFor(t *testing.T) {
	source := &Source{cfg: Config{
		Bank:     "bncr",
		Database: "bncr_ledger",
		Collections: map[domain.Entity]string{
			domain.EntityWithdrawals: "redemptions",
		},
	}}

	assert.Equal(t, "deposits", source.collectionFor(domain.EntityDeposits))
	assert.Equal(t, "redemptions", source.collectionFor(domain.EntityWithdrawals))
}

func TestNewSourceValidation(t *testing.T) {
	_, err := NewSource(nil, Config{Bank: "bncr", Database: "bncr_ledger"})
	assert.Error(t, err)
}
