package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
	"github.com/lotto-tools/report-center/pkg/services/fetch"
	"github.com/lotto-tools/report-center/pkg/services/registry"
)

type Config struct {
	Bank        string
	Database    string
	Collections map[domain.Entity]string // optional per-entity overrides
}

// Source reads one bank's transaction documents from its Mongo collections.
// Documents are returned as-is; field interpretation belongs to the report
// normalizer.
type Source struct {
	client *mongodrv.Client
	cfg    Config
}

func NewSource(client *mongodrv.Client, cfg Config) (*Source, error) {
	if client == nil {
		return nil, fmt.Errorf("mongo client is nil")
	}
	if cfg.Bank == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database name is required")
	}
	return &Source{client: client, cfg: cfg}, nil
}

func (s *Source) Name() string { return s.cfg.Bank }

func (s *Source) Fetch(
	ctx context.Context,
	entity domain.Entity,
	start, end time.Time,
) ([]store.Document, error) {
	coll := s.client.Database(s.cfg.Database).Collection(s.collectionFor(entity))

	filter := bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", entity, err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", entity, err)
	}

	docs := make([]store.Document, 0, len(raw))
	for _, doc := range raw {
		docs = append(docs, toDocument(doc))
	}
	return docs, nil
}

func (s *Source) collectionFor(entity domain.Entity) string {
	if name, ok := s.cfg.Collections[entity]; ok {
		return name
	}
	return string(entity)
}

func toDocument(doc bson.M) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		out[k] = plainValue(v)
	}
	return out
}

// plainValue strips BSON-specific types so the normalizer only ever sees
// plain Go values.
func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.ObjectID:
		return t.Hex()
	case bson.M:
		nested := make(map[string]any, len(t))
		for k, val := range t {
			nested[k] = plainValue(val)
		}
		return nested
	case bson.D:
		nested := make(map[string]any, len(t))
		for _, e := range t {
			nested[e.Key] = plainValue(e.Value)
		}
		return nested
	case primitive.A:
		items := make([]any, 0, len(t))
		for _, item := range t {
			items = append(items, plainValue(item))
		}
		return items
	default:
		return v
	}
}

// SourceFactory builds a Mongo-backed source from a bank profile.
func SourceFactory(ctx context.Context, profile registry.BankProfile) (fetch.Source, error) {
	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(profile.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to %q: %w", profile.Name, err)
	}
	return NewSource(client, Config{Bank: profile.Name, Database: profile.Database})
}
