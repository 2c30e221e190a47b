package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

const streamCollection = "stream_data"

// MongoStreamRepository persists analytics points and computes the dashboard
// aggregation server-side with an aggregation pipeline.
type MongoStreamRepository struct {
	coll *mongo.Collection
}

func NewStreamRepository(db *mongo.Database) *MongoStreamRepository {
	return &MongoStreamRepository{coll: db.Collection(streamCollection)}
}

func (r *MongoStreamRepository) Insert(ctx context.Context, point *domain.StreamData) error {
	if _, err := r.coll.InsertOne(ctx, point); err != nil {
		return fmt.Errorf("insert stream point: %w", err)
	}
	return nil
}

// AggregateByPlatform groups points since the given instant by platform and
// sums streams, listeners and revenue.
func (r *MongoStreamRepository) AggregateByPlatform(ctx context.Context, since time.Time) ([]ports.PlatformStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$platform",
			"streams":   bson.M{"$sum": "$streams"},
			"listeners": bson.M{"$sum": "$listeners"},
			"revenue":   bson.M{"$sum": "$revenue"},
		}}},
		{{Key: "$sort", Value: bson.M{"streams": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate streams: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Platform  string  `bson:"_id"`
		Streams   int64   `bson:"streams"`
		Listeners int64   `bson:"listeners"`
		Revenue   float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode aggregation: %w", err)
	}

	stats := make([]ports.PlatformStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, ports.PlatformStats{
			Platform:  row.Platform,
			Streams:   row.Streams,
			Listeners: row.Listeners,
			Revenue:   row.Revenue,
		})
	}
	return stats, nil
}
