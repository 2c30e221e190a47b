package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

const socialCollection = "social_posts"

// MongoSocialRepository persists social posts. Status transitions are applied
// with a compare-and-set filter so a concurrent publisher cannot double-flip
// the same post.
type MongoSocialRepository struct {
	coll *mongo.Collection
}

func NewSocialRepository(db *mongo.Database) *MongoSocialRepository {
	return &MongoSocialRepository{coll: db.Collection(socialCollection)}
}

func (r *MongoSocialRepository) List(ctx context.Context, filter ports.SocialPostFilter) ([]domain.SocialPost, error) {
	query := bson.M{}
	if filter.ArtistID != "" {
		query["artist_id"] = filter.ArtistID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []domain.SocialPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (r *MongoSocialRepository) FindByID(ctx context.Context, id string) (*domain.SocialPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var post domain.SocialPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

func (r *MongoSocialRepository) Create(ctx context.Context, post *domain.SocialPost) (*domain.SocialPost, error) {
	res, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// UpdateStatus flips a post from one status to another. The current status is
// part of the filter: a post already moved by another caller is reported as
// an invalid state, not silently overwritten.
func (r *MongoSocialRepository) UpdateStatus(ctx context.Context, id string, from, to domain.PostStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return fmt.Errorf("update post status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvalidPostState
	}
	return nil
}

// Schedule stamps scheduled_for while flipping the status, under the same
// compare-and-set filter as UpdateStatus.
func (r *MongoSocialRepository) Schedule(ctx context.Context, id string, from domain.PostStatus, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": from},
		bson.M{"$set": bson.M{"status": domain.PostScheduled, "scheduled_for": at}},
	)
	if err != nil {
		return fmt.Errorf("schedule post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvalidPostState
	}
	return nil
}

func (r *MongoSocialRepository) ListDue(ctx context.Context, now time.Time) ([]domain.SocialPost, error) {
	cursor, err := r.coll.Find(ctx, bson.M{
		"status":        domain.PostScheduled,
		"scheduled_for": bson.M{"$lte": now},
	})
	if err != nil {
		return nil, fmt.Errorf("list due posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []domain.SocialPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode due posts: %w", err)
	}
	return posts, nil
}
