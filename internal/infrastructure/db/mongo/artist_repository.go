package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

const artistCollection = "artists"

// MongoArtistRepository persists the artist catalog. Artist documents carry
// bson tags directly, so no separate wire struct is needed here.
type MongoArtistRepository struct {
	coll *mongo.Collection
}

func NewArtistRepository(db *mongo.Database) *MongoArtistRepository {
	return &MongoArtistRepository{coll: db.Collection(artistCollection)}
}

// EnsureIndexes creates the unique slug index backing the public URLs.
func (r *MongoArtistRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create slug index: %w", err)
	}
	return nil
}

func (r *MongoArtistRepository) FindBySlug(ctx context.Context, slug string) (*domain.Artist, error) {
	var artist domain.Artist
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&artist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("find artist: %w", err)
	}
	return &artist, nil
}

func (r *MongoArtistRepository) List(ctx context.Context, filter ports.ArtistFilter) ([]domain.Artist, error) {
	query := bson.M{}
	if filter.Genre != "" {
		query["genre"] = filter.Genre
	}
	if filter.Contract != "" {
		query["contract"] = filter.Contract
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []domain.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("decode artists: %w", err)
	}
	return artists, nil
}

func (r *MongoArtistRepository) Create(ctx context.Context, artist *domain.Artist) (*domain.Artist, error) {
	res, err := r.coll.InsertOne(ctx, artist)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("insert artist: %w", err)
	}

	created := *artist
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoArtistRepository) Update(ctx context.Context, id string, artist *domain.Artist) (*domain.Artist, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	set := bson.M{
		"name":        artist.Name,
		"slug":        artist.Slug,
		"genre":       artist.Genre,
		"contract":    artist.Contract,
		"biography":   artist.Biography,
		"streaming":   artist.Streaming,
		"socials":     artist.Socials,
		"discography": artist.Discography,
		"events":      artist.Events,
		"stats":       artist.Stats,
		"updated_at":  artist.UpdatedAt,
	}

	var updated domain.Artist
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrArtistNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("update artist: %w", err)
	}
	return &updated, nil
}

func (r *MongoArtistRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArtistNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}
