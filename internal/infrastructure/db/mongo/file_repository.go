package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/braizerecords/label-api/internal/core/domain"
)

const fileCollection = "files"

// MongoFileRepository persists shared file documents.
type MongoFileRepository struct {
	coll *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *MongoFileRepository {
	return &MongoFileRepository{coll: db.Collection(fileCollection)}
}

func (r *MongoFileRepository) List(ctx context.Context) ([]domain.SharedFile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer cursor.Close(ctx)

	var files []domain.SharedFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, fmt.Errorf("decode files: %w", err)
	}
	return files, nil
}

func (r *MongoFileRepository) FindByLink(ctx context.Context, link string) (*domain.SharedFile, error) {
	var file domain.SharedFile
	if err := r.coll.FindOne(ctx, bson.M{"private_link": link}).Decode(&file); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return &file, nil
}

func (r *MongoFileRepository) Create(ctx context.Context, file *domain.SharedFile) (*domain.SharedFile, error) {
	res, err := r.coll.InsertOne(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}

	created := *file
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoFileRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFileNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}
