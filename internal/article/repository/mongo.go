package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/articlesvc/articles/internal/article"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listProjection renames the store's _id to id and hides _id. Aggregation
// expressions in find projections need MongoDB 4.4 or newer.
var listProjection = bson.D{
	{Key: "id", Value: "$_id"},
	{Key: "_id", Value: 0},
	{Key: "name", Value: 1},
	{Key: "description", Value: 1},
	{Key: "tags", Value: 1},
	{Key: "created_at", Value: 1},
	{Key: "updated_at", Value: 1},
}

// listedArticle is the decoded shape of a projected listing document.
type listedArticle struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Tags        []string  `bson:"tags"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

// MongoRepo implements Repository on a MongoDB collection. Articles are keyed
// by their UUID in _id; description carries a unique index.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo ensures the unique description index exists before returning.
func NewMongoRepo(ctx context.Context, col *mongo.Collection) (*MongoRepo, error) {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "description", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, fmt.Errorf("create description index: %w", err)
	}
	return &MongoRepo{col: col}, nil
}

func (m *MongoRepo) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.D{})
}

func (m *MongoRepo) Insert(ctx context.Context, a *article.Article) error {
	if _, err := m.col.InsertOne(ctx, a); err != nil {
		return storeError(err)
	}
	return nil
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*article.Article, error) {
	var a article.Article
	if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (m *MongoRepo) FindAll(ctx context.Context) ([]*article.Article, error) {
	cur, err := m.col.Find(ctx, bson.D{}, options.Find().SetProjection(listProjection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*article.Article{}
	for cur.Next(ctx) {
		var l listedArticle
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, &article.Article{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			Tags:        l.Tags,
			CreatedAt:   l.CreatedAt,
			UpdatedAt:   l.UpdatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo) Update(ctx context.Context, a *article.Article) error {
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return storeError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) (*article.Article, error) {
	var a article.Article
	if err := m.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func storeError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &duplicateError{err: err}
	}
	return err
}
