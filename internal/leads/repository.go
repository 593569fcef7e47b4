package leads

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository persists accepted leads. Both collections are append-only.
type Repository interface {
	CreateQuote(ctx context.Context, lead QuoteLead) error
	CreateChlorinator(ctx context.Context, lead ChlorinatorLead) error
}

type MongoRepository struct {
	quotes       *mongo.Collection
	chlorinators *mongo.Collection
}

func NewRepository(quotes, chlorinators *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		quotes:       quotes,
		chlorinators: chlorinators,
	}
}

func (r *MongoRepository) CreateQuote(ctx context.Context, lead QuoteLead) error {
	_, err := r.quotes.InsertOne(ctx, lead)
	return err
}

func (r *MongoRepository) CreateChlorinator(ctx context.Context, lead ChlorinatorLead) error {
	_, err := r.chlorinators.InsertOne(ctx, lead)
	return err
}
