package repository

import (
	"context"

	"github.com/digimenu/catalog-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoDBProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetCategories(ctx context.Context) (categories []string, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}
