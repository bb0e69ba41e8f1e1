package service

import (
	"context"

	"github.com/digimenu/catalog-service/internal/dto"
)

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context) (resp []dto.ProductResponse, err error)
	GetCategories(ctx context.Context) (categories []string, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type AuthService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error)
}
