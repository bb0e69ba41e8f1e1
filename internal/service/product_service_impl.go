package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/digimenu/catalog-service/internal/domain"
	"github.com/digimenu/catalog-service/internal/dto"
	"github.com/digimenu/catalog-service/internal/repository"
	"github.com/digimenu/catalog-service/pkg/errs"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ProductServiceImpl struct {
	mongoDBRepo repository.MongoDBProductRepository
}

func CreateProductService(mongoDBRepo repository.MongoDBProductRepository) ProductService {
	return &ProductServiceImpl{mongoDBRepo: mongoDBRepo}
}

// validatePayload returns a FieldError for the first offending field.
// Fields are checked in declaration order: name, description, price, image, category.
func validatePayload(data dto.ProductRequest) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &errs.FieldError{
			Field: strings.ToLower(fieldErrs[0].Field()),
			Tag:   fieldErrs[0].Tag(),
		}
	}

	return errs.ErrValidation
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (resp dto.ProductResponse, err error) {
	if err = validatePayload(data); err != nil {
		return
	}

	product := domain.Product{
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Category:    data.Category,
		CreatedAt:   time.Now().UTC(),
	}

	productID, err := s.mongoDBRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	resp = dto.ProductResponse{
		ID:          productID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		Category:    product.Category,
		CreatedAt:   product.CreatedAt,
	}

	return
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (resp []dto.ProductResponse, err error) {
	products, err := s.mongoDBRepo.GetProducts(ctx)
	if err != nil {
		return
	}

	resp = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, dto.ProductResponse{
			ID:          product.ID.Hex(),
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Image:       product.Image,
			Category:    product.Category,
			CreatedAt:   product.CreatedAt,
		})
	}

	return resp, nil
}

func (s *ProductServiceImpl) GetCategories(ctx context.Context) (categories []string, err error) {
	categories, err = s.mongoDBRepo.GetCategories(ctx)
	if err != nil {
		return
	}

	if categories == nil {
		categories = []string{}
	}

	return categories, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return s.mongoDBRepo.DeleteProduct(ctx, id)
}
