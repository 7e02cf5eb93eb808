package product

import (
	"context"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	productRepo "github.com/muhammadheryan/food-storefront/repository/product"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/muhammadheryan/food-storefront/utils/pricing"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, availableOnly bool) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
	Convert(ctx context.Context, id uint64, req *model.ConvertRequest) (*pricing.Quote, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, availableOnly bool) ([]model.Product, error) {
	items, err := s.productRepo.List(ctx, &model.ProductFilter{AvailableOnly: availableOnly})
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if !req.BasePrice.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	category := req.Category
	if category == "" {
		category = constant.CategorySnacks
	}

	product := &model.Product{
		Name:             req.Name,
		Description:      req.Description,
		BasePrice:        req.BasePrice,
		HasWeightPricing: req.HasWeightPricing,
		Available:        true,
		Category:         category,
		ImageID:          req.ImageID,
		RatingStars:      constant.DefaultRatingStars,
		IsBestseller:     req.IsBestseller,
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.BasePrice != nil {
		if !req.BasePrice.IsPositive() {
			return nil, errors.SetCustomError(constant.ErrInvalidAmount)
		}
		product.BasePrice = *req.BasePrice
	}
	if req.HasWeightPricing != nil {
		product.HasWeightPricing = *req.HasWeightPricing
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		product.Category = *req.Category
	}
	if req.IsBestseller != nil {
		product.IsBestseller = *req.IsBestseller
	}
	if req.Available != nil {
		product.Available = *req.Available
	}
	if req.ImageID != nil {
		product.ImageID = *req.ImageID
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return product, nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// Convert quotes the other half of a weight/price pair for a per-kg product.
func (s *productAppImpl) Convert(ctx context.Context, id uint64, req *model.ConvertRequest) (*pricing.Quote, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.HasWeightPricing {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	converter, err := pricing.NewConverter(product.BasePrice)
	if err != nil {
		logger.Error("[Convert] invalid stored base price", zap.Uint64("product_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	quote, err := converter.Resolve(req.Mode, req.Weight, req.Price)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &quote, nil
}
