package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	cartrepo "github.com/muhammadheryan/food-storefront/repository/cart"
	productrepo "github.com/muhammadheryan/food-storefront/repository/product"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/muhammadheryan/food-storefront/utils/pricing"
	"go.uber.org/zap"
)

type CartApp interface {
	CreateCart(ctx context.Context) (*model.CartResponse, error)
	GetCart(ctx context.Context, cartID string) (*model.CartResponse, error)
	AddItem(ctx context.Context, cartID string, req *model.AddCartItemRequest) (*model.CartResponse, error)
	RemoveLine(ctx context.Context, cartID, identity string) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, cartID string, productID uint64, quantity int) (*model.CartResponse, error)
	RemoveLastWeightLine(ctx context.Context, cartID string, productID uint64) (*model.CartResponse, error)
	AddSameWeightLine(ctx context.Context, cartID string, productID uint64) (*model.CartResponse, error)
	// Snapshot returns the stored cart, or nil when it does not exist.
	Snapshot(ctx context.Context, cartID string) (*model.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type cartAppImpl struct {
	config      *config.Config
	cartRepo    cartrepo.CartRepository
	productRepo productrepo.ProductRepository
	now         func() time.Time
}

func NewCartApp(config *config.Config, cartRepo cartrepo.CartRepository, productRepo productrepo.ProductRepository) CartApp {
	return &cartAppImpl{config: config, cartRepo: cartRepo, productRepo: productRepo, now: time.Now}
}

func (s *cartAppImpl) ttl() time.Duration {
	if s.config != nil && s.config.Cart.TTL > 0 {
		return s.config.Cart.TTL
	}
	return constant.DefaultCartTTL
}

func (s *cartAppImpl) CreateCart(ctx context.Context) (*model.CartResponse, error) {
	c := &model.Cart{ID: uuid.NewString(), Lines: []model.LineItem{}, UpdatedAt: s.now()}
	if err := s.cartRepo.Save(ctx, c, s.ttl()); err != nil {
		logger.Error("[CreateCart] err cartRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return c.ToResponse(), nil
}

func (s *cartAppImpl) GetCart(ctx context.Context, cartID string) (*model.CartResponse, error) {
	c, err := s.Snapshot(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c.ToResponse(), nil
}

func (s *cartAppImpl) Snapshot(ctx context.Context, cartID string) (*model.Cart, error) {
	c, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		logger.Error("[Snapshot] err cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return c, nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, cartID string, req *model.AddCartItemRequest) (*model.CartResponse, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[AddItem] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !product.Available {
		return nil, errors.SetCustomError(constant.ErrProductUnavailable)
	}

	var line model.LineItem
	if product.HasWeightPricing {
		conv, err := pricing.NewConverter(product.BasePrice)
		if err != nil {
			logger.Error("[AddItem] invalid catalog price", zap.Uint64("product_id", product.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrProductUnavailable)
		}
		mode := req.Mode
		if mode == "" {
			mode = constant.PricingModeWeight
		}
		quote, err := conv.Resolve(mode, req.Weight, req.Price)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if !quote.Valid() {
			return nil, errors.SetCustomError(constant.ErrInvalidWeightPrice)
		}
		line = model.NewWeightLine(uuid.NewString(), product.ID, product.Name, product.BasePrice, model.WeightLine{
			Weight: quote.Weight,
			Price:  quote.Price,
			Mode:   quote.Mode,
		})
	} else {
		line = model.NewUnitLine(product.ID, product.Name, product.BasePrice, 1)
	}

	return s.mutate(ctx, "AddItem", cartID, func(c *model.Cart) bool {
		AddLine(c, line)
		return true
	})
}

func (s *cartAppImpl) RemoveLine(ctx context.Context, cartID, identity string) (*model.CartResponse, error) {
	return s.mutate(ctx, "RemoveLine", cartID, func(c *model.Cart) bool {
		return RemoveLine(c, identity)
	})
}

func (s *cartAppImpl) UpdateQuantity(ctx context.Context, cartID string, productID uint64, quantity int) (*model.CartResponse, error) {
	return s.mutate(ctx, "UpdateQuantity", cartID, func(c *model.Cart) bool {
		return UpdateQuantity(c, productID, quantity)
	})
}

func (s *cartAppImpl) RemoveLastWeightLine(ctx context.Context, cartID string, productID uint64) (*model.CartResponse, error) {
	return s.mutate(ctx, "RemoveLastWeightLine", cartID, func(c *model.Cart) bool {
		return RemoveLastWeightLine(c, productID)
	})
}

func (s *cartAppImpl) AddSameWeightLine(ctx context.Context, cartID string, productID uint64) (*model.CartResponse, error) {
	lineID := uuid.NewString()
	return s.mutate(ctx, "AddSameWeightLine", cartID, func(c *model.Cart) bool {
		return AddSameWeightLine(c, productID, lineID)
	})
}

func (s *cartAppImpl) Clear(ctx context.Context, cartID string) error {
	if err := s.cartRepo.Delete(ctx, cartID); err != nil {
		logger.Error("[Clear] err cartRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// mutate applies fn to the stored cart. fn reports false when its target line is absent.
func (s *cartAppImpl) mutate(ctx context.Context, op, cartID string, fn func(c *model.Cart) bool) (*model.CartResponse, error) {
	c, err := s.cartRepo.Update(ctx, cartID, s.ttl(), func(c *model.Cart, exists bool) error {
		if !exists {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if !fn(c) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		c.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		if errors.IsType(err, constant.ErrNotFound) {
			return nil, err
		}
		logger.Error("["+op+"] err cartRepo.Update", zap.String("cart_id", cartID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return c.ToResponse(), nil
}
