package service

import (
	"context"
	"fmt"

	"github.com/texnomart/backend/internal/models"
	"github.com/texnomart/backend/internal/repo"
	"github.com/texnomart/backend/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) UserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.GetUserOrders(ctx, userID)
}

func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.Month < 3 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 3 and 12", ErrValidation)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, req.Product)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		UserID:       &userID,
		ProductID:    &product.ID,
		Quantity:     req.Quantity,
		FirstPayment: req.FirstPayment,
		Month:        req.Month,
	}
	if err := s.Repo.CreateOrder(ctx, &order); err != nil {
		return nil, err
	}
	order.Product = product
	return &order, nil
}
