package repo

import (
	"context"

	"github.com/texnomart/backend/internal/models"
)

func (r *GormRepo) GetUserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var items []models.Order
	if err := r.DB.WithContext(ctx).Preload("Product").Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}
