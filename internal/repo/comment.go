package repo

import (
	"context"

	"github.com/texnomart/backend/internal/models"
)

func (r *GormRepo) GetProductComments(ctx context.Context, productID uint) ([]models.Comment, error) {
	var items []models.Comment
	if err := r.DB.WithContext(ctx).Where("product_id = ?", productID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.DB.WithContext(ctx).Create(comment).Error
}
