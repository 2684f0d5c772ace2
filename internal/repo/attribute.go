package repo

import (
	"context"

	"github.com/texnomart/backend/internal/models"
)

func (r *GormRepo) GetAttributeKeys(ctx context.Context) ([]models.AttributeKey, error) {
	var items []models.AttributeKey
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetAttributeValues(ctx context.Context) ([]models.AttributeValue, error) {
	var items []models.AttributeValue
	if err := r.DB.WithContext(ctx).Preload("Key").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
