package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/texnomart/backend/internal/models"
)

func (r *GormRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category := models.Category{}
	if err := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Create(category).Error
}

func (r *GormRepo) SaveCategory(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Save(category).Error
}

// DeleteCategory removes the category and everything hanging off it:
// its products and, per product, images, comments and attribute values.
func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if err := deleteProductChildren(tx, productIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", productIDs).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func deleteProductChildren(tx *gorm.DB, productIDs []uint) error {
	if err := tx.Where("product_id IN ?", productIDs).Delete(&models.AttributeValue{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return tx.Where("product_id IN ?", productIDs).Delete(&models.Image{}).Error
}
