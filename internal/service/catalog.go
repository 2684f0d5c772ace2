package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/texnomart/backend/internal/audit"
	"github.com/texnomart/backend/internal/cache"
	"github.com/texnomart/backend/internal/events"
	"github.com/texnomart/backend/internal/logging"
	"github.com/texnomart/backend/internal/models"
	"github.com/texnomart/backend/internal/notify"
	"github.com/texnomart/backend/internal/repo"
	"github.com/texnomart/backend/internal/service/search"
	"github.com/texnomart/backend/internal/transport"
)

var ErrValidation = errors.New("validation error")

// CatalogService runs the read path (cache-check, store-fetch,
// cache-populate) and the write path (store-mutate, cache-invalidate,
// notify) for categories and products. Writes invalidate only the aggregate
// list key; detail and per-category entries stay cached until their TTL
// runs out.
type CatalogService struct {
	Repo     *repo.GormRepo
	Cache    *cache.Cache
	Audit    *audit.Log
	Notifier *notify.Notifier
	Producer *events.Producer
	Search   *search.Indexer
}

func (s *CatalogService) AllProducts(ctx context.Context) ([]models.Product, error) {
	if v, ok := s.Cache.Get(cache.KeyAllProducts); ok {
		if items, ok := v.([]models.Product); ok {
			return items, nil
		}
	}

	items, err := s.Repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(cache.KeyAllProducts, items)
	return items, nil
}

func (s *CatalogService) AllCategories(ctx context.Context) ([]models.Category, error) {
	if v, ok := s.Cache.Get(cache.KeyAllCategories); ok {
		if items, ok := v.([]models.Category); ok {
			return items, nil
		}
	}

	items, err := s.Repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(cache.KeyAllCategories, items)
	return items, nil
}

// CategoryProducts caches the serialized payload, not the entities, so the
// absolute image URLs are baked in from the request that warmed the entry.
func (s *CatalogService) CategoryProducts(ctx context.Context, categorySlug, baseURL string) ([]transport.ProductPayload, error) {
	key := cache.KeyCategoryProducts(categorySlug)
	if v, ok := s.Cache.Get(key); ok {
		if payloads, ok := v.([]transport.ProductPayload); ok {
			return payloads, nil
		}
	}

	category, err := s.Repo.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	products, err := s.Repo.GetProductsByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	payloads := transport.NewProductPayloads(products, baseURL)
	s.Cache.Set(key, payloads)
	return payloads, nil
}

func (s *CatalogService) ProductDetail(ctx context.Context, id uint) (*models.Product, error) {
	key := cache.KeyProductDetail(id)
	if v, ok := s.Cache.Get(key); ok {
		if product, ok := v.(models.Product); ok {
			return &product, nil
		}
	}

	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(key, *product)
	return product, nil
}

func (s *CatalogService) AttributeKeys(ctx context.Context) ([]models.AttributeKey, error) {
	if v, ok := s.Cache.Get(cache.KeyAttributeKeys); ok {
		if items, ok := v.([]models.AttributeKey); ok {
			return items, nil
		}
	}

	items, err := s.Repo.GetAttributeKeys(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(cache.KeyAttributeKeys, items)
	return items, nil
}

func (s *CatalogService) AttributeValues(ctx context.Context) ([]models.AttributeValue, error) {
	if v, ok := s.Cache.Get(cache.KeyAttributeValues); ok {
		if items, ok := v.([]models.AttributeValue); ok {
			return items, nil
		}
	}

	items, err := s.Repo.GetAttributeValues(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(cache.KeyAttributeValues, items)
	return items, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	category := models.Category{
		Name: req.Name,
		Slug: req.Slug,
	}
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}

	if err := s.Repo.CreateCategory(ctx, &category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: slug %q already exists", ErrValidation, category.Slug)
		}
		return nil, err
	}

	s.Cache.Delete(cache.KeyAllCategories)
	s.notifyCreated(ctx, "New category created", "New Category created: "+category.Name)
	s.publish(ctx, "category_events", category.Slug, map[string]any{
		"type":       "category_created",
		"categoryID": category.ID,
		"name":       category.Name,
	})

	return &category, nil
}

// UpdateCategory renames a category. The slug is fixed at creation and is
// never recomputed here.
func (s *CatalogService) UpdateCategory(ctx context.Context, categorySlug string, req transport.PatchCategoryRequest) (*models.Category, error) {
	category, err := s.Repo.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := s.Repo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}

	s.Cache.Delete(cache.KeyAllCategories)
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, categorySlug string) error {
	category, err := s.Repo.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return err
	}

	// The audit record is committed ahead of the delete; if it cannot be
	// written the delete does not happen.
	if err := s.Audit.RecordCategory(category.ID, category.Name); err != nil {
		return err
	}

	if err := s.Repo.DeleteCategory(ctx, category.ID); err != nil {
		return err
	}

	s.Cache.Delete(cache.KeyAllCategories)
	s.publish(ctx, "category_events", category.Slug, map[string]any{
		"type":       "category_deleted",
		"categoryID": category.ID,
		"name":       category.Name,
	})

	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	product := models.Product{
		Name:       req.Name,
		Slug:       req.Slug,
		CategoryID: req.Category,
		Price:      req.Price,
		IsLiked:    req.IsLiked,
	}
	if product.Slug == "" {
		product.Slug = slug.Make(product.Name)
	}

	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: slug %q already exists", ErrValidation, product.Slug)
		}
		return nil, err
	}

	s.Cache.Delete(cache.KeyAllProducts)
	s.notifyCreated(ctx, "New product created", "New product created: "+product.Name)
	s.publish(ctx, "product_events", product.Slug, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})
	s.indexProduct(ctx, product)

	return &product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.CategoryID = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.IsLiked != nil {
		product.IsLiked = *req.IsLiked
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	// Only the aggregate list key is invalidated; the product_detail entry
	// keeps serving the pre-edit value until its TTL expires.
	s.Cache.Delete(cache.KeyAllProducts)
	s.indexProduct(ctx, *product)

	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Audit.RecordProduct(product.ID, product.Name); err != nil {
		return err
	}

	if err := s.Repo.DeleteProduct(ctx, product.ID); err != nil {
		return err
	}

	s.Cache.Delete(cache.KeyAllProducts)
	s.publish(ctx, "product_events", product.Slug, map[string]any{
		"type":      "product_deleted",
		"productID": product.ID,
		"name":      product.Name,
	})
	s.deindexProduct(ctx, product.ID)

	return nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if s.Search == nil {
		return 0, nil, errors.New("search is not configured")
	}
	return s.Search.Search(ctx, query, from, size)
}

func (s *CatalogService) notifyCreated(ctx context.Context, subject, body string) {
	l := logging.FromContext(ctx)

	recipients, err := s.Repo.AdminEmails(ctx)
	if err != nil {
		l.Error("notify_recipients_error", "subject", subject, "error", err)
		return
	}
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.EntityCreated(subject, body, recipients); err != nil {
		l.Error("notify_send_error", "subject", subject, "error", err)
	}
}

func (s *CatalogService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", topic, "error", err)
	}
}

func (s *CatalogService) indexProduct(ctx context.Context, product models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Error("es_index_error", "productID", product.ID, "error", err)
	}
}

func (s *CatalogService) deindexProduct(ctx context.Context, id uint) {
	if s.Search == nil {
		return
	}
	if err := s.Search.DeleteProduct(ctx, id); err != nil {
		logging.FromContext(ctx).Error("es_delete_error", "productID", id, "error", err)
	}
}
