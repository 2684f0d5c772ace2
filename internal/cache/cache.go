// Package cache is a thin wrapper around an in-process sturdyc client used
// read-through by the catalog list/detail endpoints. Every entry shares one
// TTL, invalidation is exact-match single-key, and there is no stampede
// protection: concurrent misses on the same key all hit the store and the
// last Set wins.
package cache

import (
	"fmt"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	KeyAllProducts     = "all_products"
	KeyAllCategories   = "all_categories"
	KeyAttributeKeys   = "attribute_keys"
	KeyAttributeValues = "attribute_values"
)

const (
	DefaultTTL = 15 * time.Minute

	capacity           = 10000
	numShards          = 64
	evictionPercentage = 10
)

func KeyCategoryProducts(slug string) string {
	return "category_products_" + slug
}

func KeyProductDetail(id uint) string {
	return fmt.Sprintf("product_detail_%d", id)
}

type Cache struct {
	client *sturdyc.Client[any]
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: sturdyc.New[any](capacity, numShards, ttl, evictionPercentage)}
}

func (c *Cache) Get(key string) (any, bool) {
	return c.client.Get(key)
}

func (c *Cache) Set(key string, value any) {
	c.client.Set(key, value)
}

// Delete removes the entry for key. Deleting an absent key is a no-op.
func (c *Cache) Delete(key string) {
	c.client.Delete(key)
}
