package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set(KeyAllProducts, []string{"a", "b"})

	v, ok := c.Get(KeyAllProducts)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, v)
}

func TestGetAbsent(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("missing")
	require.False(t, ok)
}

func TestDelete(t *testing.T) {
	c := New(time.Minute)

	c.Set(KeyAllCategories, 42)
	c.Delete(KeyAllCategories)

	_, ok := c.Get(KeyAllCategories)
	require.False(t, ok)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	c := New(time.Minute)

	c.Delete("never_set")

	_, ok := c.Get("never_set")
	require.False(t, ok)
}

func TestDeleteIsExactMatch(t *testing.T) {
	c := New(time.Minute)

	c.Set(KeyProductDetail(1), "detail")
	c.Set(KeyAllProducts, "list")

	c.Delete(KeyAllProducts)

	_, ok := c.Get(KeyAllProducts)
	require.False(t, ok)

	v, ok := c.Get(KeyProductDetail(1))
	require.True(t, ok)
	require.Equal(t, "detail", v)
}

func TestKeys(t *testing.T) {
	require.Equal(t, "category_products_phones", KeyCategoryProducts("phones"))
	require.Equal(t, "product_detail_7", KeyProductDetail(7))
}
