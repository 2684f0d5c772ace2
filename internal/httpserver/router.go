package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mwauth "github.com/texnomart/backend/internal/middleware/auth"
)

type Deps struct {
	Catalog   *CatalogHTTP
	Orders    *OrderHTTP
	Auth      *AuthHTTP
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := mwauth.RequireAuth(d.JWTSecret)

	e.GET("/products", d.Catalog.GetProducts)
	e.GET("/products/search", d.Catalog.SearchProducts)
	e.GET("/categories", d.Catalog.GetCategories)
	e.GET("/category/:slug", d.Catalog.GetCategoryProducts)
	e.GET("/product/:id", d.Catalog.GetProduct)
	e.GET("/product/:id/comments", d.Catalog.GetProductComments)
	e.GET("/attribute-key", d.Catalog.GetAttributeKeys)
	e.GET("/attribute-value", d.Catalog.GetAttributeValues)

	e.POST("/categories/add", d.Catalog.CreateCategory, authMW)
	e.Match([]string{http.MethodPut, http.MethodPatch}, "/category/:slug/edit", d.Catalog.EditCategory, authMW)
	e.DELETE("/category/:slug/delete", d.Catalog.DeleteCategory, authMW)

	e.POST("/product/add", d.Catalog.CreateProduct, authMW)
	e.Match([]string{http.MethodPut, http.MethodPatch}, "/product/:id/edit", d.Catalog.EditProduct, authMW)
	e.DELETE("/product/:id/delete", d.Catalog.DeleteProduct, authMW)

	e.POST("/product/:id/comments", d.Catalog.CreateComment, authMW)

	e.GET("/orders", d.Orders.GetOrders, authMW)
	e.POST("/orders/add", d.Orders.CreateOrder, authMW)

	e.POST("/auth/register", d.Auth.Register)
	e.POST("/auth/login", d.Auth.Login)
	e.POST("/auth/refresh", d.Auth.Refresh)
	e.POST("/auth/logout", d.Auth.Logout, authMW)
}
