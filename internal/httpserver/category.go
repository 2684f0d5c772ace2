package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/texnomart/backend/internal/logging"
	"github.com/texnomart/backend/internal/service"
	"github.com/texnomart/backend/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func requestBaseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_categories")

	items, err := h.Svc.AllCategories(ctx)
	if err != nil {
		l.Error("get_categories_error", "status", 500, "reason", "cannot get categories", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get categories")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetCategoryProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_category_products")

	slug := c.Param("slug")
	payloads, err := h.Svc.CategoryProducts(ctx, slug, requestBaseURL(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_category_products_failed", "status", 404, "reason", "category with this slug dont exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "category with this slug dont exist")
		}
		l.Error("get_category_products_failed", "status", 500, "reason", "cannot get category products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get category products")
	}

	return c.JSON(http.StatusOK, payloads)
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create_category")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("category_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("category_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	category, err := h.Svc.CreateCategory(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("category_create_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("category_create_error", "status", 500, "reason", "cannot add category to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add category to db")
	}

	l.Info("create_category_success", "categoryID", category.ID)
	return c.JSON(http.StatusCreated, category)
}

func (h *CatalogHTTP) EditCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.edit_category")

	var req transport.PatchCategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("category_edit_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Svc.UpdateCategory(ctx, c.Param("slug"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("category_edit_error", "status", 404, "reason", "category with this slug dont exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "category with this slug dont exist")
		}
		l.Error("category_edit_error", "status", 500, "reason", "cannot save category", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save category")
	}

	l.Info("edit_category_success", "categoryID", category.ID)
	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete_category")

	if err := h.Svc.DeleteCategory(ctx, c.Param("slug")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("category_delete_error", "status", 404, "reason", "category with this slug dont exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "category with this slug dont exist")
		}
		l.Error("category_delete_error", "status", 500, "reason", "cannot delete category", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete category")
	}

	l.Info("delete_category_success")
	return c.NoContent(http.StatusNoContent)
}
