package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/texnomart/backend/internal/logging"
	"github.com/texnomart/backend/internal/transport"
)

func (h *CatalogHTTP) GetAttributeKeys(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "attribute.get_keys")

	items, err := h.Svc.AttributeKeys(ctx)
	if err != nil {
		l.Error("get_attribute_keys_error", "status", 500, "reason", "cannot get attribute keys", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get attribute keys")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetAttributeValues(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "attribute.get_values")

	items, err := h.Svc.AttributeValues(ctx)
	if err != nil {
		l.Error("get_attribute_values_error", "status", 500, "reason", "cannot get attribute values", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get attribute values")
	}

	return c.JSON(http.StatusOK, transport.NewAttributeValuePayloads(items))
}
