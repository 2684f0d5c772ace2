package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	mwauth "github.com/texnomart/backend/internal/middleware/auth"

	"github.com/texnomart/backend/internal/logging"
	"github.com/texnomart/backend/internal/transport"
)

func (h *CatalogHTTP) GetProductComments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comment.get_product_comments")

	id, err := parseUint(c.Param("id"))
	if err != nil {
		l.Warn("get_comments_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	comments, err := h.Svc.ProductComments(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_comments_failed", "status", 404, "reason", "product with this id dont exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product with this id dont exist")
		}
		l.Error("get_comments_failed", "status", 500, "reason", "cannot get comments", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get comments")
	}

	return c.JSON(http.StatusOK, comments)
}

func (h *CatalogHTTP) CreateComment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comment.create_comment")

	id, err := parseUint(c.Param("id"))
	if err != nil {
		l.Warn("comment_create_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req transport.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("comment_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("comment_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	var userID *uint
	if uid, ok := mwauth.UserID(c); ok {
		userID = &uid
	}

	comment, err := h.Svc.CreateComment(ctx, id, userID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("comment_create_error", "status", 404, "reason", "product with this id dont exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product with this id dont exist")
		}
		l.Error("comment_create_error", "status", 500, "reason", "cannot add comment to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add comment to db")
	}

	l.Info("create_comment_success", "commentID", comment.ID)
	return c.JSON(http.StatusCreated, comment)
}
