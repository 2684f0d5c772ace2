package service

import (
	"context"

	"github.com/texnomart/backend/internal/models"
	"github.com/texnomart/backend/internal/transport"
)

func (s *CatalogService) ProductComments(ctx context.Context, productID uint) ([]models.Comment, error) {
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.Repo.GetProductComments(ctx, productID)
}

// CreateComment stores a comment. Product.CommentCount is a denormalized
// counter maintained elsewhere and is intentionally not touched here.
func (s *CatalogService) CreateComment(ctx context.Context, productID uint, userID *uint, req transport.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ProductID: productID,
		UserID:    userID,
		Message:   req.Message,
		Rating:    req.Rating,
		File:      req.File,
	}
	if err := s.Repo.CreateComment(ctx, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
