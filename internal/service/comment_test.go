package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/texnomart/backend/internal/models"
	"github.com/texnomart/backend/internal/transport"
)

func TestCreateAndListComments(t *testing.T) {
	env := newCatalogEnv(t)
	productID := seedProduct(t, env, 1000)
	ctx := context.Background()

	userID := uint(5)
	created, err := env.svc.CreateComment(ctx, productID, &userID, transport.CreateCommentRequest{Message: "great phone", Rating: 5})
	require.NoError(t, err)
	require.Equal(t, productID, created.ProductID)

	_, err = env.svc.CreateComment(ctx, productID, nil, transport.CreateCommentRequest{Message: "anonymous take", Rating: 3})
	require.NoError(t, err)

	comments, err := env.svc.ProductComments(ctx, productID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Nil(t, comments[1].UserID)
}

func TestCommentsUnknownProduct(t *testing.T) {
	env := newCatalogEnv(t)
	ctx := context.Background()

	_, err := env.svc.ProductComments(ctx, 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = env.svc.CreateComment(ctx, 42, nil, transport.CreateCommentRequest{Message: "x"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateCommentLeavesCounterAlone(t *testing.T) {
	env := newCatalogEnv(t)
	productID := seedProduct(t, env, 1000)
	ctx := context.Background()

	_, err := env.svc.CreateComment(ctx, productID, nil, transport.CreateCommentRequest{Message: "x", Rating: 4})
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, env.db.First(&product, productID).Error)
	require.Zero(t, product.CommentCount)
}
