package transport

import (
	"strings"

	"github.com/texnomart/backend/internal/models"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug"`
}

type PatchCategoryRequest struct {
	Name *string `json:"name"`
}

type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Slug     string  `json:"slug"`
	Category uint    `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	IsLiked  bool    `json:"is_liked"`
}

type PatchProductRequest struct {
	Name     *string  `json:"name"`
	Category *uint    `json:"category"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	IsLiked  *bool    `json:"is_liked"`
}

type CreateCommentRequest struct {
	Message string `json:"message"`
	Rating  int    `json:"rating" validate:"min=0,max=5"`
	File    string `json:"file"`
}

type CreateOrderRequest struct {
	Product      uint    `json:"product" validate:"required"`
	Quantity     int     `json:"quantity" validate:"min=1"`
	FirstPayment float64 `json:"first_payment" validate:"gte=0"`
	Month        int     `json:"month" validate:"min=3,max=12"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

type AttributeKeyPayload struct {
	ID  uint   `json:"id"`
	Key string `json:"key"`
}

type AttributePayload struct {
	Key   AttributeKeyPayload `json:"key"`
	Value string              `json:"value"`
}

type AttributeValuePayload struct {
	ID    uint   `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ProductPayload is the wire shape of a product: image URLs are absolute,
// attributes carry their key objects, category is the owning category id.
type ProductPayload struct {
	ID         uint               `json:"id"`
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	Images     []string           `json:"images"`
	Attributes []AttributePayload `json:"attributes"`
	Category   uint               `json:"category"`
}

type OrderPayload struct {
	ID             uint    `json:"id"`
	User           *uint   `json:"user"`
	Product        *uint   `json:"product"`
	Quantity       int     `json:"quantity"`
	FirstPayment   float64 `json:"first_payment"`
	Month          int     `json:"month"`
	MonthlyPayment int64   `json:"monthly_payment"`
}

func NewProductPayload(p models.Product, baseURL string) ProductPayload {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, absoluteURL(baseURL, img.URL))
	}

	attrs := make([]AttributePayload, 0, len(p.Attributes))
	for _, a := range p.Attributes {
		attrs = append(attrs, AttributePayload{
			Key:   AttributeKeyPayload{ID: a.Key.ID, Key: a.Key.Key},
			Value: a.Value,
		})
	}

	return ProductPayload{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Images:     images,
		Attributes: attrs,
		Category:   p.CategoryID,
	}
}

func NewProductPayloads(products []models.Product, baseURL string) []ProductPayload {
	payloads := make([]ProductPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, NewProductPayload(p, baseURL))
	}
	return payloads
}

func NewAttributeValuePayloads(values []models.AttributeValue) []AttributeValuePayload {
	payloads := make([]AttributeValuePayload, 0, len(values))
	for _, v := range values {
		payloads = append(payloads, AttributeValuePayload{ID: v.ID, Key: v.Key.Key, Value: v.Value})
	}
	return payloads
}

func NewOrderPayload(o models.Order) OrderPayload {
	return OrderPayload{
		ID:             o.ID,
		User:           o.UserID,
		Product:        o.ProductID,
		Quantity:       o.Quantity,
		FirstPayment:   o.FirstPayment,
		Month:          o.Month,
		MonthlyPayment: o.MonthlyPayment(),
	}
}

func NewOrderPayloads(orders []models.Order) []OrderPayload {
	payloads := make([]OrderPayload, 0, len(orders))
	for _, o := range orders {
		payloads = append(payloads, NewOrderPayload(o))
	}
	return payloads
}

func absoluteURL(baseURL, u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(u, "/")
}
