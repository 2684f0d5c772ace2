package models

import "time"

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null"                 json:"name"`
	Slug     string    `gorm:"uniqueIndex;not null"     json:"slug"`
	Products []Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Product struct {
	ID           uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string           `gorm:"not null"                 json:"name"`
	Slug         string           `gorm:"uniqueIndex;not null"     json:"slug"`
	CategoryID   uint             `gorm:"index;not null"           json:"category"`
	Price        float64          `gorm:"type:decimal(10,2);not null" json:"price"`
	IsLiked      bool             `gorm:"default:false"            json:"is_liked"`
	CommentCount int              `gorm:"default:0"                json:"comment_count"`
	Images       []Image          `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Comments     []Comment        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Attributes   []AttributeValue `gorm:"constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
}

type Image struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID *uint     `gorm:"index"                    json:"product"`
	URL       string    `gorm:"not null"                 json:"url"`
	IsPrimary bool      `gorm:"default:false"            json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AttributeKey struct {
	ID  uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Key string `gorm:"not null"                 json:"key"`
}

type AttributeValue struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	KeyID     uint         `gorm:"index;not null"           json:"-"`
	Key       AttributeKey `gorm:"constraint:OnDelete:CASCADE" json:"key"`
	Value     string       `gorm:"not null"                 json:"value"`
	ProductID uint         `gorm:"index;not null"           json:"-"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null"           json:"product"`
	UserID    *uint     `gorm:"index"                    json:"user"`
	Message   string    `json:"message"`
	File      string    `json:"file,omitempty"`
	Rating    int       `gorm:"default:0"                json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Order struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       *uint     `gorm:"index"                    json:"user"`
	ProductID    *uint     `gorm:"index"                    json:"product"`
	Product      *Product  `json:"-"`
	Quantity     int       `gorm:"default:1;check:quantity>0" json:"quantity"`
	FirstPayment float64   `gorm:"default:0"                json:"first_payment"`
	Month        int       `gorm:"default:3"                json:"month"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MonthlyPayment is the installment amount: product price divided by the
// term in months, truncated to a whole unit.
func (o Order) MonthlyPayment() int64 {
	if o.Product == nil || o.Month == 0 {
		return 0
	}
	return int64(o.Product.Price) / int64(o.Month)
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
	Email        string `json:"email"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"uniqueIndex;not null" json:"token"`
	UserID    uint   `gorm:"index;not null"  json:"user_id"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Revoked   bool   `gorm:"default:false"   json:"revoked"`
}
