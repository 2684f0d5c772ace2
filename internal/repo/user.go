package repo

import (
	"context"

	"github.com/texnomart/backend/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := models.User{}
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminEmails returns the non-empty email addresses of admin users; these
// are the recipients of creation notifications.
func (r *GormRepo) AdminEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ? AND email <> ''", "admin").
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
