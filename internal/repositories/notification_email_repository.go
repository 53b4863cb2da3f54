package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type NotificationEmailRepository struct {
	db *gorm.DB
}

func NewNotificationEmailRepository(db *gorm.DB) *NotificationEmailRepository {
	return &NotificationEmailRepository{db: db}
}

func (r *NotificationEmailRepository) Create(ctx context.Context, n *models.NotificationEmail) error {
	return r.db.WithContext(ctx).Create(n).Error
}
