package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type AchatRepository struct {
	db *gorm.DB
}

func NewAchatRepository(db *gorm.DB) *AchatRepository {
	return &AchatRepository{db: db}
}

func (r *AchatRepository) Create(ctx context.Context, a *models.Achat) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AchatRepository) ListByComedien(ctx context.Context, comedienID string) ([]models.Achat, error) {
	var list []models.Achat
	err := r.db.WithContext(ctx).
		Where("comedien_id = ?", comedienID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
