package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

// ModerationRepository is append-only: audit rows are written once and never
// touched again.
type ModerationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) *ModerationRepository {
	return &ModerationRepository{db: db}
}

func (r *ModerationRepository) Create(ctx context.Context, m *models.Moderation) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ModerationRepository) ListByCible(ctx context.Context, cible models.CibleModeration, cibleID string) ([]models.Moderation, error) {
	var list []models.Moderation
	err := r.db.WithContext(ctx).
		Where("cible = ? AND cible_id = ?", cible, cibleID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
