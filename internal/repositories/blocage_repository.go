package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type BlocageRepository struct {
	db *gorm.DB
}

func NewBlocageRepository(db *gorm.DB) *BlocageRepository {
	return &BlocageRepository{db: db}
}

func (r *BlocageRepository) Create(ctx context.Context, b *models.AnnonceurBloque) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlocageRepository) Delete(ctx context.Context, comedienID, annonceurID string) error {
	return r.db.WithContext(ctx).
		Where("comedien_id = ? AND annonceur_id = ?", comedienID, annonceurID).
		Delete(&models.AnnonceurBloque{}).Error
}

// ListComediensBloques returns the ids of comediens who opted out of the
// given annonceur's notifications.
func (r *BlocageRepository) ListComediensBloques(ctx context.Context, annonceurID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.AnnonceurBloque{}).
		Where("annonceur_id = ?", annonceurID).
		Pluck("comedien_id", &ids).Error
	return ids, err
}
