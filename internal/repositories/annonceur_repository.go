package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type AnnonceurRepository struct {
	db *gorm.DB
}

func NewAnnonceurRepository(db *gorm.DB) *AnnonceurRepository {
	return &AnnonceurRepository{db: db}
}

func (r *AnnonceurRepository) Create(ctx context.Context, a *models.Annonceur) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AnnonceurRepository) FindByID(ctx context.Context, id string) (*models.Annonceur, error) {
	var a models.Annonceur
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnnonceurRepository) FindBySujet(ctx context.Context, sujetID string) (*models.Annonceur, error) {
	var a models.Annonceur
	if err := r.db.WithContext(ctx).First(&a, "sujet_id = ?", sujetID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnnonceurRepository) SetIdentiteVerifiee(ctx context.Context, id string, verifiee bool) error {
	tx := r.db.WithContext(ctx).
		Model(&models.Annonceur{}).
		Where("id = ?", id).
		Update("identite_verifiee", verifiee)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListNonVerifies feeds the admin moderation queue.
func (r *AnnonceurRepository) ListNonVerifies(ctx context.Context) ([]models.Annonceur, error) {
	var list []models.Annonceur
	err := r.db.WithContext(ctx).
		Where("identite_verifiee = ?", false).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}
