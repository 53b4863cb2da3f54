package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type ComedienRepository struct {
	db *gorm.DB
}

func NewComedienRepository(db *gorm.DB) *ComedienRepository {
	return &ComedienRepository{db: db}
}

func (r *ComedienRepository) Create(ctx context.Context, c *models.Comedien) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComedienRepository) FindByID(ctx context.Context, id string) (*models.Comedien, error) {
	var c models.Comedien
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComedienRepository) FindBySujet(ctx context.Context, sujetID string) (*models.Comedien, error) {
	var c models.Comedien
	if err := r.db.WithContext(ctx).First(&c, "sujet_id = ?", sujetID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByPreference returns comediens whose notification preferences contain
// the given opportunity type.
func (r *ComedienRepository) FindByPreference(ctx context.Context, typeOpportunite string) ([]models.Comedien, error) {
	var list []models.Comedien
	err := r.db.WithContext(ctx).
		Where("? = ANY(preferences_opportunites)", typeOpportunite).
		Find(&list).Error
	return list, err
}

func (r *ComedienRepository) SetEmailVerifie(ctx context.Context, id string, verifie bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Comedien{}).
		Where("id = ?", id).
		Update("email_verifie", verifie).Error
}
