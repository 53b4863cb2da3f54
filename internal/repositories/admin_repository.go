package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindBySujet(ctx context.Context, sujetID string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).First(&a, "sujet_id = ?", sujetID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
