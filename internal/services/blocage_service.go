package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
	"github.com/angeroddy/sceno-app-sub001/pkg/apperrors"
)

type BlocageStore interface {
	Create(ctx context.Context, b *models.AnnonceurBloque) error
	Delete(ctx context.Context, comedienID, annonceurID string) error
}

// BlocageService manages a comedien's notification opt-outs per annonceur.
type BlocageService struct {
	blocages   BlocageStore
	annonceurs AnnonceurParID
}

func NewBlocageService(blocages BlocageStore, annonceurs AnnonceurParID) *BlocageService {
	return &BlocageService{blocages: blocages, annonceurs: annonceurs}
}

func (s *BlocageService) Bloquer(ctx context.Context, comedienID, annonceurID string) error {
	if _, err := s.annonceurs.FindByID(ctx, annonceurID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnnonceurNotFound(annonceurID)
		}
		return apperrors.PersistenceError(err)
	}

	err := s.blocages.Create(ctx, &models.AnnonceurBloque{
		ComedienID:  comedienID,
		AnnonceurID: annonceurID,
	})
	if err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}

func (s *BlocageService) Debloquer(ctx context.Context, comedienID, annonceurID string) error {
	if err := s.blocages.Delete(ctx, comedienID, annonceurID); err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}
