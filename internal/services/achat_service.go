package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/lifecycle"
	"github.com/angeroddy/sceno-app-sub001/internal/logger"
	"github.com/angeroddy/sceno-app-sub001/internal/models"
	"github.com/angeroddy/sceno-app-sub001/pkg/apperrors"
)

type OpportuniteAchatStore interface {
	FindByID(ctx context.Context, id string) (*models.Opportunite, error)
	DecrementerPlaces(ctx context.Context, id string) (restantes int, pris bool, err error)
	UpdateStatut(ctx context.Context, id string, statut models.StatutOpportunite) error
}

type AchatStore interface {
	Create(ctx context.Context, a *models.Achat) error
	ListByComedien(ctx context.Context, comedienID string) ([]models.Achat, error)
}

// AchatService sells seats on validated opportunities. Selling the last seat
// is the only path into the complete status.
type AchatService struct {
	opportunites OpportuniteAchatStore
	achats       AchatStore
}

func NewAchatService(opportunites OpportuniteAchatStore, achats AchatStore) *AchatService {
	return &AchatService{opportunites: opportunites, achats: achats}
}

func (s *AchatService) Acheter(ctx context.Context, comedienID, opportuniteID string) (*models.Achat, error) {
	o, err := s.opportunites.FindByID(ctx, opportuniteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOpportuniteNotFound(opportuniteID)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if o.Statut != models.StatutValidee {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "achat",
			"Cette opportunité n'est pas ouverte à l'achat", 409)
	}

	restantes, pris, err := s.opportunites.DecrementerPlaces(ctx, opportuniteID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	if !pris {
		return nil, apperrors.ErrOpportuniteComplete()
	}

	achat := &models.Achat{
		OpportuniteID:       opportuniteID,
		ComedienID:          comedienID,
		PrixPaye:            o.PrixActuel(),
		ModeleAuMomentAchat: o.Modele,
	}
	if err := s.achats.Create(ctx, achat); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	if restantes == 0 {
		s.cloturer(ctx, o)
	}

	return achat, nil
}

// cloturer flips a sold-out opportunity to complete. Best effort: the seat
// guard already prevents overselling, so a failed flip only delays the
// terminal status until the next purchase attempt reports sold out.
func (s *AchatService) cloturer(ctx context.Context, o *models.Opportunite) {
	next, err := lifecycle.Complete(o.Statut)
	if err != nil {
		logger.CtxWarn(ctx, "complete transition refused", "opportunite_id", o.ID, "error", err.Error())
		return
	}
	if err := s.opportunites.UpdateStatut(ctx, o.ID, next); err != nil {
		logger.CtxError(ctx, "complete status not persisted", "opportunite_id", o.ID, "error", err.Error())
	}
}

func (s *AchatService) ListParComedien(ctx context.Context, comedienID string) ([]models.Achat, error) {
	list, err := s.achats.ListByComedien(ctx, comedienID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return list, nil
}
