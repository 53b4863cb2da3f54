package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/lifecycle"
	"github.com/angeroddy/sceno-app-sub001/internal/models"
	"github.com/angeroddy/sceno-app-sub001/pkg/apperrors"
)

type OpportuniteStore interface {
	Create(ctx context.Context, o *models.Opportunite) error
	FindByID(ctx context.Context, id string) (*models.Opportunite, error)
	ListByStatut(ctx context.Context, statut models.StatutOpportunite) ([]models.Opportunite, error)
	ListByAnnonceur(ctx context.Context, annonceurID string) ([]models.Opportunite, error)
	UpdateStatut(ctx context.Context, id string, statut models.StatutOpportunite) error
	DeleteEnAttente(ctx context.Context, id, annonceurID string) (bool, error)
}

type CreateOpportuniteRequest struct {
	Titre                string    `json:"titre" binding:"required"`
	Resume               string    `json:"resume"`
	Type                 string    `json:"type" binding:"required"`
	Modele               string    `json:"modele"`
	DateEvenement        time.Time `json:"dateEvenement" binding:"required"`
	DateLimite           time.Time `json:"dateLimite" binding:"required"`
	NombrePlaces         int       `json:"nombrePlaces" binding:"required"`
	PrixBase             float64   `json:"prixBase" binding:"required"`
	PrixReduit           float64   `json:"prixReduit"`
	ReductionPourcentage int       `json:"reductionPourcentage"`
}

// OpportuniteService covers the advertiser-facing CRUD around the moderated
// lifecycle: everything created here starts en_attente.
type OpportuniteService struct {
	store OpportuniteStore
}

func NewOpportuniteService(store OpportuniteStore) *OpportuniteService {
	return &OpportuniteService{store: store}
}

func (s *OpportuniteService) Create(ctx context.Context, annonceurID string, req CreateOpportuniteRequest) (*models.Opportunite, error) {
	modele := models.ModelePreVente
	if req.Modele != "" {
		switch models.ModeleOpportunite(req.Modele) {
		case models.ModelePreVente, models.ModeleDerniereMinute:
			modele = models.ModeleOpportunite(req.Modele)
		default:
			return nil, apperrors.NewBadRequestError("Modèle invalide: " + req.Modele)
		}
	}

	if req.NombrePlaces <= 0 {
		return nil, apperrors.NewBadRequestError("nombrePlaces doit être positif")
	}
	if req.PrixReduit > 0 && req.PrixReduit >= req.PrixBase {
		return nil, apperrors.NewBadRequestError("prixReduit doit être inférieur à prixBase")
	}
	if req.DateLimite.After(req.DateEvenement) {
		return nil, apperrors.NewBadRequestError("dateLimite ne peut pas dépasser dateEvenement")
	}

	o := &models.Opportunite{
		AnnonceurID:          annonceurID,
		Titre:                req.Titre,
		Resume:               req.Resume,
		Type:                 req.Type,
		Modele:               modele,
		Statut:               models.StatutEnAttente,
		DateEvenement:        req.DateEvenement,
		DateLimite:           req.DateLimite,
		NombrePlaces:         req.NombrePlaces,
		PlacesRestantes:      req.NombrePlaces,
		PrixBase:             req.PrixBase,
		PrixReduit:           req.PrixReduit,
		ReductionPourcentage: req.ReductionPourcentage,
	}

	if err := s.store.Create(ctx, o); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return o, nil
}

func (s *OpportuniteService) Get(ctx context.Context, id string) (*models.Opportunite, error) {
	o, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOpportuniteNotFound(id)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return o, nil
}

// ListPubliques returns the validated opportunities browsable by everyone.
func (s *OpportuniteService) ListPubliques(ctx context.Context) ([]models.Opportunite, error) {
	list, err := s.store.ListByStatut(ctx, models.StatutValidee)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return list, nil
}

func (s *OpportuniteService) ListParAnnonceur(ctx context.Context, annonceurID string) ([]models.Opportunite, error) {
	list, err := s.store.ListByAnnonceur(ctx, annonceurID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return list, nil
}

// ListEnAttente feeds the admin moderation queue.
func (s *OpportuniteService) ListEnAttente(ctx context.Context) ([]models.Opportunite, error) {
	list, err := s.store.ListByStatut(ctx, models.StatutEnAttente)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return list, nil
}

// Delete removes an advertiser's own opportunity, only while en_attente.
func (s *OpportuniteService) Delete(ctx context.Context, annonceurID, id string) error {
	o, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if o.AnnonceurID != annonceurID {
		return apperrors.NewForbiddenError("Cette opportunité ne vous appartient pas")
	}

	deleted, err := s.store.DeleteEnAttente(ctx, id, annonceurID)
	if err != nil {
		return apperrors.PersistenceError(err)
	}
	if !deleted {
		return apperrors.New(apperrors.CodeConflict, "opportunite",
			"Seule une opportunité en attente peut être supprimée", 409)
	}
	return nil
}

// SetStatut is the admin utility for a direct status write, still checked
// against the enumeration and the transition table.
func (s *OpportuniteService) SetStatut(ctx context.Context, id, statutBrut string) (*models.Opportunite, error) {
	statut, err := lifecycle.ParseStatut(statutBrut)
	if err != nil {
		return nil, apperrors.ErrUnknownStatut(statutBrut)
	}

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Statut == statut {
		return o, nil
	}
	if !lifecycle.CanTransition(o.Statut, statut) {
		return nil, apperrors.ErrInvalidTransition(string(o.Statut), string(statut))
	}

	if err := s.store.UpdateStatut(ctx, id, statut); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	o.Statut = statut
	return o, nil
}
