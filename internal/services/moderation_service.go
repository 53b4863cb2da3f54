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

const (
	ActionValider = "valider"
	ActionRefuser = "refuser"
)

type OpportuniteModerationStore interface {
	FindByID(ctx context.Context, id string) (*models.Opportunite, error)
	UpdateStatut(ctx context.Context, id string, statut models.StatutOpportunite) error
}

type AnnonceurModerationStore interface {
	FindByID(ctx context.Context, id string) (*models.Annonceur, error)
	SetIdentiteVerifiee(ctx context.Context, id string, verifiee bool) error
	ListNonVerifies(ctx context.Context) ([]models.Annonceur, error)
}

type JournalModerations interface {
	Create(ctx context.Context, m *models.Moderation) error
}

type NotifieurValidation interface {
	NotifierValidation(ctx context.Context, o *models.Opportunite) (*FanoutReport, error)
}

type DecisionOpportuniteRequest struct {
	OpportuniteID string `json:"opportuniteId" binding:"required"`
	Action        string `json:"action" binding:"required"`
	Raison        string `json:"raison"`
}

type DecisionAnnonceurRequest struct {
	AnnonceurID string `json:"annonceurId" binding:"required"`
	Action      string `json:"action" binding:"required"`
	Raison      string `json:"raison"`
}

// AuditOutcome makes the best-effort audit write observable instead of
// silently swallowed: the primary transition is the source of truth, a
// failed audit row never rolls it back.
type AuditOutcome struct {
	Recorded bool  `json:"recorded"`
	Err      error `json:"-"`
}

type DecisionOpportunite struct {
	Opportunite *models.Opportunite `json:"opportunite"`
	Audit       AuditOutcome        `json:"audit"`
	Fanout      *FanoutReport       `json:"fanout,omitempty"`
}

type DecisionAnnonceur struct {
	Annonceur *models.Annonceur `json:"annonceur"`
	Audit     AuditOutcome      `json:"audit"`
}

// ModerationService orchestrates one admin decision end to end: lifecycle
// transition, single-row persist, audit row, fan-out. Only the transition
// itself is correctness-bearing; audit and fan-out are best effort.
type ModerationService struct {
	opportunites OpportuniteModerationStore
	annonceurs   AnnonceurModerationStore
	journal      JournalModerations
	notifieur    NotifieurValidation
}

func NewModerationService(
	opportunites OpportuniteModerationStore,
	annonceurs AnnonceurModerationStore,
	journal JournalModerations,
	notifieur NotifieurValidation,
) *ModerationService {
	return &ModerationService{
		opportunites: opportunites,
		annonceurs:   annonceurs,
		journal:      journal,
		notifieur:    notifieur,
	}
}

func decisionFromAction(action string) (models.DecisionModeration, error) {
	switch action {
	case ActionValider:
		return models.DecisionValidee, nil
	case ActionRefuser:
		return models.DecisionRefusee, nil
	default:
		return "", apperrors.NewBadRequestError("Action invalide: " + action)
	}
}

// DecideOpportunite applies an admin validate/refuse decision to an
// opportunity.
func (s *ModerationService) DecideOpportunite(ctx context.Context, adminID string, req DecisionOpportuniteRequest) (*DecisionOpportunite, error) {
	decision, err := decisionFromAction(req.Action)
	if err != nil {
		return nil, err
	}
	if req.OpportuniteID == "" {
		return nil, apperrors.NewBadRequestError("opportuniteId manquant")
	}

	o, err := s.opportunites.FindByID(ctx, req.OpportuniteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOpportuniteNotFound(req.OpportuniteID)
		}
		return nil, apperrors.PersistenceError(err)
	}

	var next models.StatutOpportunite
	if decision == models.DecisionValidee {
		next, err = lifecycle.Validate(o.Statut)
	} else {
		next, err = lifecycle.Refuse(o.Statut)
	}
	if err != nil {
		var invalid *lifecycle.InvalidTransitionError
		if errors.As(err, &invalid) {
			return nil, apperrors.ErrInvalidTransition(string(invalid.From), string(invalid.To))
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.opportunites.UpdateStatut(ctx, o.ID, next); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	o.Statut = next

	result := &DecisionOpportunite{
		Opportunite: o,
		Audit:       s.journaliser(ctx, adminID, models.CibleOpportunite, o.ID, decision, req.Raison),
	}

	if decision == models.DecisionValidee {
		result.Fanout = s.lancerFanout(ctx, o)
	}

	return result, nil
}

// DecideAnnonceur applies an admin decision to an advertiser's identity
// verification. No notification fan-out here.
func (s *ModerationService) DecideAnnonceur(ctx context.Context, adminID string, req DecisionAnnonceurRequest) (*DecisionAnnonceur, error) {
	decision, err := decisionFromAction(req.Action)
	if err != nil {
		return nil, err
	}
	if req.AnnonceurID == "" {
		return nil, apperrors.NewBadRequestError("annonceurId manquant")
	}

	a, err := s.annonceurs.FindByID(ctx, req.AnnonceurID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnonceurNotFound(req.AnnonceurID)
		}
		return nil, apperrors.PersistenceError(err)
	}

	verifiee := decision == models.DecisionValidee
	if err := s.annonceurs.SetIdentiteVerifiee(ctx, a.ID, verifiee); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	a.IdentiteVerifiee = verifiee

	return &DecisionAnnonceur{
		Annonceur: a,
		Audit:     s.journaliser(ctx, adminID, models.CibleAnnonceur, a.ID, decision, req.Raison),
	}, nil
}

// ListAnnonceursNonVerifies feeds the admin verification queue.
func (s *ModerationService) ListAnnonceursNonVerifies(ctx context.Context) ([]models.Annonceur, error) {
	list, err := s.annonceurs.ListNonVerifies(ctx)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return list, nil
}

func (s *ModerationService) journaliser(ctx context.Context, adminID string, cible models.CibleModeration, cibleID string, decision models.DecisionModeration, raison string) AuditOutcome {
	err := s.journal.Create(ctx, &models.Moderation{
		AdminID:  adminID,
		Cible:    cible,
		CibleID:  cibleID,
		Decision: decision,
		Raison:   raison,
	})
	if err != nil {
		logger.CtxError(ctx, "audit row not recorded",
			"cible", string(cible),
			"cible_id", cibleID,
			"decision", string(decision),
			"error", err.Error(),
		)
		return AuditOutcome{Recorded: false, Err: err}
	}
	return AuditOutcome{Recorded: true}
}

func (s *ModerationService) lancerFanout(ctx context.Context, o *models.Opportunite) *FanoutReport {
	report, err := s.notifieur.NotifierValidation(ctx, o)
	if err != nil {
		logger.CtxError(ctx, "notification fan-out failed",
			"opportunite_id", o.ID,
			"error", err.Error(),
		)
		return nil
	}
	return report
}
