package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type PrincipalType string

const (
	PrincipalComedien  PrincipalType = "comedien"
	PrincipalAnnonceur PrincipalType = "annonceur"
	PrincipalAdmin     PrincipalType = "admin"
	PrincipalUnknown   PrincipalType = "unknown"
)

// Principal is the resolved marketplace identity behind a session subject.
// A subject may back several profiles; Type reflects the fixed
// comedien > annonceur > admin priority used by the routing layer, while
// callers that care about a specific role check the profile pointers.
type Principal struct {
	SujetID   string
	Type      PrincipalType
	Comedien  *models.Comedien
	Annonceur *models.Annonceur
	Admin     *models.Admin
}

func (p *Principal) EstAdmin() bool     { return p != nil && p.Admin != nil }
func (p *Principal) EstAnnonceur() bool { return p != nil && p.Annonceur != nil }
func (p *Principal) EstComedien() bool  { return p != nil && p.Comedien != nil }

type ComedienBySujet interface {
	FindBySujet(ctx context.Context, sujetID string) (*models.Comedien, error)
}

type AnnonceurBySujet interface {
	FindBySujet(ctx context.Context, sujetID string) (*models.Annonceur, error)
}

type AdminBySujet interface {
	FindBySujet(ctx context.Context, sujetID string) (*models.Admin, error)
}

// PrincipalService replaces the three duplicated per-table existence checks
// with one resolution point.
type PrincipalService struct {
	comediens  ComedienBySujet
	annonceurs AnnonceurBySujet
	admins     AdminBySujet
}

func NewPrincipalService(comediens ComedienBySujet, annonceurs AnnonceurBySujet, admins AdminBySujet) *PrincipalService {
	return &PrincipalService{
		comediens:  comediens,
		annonceurs: annonceurs,
		admins:     admins,
	}
}

// Resolve looks the subject up in all three profile tables. A missing row is
// not an error; only gateway failures propagate.
func (s *PrincipalService) Resolve(ctx context.Context, sujetID string) (*Principal, error) {
	p := &Principal{SujetID: sujetID, Type: PrincipalUnknown}

	comedien, err := s.comediens.FindBySujet(ctx, sujetID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p.Comedien = comedien

	annonceur, err := s.annonceurs.FindBySujet(ctx, sujetID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p.Annonceur = annonceur

	admin, err := s.admins.FindBySujet(ctx, sujetID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p.Admin = admin

	switch {
	case p.Comedien != nil:
		p.Type = PrincipalComedien
	case p.Annonceur != nil:
		p.Type = PrincipalAnnonceur
	case p.Admin != nil:
		p.Type = PrincipalAdmin
	}

	return p, nil
}
