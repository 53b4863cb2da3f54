package services

import (
	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/config"
	"github.com/angeroddy/sceno-app-sub001/internal/email"
	"github.com/angeroddy/sceno-app-sub001/internal/repositories"
)

// Registry bundles the wired service layer.
type Registry struct {
	Principal     *PrincipalService
	Opportunites  *OpportuniteService
	Moderation    *ModerationService
	Sweep         *SweepService
	Notifications *NotificationService
	Achats        *AchatService
	Blocages      *BlocageService
}

// NewRegistry wires repositories and services from the database handle and
// the immutable configuration.
func NewRegistry(db *gorm.DB, cfg *config.Config, sender email.Sender) *Registry {
	opportuniteRepo := repositories.NewOpportuniteRepository(db)
	annonceurRepo := repositories.NewAnnonceurRepository(db)
	comedienRepo := repositories.NewComedienRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	moderationRepo := repositories.NewModerationRepository(db)
	blocageRepo := repositories.NewBlocageRepository(db)
	achatRepo := repositories.NewAchatRepository(db)
	notificationRepo := repositories.NewNotificationEmailRepository(db)

	notifications := NewNotificationService(
		comedienRepo,
		blocageRepo,
		annonceurRepo,
		notificationRepo,
		sender,
		cfg.Notifications.BatchSize,
		cfg.App.BaseURL,
	)

	return &Registry{
		Principal:     NewPrincipalService(comedienRepo, annonceurRepo, adminRepo),
		Opportunites:  NewOpportuniteService(opportuniteRepo),
		Moderation:    NewModerationService(opportuniteRepo, annonceurRepo, moderationRepo, notifications),
		Sweep:         NewSweepService(opportuniteRepo, cfg.PreventeWindow(), cfg.Sweep.WindowInclusive, cfg.Sweep.SingleTransaction),
		Notifications: notifications,
		Achats:        NewAchatService(opportuniteRepo, achatRepo),
		Blocages:      NewBlocageService(blocageRepo, annonceurRepo),
	}
}
