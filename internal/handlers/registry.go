package handlers

import (
	"github.com/angeroddy/sceno-app-sub001/internal/config"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
	"github.com/angeroddy/sceno-app-sub001/internal/validator"
)

// Registry bundles the wired HTTP handlers.
type Registry struct {
	Opportunites *OpportuniteHandler
	Moderation   *ModerationHandler
	Sweep        *SweepHandler
	Achats       *AchatHandler
	Blocages     *BlocageHandler
}

func NewRegistry(cfg *config.Config, svcs *services.Registry) *Registry {
	base := NewBaseHandler(validator.New())

	return &Registry{
		Opportunites: NewOpportuniteHandler(base, svcs.Opportunites),
		Moderation:   NewModerationHandler(base, svcs.Moderation, svcs.Opportunites),
		Sweep:        NewSweepHandler(base, svcs.Sweep, cfg.Sweep.Secret),
		Achats:       NewAchatHandler(base, svcs.Achats),
		Blocages:     NewBlocageHandler(base, svcs.Blocages),
	}
}
