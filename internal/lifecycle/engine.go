// Package lifecycle holds the pure status decision logic for opportunities.
// It never touches persistence or I/O: callers feed it current state and get
// back the next state or a typed refusal.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

// InvalidTransitionError reports a lifecycle move the transition table
// forbids.
type InvalidTransitionError struct {
	From models.StatutOpportunite
	To   models.StatutOpportunite
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition invalide: %s -> %s", e.From, e.To)
}

// UnknownStatutError reports a value outside the statut enumeration.
type UnknownStatutError struct {
	Value string
}

func (e *UnknownStatutError) Error() string {
	return fmt.Sprintf("statut inconnu: %q", e.Value)
}

// Transition is one allowed edge in the statut state machine.
type Transition struct {
	From models.StatutOpportunite
	To   models.StatutOpportunite
}

// transitionsTable lists every legal statut move. refusee, expiree and
// complete are terminal: no edge leaves them.
var transitionsTable = []Transition{
	// Admin decisions
	{From: models.StatutEnAttente, To: models.StatutValidee},
	{From: models.StatutEnAttente, To: models.StatutRefusee},

	// Scheduled sweep
	{From: models.StatutValidee, To: models.StatutExpiree},

	// Purchase flow, last seat sold
	{From: models.StatutValidee, To: models.StatutComplete},
}

var allStatuts = []models.StatutOpportunite{
	models.StatutEnAttente,
	models.StatutValidee,
	models.StatutRefusee,
	models.StatutExpiree,
	models.StatutComplete,
}

// ParseStatut validates a raw value against the statut enumeration.
func ParseStatut(value string) (models.StatutOpportunite, error) {
	for _, s := range allStatuts {
		if string(s) == value {
			return s, nil
		}
	}
	return "", &UnknownStatutError{Value: value}
}

// CanTransition reports whether the table contains the edge from -> to.
func CanTransition(from, to models.StatutOpportunite) bool {
	for _, t := range transitionsTable {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no edge leaves the given statut.
func IsTerminal(s models.StatutOpportunite) bool {
	for _, t := range transitionsTable {
		if t.From == s {
			return false
		}
	}
	return true
}

// Validate computes the admin-validation transition. Only en_attente
// opportunities can be validated.
func Validate(current models.StatutOpportunite) (models.StatutOpportunite, error) {
	return step(current, models.StatutValidee)
}

// Refuse computes the admin-refusal transition, same precondition as Validate.
func Refuse(current models.StatutOpportunite) (models.StatutOpportunite, error) {
	return step(current, models.StatutRefusee)
}

// Complete computes the sold-out transition.
func Complete(current models.StatutOpportunite) (models.StatutOpportunite, error) {
	return step(current, models.StatutComplete)
}

func step(from, to models.StatutOpportunite) (models.StatutOpportunite, error) {
	if !CanTransition(from, to) {
		return from, &InvalidTransitionError{From: from, To: to}
	}
	return to, nil
}

// SweepPolicy parametrizes the two time-based sweep rules. The demotion
// window is a fixed wall-clock offset from Now, not a calendar computation.
type SweepPolicy struct {
	Now             time.Time
	PreventeWindow  time.Duration
	WindowInclusive bool
}

// WindowEnd returns the upper bound of the demotion window.
func (p SweepPolicy) WindowEnd() time.Time {
	return p.Now.Add(p.PreventeWindow)
}

// ShouldDemote reports whether the pre-sale demotion rule applies: a
// validated pre_vente opportunity whose event lies strictly in the future
// and within the window. The boundary date itself is in or out depending on
// WindowInclusive.
func (p SweepPolicy) ShouldDemote(o *models.Opportunite) bool {
	if o.Statut != models.StatutValidee || o.Modele != models.ModelePreVente {
		return false
	}
	if !o.DateEvenement.After(p.Now) {
		return false
	}
	end := p.WindowEnd()
	if p.WindowInclusive {
		return !o.DateEvenement.After(end)
	}
	return o.DateEvenement.Before(end)
}

// ShouldExpire reports whether the expiry rule applies: a validated
// opportunity whose event date has passed. Demotion and expiry can never
// match the same row in one sweep, so the two rules commute.
func (p SweepPolicy) ShouldExpire(o *models.Opportunite) bool {
	return o.Statut == models.StatutValidee && o.DateEvenement.Before(p.Now)
}
