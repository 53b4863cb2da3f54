package models

import (
	"time"
)

// Opportunite is a posted casting/event slot offered by an annonceur.
// Statut and Modele only move forward: admin decisions and the scheduled
// sweep drive them, nothing regresses from a terminal state.
type Opportunite struct {
	BaseModel
	AnnonceurID string `gorm:"type:uuid;not null;index" json:"annonceurId"`
	Titre       string `gorm:"not null" json:"titre"`
	Resume      string `json:"resume"`
	// Type is the event category matched against comedien preferences.
	Type                 string            `gorm:"not null;index" json:"type"`
	Modele               ModeleOpportunite `gorm:"not null;default:pre_vente" json:"modele"`
	Statut               StatutOpportunite `gorm:"not null;default:en_attente;index" json:"statut"`
	DateEvenement        time.Time         `gorm:"not null;index" json:"dateEvenement"`
	DateLimite           time.Time         `gorm:"not null" json:"dateLimite"`
	NombrePlaces         int               `gorm:"not null" json:"nombrePlaces"`
	PlacesRestantes      int               `gorm:"not null" json:"placesRestantes"`
	PrixBase             float64           `gorm:"not null" json:"prixBase"`
	PrixReduit           float64           `json:"prixReduit"`
	ReductionPourcentage int               `json:"reductionPourcentage"`

	Annonceur *Annonceur `gorm:"foreignKey:AnnonceurID" json:"annonceur,omitempty"`
}

func (Opportunite) TableName() string { return "opportunites" }

// PrixActuel returns the price a buyer pays under the current modele.
func (o *Opportunite) PrixActuel() float64 {
	if o.Modele == ModeleDerniereMinute && o.PrixReduit > 0 {
		return o.PrixReduit
	}
	return o.PrixBase
}
