package models

import (
	"github.com/lib/pq"
)

// Account profiles are keyed by the identity provider subject id (SujetID):
// signup and credential handling live in the external provider, these rows
// only carry the marketplace-side state.

type Annonceur struct {
	BaseModel
	SujetID          string `gorm:"uniqueIndex;not null" json:"sujetId"`
	NomOrganisation  string `gorm:"not null" json:"nomOrganisation"`
	Email            string `gorm:"not null" json:"email"`
	IdentiteVerifiee bool   `gorm:"default:false;index" json:"identiteVerifiee"`
}

func (Annonceur) TableName() string { return "annonceurs" }

type Comedien struct {
	BaseModel
	SujetID string `gorm:"uniqueIndex;not null" json:"sujetId"`
	Nom     string `gorm:"not null" json:"nom"`
	Email   string `gorm:"not null" json:"email"`
	// PreferencesOpportunites holds the opportunity types this comedien
	// wants notifications for.
	PreferencesOpportunites pq.StringArray `gorm:"type:text[]" json:"preferencesOpportunites"`
	EmailVerifie            bool           `gorm:"default:false" json:"emailVerifie"`
}

func (Comedien) TableName() string { return "comediens" }

type Admin struct {
	BaseModel
	SujetID string `gorm:"uniqueIndex;not null" json:"sujetId"`
	Nom     string `json:"nom"`
	Email   string `gorm:"not null" json:"email"`
}

func (Admin) TableName() string { return "admins" }
