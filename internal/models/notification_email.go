package models

import (
	"gorm.io/datatypes"
)

// NotificationEmail is the per-recipient outcome row written during fan-out.
// Delivery is best-effort; this table is what an operator reads to find out
// who was actually reached.
type NotificationEmail struct {
	BaseModel
	ComedienID    string         `gorm:"type:uuid;not null;index" json:"comedienId"`
	OpportuniteID string         `gorm:"type:uuid;not null;index" json:"opportuniteId"`
	Destinataire  string         `gorm:"not null" json:"destinataire"`
	Sujet         string         `gorm:"not null" json:"sujet"`
	Statut        StatutEnvoi    `gorm:"not null" json:"statut"`
	Erreur        string         `json:"erreur,omitempty"`
	Donnees       datatypes.JSON `gorm:"type:jsonb" json:"donnees,omitempty"`
}

func (NotificationEmail) TableName() string { return "notifications_email" }
