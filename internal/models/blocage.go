package models

// AnnonceurBloque is a comedien's opt-out of one annonceur's notifications.
// Consulted only as a filter during fan-out.
type AnnonceurBloque struct {
	BaseModel
	ComedienID  string `gorm:"type:uuid;not null;uniqueIndex:idx_blocage_paire" json:"comedienId"`
	AnnonceurID string `gorm:"type:uuid;not null;uniqueIndex:idx_blocage_paire" json:"annonceurId"`
}

func (AnnonceurBloque) TableName() string { return "annonceurs_bloques" }
