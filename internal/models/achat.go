package models

// Achat records one seat purchase by a comedien on a validated opportunity.
type Achat struct {
	BaseModel
	OpportuniteID string  `gorm:"type:uuid;not null;index" json:"opportuniteId"`
	ComedienID    string  `gorm:"type:uuid;not null;index" json:"comedienId"`
	PrixPaye      float64 `gorm:"not null" json:"prixPaye"`
	// ModeleAuMomentAchat freezes the pricing model the price was taken
	// from, so later demotions don't rewrite purchase history.
	ModeleAuMomentAchat ModeleOpportunite `gorm:"not null" json:"modeleAuMomentAchat"`
}

func (Achat) TableName() string { return "achats" }
