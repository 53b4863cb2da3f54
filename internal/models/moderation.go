package models

// Moderation is the immutable audit entry for one admin decision. Rows are
// appended exactly once per decision and never updated or deleted.
type Moderation struct {
	BaseModel
	AdminID  string             `gorm:"type:uuid;not null;index" json:"adminId"`
	Cible    CibleModeration    `gorm:"not null" json:"cible"`
	CibleID  string             `gorm:"type:uuid;not null;index" json:"cibleId"`
	Decision DecisionModeration `gorm:"not null" json:"decision"`
	Raison   string             `json:"raison,omitempty"`
}

func (Moderation) TableName() string { return "moderations" }
