package entity

import (
	"time"

	"gorm.io/gorm"
)

type CaseNote struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	StaffID       *uint     `json:"staff_id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	Participant Participant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ServiceRecord is a service rendered to a participant.
type ServiceRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	ServiceType   string    `gorm:"size:120;not null;index" json:"service_type"`
	Note          *string   `gorm:"type:text" json:"note"`
	StaffID       *uint     `json:"staff_id"`
	ProvidedAt    time.Time `gorm:"not null;index" json:"provided_at"`

	Participant Participant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (ServiceRecord) TableName() string {
	return "services"
}

func (s *ServiceRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ProvidedAt.IsZero() {
		s.ProvidedAt = tx.NowFunc()
	}
	return nil
}
