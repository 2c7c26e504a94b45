package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Assessment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ParticipantID uint           `gorm:"not null;index" json:"participant_id"`
	Kind          string         `gorm:"size:64;not null" json:"kind"`
	Score         *float64       `json:"score"`
	ScoreJSON     datatypes.JSON `gorm:"column:score_json" json:"score_json"`
	StaffID       *uint          `json:"staff_id"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index" json:"created_at"`

	Participant Participant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Employment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ParticipantID uint       `gorm:"not null;index" json:"participant_id"`
	Employer      string     `gorm:"size:255;not null" json:"employer"`
	Position      *string    `gorm:"size:255" json:"position"`
	Status        *string    `gorm:"size:64;index" json:"status"`
	StartDate     *time.Time `gorm:"type:date" json:"start_date"`
	EndDate       *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Participant Participant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Employment) TableName() string {
	return "employment"
}

type Education struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ParticipantID uint       `gorm:"not null;index" json:"participant_id"`
	School        string     `gorm:"size:255;not null" json:"school"`
	Program       *string    `gorm:"size:255" json:"program"`
	Status        *string    `gorm:"size:64;index" json:"status"`
	StartDate     *time.Time `gorm:"type:date" json:"start_date"`
	EndDate       *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Participant Participant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Education) TableName() string {
	return "education"
}

type Milestone struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	Type          string    `gorm:"size:120;not null" json:"type"`
	Status        *string   `gorm:"size:64" json:"status"`
	Note          *string   `gorm:"type:text" json:"note"`
	StaffID       *uint     `json:"staff_id"`
	AchievedAt    time.Time `gorm:"not null;index" json:"achieved_at"`

	Participant Participant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.AchievedAt.IsZero() {
		m.AchievedAt = tx.NowFunc()
	}
	return nil
}
