package entity

import (
	"strings"
	"time"
)

type Participant struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	FirstName string     `gorm:"size:120;not null;index:idx_participant_name,priority:2" json:"first_name"`
	LastName  string     `gorm:"size:120;not null;index:idx_participant_name,priority:1" json:"last_name"`
	DOB       *time.Time `gorm:"column:dob;type:date" json:"dob"`
	Race      *string    `gorm:"size:64" json:"race"`
	Address   *string    `gorm:"size:255" json:"address"`
	Email     *string    `gorm:"size:255" json:"email"`
	Phone     *string    `gorm:"size:64" json:"phone"`
	IsActive  bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Participant) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}
