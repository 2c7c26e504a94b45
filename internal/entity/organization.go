package entity

import "time"

const (
	OrgKindEmployer = "employer"
	OrgKindProvider = "provider"
)

// Organization holds the columns employers and providers share.
type Organization struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	ContactName *string   `gorm:"size:255" json:"contact_name"`
	Phone       *string   `gorm:"size:64" json:"phone"`
	Email       *string   `gorm:"size:255" json:"email"`
	Address     *string   `gorm:"size:255" json:"address"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Employer struct {
	Organization
}

type Provider struct {
	Organization
}
