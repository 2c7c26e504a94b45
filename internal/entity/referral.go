package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReferralStatusReferred     = "referred"
	ReferralStatusContacted    = "contacted"
	ReferralStatusInterviewing = "interviewing"
	ReferralStatusPlaced       = "placed"
	ReferralStatusDeclined     = "declined"
	ReferralStatusClosed       = "closed"
)

var ReferralStatuses = []string{
	ReferralStatusReferred,
	ReferralStatusContacted,
	ReferralStatusInterviewing,
	ReferralStatusPlaced,
	ReferralStatusDeclined,
	ReferralStatusClosed,
}

func IsValidReferralStatus(status string) bool {
	for _, s := range ReferralStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Referral points at exactly one of EmployerID or ProviderID.
type Referral struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	EmployerID    *uint     `gorm:"index" json:"employer_id"`
	ProviderID    *uint     `gorm:"index" json:"provider_id"`
	StaffID       *uint     `json:"staff_id"`
	Status        string    `gorm:"size:64;not null;default:referred" json:"status"`
	Note          *string   `gorm:"type:text" json:"note"`
	ReferredAt    time.Time `gorm:"not null;index" json:"referred_at"`

	Participant Participant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Employer    *Employer   `json:"-"`
	Provider    *Provider   `json:"-"`
}

func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ReferredAt.IsZero() {
		r.ReferredAt = tx.NowFunc()
	}
	if r.Status == "" {
		r.Status = ReferralStatusReferred
	}
	return nil
}

// Kind reports which directory the referral targets.
func (r *Referral) Kind() string {
	switch {
	case r.EmployerID != nil:
		return OrgKindEmployer
	case r.ProviderID != nil:
		return OrgKindProvider
	default:
		return ""
	}
}

func (r *Referral) OrgID() *uint {
	if r.EmployerID != nil {
		return r.EmployerID
	}
	return r.ProviderID
}

// OrgName resolves the preloaded organization's name, if any.
func (r *Referral) OrgName() *string {
	if r.Employer != nil {
		return &r.Employer.Name
	}
	if r.Provider != nil {
		return &r.Provider.Name
	}
	return nil
}
