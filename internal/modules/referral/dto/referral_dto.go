package dto

import (
	"anoa.com/casetrack/internal/entity"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/timeutil"
)

type CreateReferralRequest struct {
	Kind   string  `json:"kind" binding:"required,oneof=employer provider"`
	OrgID  *uint   `json:"org_id" binding:"required"`
	Status *string `json:"status"`
	Note   *string `json:"note"`
}

type UpdateReferralRequest struct {
	Status commonDto.Optional[string] `json:"status"`
	Note   commonDto.Optional[string] `json:"note"`
}

// ReferralResponse is the denormalized read view; org_name is resolved at read time.
type ReferralResponse struct {
	ID            uint    `json:"id"`
	ParticipantID uint    `json:"participant_id"`
	Kind          string  `json:"kind"`
	OrgID         *uint   `json:"org_id"`
	OrgName       *string `json:"org_name"`
	Status        string  `json:"status"`
	Note          *string `json:"note"`
	StaffID       *uint   `json:"staff_id"`
	ReferredAt    string  `json:"referred_at"`
}

func ToReferralResponse(r *entity.Referral) ReferralResponse {
	return ReferralResponse{
		ID:            r.ID,
		ParticipantID: r.ParticipantID,
		Kind:          r.Kind(),
		OrgID:         r.OrgID(),
		OrgName:       r.OrgName(),
		Status:        r.Status,
		Note:          r.Note,
		StaffID:       r.StaffID,
		ReferredAt:    timeutil.FormatDateTime(r.ReferredAt),
	}
}
