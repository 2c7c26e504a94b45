package dto

import (
	"anoa.com/casetrack/internal/entity"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/timeutil"
)

// CreateParticipantRequest treats blank optional fields as absent; dob and email
// are checked by the service.
type CreateParticipantRequest struct {
	FirstName string  `json:"first_name" binding:"notblank,max=120"`
	LastName  string  `json:"last_name" binding:"notblank,max=120"`
	DOB       *string `json:"dob"`
	Race      *string `json:"race" binding:"omitempty,max=64"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	Email     *string `json:"email" binding:"omitempty,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=64"`
}

// UpdateParticipantRequest applies only the keys present in the body.
type UpdateParticipantRequest struct {
	FirstName commonDto.Optional[string] `json:"first_name"`
	LastName  commonDto.Optional[string] `json:"last_name"`
	DOB       commonDto.Optional[string] `json:"dob"`
	Race      commonDto.Optional[string] `json:"race"`
	Address   commonDto.Optional[string] `json:"address"`
	Email     commonDto.Optional[string] `json:"email"`
	Phone     commonDto.Optional[string] `json:"phone"`
	IsActive  commonDto.Optional[bool]   `json:"is_active"`
}

type ListParticipantsQuery struct {
	commonDto.PageQuery
	IncludeInactive bool   `form:"include_inactive"`
	Q               string `form:"q"`
}

type ParticipantResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Name      string  `json:"name"`
	DOB       *string `json:"dob"`
	Race      *string `json:"race"`
	Address   *string `json:"address"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

func ToParticipantResponse(p *entity.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Name:      p.FullName(),
		DOB:       timeutil.FormatDate(p.DOB),
		Race:      p.Race,
		Address:   p.Address,
		Email:     p.Email,
		Phone:     p.Phone,
		IsActive:  p.IsActive,
		CreatedAt: timeutil.FormatDateTime(p.CreatedAt),
	}
}
