package dto

import (
	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/pkg/timeutil"
)

type CreateServiceRequest struct {
	ServiceType string  `json:"service_type" binding:"notblank,max=120"`
	Note        *string `json:"note"`
	ProvidedAt  *string `json:"provided_at" binding:"omitempty,isodatetime"`
}

type ServiceResponse struct {
	ID            uint    `json:"id"`
	ParticipantID uint    `json:"participant_id"`
	ServiceType   string  `json:"service_type"`
	Note          *string `json:"note"`
	StaffID       *uint   `json:"staff_id"`
	ProvidedAt    string  `json:"provided_at"`
}

func ToServiceResponse(s *entity.ServiceRecord) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		ParticipantID: s.ParticipantID,
		ServiceType:   s.ServiceType,
		Note:          s.Note,
		StaffID:       s.StaffID,
		ProvidedAt:    timeutil.FormatDateTime(s.ProvidedAt),
	}
}
