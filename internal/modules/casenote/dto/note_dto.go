package dto

import (
	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/pkg/timeutil"
)

type CreateNoteRequest struct {
	Content string `json:"content" binding:"notblank"`
}

type NoteResponse struct {
	ID            uint   `json:"id"`
	ParticipantID uint   `json:"participant_id"`
	StaffID       *uint  `json:"staff_id"`
	Content       string `json:"content"`
	CreatedAt     string `json:"created_at"`
}

func ToNoteResponse(n *entity.CaseNote) NoteResponse {
	return NoteResponse{
		ID:            n.ID,
		ParticipantID: n.ParticipantID,
		StaffID:       n.StaffID,
		Content:       n.Content,
		CreatedAt:     timeutil.FormatDateTime(n.CreatedAt),
	}
}
