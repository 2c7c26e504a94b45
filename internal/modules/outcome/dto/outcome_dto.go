package dto

import (
	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/pkg/timeutil"
	"gorm.io/datatypes"
)

type CreateAssessmentRequest struct {
	Kind      string         `json:"kind" binding:"notblank,max=64"`
	Score     *float64       `json:"score"`
	ScoreJSON datatypes.JSON `json:"score_json"`
}

type CreateEmploymentRequest struct {
	Employer  string  `json:"employer" binding:"notblank,max=255"`
	Position  *string `json:"position" binding:"omitempty,max=255"`
	Status    *string `json:"status" binding:"omitempty,max=64"`
	StartDate *string `json:"start_date" binding:"omitempty,isodate"`
	EndDate   *string `json:"end_date" binding:"omitempty,isodate"`
}

type CreateEducationRequest struct {
	School    string  `json:"school" binding:"notblank,max=255"`
	Program   *string `json:"program" binding:"omitempty,max=255"`
	Status    *string `json:"status" binding:"omitempty,max=64"`
	StartDate *string `json:"start_date" binding:"omitempty,isodate"`
	EndDate   *string `json:"end_date" binding:"omitempty,isodate"`
}

type CreateMilestoneRequest struct {
	Type       string  `json:"type" binding:"notblank,max=120"`
	Status     *string `json:"status" binding:"omitempty,max=64"`
	Note       *string `json:"note"`
	AchievedAt *string `json:"achieved_at" binding:"omitempty,isodatetime"`
}

type AssessmentResponse struct {
	ID            uint           `json:"id"`
	ParticipantID uint           `json:"participant_id"`
	Kind          string         `json:"kind"`
	Score         *float64       `json:"score"`
	ScoreJSON     datatypes.JSON `json:"score_json"`
	StaffID       *uint          `json:"staff_id"`
	CreatedAt     string         `json:"created_at"`
}

func ToAssessmentResponse(a *entity.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:            a.ID,
		ParticipantID: a.ParticipantID,
		Kind:          a.Kind,
		Score:         a.Score,
		ScoreJSON:     a.ScoreJSON,
		StaffID:       a.StaffID,
		CreatedAt:     timeutil.FormatDateTime(a.CreatedAt),
	}
}

type EmploymentResponse struct {
	ID            uint    `json:"id"`
	ParticipantID uint    `json:"participant_id"`
	Employer      string  `json:"employer"`
	Position      *string `json:"position"`
	Status        *string `json:"status"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	CreatedAt     string  `json:"created_at"`
}

func ToEmploymentResponse(e *entity.Employment) EmploymentResponse {
	return EmploymentResponse{
		ID:            e.ID,
		ParticipantID: e.ParticipantID,
		Employer:      e.Employer,
		Position:      e.Position,
		Status:        e.Status,
		StartDate:     timeutil.FormatDate(e.StartDate),
		EndDate:       timeutil.FormatDate(e.EndDate),
		CreatedAt:     timeutil.FormatDateTime(e.CreatedAt),
	}
}

type EducationResponse struct {
	ID            uint    `json:"id"`
	ParticipantID uint    `json:"participant_id"`
	School        string  `json:"school"`
	Program       *string `json:"program"`
	Status        *string `json:"status"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	CreatedAt     string  `json:"created_at"`
}

func ToEducationResponse(e *entity.Education) EducationResponse {
	return EducationResponse{
		ID:            e.ID,
		ParticipantID: e.ParticipantID,
		School:        e.School,
		Program:       e.Program,
		Status:        e.Status,
		StartDate:     timeutil.FormatDate(e.StartDate),
		EndDate:       timeutil.FormatDate(e.EndDate),
		CreatedAt:     timeutil.FormatDateTime(e.CreatedAt),
	}
}

type MilestoneResponse struct {
	ID            uint    `json:"id"`
	ParticipantID uint    `json:"participant_id"`
	Type          string  `json:"type"`
	Status        *string `json:"status"`
	Note          *string `json:"note"`
	StaffID       *uint   `json:"staff_id"`
	AchievedAt    string  `json:"achieved_at"`
}

func ToMilestoneResponse(m *entity.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:            m.ID,
		ParticipantID: m.ParticipantID,
		Type:          m.Type,
		Status:        m.Status,
		Note:          m.Note,
		StaffID:       m.StaffID,
		AchievedAt:    timeutil.FormatDateTime(m.AchievedAt),
	}
}
