package handler

import (
	"context"
	"net/http"

	"anoa.com/casetrack/internal/modules/outcome/dto"
	outcome "anoa.com/casetrack/internal/modules/outcome/service"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/response"
	"anoa.com/casetrack/pkg/validator"
	"github.com/gin-gonic/gin"
)

type OutcomeHandler struct {
	service outcome.Service
}

func NewOutcomeHandler(service outcome.Service) *OutcomeHandler {
	return &OutcomeHandler{service: service}
}

func listFor[R any](fetch func(ctx context.Context, participantID uint) ([]R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		participantID, err := response.ParamID(c, "id")
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		rows, err := fetch(c.Request.Context(), participantID)
		if err != nil {
			response.ResponseError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// createFor binds Req and hands it to create along with the caller's user id.
func createFor[Req any](create func(ctx context.Context, participantID uint, staffID *uint, req Req) (uint, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		participantID, err := response.ParamID(c, "id")
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		var req Req
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ResponseError(c, validator.BindError(err))
			return
		}

		id, err := create(c.Request.Context(), participantID, response.GetUserID(c), req)
		if err != nil {
			response.ResponseError(c, err)
			return
		}
		c.JSON(http.StatusCreated, commonDto.IDResponse{ID: id})
	}
}

func (h *OutcomeHandler) ListAssessments() gin.HandlerFunc {
	return listFor(h.service.ListAssessments)
}

func (h *OutcomeHandler) CreateAssessment() gin.HandlerFunc {
	return createFor(h.service.CreateAssessment)
}

func (h *OutcomeHandler) ListEmployment() gin.HandlerFunc {
	return listFor(h.service.ListEmployment)
}

func (h *OutcomeHandler) CreateEmployment() gin.HandlerFunc {
	return createFor(func(ctx context.Context, participantID uint, _ *uint, req dto.CreateEmploymentRequest) (uint, error) {
		return h.service.CreateEmployment(ctx, participantID, req)
	})
}

func (h *OutcomeHandler) ListEducation() gin.HandlerFunc {
	return listFor(h.service.ListEducation)
}

func (h *OutcomeHandler) CreateEducation() gin.HandlerFunc {
	return createFor(func(ctx context.Context, participantID uint, _ *uint, req dto.CreateEducationRequest) (uint, error) {
		return h.service.CreateEducation(ctx, participantID, req)
	})
}

func (h *OutcomeHandler) ListMilestones() gin.HandlerFunc {
	return listFor(h.service.ListMilestones)
}

func (h *OutcomeHandler) CreateMilestone() gin.HandlerFunc {
	return createFor(h.service.CreateMilestone)
}
