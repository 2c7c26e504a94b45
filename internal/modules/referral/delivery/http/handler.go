package handler

import (
	"net/http"

	"anoa.com/casetrack/internal/modules/referral/dto"
	referral "anoa.com/casetrack/internal/modules/referral/service"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/response"
	"anoa.com/casetrack/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	service referral.Service
}

func NewReferralHandler(service referral.Service) *ReferralHandler {
	return &ReferralHandler{service: service}
}

func (h *ReferralHandler) List(c *gin.Context) {
	participantID, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	referrals, err := h.service.List(c.Request.Context(), participantID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, referrals)
}

func (h *ReferralHandler) Create(c *gin.Context) {
	participantID, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	id, err := h.service.Create(c.Request.Context(), participantID, response.GetUserID(c), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, commonDto.IDResponse{ID: id})
}

func (h *ReferralHandler) Update(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
