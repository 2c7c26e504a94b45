package handler

import (
	"net/http"

	"anoa.com/casetrack/internal/modules/participant/dto"
	participant "anoa.com/casetrack/internal/modules/participant/service"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/response"
	"anoa.com/casetrack/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	service participant.Service
}

func NewParticipantHandler(service participant.Service) *ParticipantHandler {
	return &ParticipantHandler{service: service}
}

// List returns a bare array unless page or per_page was supplied.
func (h *ParticipantHandler) List(c *gin.Context) {
	var query dto.ListParticipantsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	page, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if query.Requested() {
		c.JSON(http.StatusOK, page)
		return
	}
	c.JSON(http.StatusOK, page.Items)
}

func (h *ParticipantHandler) Create(c *gin.Context) {
	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, commonDto.IDResponse{ID: id})
}

func (h *ParticipantHandler) Get(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ParticipantHandler) Update(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "updated")
}

func (h *ParticipantHandler) Delete(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "deactivated")
}
