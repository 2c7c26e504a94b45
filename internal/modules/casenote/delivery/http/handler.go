package handler

import (
	"net/http"

	"anoa.com/casetrack/internal/modules/casenote/dto"
	casenote "anoa.com/casetrack/internal/modules/casenote/service"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/response"
	"anoa.com/casetrack/pkg/validator"
	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	service casenote.Service
}

func NewNoteHandler(service casenote.Service) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) List(c *gin.Context) {
	participantID, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	notes, err := h.service.List(c.Request.Context(), participantID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Create(c *gin.Context) {
	participantID, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateNoteRequest
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
