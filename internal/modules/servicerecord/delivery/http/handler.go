package handler

import (
	"net/http"

	"anoa.com/casetrack/internal/modules/servicerecord/dto"
	servicerecord "anoa.com/casetrack/internal/modules/servicerecord/service"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/response"
	"anoa.com/casetrack/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ServiceRecordHandler struct {
	service servicerecord.Service
}

func NewServiceRecordHandler(service servicerecord.Service) *ServiceRecordHandler {
	return &ServiceRecordHandler{service: service}
}

func (h *ServiceRecordHandler) List(c *gin.Context) {
	participantID, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	records, err := h.service.List(c.Request.Context(), participantID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *ServiceRecordHandler) Create(c *gin.Context) {
	participantID, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateServiceRequest
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
