package handler

import (
	"net/http"

	"anoa.com/casetrack/internal/modules/organization/dto"
	organization "anoa.com/casetrack/internal/modules/organization/service"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/response"
	"anoa.com/casetrack/pkg/validator"
	"github.com/gin-gonic/gin"
)

// OrganizationHandler serves one directory, employers or providers.
type OrganizationHandler struct {
	service organization.Service
	kind    string
}

func NewOrganizationHandler(service organization.Service, kind string) *OrganizationHandler {
	return &OrganizationHandler{service: service, kind: kind}
}

func (h *OrganizationHandler) List(c *gin.Context) {
	var query dto.ListOrganizationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	orgs, err := h.service.List(c.Request.Context(), h.kind, query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	id, err := h.service.Create(c.Request.Context(), h.kind, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, commonDto.IDResponse{ID: id})
}
