package handler

import (
	"net/http"

	"anoa.com/casetrack/internal/modules/geo/dto"
	geo "anoa.com/casetrack/internal/modules/geo/service"
	"anoa.com/casetrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	service geo.Service
}

func NewAddressHandler(service geo.Service) *AddressHandler {
	return &AddressHandler{service: service}
}

func (h *AddressHandler) Search(c *gin.Context) {
	var query dto.AddressQuery
	_ = c.ShouldBindQuery(&query)

	res, err := h.service.Lookup(c.Request.Context(), query.Q)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
