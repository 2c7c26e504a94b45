package handler

import (
	"fmt"
	"net/http"

	"anoa.com/casetrack/internal/modules/user/dto"
	user "anoa.com/casetrack/internal/modules/user/service"
	"anoa.com/casetrack/pkg/ratelimiter"
	"anoa.com/casetrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service user.AuthService
	env     string
	version string
}

func NewAuthHandler(service user.AuthService, env, version string) *AuthHandler {
	return &AuthHandler{service: service, env: env, version: version}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if rateLimitErr, ok := err.(*ratelimiter.RateLimitError); ok {
			c.Header("Retry-After", fmt.Sprintf("%.0f", rateLimitErr.RetryAfter.Seconds()))
		}
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) WhoAmI(c *gin.Context) {
	res := dto.WhoAmIResponse{Env: h.env, Version: h.version}
	if id, err := response.GetIdentity(c); err == nil {
		res.Authenticated = true
		res.UserID = &id.UserID
		res.Email = &id.Email
		res.Role = &id.Role
	}
	c.JSON(http.StatusOK, res)
}
