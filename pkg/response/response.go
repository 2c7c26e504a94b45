package response

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/auth"
	"anoa.com/casetrack/pkg/logger"
	"anoa.com/casetrack/pkg/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

// SetIdentity stores the authenticated caller on the context.
func SetIdentity(c *gin.Context, id *auth.Identity) {
	c.Set(identityKey, id)
}

// GetIdentity retrieves the authenticated caller from the context
func GetIdentity(c *gin.Context) (*auth.Identity, error) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, apperror.ErrUnauthorized
	}

	id, ok := v.(*auth.Identity)
	if !ok || id == nil {
		return nil, apperror.ErrUnauthorized
	}
	return id, nil
}

// GetUserID retrieves the authenticated user ID, or nil when the request is anonymous.
func GetUserID(c *gin.Context) *uint {
	id, err := GetIdentity(c)
	if err != nil {
		return nil
	}
	uid := id.UserID
	return &uid
}

// ParamID parses a positive integer path parameter. Anything else cannot name
// an existing row, so it maps to 404.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %w", name, apperror.ErrNotFound)
	}
	return uint(id), nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	var fields map[string]string
	if vf := validator.Fields(err); vf != nil {
		err = &apperror.ValidationError{Fields: vf}
	}

	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		fields = verr.Fields
	}

	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		logger.From(c).Error("internal error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		Error(c, code, apperror.ErrInternal.Error())
		return
	}

	if fields != nil {
		c.AbortWithStatusJSON(code, gin.H{"error": "validation failed", "code": code, "fields": fields})
		return
	}

	Error(c, code, err.Error())
}

// Error writes the canonical error body.
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message, "code": code})
}

// Message writes a {"msg": ...} acknowledgement.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"msg": message})
}
