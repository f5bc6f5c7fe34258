package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// respondError maps a domain error to the uniform {message} body and status.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrConflict),
		errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrInsufficientStock):
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: err.Error()})
}

func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: message})
}
