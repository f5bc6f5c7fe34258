package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/v1/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondBadRequest(c, "name, email and password are required")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.AbortWithStatusJSON(http.StatusConflict, dto.ErrorResponse{Message: "user with this email already exists"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal error"})
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Login handles POST /api/v1/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid email or password"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal error"})
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
