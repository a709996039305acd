package api

import (
	"errors"
	"net/http"

	reqdto "frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Login exchanges a front-desk password for a role session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, role, err := h.authUseCase.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Role:        role.String(),
	})
}
