package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/clientbase/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}

	if err := h.facade.SignUp(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "CREATED", "Successfully created new account")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}

	email, token, err := h.facade.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Email: email, JWTToken: token})
}
