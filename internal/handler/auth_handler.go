package handler

import (
	"net/http"

	"heartlink/internal/services"
	"heartlink/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
	issuer  *services.TokenIssuer
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService, issuer *services.TokenIssuer) *AuthHandler {
	return &AuthHandler{service: service, issuer: issuer}
}

// Signup handles user registration.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid request body", "INVALID_REQUEST"))
		return
	}

	u, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Age:              req.Age,
		Gender:           req.Gender,
		GenderPreference: req.GenderPreference,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.issuer.Issue(u.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.issuer.Attach(c, token)

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.NewUserDTO(u)))
}

// Login handles user authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid request body", "INVALID_REQUEST"))
		return
	}

	u, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.issuer.Issue(u.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.issuer.Attach(c, token)

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.NewUserDTO(u)))
}

// Logout clears the session cookie. No session validation is performed;
// clearing an absent session is still a success.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.issuer.Clear(c)
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "Logged out successfully"}))
}
