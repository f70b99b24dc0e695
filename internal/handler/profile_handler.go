package handler

import (
	"net/http"

	"heartlink/internal/services"
	"heartlink/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Update merges profile attributes for the authenticated user. The auth
// middleware has already placed the user id in the request context.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid request body", "INVALID_REQUEST"))
		return
	}

	u, err := h.service.Update(c.Request.Context(), userID, services.ProfileUpdateInput{
		Image:            req.Image,
		Name:             req.Name,
		Bio:              req.Bio,
		Age:              req.Age,
		Gender:           req.Gender,
		GenderPreference: req.GenderPreference,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.NewUserDTO(u)))
}
