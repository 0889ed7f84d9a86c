package httpd

import (
	"errors"
	"net/http"

	"github.com/muhdsahal/tailwebs-task/internal/models"
	"github.com/muhdsahal/tailwebs-task/internal/service"
	"github.com/muhdsahal/tailwebs-task/pkg/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.FailureResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	teacher, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.FailureResponse(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.logger.Error().Err(err).Msg("Login failed")
		utils.FailureResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.SuccessResponse(w, map[string]interface{}{
		"message": "Login successful",
		"teacher": models.TeacherResponse{
			ID:   teacher.ID,
			Name: teacher.Name,
		},
	})
}
