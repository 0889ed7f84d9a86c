package httpd

import (
	"errors"
	"net/http"
	"strings"

	"github.com/muhdsahal/tailwebs-task/internal/models"
	"github.com/muhdsahal/tailwebs-task/internal/service"
	"github.com/muhdsahal/tailwebs-task/pkg/utils"
)

func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	var req models.ListStudentsRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.FailureResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.TeacherID == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "teacher_id is required")
		return
	}

	students, err := h.studentService.ListStudents(r.Context(), req.TeacherID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list students")
		utils.FailureResponse(w, http.StatusInternalServerError, "Error fetching students")
		return
	}

	utils.SuccessResponse(w, map[string]interface{}{
		"students": students,
	})
}

func (h *Handler) SaveStudent(w http.ResponseWriter, r *http.Request) {
	var req models.SaveStudentRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.FailureResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "subject is required")
		return
	}
	if req.TeacherID == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "teacher_id is required")
		return
	}

	marks, err := parseMarks(req.Marks)
	if err != nil {
		utils.FailureResponse(w, http.StatusBadRequest, "marks must be an integer")
		return
	}

	outcome, err := h.studentService.SaveStudent(r.Context(), req.Name, req.Subject, marks, req.TeacherID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to save student")
		utils.FailureResponse(w, http.StatusInternalServerError, "Error adding student")
		return
	}

	message := "Student added successfully."
	if outcome == models.UpsertUpdated {
		message = "Student updated successfully."
	}

	utils.SuccessResponse(w, map[string]interface{}{
		"message": message,
	})
}

func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStudentRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.FailureResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.StudentID == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "student_id is required")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "subject is required")
		return
	}

	marks, err := parseMarks(req.Marks)
	if err != nil {
		utils.FailureResponse(w, http.StatusBadRequest, "marks must be an integer")
		return
	}

	err = h.studentService.UpdateStudent(r.Context(), req.StudentID, req.Name, req.Subject, marks)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			utils.FailureResponse(w, http.StatusNotFound, "Student not found")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to update student")
		utils.FailureResponse(w, http.StatusInternalServerError, "Error updating student")
		return
	}

	utils.SuccessResponse(w, map[string]interface{}{
		"message": "Student updated successfully",
	})
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteStudentRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.FailureResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.StudentID == "" {
		utils.FailureResponse(w, http.StatusBadRequest, "student_id is required")
		return
	}

	if err := h.studentService.DeleteStudent(r.Context(), req.StudentID); err != nil {
		h.logger.Error().Err(err).Msg("Failed to delete student")
		utils.FailureResponse(w, http.StatusInternalServerError, "Error deleting student")
		return
	}

	utils.SuccessResponse(w, map[string]interface{}{
		"message": "Student deleted successfully",
	})
}
