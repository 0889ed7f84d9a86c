package httpd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/muhdsahal/tailwebs-task/internal/service"
	"github.com/muhdsahal/tailwebs-task/pkg/utils"
)

type Handler struct {
	authService    service.AuthService
	studentService service.StudentService
	templatesDir   string
	staticDir      string
	logger         zerolog.Logger
}

func NewHandler(
	authService service.AuthService,
	studentService service.StudentService,
	templatesDir string,
	staticDir string,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		authService:    authService,
		studentService: studentService,
		templatesDir:   templatesDir,
		staticDir:      staticDir,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Get("/", h.LoginPage)
	router.Get("/login", h.LoginPage)
	router.Get("/dashboard", h.DashboardPage)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))

	router.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/students", h.ListStudents)
		r.Post("/add_student", h.SaveStudent)
		r.Post("/update_student", h.UpdateStudent)
		r.Post("/delete_student", h.DeleteStudent)
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "teacher-portal",
		"timestamp": time.Now().UTC(),
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// parseMarks accepts whatever numeric form the client submitted and
// truncates fractions, matching the coercion the dashboard relies on.
func parseMarks(n json.Number) (int, error) {
	if v, err := n.Int64(); err == nil {
		return int(v), nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
