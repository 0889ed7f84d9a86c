package httpd

import (
	"net/http"
	"path/filepath"
)

// Page serving is plain files; the portal's UI talks to the JSON API.

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.templatesDir, "login.html"))
}

func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.templatesDir, "dashboard.html"))
}
