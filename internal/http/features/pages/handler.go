package pages

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler handles HTML page rendering.
type Handler struct {
	templates *template.Template
}

// NewHandler creates a new pages handler from the embedded templates.
func NewHandler() (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Handler{
		templates: tmpl,
	}, nil
}

// PageData holds data for template rendering.
type PageData struct {
	Title   string
	Message string
}

// Index renders the landing fragment used to check that the server is up.
// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", PageData{
		Title:   "Tool Automation Platform",
		Message: "Backend skeleton is running.",
	})
}

func (h *Handler) render(w http.ResponseWriter, tmpl string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, tmpl, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
