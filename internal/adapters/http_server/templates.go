package httpserver

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"stars": func(rating float64) string {
		n := int(rating)
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}
		return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
	},
	"join": func(ss []string, sep string) string { return strings.Join(ss, sep) },
}).ParseFS(templateFS, "templates/*.html"))

// pageData drives the single search page: the pre-filled form, and at
// most one of Result or Error once a search ran.
type pageData struct {
	Defaults Defaults
	Request  domain.SearchRequest
	Searched bool
	Result   *domain.SearchResult
	Error    string
}

func (h *Handlers) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Error().Err(err).Msg("render page failed")
	}
}
