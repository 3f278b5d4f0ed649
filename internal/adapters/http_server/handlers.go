package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/domain"
)

// Searcher is what the handlers need from the application layer.
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error)
}

// Defaults pre-fill the search form.
type Defaults struct {
	AppName    string
	Location   string
	RadiusKm   int
	MaxResults int
}

type Handlers struct {
	S        Searcher
	Defaults Defaults
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.index)
	s.mux.Get("/search", h.searchPage)
	s.mux.Get("/v1/stays/search", h.searchJSON)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// parseRequest reads the search parameters from the query string. Bad
// integers fall back to the form defaults; range clamping happens in
// SearchRequest.Normalize.
func (h *Handlers) parseRequest(r *http.Request) domain.SearchRequest {
	q := r.URL.Query()
	req := domain.SearchRequest{
		Location:   q.Get("location"),
		RadiusKm:   h.Defaults.RadiusKm,
		MaxResults: h.Defaults.MaxResults,
	}
	if v, err := strconv.Atoi(q.Get("radius_km")); err == nil {
		req.RadiusKm = v
	}
	if v, err := strconv.Atoi(q.Get("max_results")); err == nil {
		req.MaxResults = v
	}
	return req
}

// ---- HTML pages ----

func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageData{Defaults: h.Defaults, Request: domain.SearchRequest{
		Location:   h.Defaults.Location,
		RadiusKm:   h.Defaults.RadiusKm,
		MaxResults: h.Defaults.MaxResults,
	}})
}

func (h *Handlers) searchPage(w http.ResponseWriter, r *http.Request) {
	req := h.parseRequest(r)
	data := pageData{Defaults: h.Defaults, Request: req, Searched: true}

	res, err := h.S.Search(r.Context(), req)
	if err != nil {
		data.Error = failureMessage(err)
		h.render(w, data)
		return
	}
	// Normalize clamps inside Search; echo the effective values back
	// into the form.
	data.Request.Location = res.Location
	data.Result = &res
	h.render(w, data)
}

// ---- JSON API ----

func (h *Handlers) searchJSON(w http.ResponseWriter, r *http.Request) {
	req := h.parseRequest(r)
	res, err := h.S.Search(r.Context(), req)
	if err != nil {
		status, title := failureStatus(err)
		writeProblem(w, status, title, failureMessage(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	out := struct {
		Location string           `json:"location"`
		Count    int              `json:"count"`
		Listings []domain.Listing `json:"listings"`
	}{Location: res.Location, Count: len(res.Listings), Listings: res.Listings}
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Error().Err(err).Msg("failed to write search response body")
	}
}

// ---- failure mapping ----

// Each failure kind gets its own user-facing message; a parse failure
// must never read like "no stays found".
func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyLocation):
		return "Enter a location to search."
	case errors.Is(err, domain.ErrUnauthorized):
		return "The AI service rejected the configured API key. Check GEMINI_API_KEY."
	case errors.Is(err, domain.ErrRateLimited):
		return "The AI service is rate-limiting us. Wait a moment and try again."
	case errors.Is(err, domain.ErrTimeout):
		return "The AI service took too long to answer. Try again."
	case errors.Is(err, domain.ErrParseFailure):
		return "The AI returned data we could not read, even after retrying. Try again or rephrase the location."
	default:
		return "The AI service is unavailable right now. Try again later."
	}
}

func failureStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyLocation):
		return http.StatusBadRequest, "Invalid Request"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusBadGateway, "Upstream Auth Failed"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusBadGateway, "Upstream Rate Limited"
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout, "Upstream Timeout"
	case errors.Is(err, domain.ErrParseFailure):
		return http.StatusBadGateway, "Unreadable AI Response"
	default:
		return http.StatusBadGateway, "Upstream Error"
	}
}
