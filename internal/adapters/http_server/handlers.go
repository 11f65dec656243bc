package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"uni_advisor/internal/app"
	"uni_advisor/internal/catalog"
	"uni_advisor/internal/domain"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// Handlers serves the API. Engine-backed routes answer 503 until SetEngine
// is called; search routes answer 503 when Q is nil.
type Handlers struct {
	engine atomic.Pointer[app.Engine]
	Q      *app.CatalogQueryService
}

func NewHandlers(q *app.CatalogQueryService) *Handlers { return &Handlers{Q: q} }

// SetEngine publishes the built engine to all request goroutines.
func (h *Handlers) SetEngine(e *app.Engine) { h.engine.Store(e) }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type recommendationRequest struct {
	University string `json:"university" validate:"required"`
}

type recommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

type classifyRequest struct {
	Text string `json:"text" validate:"required"`
}

type descriptionResponse struct {
	Domain      string `json:"domain"`
	Description string `json:"description"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/readyz", h.readyz)

	s.mux.Post("/recommendations", h.recommend)
	s.mux.Post("/v1/recommendations", h.recommend)
	s.mux.Post("/v1/classify", h.classify)
	s.mux.Get("/v1/reviews/{university}", h.groupReviews)

	s.mux.Get("/v1/programs", h.listPrograms)
	s.mux.Get("/v1/programs/search", h.searchPrograms)
	s.mux.Get("/v1/suggestions", h.suggestions)
	s.mux.Get("/v1/universities/{domain}", h.universitiesByDomain)
	s.mux.Get("/v1/description/{domain}", h.description)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable writes v with a weak ETag, answering 304 when the client has it.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

// ready returns the engine, or writes 503 and false while it is still building.
func (h *Handlers) ready(w http.ResponseWriter) (*app.Engine, bool) {
	e := h.engine.Load()
	if e == nil {
		w.Header().Set("Retry-After", "5")
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "engine is still loading")
		return nil, false
	}
	return e, true
}

// decodeBody decodes a JSON body into dst and runs struct validation.
// It reports false after writing a 400.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, missing string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", "request body must be a JSON object")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", missing)
		return false
	}
	return true
}

func (h *Handlers) readyz(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.ready(w); !ok {
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	e, ok := h.ready(w)
	if !ok {
		return
	}
	var req recommendationRequest
	if !decodeBody(w, r, &req, "University name not provided") {
		return
	}
	writeJSON(w, http.StatusOK, recommendationResponse{Recommendation: e.Recommend(req.University)})
}

func (h *Handlers) classify(w http.ResponseWriter, r *http.Request) {
	e, ok := h.ready(w)
	if !ok {
		return
	}
	var req classifyRequest
	if !decodeBody(w, r, &req, "text not provided") {
		return
	}
	writeJSON(w, http.StatusOK, e.Classify(req.Text))
}

func (h *Handlers) groupReviews(w http.ResponseWriter, r *http.Request) {
	e, ok := h.ready(w)
	if !ok {
		return
	}
	out := e.GroupReviews(chi.URLParam(r, "university"))
	if out == nil {
		out = []domain.Review{}
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) listPrograms(w http.ResponseWriter, r *http.Request) {
	e, ok := h.ready(w)
	if !ok {
		return
	}
	ps := e.Catalog().Programs()
	if len(ps) == 0 {
		writeProblem(w, http.StatusNotFound, "Not Found", "No programs found")
		return
	}
	writeCacheable(w, r, ps)
}

func (h *Handlers) universitiesByDomain(w http.ResponseWriter, r *http.Request) {
	e, ok := h.ready(w)
	if !ok {
		return
	}
	ps := e.Catalog().ByDomain(chi.URLParam(r, "domain"))
	if len(ps) == 0 {
		writeProblem(w, http.StatusNotFound, "Not Found", "No universities found for the given domain")
		return
	}
	writeCacheable(w, r, ps)
}

func (h *Handlers) description(w http.ResponseWriter, r *http.Request) {
	e, ok := h.ready(w)
	if !ok {
		return
	}
	d := chi.URLParam(r, "domain")
	writeCacheable(w, r, descriptionResponse{Domain: d, Description: e.Catalog().Description(d)})
}

func (h *Handlers) searchPrograms(w http.ResponseWriter, r *http.Request) {
	if h.Q == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "catalog search is not configured")
		return
	}
	q, err := catalog.ParseQuery(r.URL.Query())
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	out, err := h.Q.FilterPrograms(r.Context(), q)
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) suggestions(w http.ResponseWriter, r *http.Request) {
	if h.Q == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "catalog search is not configured")
		return
	}
	out, err := h.Q.Suggestions(r.Context())
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) storeFailure(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("catalog store query failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "catalog query failed")
}
