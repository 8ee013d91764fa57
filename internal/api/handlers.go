// internal/api/handlers.go
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"college-comparator/internal/cache"
	"college-comparator/internal/common/errors"
	"college-comparator/internal/common/metrics"
	"college-comparator/internal/common/validation"
	"college-comparator/internal/models"
)

const (
	apiVersion = "1.0.0"

	defaultAutocompleteLimit = 10
	maxAutocompleteLimit     = 50
	defaultListLimit         = 50
	maxListLimit             = 500
)

type compareRequest struct {
	Colleges        []string                `json:"colleges"`
	Personalization *models.Personalization `json:"personalization"`
}

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Margadarshak College Comparator API",
		"version":        apiVersion,
		"status":         "online",
		"catalog_loaded": s.store.Loaded(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"catalog_loaded": s.store.Loaded(),
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := s.decodeAndValidate(r, validation.CompareRequestSchema, &req); err != nil {
		s.errs.WriteError(w, err)
		return
	}
	if len(req.Colleges) < 2 {
		s.errs.WriteError(w, errors.NewInvalidRequestError("at least 2 colleges required for comparison"))
		return
	}
	if err := req.Personalization.Validate(); err != nil {
		s.errs.WriteError(w, errors.NewInvalidPersonalizationError(err.Error()))
		return
	}

	// Only the first two entries participate; extra names are accepted
	// and ignored.
	first, second, err := s.service.ResolvePair(req.Colleges[0], req.Colleges[1])
	if err != nil {
		s.errs.WriteError(w, err)
		return
	}

	key := cache.Key(first.Name, second.Name, req.Personalization)
	if s.cache != nil {
		if cached := s.cache.Get(r.Context(), key); cached != nil {
			metrics.ComparisonsTotal.WithLabelValues(personalizedLabel(req.Personalization)).Inc()
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	resp, err := s.service.Compare(first.Name, second.Name, req.Personalization)
	if err != nil {
		s.errs.WriteError(w, err)
		return
	}
	if s.cache != nil {
		s.cache.Set(r.Context(), key, resp)
	}

	metrics.ComparisonsTotal.WithLabelValues(personalizedLabel(req.Personalization)).Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	limit := clampInt(r.URL.Query().Get("limit"), defaultAutocompleteLimit, maxAutocompleteLimit)

	suggestions, err := s.service.Suggest(query, limit)
	if err != nil {
		s.errs.WriteError(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []models.CollegeSummary{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := s.decodeAndValidate(r, validation.SearchRequestSchema, &req); err != nil {
		s.errs.WriteError(w, err)
		return
	}

	college, err := s.service.Resolve(req.Query)
	if err != nil {
		if errors.IsNotFound(err) {
			metrics.SearchesTotal.WithLabelValues("not_found").Inc()
		}
		s.errs.WriteError(w, err)
		return
	}
	metrics.SearchesTotal.WithLabelValues("found").Inc()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"college": map[string]interface{}{
			"name":       college.Name,
			"city":       college.City,
			"type":       orNA(college.OwnershipType),
			"university": orNA(college.University),
			"fees":       college.AverageFees,
			"students":   college.TotalStudents,
			"faculty":    college.TotalFaculty,
			"rating":     college.Rating,
		},
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := clampInt(r.URL.Query().Get("limit"), defaultListLimit, maxListLimit)
	offset := clampInt(r.URL.Query().Get("offset"), 0, 1<<30)

	page, total, err := s.service.List(limit, offset)
	if err != nil {
		s.errs.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"colleges": page,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	records, err := s.loader.Load(r.Context())
	if err != nil {
		s.errs.WriteError(w, err)
		return
	}

	s.store.Swap(records)
	metrics.CatalogReloadsTotal.Inc()
	metrics.CatalogSize.Set(float64(len(records)))
	if s.cache != nil {
		s.cache.Invalidate(r.Context())
	}

	s.logger.Info("catalog reloaded", map[string]interface{}{
		"colleges": len(records),
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        "Catalog reloaded successfully",
		"catalog_loaded": true,
		"colleges":       len(records),
	})
}

// decodeAndValidate reads the body once, runs it through the schema and
// then binds it onto out.
func (s *Server) decodeAndValidate(r *http.Request, schema validation.JSONSchema, out interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return errors.NewInvalidRequestError("unreadable request body")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return errors.NewInvalidRequestError("request body must be a JSON object")
	}

	if result := validation.ValidateInput(raw, schema); !result.Valid {
		return errors.NewInvalidRequestError(strings.Join(result.GetErrorMessages(), "; "))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewInvalidRequestError(fmt.Sprintf("malformed request: %v", err))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func clampInt(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	if v > max {
		return max
	}
	return v
}

func personalizedLabel(p *models.Personalization) string {
	if p == nil {
		return "false"
	}
	return "true"
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
