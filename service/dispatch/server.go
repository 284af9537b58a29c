package dispatch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/otellib"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/twilioclient"
)

// Server exposes the dispatch operations over HTTP
type Server struct {
	service  IService
	registry IRegistry
	logger   *zap.Logger
}

// NewServer ...
func NewServer(service IService, registry IRegistry, logger *zap.Logger) *Server {
	return &Server{
		service:  service,
		registry: registry,
		logger:   logger.With(zap.String("component", "dispatch_server")),
	}
}

// Routes ...
func (s *Server) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(s.contextLogger)
	router.Post("/api/campaigns/{id}/send", s.handleSendNow)
	router.Post("/api/templates/{sid}/refresh", s.handleRefreshTemplate)
	return router
}

func (s *Server) contextLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otellib.ToContext(r.Context(), s.logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleSendNow(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.New("invalid campaign id"))
		return
	}

	result, err := s.service.SendNow(r.Context(), campaignID)
	if err != nil {
		s.writeError(w, r, sendNowStatusCode(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func sendNowStatusCode(err error) int {
	var invalidStatus InvalidStatusError
	switch {
	case errors.Is(err, ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSendInProgress):
		return http.StatusConflict
	case errors.As(err, &invalidStatus):
		return http.StatusConflict
	case errors.Is(err, ErrMissingTemplate),
		errors.Is(err, ErrTemplateNotApproved),
		errors.Is(err, ErrNoRecipients):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleRefreshTemplate(w http.ResponseWriter, r *http.Request) {
	contentSid := chi.URLParam(r, "sid")

	template, err := s.registry.Refresh(r.Context(), contentSid)
	if err != nil {
		statusCode := http.StatusBadGateway
		if errors.Is(err, twilioclient.ErrNotConfigured) {
			statusCode = http.StatusServiceUnavailable
		}
		s.writeError(w, r, statusCode, err)
		return
	}

	s.writeJSON(w, http.StatusOK, template)
}

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int, err error) {
	if statusCode >= http.StatusInternalServerError {
		otellib.Extract(r.Context()).Error("request failed",
			zap.Int("status", statusCode), zap.Error(err))
	}
	s.writeJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
}
