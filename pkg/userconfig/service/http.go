package service

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
	apphttp "github.com/chainsafe/deploy-admin/pkg/app/http"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the /config endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/config", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.getConfig, logger))
		r.Post("/", apphttp.HandleError(h.saveConfig, logger))
		r.MethodNotAllowed(apphttp.MethodNotAllowed(logger))
	})
}

// getConfig handles GET /config?userId=
func (h *HTTP) getConfig(w http.ResponseWriter, r *http.Request) error {
	if _, err := apphttp.ReadBody(w, r); err != nil {
		return err
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		return apperrors.BadRequestError(nil, UserIDRequiredMessage)
	}

	cfg, err := h.service.GetConfigByUser(r.Context(), userID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, cfg)
	return nil
}

// saveConfig handles POST /config
func (h *HTTP) saveConfig(w http.ResponseWriter, r *http.Request) error {
	body, err := apphttp.ReadBody(w, r)
	if err != nil {
		return err
	}

	var req userconfig.SaveRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return apperrors.GeneralError(fmt.Errorf("invalid JSON: %w", err))
		}
	}

	cfg, err := h.service.SaveConfig(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, cfg)
	return nil
}
