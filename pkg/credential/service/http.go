package service

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
	apphttp "github.com/chainsafe/deploy-admin/pkg/app/http"
	"github.com/chainsafe/deploy-admin/pkg/credential"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the credential check endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/credentials", func(r chi.Router) {
		r.Post("/rpc/check", apphttp.HandleError(h.checkRPC, logger))
		r.Post("/railway/check", apphttp.HandleError(h.checkRailway, logger))
		r.MethodNotAllowed(apphttp.MethodNotAllowed(logger))
	})
}

func (h *HTTP) checkRPC(w http.ResponseWriter, r *http.Request) error {
	var req credential.RPCCredentials
	if err := decodeBody(w, r, &req); err != nil {
		return err
	}

	res, err := h.service.CheckRPC(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) checkRailway(w http.ResponseWriter, r *http.Request) error {
	var req credential.RailwayCredentials
	if err := decodeBody(w, r, &req); err != nil {
		return err
	}

	res, err := h.service.CheckRailway(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := apphttp.ReadBody(w, r)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return apperrors.BadRequestError(nil, apphttp.NoDataMessage)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(fmt.Errorf("invalid JSON: %w", err), "invalid JSON")
	}
	return nil
}
