package service

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
	apphttp "github.com/chainsafe/deploy-admin/pkg/app/http"
	"github.com/chainsafe/deploy-admin/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the /user endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/user", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.getUser, logger))
		r.Post("/", apphttp.HandleError(h.createUser, logger))
		r.MethodNotAllowed(apphttp.MethodNotAllowed(logger))
	})
}

// getUser handles GET /user?walletAddress=
func (h *HTTP) getUser(w http.ResponseWriter, r *http.Request) error {
	if _, err := apphttp.ReadBody(w, r); err != nil {
		return err
	}

	walletAddress := r.URL.Query().Get("walletAddress")
	if walletAddress == "" {
		return apperrors.BadRequestError(nil, WalletRequiredMessage)
	}

	usr, err := h.service.GetUserByWallet(r.Context(), walletAddress)
	if err != nil {
		return err
	}

	// nil encodes as null
	apphttp.WriteJSON(w, http.StatusOK, usr)
	return nil
}

// createUser handles POST /user
func (h *HTTP) createUser(w http.ResponseWriter, r *http.Request) error {
	body, err := apphttp.ReadBody(w, r)
	if err != nil {
		return err
	}

	var req user.CreateRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return apperrors.GeneralError(fmt.Errorf("invalid JSON: %w", err))
		}
	}
	if req.WalletAddress == "" {
		return apperrors.BadRequestError(nil, WalletRequiredMessage)
	}

	usr, err := h.service.CreateUser(r.Context(), req.WalletAddress)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, usr)
	return nil
}
