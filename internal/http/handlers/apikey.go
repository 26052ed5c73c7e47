package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra/credentials"
)

type apiKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// APIKeyStatus reports whether a key is stored, plus a last-4 hint. The key
// itself is never returned.
func (a *App) APIKeyStatus(w http.ResponseWriter, r *http.Request) {
	hint, configured, err := a.Credentials.Hint(r.Context(), a.currentUserID(r))
	if err != nil {
		if errors.Is(err, credentials.ErrNotConfigured) {
			a.error(w, http.StatusServiceUnavailable, "unavailable", "credential storage is not configured")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: api key status failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load api key status")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"configured": configured,
		"hint":       hint,
	})
}

func (a *App) APIKeySet(w http.ResponseWriter, r *http.Request) {
	var req apiKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "apiKey is required")
		return
	}

	if err := a.Credentials.Set(r.Context(), a.currentUserID(r), apiKey); err != nil {
		if errors.Is(err, credentials.ErrNotConfigured) {
			a.error(w, http.StatusServiceUnavailable, "unavailable", "credential storage is not configured")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: api key set failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to store api key")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"configured": true})
}

func (a *App) APIKeyDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Credentials.Delete(r.Context(), a.currentUserID(r)); err != nil {
		a.Logger.Error().Err(err).Msg("handlers: api key delete failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete api key")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"configured": false})
}
