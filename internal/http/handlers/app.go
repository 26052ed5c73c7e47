package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/catalog"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/generation"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra/credentials"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/middleware"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/prompt"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/storage"
)

// App bundles the dependencies every handler needs.
type App struct {
	Config      *infra.Config
	Logger      infra.Logger
	SQL         infra.SQLExecutor
	Store       *generation.Store
	Generations *generation.Service
	Catalog     *catalog.Catalog
	Assembler   *prompt.Assembler
	Credentials *credentials.Store
	Files       *storage.FileStore
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{
			"code":    errCode,
			"message": message,
		},
	})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
