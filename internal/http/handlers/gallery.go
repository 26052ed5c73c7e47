package handlers

import (
	"net/http"
	"strconv"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/generation"
)

// GalleryList pages through publicly shared images. No authentication
// required.
func (a *App) GalleryList(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	items, total, err := a.Store.PublicGallery(r.Context(), limit, offset)
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: gallery load failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load gallery")
		return
	}
	if items == nil {
		items = []generation.GalleryImage{}
	}
	a.json(w, http.StatusOK, map[string]any{
		"items":  items,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
