package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/generation"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/pkg/zip"
)

func (a *App) GenerationsList(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := a.Generations.List(r.Context(), a.currentUserID(r), limit, offset)
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: list generations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load generations")
		return
	}
	if items == nil {
		items = []generation.Generation{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GenerationsGet(w http.ResponseWriter, r *http.Request) {
	gen, images, history, err := a.Generations.Detail(r.Context(), a.currentUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, generation.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "generation not found")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: get generation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load generation")
		return
	}
	if images == nil {
		images = []generation.GeneratedImage{}
	}
	if history == nil {
		history = []generation.HistoryEntry{}
	}
	a.json(w, http.StatusOK, map[string]any{
		"generation": gen,
		"images":     images,
		"history":    history,
	})
}

func (a *App) GenerationsDelete(w http.ResponseWriter, r *http.Request) {
	err := a.Generations.Delete(r.Context(), a.currentUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, generation.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "generation not found")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: delete generation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete generation")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"deleted": true})
}

// GenerationsDownload streams every image of a generation as one zip file.
func (a *App) GenerationsDownload(w http.ResponseWriter, r *http.Request) {
	generationID := chi.URLParam(r, "id")
	userID := a.currentUserID(r)

	if _, err := a.Store.ForUser(r.Context(), generationID, userID); err != nil {
		if errors.Is(err, generation.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "generation not found")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: download lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load generation")
		return
	}

	images, err := a.Store.ImagesForGeneration(r.Context(), generationID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: download images failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load images")
		return
	}
	if len(images) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "generation has no images")
		return
	}

	var entries []zip.Entry
	for _, img := range images {
		data, err := a.Files.Read(img.ImageURL)
		if err != nil {
			a.Logger.Warn().Err(err).Str("image_url", img.ImageURL).Msg("handlers: skipping unreadable image")
			continue
		}
		entries = append(entries, zip.Entry{Filename: path.Base(img.ImageURL), Data: data})
	}
	if len(entries) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no stored images available")
		return
	}

	archive, err := zip.Archive(entries)
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: archive build failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "generation-"+generationID+".zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

type visibilityRequest struct {
	IsPublic bool `json:"isPublic"`
}

// ImagesSetVisibility toggles whether an image appears in the public
// gallery.
func (a *App) ImagesSetVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	img, err := a.Store.SetImageVisibility(r.Context(), chi.URLParam(r, "id"), a.currentUserID(r), req.IsPublic)
	if err != nil {
		if errors.Is(err, generation.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "image not found")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: set image visibility failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update image")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"image": img})
}
