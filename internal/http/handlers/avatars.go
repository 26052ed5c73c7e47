package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/generation"
)

const avatarNamespace = "avatars"

type avatarCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ImageData   string `json:"imageData"`
}

type avatarUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func (a *App) AvatarsCreate(w http.ResponseWriter, r *http.Request) {
	var req avatarCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	name := displayName(req.Name)
	if name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	mimeType, data, err := decodeImageData(req.ImageData)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	filename := fmt.Sprintf("avatar-%s-%d.%s", uuid.NewString(), time.Now().UnixMilli(), extensionFor(mimeType))
	imageURL, err := a.Files.Save(avatarNamespace, filename, data)
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: avatar image store failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to store avatar image")
		return
	}

	avatar, err := a.Store.CreateAvatar(r.Context(), a.currentUserID(r), name, imageURL,
		strings.TrimSpace(req.Description), generation.NormalizeAvatarType(req.Type))
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: avatar create failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create avatar")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"avatar": avatar})
}

func (a *App) AvatarsList(w http.ResponseWriter, r *http.Request) {
	avatars, err := a.Store.AvatarsForUser(r.Context(), a.currentUserID(r))
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: avatar list failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load avatars")
		return
	}
	if avatars == nil {
		avatars = []generation.Avatar{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": avatars})
}

func (a *App) AvatarsUpdate(w http.ResponseWriter, r *http.Request) {
	var req avatarUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	avatarType := ""
	if strings.TrimSpace(req.Type) != "" {
		avatarType = string(generation.NormalizeAvatarType(req.Type))
	}
	avatar, err := a.Store.UpdateAvatar(r.Context(), chi.URLParam(r, "id"), a.currentUserID(r),
		displayName(req.Name), strings.TrimSpace(req.Description), avatarType)
	if err != nil {
		if errors.Is(err, generation.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "avatar not found")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: avatar update failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update avatar")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"avatar": avatar})
}

func (a *App) AvatarsDelete(w http.ResponseWriter, r *http.Request) {
	imageURL, err := a.Store.DeleteAvatar(r.Context(), chi.URLParam(r, "id"), a.currentUserID(r))
	if err != nil {
		if errors.Is(err, generation.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "avatar not found")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: avatar delete failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete avatar")
		return
	}
	if imageURL != "" {
		if err := a.Files.Remove(imageURL); err != nil {
			a.Logger.Warn().Err(err).Str("image_url", imageURL).Msg("handlers: avatar image cleanup failed")
		}
	}
	a.json(w, http.StatusOK, map[string]any{"deleted": true})
}

// displayName collapses whitespace and title-cases names the user typed in
// all lowercase.
func displayName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name != "" && name == strings.ToLower(name) {
		name = cases.Title(language.English).String(name)
	}
	return name
}

func decodeImageData(imageData string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(imageData), "data:")
	if !ok {
		return "", nil, errors.New("imageData must be a base64 data URL")
	}
	mimeType, encoded, ok := strings.Cut(rest, ";base64,")
	if !ok || mimeType == "" || encoded == "" {
		return "", nil, errors.New("imageData must be a base64 data URL")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, errors.New("imageData is not valid base64")
	}
	return mimeType, data, nil
}

func extensionFor(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}
