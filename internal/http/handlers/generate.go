package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/generation"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/prompt"
)

type generateRequest struct {
	Prompt     string                      `json:"prompt"`
	Builder    *prompt.BuilderState        `json:"builder,omitempty"`
	Settings   generation.Settings         `json:"settings"`
	References []generation.ReferenceInput `json:"references,omitempty"`
}

type refineRequest struct {
	Instruction     string `json:"instruction"`
	SelectedImageID string `json:"selectedImageId,omitempty"`
}

// GenerationsCreate starts a generation. The prompt may arrive pre-assembled
// or as a builder state that is assembled server side; explicit references
// win over ones derived from the builder.
func (a *App) GenerationsCreate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	input := generation.StartInput{
		Prompt:     req.Prompt,
		Settings:   req.Settings,
		References: req.References,
	}
	if strings.TrimSpace(input.Prompt) == "" && req.Builder != nil {
		input.Prompt = a.Assembler.Assemble(*req.Builder)
		if len(input.References) == 0 {
			for _, sel := range req.Builder.ReferenceSelections() {
				input.References = append(input.References, generation.ReferenceInput{
					AvatarID: sel.AvatarID,
					ImageURL: sel.ImageURL,
					Type:     sel.Type,
				})
			}
		}
	}

	outcome, err := a.Generations.Start(r.Context(), a.currentUserID(r), input)
	if err != nil {
		a.generationError(w, err)
		return
	}
	a.json(w, http.StatusOK, outcome)
}

// GenerationsRefine applies a follow-up instruction to a completed
// generation.
func (a *App) GenerationsRefine(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	outcome, err := a.Generations.Refine(r.Context(), a.currentUserID(r), chi.URLParam(r, "id"), req.Instruction, req.SelectedImageID)
	if err != nil {
		a.generationError(w, err)
		return
	}
	a.json(w, http.StatusOK, outcome)
}

func (a *App) generationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, generation.ErrEmptyPrompt):
		a.error(w, http.StatusBadRequest, "bad_request", "prompt is required")
	case errors.Is(err, generation.ErrNoAPIKey):
		a.error(w, http.StatusBadRequest, "no_api_key", "No API key configured. Please add your Google AI API key in your profile settings.")
	case errors.Is(err, generation.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "generation not found")
	case errors.Is(err, generation.ErrNotRefinable):
		a.error(w, http.StatusConflict, "not_refinable", "only completed generations can be refined")
	case errors.Is(err, generation.ErrNoImages):
		a.error(w, http.StatusBadRequest, "no_images", "generation has no images to refine")
	case errors.Is(err, generation.ErrRefineInFlight):
		a.error(w, http.StatusConflict, "refine_in_flight", "a refinement is already in progress")
	default:
		var invalid *json.UnmarshalTypeError
		if errors.As(err, &invalid) {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
			return
		}
		if msg := err.Error(); strings.Contains(msg, "must be") {
			a.error(w, http.StatusBadRequest, "bad_request", msg)
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: generation request failed")
		a.error(w, http.StatusInternalServerError, "internal", "generation request failed")
	}
}
