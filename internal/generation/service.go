package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/providers/genai"
)

// ErrNoAPIKey is returned before any generation row is created when the user
// has not stored a provider key.
var ErrNoAPIKey = errors.New("no API key configured")

// ImageGenerator is the provider surface the orchestrator depends on.
type ImageGenerator interface {
	Generate(ctx context.Context, req genai.GenerateRequest) genai.Result
}

// APIKeySource resolves the user's stored provider key.
type APIKeySource interface {
	DecryptedAPIKey(ctx context.Context, userID string) (string, error)
}

// BlobStore persists image bytes and returns a serveable URL.
type BlobStore interface {
	Save(namespace, filename string, data []byte) (string, error)
	Remove(fileURL string) error
}

const storageNamespace = "generations"

// Service orchestrates generations end to end: reference resolution,
// provider calls, image persistence, history bookkeeping, and the status
// state machine.
type Service struct {
	store     *Store
	generator ImageGenerator
	keys      APIKeySource
	blobs     BlobStore
	logger    infra.Logger
}

func NewService(store *Store, generator ImageGenerator, keys APIKeySource, blobs BlobStore, logger infra.Logger) *Service {
	return &Service{
		store:     store,
		generator: generator,
		keys:      keys,
		blobs:     blobs,
		logger:    logger,
	}
}

// ReferenceInput is a caller-supplied reference: either a saved avatar id or
// an inline image URL with optional type and name.
type ReferenceInput struct {
	AvatarID string `json:"avatarId,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Type     string `json:"type,omitempty"`
	Name     string `json:"name,omitempty"`
}

// StartInput carries one generation request.
type StartInput struct {
	Prompt     string           `json:"prompt"`
	Settings   Settings         `json:"settings"`
	References []ReferenceInput `json:"references,omitempty"`
}

// Outcome is the result of a start or refine operation. Success false with a
// nil error means the provider declined; the generation row still records
// what happened.
type Outcome struct {
	Success      bool             `json:"success"`
	Generation   *Generation      `json:"generation"`
	Images       []GeneratedImage `json:"images,omitempty"`
	History      []HistoryEntry   `json:"history,omitempty"`
	Text         string           `json:"text,omitempty"`
	ErrorMessage string           `json:"error,omitempty"`
	Warnings     []string         `json:"warnings,omitempty"`
}

// Start runs a fresh generation. Validation problems surface as errors;
// provider failures are folded into the Outcome with the generation marked
// failed.
func (s *Service) Start(ctx context.Context, userID string, input StartInput) (*Outcome, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	settings := input.Settings
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	apiKey, err := s.keys.DecryptedAPIKey(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load api key: %w", err)
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	refs, warnings, err := s.resolveReferences(ctx, userID, input.References)
	if err != nil {
		return nil, err
	}

	gen, err := s.store.Insert(ctx, userID, prompt, settings)
	if err != nil {
		return nil, err
	}

	// The user turn is persisted before dispatch so a failed generation still
	// records what was asked.
	warnings = append(warnings, s.recordUserTurn(ctx, gen.ID, prompt, referenceURLs(refs))...)

	result := s.generator.Generate(ctx, genai.GenerateRequest{
		APIKey:          apiKey,
		Prompt:          prompt,
		Resolution:      settings.Resolution,
		AspectRatio:     settings.AspectRatio,
		ImageCount:      settings.ImageCount,
		ReferenceImages: providerReferences(refs),
	})
	if !result.Success {
		return s.failGeneration(ctx, gen, result, warnings), nil
	}

	saved, saveWarnings := s.persistImages(ctx, gen.ID, result.Images, false)
	warnings = append(warnings, saveWarnings...)
	if len(saved) == 0 {
		result.Error = "Failed to store generated images."
		return s.failGeneration(ctx, gen, result, warnings), nil
	}

	warnings = append(warnings, s.recordAssistantTurn(ctx, gen.ID, result.Text, saved)...)

	if err := s.store.UpdateStatus(ctx, gen.ID, StatusCompleted, ""); err != nil {
		return nil, err
	}
	gen.Status = StatusCompleted
	gen.ErrorMessage = ""

	return &Outcome{
		Success:    true,
		Generation: gen,
		Images:     saved,
		Text:       result.Text,
		Warnings:   warnings,
	}, nil
}

// Refine runs a follow-up edit on a completed generation. The caller may
// select which stored image anchors the edit; an unknown or empty selection
// falls back to the first image. The row moves back to processing for the
// duration; any failure returns it to completed so the prior result is never
// lost.
func (s *Service) Refine(ctx context.Context, userID, generationID, instruction, selectedImageID string) (*Outcome, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return nil, ErrEmptyPrompt
	}

	gen, err := s.store.ForUser(ctx, generationID, userID)
	if err != nil {
		return nil, err
	}
	if gen.Status != StatusCompleted {
		return nil, ErrNotRefinable
	}

	priorImages, err := s.store.ImagesForGeneration(ctx, generationID)
	if err != nil {
		return nil, err
	}
	if len(priorImages) == 0 {
		return nil, ErrNoImages
	}
	reference := refinementReference(priorImages, selectedImageID)

	apiKey, err := s.keys.DecryptedAPIKey(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load api key: %w", err)
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	ok, err := s.store.BeginRefinement(ctx, generationID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRefineInFlight
	}
	gen.Status = StatusProcessing

	// Prior turns are loaded before the new user turn is appended so the
	// instruction is not replayed twice.
	entries, err := s.store.HistoryForGeneration(ctx, generationID)
	if err != nil {
		return nil, s.revertRefinement(ctx, gen, err)
	}

	warnings := s.recordUserTurn(ctx, gen.ID, instruction, []string{reference.ImageURL})

	result := s.generator.Generate(ctx, genai.GenerateRequest{
		APIKey:          apiKey,
		Prompt:          instruction,
		Resolution:      gen.Settings.Resolution,
		AspectRatio:     gen.Settings.AspectRatio,
		ImageCount:      gen.Settings.ImageCount,
		ReferenceImages: []genai.ReferenceImage{reference},
		History:         providerHistory(entries),
	})
	if !result.Success {
		return s.abortRefinement(ctx, gen, result.Error, warnings)
	}

	saved, saveWarnings := s.persistImages(ctx, gen.ID, result.Images, true)
	warnings = append(warnings, saveWarnings...)
	if len(saved) == 0 {
		return s.abortRefinement(ctx, gen, "Failed to store refined images.", warnings)
	}

	warnings = append(warnings, s.recordAssistantTurn(ctx, gen.ID, result.Text, saved)...)

	refinedPrompt := gen.Prompt + " | Refinement: " + instruction
	if err := s.store.CompleteRefinement(ctx, gen.ID, refinedPrompt); err != nil {
		return nil, err
	}
	gen.Prompt = refinedPrompt
	gen.Status = StatusCompleted
	gen.ErrorMessage = ""

	allImages, err := s.store.ImagesForGeneration(ctx, generationID)
	if err != nil {
		s.logger.Warn().Err(err).Str("generation_id", gen.ID).Msg("generation: could not reload images")
		allImages = saved
	}
	history, err := s.store.HistoryForGeneration(ctx, generationID)
	if err != nil {
		s.logger.Warn().Err(err).Str("generation_id", gen.ID).Msg("generation: could not reload history")
	}

	return &Outcome{
		Success:    true,
		Generation: gen,
		Images:     allImages,
		History:    history,
		Text:       result.Text,
		Warnings:   warnings,
	}, nil
}

// Detail returns a generation with its images and conversation history.
func (s *Service) Detail(ctx context.Context, userID, generationID string) (*Generation, []GeneratedImage, []HistoryEntry, error) {
	gen, err := s.store.ForUser(ctx, generationID, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	images, err := s.store.ImagesForGeneration(ctx, generationID)
	if err != nil {
		return nil, nil, nil, err
	}
	history, err := s.store.HistoryForGeneration(ctx, generationID)
	if err != nil {
		return nil, nil, nil, err
	}
	return gen, images, history, nil
}

// List pages through the user's generations.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Generation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListForUser(ctx, userID, limit, offset)
}

// Delete removes a generation and cleans up its stored images best effort.
func (s *Service) Delete(ctx context.Context, userID, generationID string) error {
	urls, err := s.store.ImageURLsForGeneration(ctx, generationID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, generationID, userID); err != nil {
		return err
	}
	for _, url := range urls {
		if err := s.blobs.Remove(url); err != nil {
			s.logger.Warn().Err(err).Str("image_url", url).Msg("generation: could not remove stored image")
		}
	}
	return nil
}

// resolveReferences turns caller inputs into fully resolved references. The
// database is authoritative for avatar type and name; unknown avatar ids are
// dropped with a warning rather than failing the whole request.
func (s *Service) resolveReferences(ctx context.Context, userID string, inputs []ReferenceInput) ([]Reference, []string, error) {
	if len(inputs) == 0 {
		return nil, nil, nil
	}

	var ids []string
	for _, in := range inputs {
		if in.AvatarID != "" {
			ids = append(ids, in.AvatarID)
		}
	}
	avatars, err := s.store.AvatarsByIDs(ctx, userID, ids)
	if err != nil {
		return nil, nil, err
	}

	var (
		refs     []Reference
		warnings []string
	)
	for _, in := range inputs {
		if in.AvatarID != "" {
			avatar, found := avatars[in.AvatarID]
			if !found {
				warnings = append(warnings, fmt.Sprintf("avatar %s not found; reference skipped", in.AvatarID))
				continue
			}
			refs = append(refs, Reference{
				AvatarID: avatar.ID,
				ImageURL: avatar.ImageURL,
				Type:     avatar.Type,
				Name:     avatar.Name,
			})
			continue
		}
		if in.ImageURL == "" {
			continue
		}
		refs = append(refs, Reference{
			ImageURL: in.ImageURL,
			Type:     NormalizeAvatarType(in.Type),
			Name:     in.Name,
		})
	}
	return refs, warnings, nil
}

// persistImages writes provider output to blob storage and records each URL.
// Individual failures degrade to warnings; the caller decides what an empty
// result means.
func (s *Service) persistImages(ctx context.Context, generationID string, images []genai.Image, refinement bool) ([]GeneratedImage, []string) {
	var (
		saved    []GeneratedImage
		warnings []string
	)
	now := time.Now().UnixMilli()
	for i, img := range images {
		filename := fmt.Sprintf("gen-%s-%d-%d.%s", generationID, i, now, extensionFor(img.MimeType))
		if refinement {
			filename = fmt.Sprintf("gen-%s-refine-%d-%d.%s", generationID, i, now, extensionFor(img.MimeType))
		}
		url, err := s.blobs.Save(storageNamespace, filename, img.Data)
		if err != nil {
			s.logger.Warn().Err(err).Str("generation_id", generationID).Msg("generation: could not store image")
			warnings = append(warnings, fmt.Sprintf("image %d could not be stored", i+1))
			continue
		}
		record, err := s.store.InsertImage(ctx, generationID, url)
		if err != nil {
			s.logger.Warn().Err(err).Str("generation_id", generationID).Msg("generation: could not record image")
			warnings = append(warnings, fmt.Sprintf("image %d could not be recorded", i+1))
			continue
		}
		saved = append(saved, *record)
	}
	return saved, warnings
}

// recordUserTurn appends the user's side of one exchange. History is
// bookkeeping; failures become warnings instead of failing the request.
func (s *Service) recordUserTurn(ctx context.Context, generationID, content string, imageURLs []string) []string {
	if _, err := s.store.InsertHistory(ctx, generationID, RoleUser, content, imageURLs); err != nil {
		s.logger.Warn().Err(err).Str("generation_id", generationID).Msg("generation: could not record user turn")
		return []string{"conversation history could not be recorded"}
	}
	return nil
}

// recordAssistantTurn appends the provider's side, substituting a fallback
// message when it returned no text.
func (s *Service) recordAssistantTurn(ctx context.Context, generationID, text string, saved []GeneratedImage) []string {
	content := text
	if content == "" {
		content = fmt.Sprintf("Generated %d image(s)", len(saved))
	}
	urls := make([]string, 0, len(saved))
	for _, img := range saved {
		urls = append(urls, img.ImageURL)
	}
	if _, err := s.store.InsertHistory(ctx, generationID, RoleAssistant, content, urls); err != nil {
		s.logger.Warn().Err(err).Str("generation_id", generationID).Msg("generation: could not record assistant turn")
		return []string{"conversation history could not be recorded"}
	}
	return nil
}

func (s *Service) failGeneration(ctx context.Context, gen *Generation, result genai.Result, warnings []string) *Outcome {
	if err := s.store.UpdateStatus(ctx, gen.ID, StatusFailed, result.Error); err != nil {
		s.logger.Error().Err(err).Str("generation_id", gen.ID).Msg("generation: could not mark failed")
	}
	gen.Status = StatusFailed
	gen.ErrorMessage = result.Error
	return &Outcome{
		Success:      false,
		Generation:   gen,
		Text:         result.Text,
		ErrorMessage: result.Error,
		Warnings:     warnings,
	}
}

// abortRefinement returns the generation to completed. The prior images and
// prompt stay intact; the failure travels only in the response.
func (s *Service) abortRefinement(ctx context.Context, gen *Generation, message string, warnings []string) (*Outcome, error) {
	if err := s.store.UpdateStatus(ctx, gen.ID, StatusCompleted, ""); err != nil {
		return nil, err
	}
	gen.Status = StatusCompleted
	return &Outcome{
		Success:      false,
		Generation:   gen,
		ErrorMessage: message,
		Warnings:     warnings,
	}, nil
}

func (s *Service) revertRefinement(ctx context.Context, gen *Generation, cause error) error {
	if err := s.store.UpdateStatus(ctx, gen.ID, StatusCompleted, ""); err != nil {
		s.logger.Error().Err(err).Str("generation_id", gen.ID).Msg("generation: could not revert refinement")
	}
	gen.Status = StatusCompleted
	return cause
}

func referenceURLs(refs []Reference) []string {
	if len(refs) == 0 {
		return nil
	}
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		urls = append(urls, ref.ImageURL)
	}
	return urls
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
