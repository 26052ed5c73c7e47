package generation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status tracks a generation through its lifecycle. Transitions are
// pending -> processing -> completed|failed; a refinement moves completed ->
// processing and returns to completed on any refinement failure.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// AvatarType distinguishes person references, which anchor character
// consistency, from object references.
type AvatarType string

const (
	AvatarHuman  AvatarType = "human"
	AvatarObject AvatarType = "object"
)

// NormalizeAvatarType coerces free-form input to a known avatar type,
// defaulting to human.
func NormalizeAvatarType(raw string) AvatarType {
	if AvatarType(strings.ToLower(strings.TrimSpace(raw))) == AvatarObject {
		return AvatarObject
	}
	return AvatarHuman
}

var (
	ErrNotFound       = errors.New("generation not found")
	ErrEmptyPrompt    = errors.New("prompt is required")
	ErrNotRefinable   = errors.New("only completed generations can be refined")
	ErrRefineInFlight = errors.New("a refinement is already in progress")
	ErrNoImages       = errors.New("generation has no images to refine")
)

const (
	DefaultResolution  = "1K"
	DefaultAspectRatio = "1:1"
	DefaultImageCount  = 1
	MaxImageCount      = 4
)

var allowedResolutions = map[string]struct{}{
	"1K": {},
	"2K": {},
	"4K": {},
}

var allowedAspectRatios = map[string]struct{}{
	"1:1":  {},
	"16:9": {},
	"9:16": {},
	"4:3":  {},
	"3:4":  {},
	"21:9": {},
}

// Settings captures the image output parameters persisted with each
// generation and forwarded to the provider.
type Settings struct {
	Resolution  string `json:"resolution"`
	AspectRatio string `json:"aspectRatio"`
	ImageCount  int    `json:"imageCount"`
}

// Normalize fills in server defaults for omitted fields and uppercases the
// resolution so "2k" and "2K" are equivalent.
func (s *Settings) Normalize() {
	if s == nil {
		return
	}
	s.Resolution = strings.ToUpper(strings.TrimSpace(s.Resolution))
	if s.Resolution == "" {
		s.Resolution = DefaultResolution
	}
	s.AspectRatio = strings.TrimSpace(s.AspectRatio)
	if s.AspectRatio == "" {
		s.AspectRatio = DefaultAspectRatio
	}
	if s.ImageCount == 0 {
		s.ImageCount = DefaultImageCount
	}
}

// Validate ensures the settings satisfy the provider contract before
// persistence.
func (s Settings) Validate() error {
	if _, ok := allowedResolutions[s.Resolution]; !ok {
		return fmt.Errorf("resolution must be one of 1K, 2K, 4K")
	}
	if _, ok := allowedAspectRatios[s.AspectRatio]; !ok {
		return fmt.Errorf("aspectRatio must be one of 1:1, 16:9, 9:16, 4:3, 3:4, 21:9")
	}
	if s.ImageCount < 1 || s.ImageCount > MaxImageCount {
		return fmt.Errorf("imageCount must be between 1 and %d", MaxImageCount)
	}
	return nil
}

// Generation is one image-generation request and its outcome.
type Generation struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Prompt       string    `json:"prompt"`
	Settings     Settings  `json:"settings"`
	Status       Status    `json:"status"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GeneratedImage is one stored output image of a generation.
type GeneratedImage struct {
	ID           string    `json:"id"`
	GenerationID string    `json:"generationId"`
	ImageURL     string    `json:"imageUrl"`
	IsPublic     bool      `json:"isPublic"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Conversation roles persisted with history entries.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// HistoryEntry is one turn of a generation's conversation, persisted so
// refinements can rebuild context.
type HistoryEntry struct {
	ID           string    `json:"id"`
	GenerationID string    `json:"generationId"`
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	ImageURLs    []string  `json:"imageUrls"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GalleryImage is a public image joined with the owning generation's
// metadata for the shared gallery.
type GalleryImage struct {
	ID           string    `json:"id"`
	GenerationID string    `json:"generationId"`
	ImageURL     string    `json:"imageUrl"`
	UserID       string    `json:"userId"`
	Prompt       string    `json:"prompt"`
	Settings     Settings  `json:"settings"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Reference is a fully resolved reference image attached to a provider call.
type Reference struct {
	AvatarID string     `json:"avatarId,omitempty"`
	ImageURL string     `json:"imageUrl"`
	Type     AvatarType `json:"type"`
	Name     string     `json:"name,omitempty"`
}
