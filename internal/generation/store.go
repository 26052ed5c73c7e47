package generation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/sqlinline"
)

// Store persists generations, their images, and conversation history.
type Store struct {
	sql infra.SQLExecutor
}

func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{sql: sql}
}

// Insert creates a generation in the processing state and returns it with
// server-assigned identity and timestamps.
func (s *Store) Insert(ctx context.Context, userID, prompt string, settings Settings) (*Generation, error) {
	payload, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	gen := &Generation{
		UserID:   userID,
		Prompt:   prompt,
		Settings: settings,
		Status:   StatusProcessing,
	}
	row := s.sql.QueryRow(ctx, sqlinline.QInsertGeneration, userID, prompt, payload)
	if err := row.Scan(&gen.ID, &gen.CreatedAt, &gen.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert generation: %w", err)
	}
	return gen, nil
}

// ForUser fetches a generation scoped to its owner. ErrNotFound covers both
// missing rows and rows owned by someone else.
func (s *Store) ForUser(ctx context.Context, generationID, userID string) (*Generation, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QSelectGenerationForUser, generationID, userID)
	gen, err := scanGeneration(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select generation: %w", err)
	}
	return gen, nil
}

// ListForUser returns the owner's generations newest first.
func (s *Store) ListForUser(ctx context.Context, userID string, limit, offset int) ([]Generation, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QListGenerationsByUser, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		out = append(out, *gen)
	}
	return out, rows.Err()
}

// UpdateStatus moves a generation to the given status. An empty message
// clears error_message.
func (s *Store) UpdateStatus(ctx context.Context, generationID string, status Status, errorMessage string) error {
	if _, err := s.sql.Exec(ctx, sqlinline.QUpdateGenerationStatus, generationID, string(status), errorMessage); err != nil {
		return fmt.Errorf("update generation status: %w", err)
	}
	return nil
}

// BeginRefinement attempts the completed -> processing transition. It reports
// false when the row was not in the completed state, which closes the race
// between concurrent refinements.
func (s *Store) BeginRefinement(ctx context.Context, generationID, userID string) (bool, error) {
	tag, err := s.sql.Exec(ctx, sqlinline.QBeginRefinement, generationID, userID)
	if err != nil {
		return false, fmt.Errorf("begin refinement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CompleteRefinement marks the generation completed and replaces its prompt
// with the refinement audit trail.
func (s *Store) CompleteRefinement(ctx context.Context, generationID, prompt string) error {
	if _, err := s.sql.Exec(ctx, sqlinline.QCompleteRefinement, generationID, prompt); err != nil {
		return fmt.Errorf("complete refinement: %w", err)
	}
	return nil
}

// Delete removes a generation owned by the user.
func (s *Store) Delete(ctx context.Context, generationID, userID string) error {
	tag, err := s.sql.Exec(ctx, sqlinline.QDeleteGenerationForUser, generationID, userID)
	if err != nil {
		return fmt.Errorf("delete generation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ReapStale fails generations stuck in processing longer than the TTL and
// returns their identifiers.
func (s *Store) ReapStale(ctx context.Context, olderThan string, message string) ([]string, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QReapStaleGenerations, olderThan, message)
	if err != nil {
		return nil, fmt.Errorf("reap stale generations: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan reaped id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// InsertImage stores one generated image URL. Images start private.
func (s *Store) InsertImage(ctx context.Context, generationID, imageURL string) (*GeneratedImage, error) {
	img := &GeneratedImage{
		GenerationID: generationID,
		ImageURL:     imageURL,
	}
	row := s.sql.QueryRow(ctx, sqlinline.QInsertGeneratedImage, generationID, imageURL)
	if err := row.Scan(&img.ID, &img.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert generated image: %w", err)
	}
	return img, nil
}

// ImagesForGeneration returns a generation's images oldest first.
func (s *Store) ImagesForGeneration(ctx context.Context, generationID string) ([]GeneratedImage, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QSelectImagesForGeneration, generationID)
	if err != nil {
		return nil, fmt.Errorf("select generated images: %w", err)
	}
	defer rows.Close()

	var out []GeneratedImage
	for rows.Next() {
		var img GeneratedImage
		if err := rows.Scan(&img.ID, &img.GenerationID, &img.ImageURL, &img.IsPublic, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generated image: %w", err)
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// ImageURLsForGeneration returns just the stored URLs.
func (s *Store) ImageURLsForGeneration(ctx context.Context, generationID string) ([]string, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QSelectImageURLsForGeneration, generationID)
	if err != nil {
		return nil, fmt.Errorf("select image urls: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scan image url: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}

// SetImageVisibility toggles an image's gallery visibility. Ownership is
// enforced through the owning generation.
func (s *Store) SetImageVisibility(ctx context.Context, imageID, userID string, public bool) (*GeneratedImage, error) {
	var img GeneratedImage
	row := s.sql.QueryRow(ctx, sqlinline.QUpdateImageVisibilityForUser, imageID, userID, public)
	if err := row.Scan(&img.ID, &img.GenerationID, &img.ImageURL, &img.IsPublic, &img.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update image visibility: %w", err)
	}
	return &img, nil
}

// PublicGallery pages through public images newest first and reports the
// total count for pagination.
func (s *Store) PublicGallery(ctx context.Context, limit, offset int) ([]GalleryImage, int, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QSelectPublicGallery, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select public gallery: %w", err)
	}
	defer rows.Close()

	var out []GalleryImage
	for rows.Next() {
		var (
			img      GalleryImage
			settings []byte
		)
		if err := rows.Scan(&img.ID, &img.GenerationID, &img.ImageURL, &img.CreatedAt, &img.UserID, &img.Prompt, &settings); err != nil {
			return nil, 0, fmt.Errorf("scan gallery image: %w", err)
		}
		if len(settings) > 0 {
			if err := json.Unmarshal(settings, &img.Settings); err != nil {
				return nil, 0, fmt.Errorf("unmarshal gallery settings: %w", err)
			}
		}
		out = append(out, img)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.sql.QueryRow(ctx, sqlinline.QCountPublicGallery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count public gallery: %w", err)
	}
	return out, total, nil
}

// InsertHistory appends one conversation turn.
func (s *Store) InsertHistory(ctx context.Context, generationID, role, content string, imageURLs []string) (*HistoryEntry, error) {
	if imageURLs == nil {
		imageURLs = []string{}
	}
	entry := &HistoryEntry{
		GenerationID: generationID,
		Role:         role,
		Content:      content,
		ImageURLs:    imageURLs,
	}
	row := s.sql.QueryRow(ctx, sqlinline.QInsertHistoryEntry, generationID, role, content, imageURLs)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert history entry: %w", err)
	}
	return entry, nil
}

// HistoryForGeneration returns all turns oldest first.
func (s *Store) HistoryForGeneration(ctx context.Context, generationID string) ([]HistoryEntry, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QSelectHistoryForGeneration, generationID)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.GenerationID, &entry.Role, &entry.Content, &entry.ImageURLs, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

type generationScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row generationScanner) (*Generation, error) {
	var (
		gen          Generation
		settings     []byte
		errorMessage *string
	)
	if err := row.Scan(&gen.ID, &gen.UserID, &gen.Prompt, &settings, &gen.Status, &errorMessage, &gen.CreatedAt, &gen.UpdatedAt); err != nil {
		return nil, err
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &gen.Settings); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	}
	if errorMessage != nil {
		gen.ErrorMessage = *errorMessage
	}
	return &gen, nil
}
