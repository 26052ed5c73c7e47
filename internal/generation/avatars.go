package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/sqlinline"
)

// Avatar is a saved reference image in a user's library. Its type decides
// how prompts frame the reference.
type Avatar struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	ImageURL    string     `json:"imageUrl"`
	Description string     `json:"description,omitempty"`
	Type        AvatarType `json:"type"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateAvatar stores a new avatar for the user.
func (s *Store) CreateAvatar(ctx context.Context, userID, name, imageURL, description string, avatarType AvatarType) (*Avatar, error) {
	avatar := &Avatar{
		UserID:      userID,
		Name:        name,
		ImageURL:    imageURL,
		Description: description,
		Type:        avatarType,
	}
	row := s.sql.QueryRow(ctx, sqlinline.QInsertAvatar, userID, name, imageURL, description, string(avatarType))
	if err := row.Scan(&avatar.ID, &avatar.CreatedAt, &avatar.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert avatar: %w", err)
	}
	return avatar, nil
}

// AvatarsForUser lists the user's avatars newest first.
func (s *Store) AvatarsForUser(ctx context.Context, userID string) ([]Avatar, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QListAvatarsByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("list avatars: %w", err)
	}
	defer rows.Close()

	var out []Avatar
	for rows.Next() {
		avatar, err := scanAvatar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan avatar: %w", err)
		}
		out = append(out, *avatar)
	}
	return out, rows.Err()
}

// AvatarForUser fetches one avatar scoped to its owner.
func (s *Store) AvatarForUser(ctx context.Context, avatarID, userID string) (*Avatar, error) {
	avatar, err := scanAvatar(s.sql.QueryRow(ctx, sqlinline.QSelectAvatarForUser, avatarID, userID))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select avatar: %w", err)
	}
	return avatar, nil
}

// AvatarsByIDs resolves a batch of avatar ids owned by the user. Unknown or
// foreign ids are simply absent from the result.
func (s *Store) AvatarsByIDs(ctx context.Context, userID string, ids []string) (map[string]Avatar, error) {
	out := make(map[string]Avatar, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := s.sql.Query(ctx, sqlinline.QSelectAvatarsByIDsForUser, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("select avatars by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		avatar, err := scanAvatar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan avatar: %w", err)
		}
		out[avatar.ID] = *avatar
	}
	return out, rows.Err()
}

// UpdateAvatar applies a partial update. Empty fields keep their current
// values.
func (s *Store) UpdateAvatar(ctx context.Context, avatarID, userID, name, description string, avatarType string) (*Avatar, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QUpdateAvatarForUser, avatarID, userID, name, description, avatarType)
	avatar, err := scanAvatar(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update avatar: %w", err)
	}
	return avatar, nil
}

// DeleteAvatar removes the avatar and returns its stored image URL so the
// caller can clean up the blob.
func (s *Store) DeleteAvatar(ctx context.Context, avatarID, userID string) (string, error) {
	var imageURL string
	row := s.sql.QueryRow(ctx, sqlinline.QDeleteAvatarForUser, avatarID, userID)
	if err := row.Scan(&imageURL); err != nil {
		if infra.IsNoRows(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("delete avatar: %w", err)
	}
	return imageURL, nil
}

func scanAvatar(row generationScanner) (*Avatar, error) {
	var (
		avatar  Avatar
		rawType string
	)
	if err := row.Scan(&avatar.ID, &avatar.UserID, &avatar.Name, &avatar.ImageURL, &avatar.Description, &rawType, &avatar.CreatedAt, &avatar.UpdatedAt); err != nil {
		return nil, err
	}
	avatar.Type = NormalizeAvatarType(rawType)
	return &avatar, nil
}
