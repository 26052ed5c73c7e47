package credentials

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/sqlinline"
)

const nonceLength = 12

// ErrNotConfigured is returned when the encryption secret is missing.
var ErrNotConfigured = errors.New("credentials: encryption secret not configured")

// Store persists per-user Gemini API keys encrypted with AES-256-GCM. The IV
// is stored alongside each row; only the last four characters of the key are
// kept in the clear as a display hint.
type Store struct {
	sql    infra.SQLExecutor
	secret []byte
}

// NewStore constructs a Store. The secret may be base64 (padded) or hex
// encoded and must decode to 32 bytes. An empty secret yields a store whose
// operations fail with ErrNotConfigured, keeping the rest of the service
// usable.
func NewStore(sql infra.SQLExecutor, encryptionSecret string) (*Store, error) {
	secret, err := decodeSecret(encryptionSecret)
	if err != nil {
		return nil, err
	}
	return &Store{sql: sql, secret: secret}, nil
}

func decodeSecret(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var (
		decoded []byte
		err     error
	)
	if strings.HasSuffix(raw, "=") {
		decoded, err = base64.StdEncoding.DecodeString(raw)
	} else {
		decoded, err = hex.DecodeString(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("credentials: decode encryption secret: %w", err)
	}
	if len(decoded) != 32 {
		return nil, fmt.Errorf("credentials: encryption secret must be 32 bytes, got %d", len(decoded))
	}
	return decoded, nil
}

// Set encrypts and stores the user's API key, replacing any previous key.
func (s *Store) Set(ctx context.Context, userID, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("credentials: api key is required")
	}
	encrypted, iv, err := s.encrypt(apiKey)
	if err != nil {
		return err
	}
	hint := apiKey
	if len(hint) > 4 {
		hint = hint[len(hint)-4:]
	}
	_, err = s.sql.Exec(ctx, sqlinline.QUpsertUserAPIKey, userID, encrypted, iv, hint)
	return err
}

// DecryptedAPIKey returns the user's API key in the clear, or "" when the
// user has not configured one.
func (s *Store) DecryptedAPIKey(ctx context.Context, userID string) (string, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QSelectUserAPIKey, userID)
	var encrypted, iv string
	if err := row.Scan(&encrypted, &iv); err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", err
	}
	return s.decrypt(encrypted, iv)
}

// Hint returns the stored display hint and whether a key exists.
func (s *Store) Hint(ctx context.Context, userID string) (string, bool, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QSelectUserAPIKeyHint, userID)
	var hint string
	if err := row.Scan(&hint); err != nil {
		if infra.IsNoRows(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return hint, true, nil
}

// Delete removes the user's stored API key.
func (s *Store) Delete(ctx context.Context, userID string) error {
	_, err := s.sql.Exec(ctx, sqlinline.QDeleteUserAPIKey, userID)
	return err
}

func (s *Store) encrypt(plaintext string) (string, string, error) {
	gcm, err := s.cipher()
	if err != nil {
		return "", "", err
	}
	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", "", fmt.Errorf("credentials: generate iv: %w", err)
	}
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), base64.StdEncoding.EncodeToString(nonce), nil
}

func (s *Store) decrypt(encrypted, iv string) (string, error) {
	gcm, err := s.cipher()
	if err != nil {
		return "", err
	}
	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("credentials: decode ciphertext: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return "", fmt.Errorf("credentials: decode iv: %w", err)
	}
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("credentials: decrypt api key: %w", err)
	}
	return string(plaintext), nil
}

func (s *Store) cipher() (cipher.AEAD, error) {
	if len(s.secret) == 0 {
		return nil, ErrNotConfigured
	}
	block, err := aes.NewCipher(s.secret)
	if err != nil {
		return nil, fmt.Errorf("credentials: init cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, nonceLength)
	if err != nil {
		return nil, fmt.Errorf("credentials: init gcm: %w", err)
	}
	return gcm, nil
}
