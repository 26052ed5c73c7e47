package credentials

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/sqlinline"
)

const testSecret = "3132333435363738393031323334353637383930313233343536373839303132"

type keyRecord struct {
	encrypted string
	iv        string
	hint      string
}

// memoryKeys is an in-memory stand-in for the user_api_keys table.
type memoryKeys struct {
	rows map[string]keyRecord
}

func newMemoryKeys() *memoryKeys {
	return &memoryKeys{rows: make(map[string]keyRecord)}
}

func (m *memoryKeys) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	switch query {
	case sqlinline.QUpsertUserAPIKey:
		m.rows[args[0].(string)] = keyRecord{
			encrypted: args[1].(string),
			iv:        args[2].(string),
			hint:      args[3].(string),
		}
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case sqlinline.QDeleteUserAPIKey:
		delete(m.rows, args[0].(string))
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.CommandTag{}, pgx.ErrNoRows
}

func (m *memoryKeys) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	rec, ok := m.rows[args[0].(string)]
	if !ok {
		return missRow{}
	}
	switch query {
	case sqlinline.QSelectUserAPIKey:
		return valueRow{values: []string{rec.encrypted, rec.iv}}
	case sqlinline.QSelectUserAPIKeyHint:
		return valueRow{values: []string{rec.hint}}
	}
	return missRow{}
}

func (m *memoryKeys) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

type missRow struct{}

func (missRow) Scan(dest ...any) error { return pgx.ErrNoRows }

type valueRow struct {
	values []string
}

func (r valueRow) Scan(dest ...any) error {
	for i, d := range dest {
		*(d.(*string)) = r.values[i]
	}
	return nil
}

func TestSetAndDecryptRoundTrip(t *testing.T) {
	db := newMemoryKeys()
	store, err := NewStore(db, testSecret)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "user-1", "  AIzaSyExampleKey1234  "); err != nil {
		t.Fatalf("set: %v", err)
	}

	rec := db.rows["user-1"]
	if strings.Contains(rec.encrypted, "AIzaSy") {
		t.Fatal("api key stored in the clear")
	}
	if rec.hint != "1234" {
		t.Fatalf("hint = %q, want %q", rec.hint, "1234")
	}

	key, err := store.DecryptedAPIKey(ctx, "user-1")
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if key != "AIzaSyExampleKey1234" {
		t.Fatalf("key = %q", key)
	}

	hint, exists, err := store.Hint(ctx, "user-1")
	if err != nil || !exists || hint != "1234" {
		t.Fatalf("hint = %q exists=%v err=%v", hint, exists, err)
	}
}

func TestDecryptedAPIKeyMissing(t *testing.T) {
	store, err := NewStore(newMemoryKeys(), testSecret)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	key, err := store.DecryptedAPIKey(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if key != "" {
		t.Fatalf("key = %q, want empty", key)
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	db := newMemoryKeys()
	store, err := NewStore(db, testSecret)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	if err := store.Set(ctx, "user-1", "secret-key"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, exists, _ := store.Hint(ctx, "user-1"); exists {
		t.Fatal("key still present after delete")
	}
}

func TestNewStoreRejectsBadSecret(t *testing.T) {
	if _, err := NewStore(newMemoryKeys(), "deadbeef"); err == nil {
		t.Fatal("expected error for short secret")
	}
	if _, err := NewStore(newMemoryKeys(), "not hex at all"); err == nil {
		t.Fatal("expected error for undecodable secret")
	}
}

func TestOperationsWithoutSecret(t *testing.T) {
	store, err := NewStore(newMemoryKeys(), "")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Set(context.Background(), "user-1", "key"); err != ErrNotConfigured {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
