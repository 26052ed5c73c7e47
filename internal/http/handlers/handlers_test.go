package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/catalog"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/generation"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/http/handlers"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/http/httpapi"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/middleware"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/prompt"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/providers/genai"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/sqlinline"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/storage"
)

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// stubDB supports exactly the statements the generate flow issues.
type stubDB struct {
	nextID   int
	statuses map[string]string
	images   []string
	history  []string
}

func newStubDB() *stubDB {
	return &stubDB{statuses: make(map[string]string)}
}

func (s *stubDB) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	switch query {
	case sqlinline.QUpdateGenerationStatus:
		s.statuses[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	default:
		return pgconn.CommandTag{}, fmt.Errorf("unsupported exec: %s", query)
	}
}

func (s *stubDB) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	switch query {
	case sqlinline.QInsertGeneration:
		s.nextID++
		id := fmt.Sprintf("gen-%d", s.nextID)
		s.statuses[id] = "processing"
		return stubRow{scan: func(dest ...any) error {
			*(dest[0].(*string)) = id
			*(dest[1].(*time.Time)) = time.Now()
			*(dest[2].(*time.Time)) = time.Now()
			return nil
		}}
	case sqlinline.QInsertGeneratedImage:
		s.images = append(s.images, args[1].(string))
		s.nextID++
		id := fmt.Sprintf("img-%d", s.nextID)
		return stubRow{scan: func(dest ...any) error {
			*(dest[0].(*string)) = id
			*(dest[1].(*time.Time)) = time.Now()
			return nil
		}}
	case sqlinline.QInsertHistoryEntry:
		s.history = append(s.history, args[1].(string)+": "+args[2].(string))
		s.nextID++
		id := fmt.Sprintf("hist-%d", s.nextID)
		return stubRow{scan: func(dest ...any) error {
			*(dest[0].(*string)) = id
			*(dest[1].(*time.Time)) = time.Now()
			return nil
		}}
	default:
		return stubRow{scan: func(dest ...any) error {
			return fmt.Errorf("unsupported query_row: %s", query)
		}}
	}
}

func (s *stubDB) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("unsupported query: %s", query)
}

type stubGenerator struct {
	requests []genai.GenerateRequest
	result   genai.Result
}

func (g *stubGenerator) Generate(ctx context.Context, req genai.GenerateRequest) genai.Result {
	g.requests = append(g.requests, req)
	return g.result
}

type stubKeys struct {
	key string
}

func (k stubKeys) DecryptedAPIKey(ctx context.Context, userID string) (string, error) {
	return k.key, nil
}

type testEnv struct {
	app       *handlers.App
	db        *stubDB
	generator *stubGenerator
}

func newTestApp(t *testing.T, keys stubKeys, generator *stubGenerator) *testEnv {
	t.Helper()
	db := newStubDB()
	files, err := storage.NewFileStore(t.TempDir(), "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	logger := zerolog.New(io.Discard)
	store := generation.NewStore(db)
	cat := catalog.Default()
	app := &handlers.App{
		Config: &infra.Config{
			AppEnv:         "test",
			JWTSecret:      "test-secret",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Logger:      logger,
		SQL:         db,
		Store:       store,
		Generations: generation.NewService(store, generator, keys, files, logger),
		Catalog:     cat,
		Assembler:   prompt.NewAssembler(cat),
		Files:       files,
	}
	return &testEnv{app: app, db: db, generator: generator}
}

func newRouterForTest(app *handlers.App) http.Handler {
	return httpapi.NewRouter(app, nil)
}

func authHeader(t *testing.T, secret, userID string) string {
	t.Helper()
	token, err := middleware.SignJWT(secret, middleware.TokenClaims{
		Sub: userID,
		Exp: time.Now().Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return "Bearer " + token
}

func successResult(count int) genai.Result {
	images := make([]genai.Image, count)
	for i := range images {
		images[i] = genai.Image{Data: []byte{byte(i + 1)}, MimeType: "image/png"}
	}
	return genai.Result{Success: true, Images: images, Text: "done"}
}

func TestHealth(t *testing.T) {
	env := newTestApp(t, stubKeys{key: "k"}, &stubGenerator{})
	rec := httptest.NewRecorder()
	env.app.Health(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["env"] != "test" {
		t.Fatalf("body = %v", body)
	}
}

func TestTemplates(t *testing.T) {
	env := newTestApp(t, stubKeys{key: "k"}, &stubGenerator{})

	rec := httptest.NewRecorder()
	env.app.TemplatesList(rec, httptest.NewRequest(http.MethodGet, "/v1/templates", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Categories []struct {
			Category  string             `json:"category"`
			Templates []catalog.Template `json:"templates"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Categories) != len(catalog.Categories()) {
		t.Fatalf("categories = %d, want %d", len(body.Categories), len(catalog.Categories()))
	}
	if body.Categories[0].Category != "style" || len(body.Categories[0].Templates) == 0 {
		t.Fatalf("first category = %+v", body.Categories[0])
	}
}

func TestPromptAssembleEndpoint(t *testing.T) {
	env := newTestApp(t, stubKeys{key: "k"}, &stubGenerator{})

	payload := `{
		"style": "style-anime",
		"location": "location-beach",
		"subjects": [{"id": "s1", "avatarName": "Hero", "clothing": "red cape"}],
		"customPrompt": "extra sparkle"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/prompt/assemble", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	env.app.PromptAssemble(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, fragment := range []string{"anime style", "Hero, red cape", "in beach setting", "extra sparkle"} {
		if !strings.Contains(body.Prompt, fragment) {
			t.Fatalf("prompt %q missing %q", body.Prompt, fragment)
		}
	}
}

func TestGenerationsCreateRequiresAuth(t *testing.T) {
	env := newTestApp(t, stubKeys{key: "k"}, &stubGenerator{result: successResult(1)})
	router := newRouterForTest(env.app)

	req := httptest.NewRequest(http.MethodPost, "/v1/generations", strings.NewReader(`{"prompt":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGenerationsCreateFromBuilder(t *testing.T) {
	env := newTestApp(t, stubKeys{key: "k"}, &stubGenerator{result: successResult(1)})
	router := newRouterForTest(env.app)

	payload := map[string]any{
		"builder": map[string]any{
			"style":        "style-anime",
			"location":     "location-beach",
			"subjects":     []map[string]any{{"id": "s1", "avatarName": "Hero", "clothing": "red cape"}},
			"customPrompt": "extra sparkle",
		},
		"settings": map[string]any{"resolution": "2K", "aspectRatio": "16:9", "imageCount": 1},
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/v1/generations", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, "test-secret", "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var outcome generation.Outcome
	if err := json.Unmarshal(rec.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !outcome.Success {
		t.Fatalf("outcome failed: %s", outcome.ErrorMessage)
	}
	if len(outcome.Images) != 1 {
		t.Fatalf("images = %d, want 1", len(outcome.Images))
	}
	if env.db.statuses[outcome.Generation.ID] != "completed" {
		t.Fatalf("stored status = %s", env.db.statuses[outcome.Generation.ID])
	}

	sent := env.generator.requests[0].Prompt
	for _, fragment := range []string{"anime style", "in beach setting", "extra sparkle"} {
		if !strings.Contains(sent, fragment) {
			t.Fatalf("assembled prompt %q missing %q", sent, fragment)
		}
	}
	if env.generator.requests[0].Resolution != "2K" {
		t.Fatalf("resolution = %q", env.generator.requests[0].Resolution)
	}
}

func TestGenerationsCreateWithoutAPIKey(t *testing.T) {
	env := newTestApp(t, stubKeys{}, &stubGenerator{})
	router := newRouterForTest(env.app)

	req := httptest.NewRequest(http.MethodPost, "/v1/generations", strings.NewReader(`{"prompt":"x"}`))
	req.Header.Set("Authorization", authHeader(t, "test-secret", "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no_api_key") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
