package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestEnhancePrompt(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		refs   []ReferenceImage
		want   string
	}{
		{
			name:   "no references",
			prompt: "a castle at dusk",
			refs:   nil,
			want:   "a castle at dusk",
		},
		{
			name:   "human references prepend",
			prompt: "a castle at dusk",
			refs: []ReferenceImage{
				{Kind: ReferenceHuman, Name: "Alice"},
				{Kind: ReferenceHuman, Name: "Bob"},
			},
			want: "Using the reference images of Alice, Bob for character consistency, a castle at dusk",
		},
		{
			name:   "object references append",
			prompt: "a castle at dusk",
			refs: []ReferenceImage{
				{Kind: ReferenceObject, Name: "the sword"},
			},
			want: "a castle at dusk Include the sword as shown in the reference images.",
		},
		{
			name:   "mixed references",
			prompt: "a castle at dusk",
			refs: []ReferenceImage{
				{Kind: ReferenceHuman, Name: "Alice"},
				{Kind: ReferenceObject, Name: "the sword"},
			},
			want: "Using the reference images of Alice for character consistency, a castle at dusk Include the sword as shown in the reference images.",
		},
		{
			name:   "missing names fall back",
			prompt: "a castle at dusk",
			refs: []ReferenceImage{
				{Kind: ReferenceHuman},
				{Kind: ReferenceObject},
			},
			want: "Using the reference images of the person for character consistency, a castle at dusk Include the object as shown in the reference images.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := enhancePrompt(tc.prompt, tc.refs)
			if got != tc.want {
				t.Fatalf("enhancePrompt = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseDataURL(t *testing.T) {
	mime, data, ok := parseDataURL("data:image/jpeg;base64,AAAA")
	if !ok {
		t.Fatalf("expected data URL to parse")
	}
	if mime != "image/jpeg" {
		t.Fatalf("mime = %q, want image/jpeg", mime)
	}
	if data != "AAAA" {
		t.Fatalf("data = %q, want AAAA", data)
	}
	if _, _, ok := parseDataURL("data:image/jpeg"); ok {
		t.Fatalf("malformed data URL should not parse")
	}
	if _, _, ok := parseDataURL("https://example.com/a.png"); ok {
		t.Fatalf("plain URL should not parse as data URL")
	}
}

func TestProviderRole(t *testing.T) {
	if got := providerRole("assistant"); got != "model" {
		t.Fatalf("assistant role = %q, want model", got)
	}
	if got := providerRole("user"); got != "user" {
		t.Fatalf("user role = %q, want user", got)
	}
	if got := providerRole("system"); got != "user" {
		t.Fatalf("unknown role = %q, want user", got)
	}
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	client := NewClient(Options{})
	result := client.Generate(context.Background(), GenerateRequest{Prompt: "anything"})
	if result.Success {
		t.Fatalf("expected failure without an API key")
	}
	if !strings.Contains(result.Error, "No API key configured") {
		t.Fatalf("error = %q, want missing key message", result.Error)
	}
}

func TestGenerateBuildsMultimodalPayload(t *testing.T) {
	imageData := []byte{0x89, 'P', 'N', 'G'}
	transport := &captureTransport{responses: map[string]responseStub{}}
	transport.setBinaryResponse("https://cdn.example.com/history/one.png", imageData)
	transport.setJSONResponse("/v1beta/models/gemini-3-pro-image-preview:generateContent", map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{
						map[string]any{"text": "here you go"},
						map[string]any{"inlineData": map[string]any{
							"mimeType": "image/png",
							"data":     base64.StdEncoding.EncodeToString(imageData),
						}},
					},
				},
			},
		},
	})

	client := NewClient(Options{
		BaseURL:    "https://example.test/v1beta",
		HTTPClient: &http.Client{Transport: transport},
	})

	result := client.Generate(context.Background(), GenerateRequest{
		APIKey:      "secret-key",
		Prompt:      "a castle at dusk",
		Resolution:  "2K",
		AspectRatio: "16:9",
		ImageCount:  2,
		ReferenceImages: []ReferenceImage{
			{ImageURL: "data:image/jpeg;base64,AAAA", Kind: ReferenceHuman, Name: "Alice"},
		},
		History: []HistoryTurn{
			{Role: "user", Content: "a castle"},
			{Role: "assistant", Content: "Generated 1 image", ImageURLs: []string{"https://cdn.example.com/history/one.png"}},
		},
	})
	if !result.Success {
		t.Fatalf("generate failed: %s", result.Error)
	}
	if len(result.Images) != 1 {
		t.Fatalf("images len = %d, want 1", len(result.Images))
	}
	if !bytes.Equal(result.Images[0].Data, imageData) {
		t.Fatalf("decoded image bytes mismatch")
	}
	if result.Text != "here you go" {
		t.Fatalf("text = %q, want %q", result.Text, "here you go")
	}
	if transport.lastQuery.Get("key") != "secret-key" {
		t.Fatalf("api key not sent in query: %v", transport.lastQuery)
	}

	var payload map[string]any
	if err := json.Unmarshal(transport.lastBody, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	config := payload["generationConfig"].(map[string]any)
	modalities := config["responseModalities"].([]any)
	if len(modalities) != 2 || modalities[0] != "TEXT" || modalities[1] != "IMAGE" {
		t.Fatalf("responseModalities = %v", modalities)
	}
	imageConfig := config["imageConfig"].(map[string]any)
	if imageConfig["aspectRatio"] != "16:9" {
		t.Fatalf("aspectRatio = %v, want 16:9", imageConfig["aspectRatio"])
	}
	if imageConfig["imageSize"] != "2K" {
		t.Fatalf("imageSize = %v, want 2K", imageConfig["imageSize"])
	}

	contents := payload["contents"].([]any)
	if len(contents) != 3 {
		t.Fatalf("contents len = %d, want 3", len(contents))
	}

	first := contents[0].(map[string]any)
	if first["role"] != "user" {
		t.Fatalf("first turn role = %v, want user", first["role"])
	}
	second := contents[1].(map[string]any)
	if second["role"] != "model" {
		t.Fatalf("assistant turn role = %v, want model", second["role"])
	}
	secondParts := second["parts"].([]any)
	if len(secondParts) != 2 {
		t.Fatalf("assistant turn parts = %d, want image then text", len(secondParts))
	}
	if _, ok := secondParts[0].(map[string]any)["inlineData"]; !ok {
		t.Fatalf("assistant turn should carry fetched history image first")
	}
	if text := secondParts[1].(map[string]any)["text"]; text != "Generated 1 image" {
		t.Fatalf("assistant turn text = %v", text)
	}

	last := contents[2].(map[string]any)
	if last["role"] != "user" {
		t.Fatalf("final turn role = %v, want user", last["role"])
	}
	lastParts := last["parts"].([]any)
	if len(lastParts) != 2 {
		t.Fatalf("final turn parts = %d, want reference then prompt", len(lastParts))
	}
	inline := lastParts[0].(map[string]any)["inlineData"].(map[string]any)
	if inline["mimeType"] != "image/jpeg" {
		t.Fatalf("reference mimeType = %v, want image/jpeg", inline["mimeType"])
	}
	if inline["data"] != "AAAA" {
		t.Fatalf("reference data = %v, want AAAA", inline["data"])
	}
	promptText := lastParts[1].(map[string]any)["text"].(string)
	if !strings.HasPrefix(promptText, "Using the reference images of Alice for character consistency, ") {
		t.Fatalf("final prompt missing reference framing: %q", promptText)
	}
}

func TestGenerateClassifiesProviderErrors(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"invalid key", "API key not valid. Please pass a valid API key.", "Invalid API key. Please check your API key in profile settings."},
		{"quota", "Quota exceeded for requests per minute", "API rate limit exceeded. Please try again later."},
		{"rate", "Resource has been exhausted (rate limited)", "API rate limit exceeded. Please try again later."},
		{"safety", "Request blocked by SAFETY settings", "Content was blocked by safety filters. Please modify your prompt."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &captureTransport{responses: map[string]responseStub{}}
			transport.setErrorResponse("/v1beta/models/gemini-3-pro-image-preview:generateContent", http.StatusBadRequest, tc.message)
			client := NewClient(Options{
				BaseURL:    "https://example.test/v1beta",
				HTTPClient: &http.Client{Transport: transport},
			})
			result := client.Generate(context.Background(), GenerateRequest{APIKey: "k", Prompt: "x"})
			if result.Success {
				t.Fatalf("expected failure")
			}
			if result.Error != tc.want {
				t.Fatalf("error = %q, want %q", result.Error, tc.want)
			}
		})
	}
}

func TestGenerateWithoutImagesFails(t *testing.T) {
	transport := &captureTransport{responses: map[string]responseStub{}}
	transport.setJSONResponse("/v1beta/models/gemini-3-pro-image-preview:generateContent", map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{
						map[string]any{"text": "I cannot draw that."},
					},
				},
			},
		},
	})
	client := NewClient(Options{
		BaseURL:    "https://example.test/v1beta",
		HTTPClient: &http.Client{Transport: transport},
	})
	result := client.Generate(context.Background(), GenerateRequest{APIKey: "k", Prompt: "x"})
	if result.Success {
		t.Fatalf("expected failure when no images returned")
	}
	if result.Error != "I cannot draw that." {
		t.Fatalf("error = %q, want model text", result.Error)
	}
}

type captureTransport struct {
	responses map[string]responseStub
	lastBody  []byte
	lastQuery url.Values
}

type responseStub struct {
	status int
	header http.Header
	body   []byte
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodPost {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
		c.lastBody = body
		c.lastQuery = req.URL.Query()
		if stub, ok := c.responses[req.URL.Path]; ok {
			return stub.toResponse(), nil
		}
	}
	if req.Method == http.MethodGet {
		if stub, ok := c.responses[req.URL.String()]; ok {
			return stub.toResponse(), nil
		}
	}
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader("not found")),
	}, nil
}

func (c *captureTransport) setJSONResponse(path string, payload any) {
	body, _ := json.Marshal(payload)
	c.responses[path] = responseStub{
		status: http.StatusOK,
		header: http.Header{"Content-Type": []string{"application/json"}},
		body:   body,
	}
}

func (c *captureTransport) setErrorResponse(path string, status int, message string) {
	body, _ := json.Marshal(map[string]any{
		"error": map[string]any{"code": status, "message": message},
	})
	c.responses[path] = responseStub{
		status: status,
		header: http.Header{"Content-Type": []string{"application/json"}},
		body:   body,
	}
}

func (c *captureTransport) setBinaryResponse(url string, data []byte) {
	c.responses[url] = responseStub{
		status: http.StatusOK,
		header: http.Header{"Content-Type": []string{"image/png"}},
		body:   data,
	}
}

func (s responseStub) toResponse() *http.Response {
	header := http.Header{}
	for k, values := range s.header {
		cloned := make([]string, len(values))
		copy(cloned, values)
		header[k] = cloned
	}
	return &http.Response{
		StatusCode: s.status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(s.body)),
	}
}
