package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	BaseURL string
	Model   string
	// AppBaseURL resolves path-only image URLs ("/static/...") to absolute
	// ones before fetching.
	AppBaseURL string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client is a thin facade over the Gemini generateContent REST endpoint for
// multimodal image generation. API keys are per-user and travel with each
// request rather than with the client.
type Client struct {
	baseURL    string
	model      string
	appBaseURL string
	httpClient *http.Client
	logger     *infra.Logger
}

// ReferenceKind labels what a reference image anchors: a person for
// character consistency, or an object to include as shown.
type ReferenceKind string

const (
	ReferenceHuman  ReferenceKind = "human"
	ReferenceObject ReferenceKind = "object"
)

// ReferenceImage is an image attached to the current turn.
type ReferenceImage struct {
	ImageURL string
	Kind     ReferenceKind
	Name     string
}

// HistoryTurn is one prior turn of a multi-turn conversation.
type HistoryTurn struct {
	Role      string
	Content   string
	ImageURLs []string
}

// GenerateRequest carries everything needed for one generateContent call.
type GenerateRequest struct {
	APIKey          string
	Prompt          string
	Resolution      string
	AspectRatio     string
	ImageCount      int
	ReferenceImages []ReferenceImage
	History         []HistoryTurn
}

// Image is one generated image, already base64-decoded.
type Image struct {
	Data     []byte
	MimeType string
}

// Result is the normalized provider outcome. Success is false on a missing
// API key, zero returned images, or a provider error; the Error string is
// then user-presentable.
type Result struct {
	Success bool
	Images  []Image
	Text    string
	Error   string
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string           `json:"responseModalities,omitempty"`
	ImageConfig        *geminiImageConfig `json:"imageConfig,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may
// provide a nil HTTP client; a reusable one with a generation-sized timeout
// is created.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := opts.Model
	if model == "" {
		model = "gemini-3-pro-image-preview"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		baseURL:    baseURL,
		model:      model,
		appBaseURL: strings.TrimRight(opts.AppBaseURL, "/"),
		httpClient: client,
		logger:     logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate builds the multimodal content array (history turns, reference
// image parts, enhanced prompt) and dispatches it. Failures never propagate
// as errors; they are folded into the Result.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) Result {
	if strings.TrimSpace(req.APIKey) == "" {
		return Result{
			Success: false,
			Error:   "No API key configured. Please add your Google AI API key in your profile settings.",
		}
	}

	contents, err := c.buildContents(ctx, req)
	if err != nil {
		return Result{Success: false, Error: classifyError(err)}
	}

	payload := geminiGenerateContentRequest{
		Contents: contents,
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
			ImageConfig: &geminiImageConfig{
				AspectRatio: req.AspectRatio,
				ImageSize:   req.Resolution,
			},
		},
	}

	var response geminiGenerateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.model))
	if err := c.invoke(ctx, req.APIKey, path, payload, &response); err != nil {
		c.logger.Warn().Err(err).Str("model", c.model).Msg("genai: generate content failed")
		return Result{Success: false, Error: classifyError(err)}
	}

	images, text := extractFromResponse(response)
	if len(images) == 0 {
		msg := text
		if msg == "" {
			msg = "No images were generated. Please try a different prompt."
		}
		return Result{Success: false, Text: text, Error: msg}
	}

	c.logger.Debug().
		Str("model", c.model).
		Int("images", len(images)).
		Msg("genai: generated images")

	return Result{Success: true, Images: images, Text: text}
}

func (c *Client) buildContents(ctx context.Context, req GenerateRequest) ([]geminiContent, error) {
	enhanced := enhancePrompt(req.Prompt, req.ReferenceImages)

	var parts []geminiPart
	for _, ref := range req.ReferenceImages {
		part, err := c.imagePart(ctx, ref.ImageURL)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	parts = append(parts, geminiPart{Text: enhanced})

	var contents []geminiContent
	for _, turn := range req.History {
		var turnParts []geminiPart
		for _, imageURL := range turn.ImageURLs {
			part, err := c.imagePart(ctx, imageURL)
			if err != nil {
				return nil, err
			}
			turnParts = append(turnParts, part)
		}
		turnParts = append(turnParts, geminiPart{Text: turn.Content})
		contents = append(contents, geminiContent{Role: providerRole(turn.Role), Parts: turnParts})
	}

	contents = append(contents, geminiContent{Role: "user", Parts: parts})
	return contents, nil
}

// providerRole maps conversation roles onto the provider's role vocabulary.
func providerRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return "user"
}

// enhancePrompt frames the prompt with reference-image context. Human
// references prepend a character-consistency clause; object references append
// an inclusion clause. Both may apply around the original prompt.
func enhancePrompt(prompt string, refs []ReferenceImage) string {
	if len(refs) == 0 {
		return prompt
	}

	var humanNames, objectNames []string
	for _, ref := range refs {
		name := ref.Name
		switch ref.Kind {
		case ReferenceObject:
			if name == "" {
				name = "the object"
			}
			objectNames = append(objectNames, name)
		default:
			if name == "" {
				name = "the person"
			}
			humanNames = append(humanNames, name)
		}
	}

	enhanced := prompt
	if len(humanNames) > 0 {
		enhanced = fmt.Sprintf("Using the reference images of %s for character consistency, %s", strings.Join(humanNames, ", "), enhanced)
	}
	if len(objectNames) > 0 {
		enhanced += fmt.Sprintf(" Include %s as shown in the reference images.", strings.Join(objectNames, ", "))
	}
	return enhanced
}

// imagePart resolves an image source to an inline content part: data URLs
// are decoded in place, everything else is fetched and base64-encoded with
// the served content type. Path-only URLs are resolved against the app base.
func (c *Client) imagePart(ctx context.Context, source string) (geminiPart, error) {
	if strings.HasPrefix(source, "data:") {
		if mime, data, ok := parseDataURL(source); ok {
			return geminiPart{InlineData: &geminiInlineData{MimeType: mime, Data: data}}, nil
		}
	}

	fetchURL := source
	if strings.HasPrefix(source, "/") && c.appBaseURL != "" {
		fetchURL = c.appBaseURL + source
	}

	if strings.HasPrefix(fetchURL, "http://") || strings.HasPrefix(fetchURL, "https://") {
		data, mime, err := c.fetchImage(ctx, fetchURL)
		if err != nil {
			return geminiPart{}, fmt.Errorf("fetch reference image %s: %w", fetchURL, err)
		}
		return geminiPart{InlineData: &geminiInlineData{
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(data),
		}}, nil
	}

	// Fallback: treat the source as raw base64 data.
	return geminiPart{InlineData: &geminiInlineData{MimeType: "image/png", Data: source}}, nil
}

func parseDataURL(source string) (mime, data string, ok bool) {
	rest, found := strings.CutPrefix(source, "data:")
	if !found {
		return "", "", false
	}
	mime, data, found = strings.Cut(rest, ";base64,")
	if !found || mime == "" || data == "" {
		return "", "", false
	}
	return mime, data, true
}

func (c *Client) fetchImage(ctx context.Context, target string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", fmt.Errorf("status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}
	return data, mime, nil
}

func (c *Client) invoke(ctx context.Context, apiKey, path string, payload any, out any) error {
	endpoint := c.baseURL + path
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	q := req.URL.Query()
	q.Set("key", apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

func extractFromResponse(response geminiGenerateContentResponse) ([]Image, string) {
	var images []Image
	var text strings.Builder

	if len(response.Candidates) == 0 {
		return nil, ""
	}
	for _, part := range response.Candidates[0].Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil || len(data) == 0 {
				continue
			}
			mime := part.InlineData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			images = append(images, Image{Data: data, MimeType: mime})
			continue
		}
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return images, text.String()
}

// classifyError maps provider error text onto coarse user-facing categories.
// Best-effort substring matching for UX only; control flow never depends on
// the category.
func classifyError(err error) string {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "api key"):
		return "Invalid API key. Please check your API key in profile settings."
	case strings.Contains(lower, "quota") || strings.Contains(lower, "rate"):
		return "API rate limit exceeded. Please try again later."
	case strings.Contains(lower, "safety"):
		return "Content was blocked by safety filters. Please modify your prompt."
	default:
		return msg
	}
}
