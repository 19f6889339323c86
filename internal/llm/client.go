package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ChatTurn is one prior exchange in a multi-turn conversation.
// Role is "user" or "model".
type ChatTurn struct {
	Role string
	Text string
}

// GenerateRequest holds the parameters for a model generation call.
type GenerateRequest struct {
	Tier         Tier
	SystemPrompt string
	UserPrompt   string
	History      []ChatTurn

	// ResponseSchema, when set, constrains the output to schema-valid
	// JSON via responseMimeType/responseSchema.
	ResponseSchema Schema

	// EnableSearch and EnableMaps attach the corresponding grounding
	// tools to the request.
	EnableSearch bool
	EnableMaps   bool
}

// Source is a grounding citation extracted from a tool-enabled response.
type Source struct {
	Title string
	URI   string
}

// GenerateResponse holds the result of a model generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	Sources   []Source
	LatencyMs int64
}

// Client provides access to the Gemini model family. Each call is a
// single attempt against a single tier; fallback across tiers is the
// caller's responsibility.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// geminiClient implements Client against the Gemini REST API.
type geminiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates a Client that talks to the Gemini API.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ── wire format ──────────────────────────────────────────────────────────────

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string                `json:"responseMimeType,omitempty"`
	ResponseSchema   Schema                `json:"responseSchema,omitempty"`
	ThinkingConfig   *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
	GoogleMaps   *struct{} `json:"googleMaps,omitempty"`
}

type geminiWireRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
	Tools             []geminiTool            `json:"tools,omitempty"`
}

type geminiGroundingWeb struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type geminiGroundingChunk struct {
	Web *geminiGroundingWeb `json:"web,omitempty"`
}

type geminiGroundingMetadata struct {
	GroundingChunks []geminiGroundingChunk `json:"groundingChunks,omitempty"`
}

type geminiCandidate struct {
	Content           geminiContent            `json:"content"`
	GroundingMetadata *geminiGroundingMetadata `json:"groundingMetadata,omitempty"`
}

type geminiWireResponse struct {
	Candidates   []geminiCandidate `json:"candidates"`
	ModelVersion string            `json:"modelVersion,omitempty"`
	Error        *geminiAPIError   `json:"error,omitempty"`
}

type geminiAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ── client ───────────────────────────────────────────────────────────────────

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	tierCfg, ok := c.cfg.Tiers[req.Tier]
	if !ok {
		return nil, fmt.Errorf("unknown model tier %q", req.Tier)
	}
	if c.cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	timeoutMs := c.cfg.TierTimeout(req.Tier)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body := c.buildWireRequest(req, tierCfg)

	resp, err := c.doRequest(ctx, tierCfg.Model, body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		mapped := c.mapError(ctx, err)
		c.observer.OnCallComplete(CallEvent{
			Tier:      req.Tier,
			Model:     tierCfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(mapped),
		})
		return nil, mapped
	}

	text, sources := flattenResponse(resp)
	if strings.TrimSpace(text) == "" {
		c.observer.OnCallComplete(CallEvent{
			Tier:      req.Tier,
			Model:     tierCfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(ErrEmptyResponse),
		})
		return nil, ErrEmptyResponse
	}

	c.observer.OnCallComplete(CallEvent{
		Tier:      req.Tier,
		Model:     tierCfg.Model,
		LatencyMs: latency,
		Success:   true,
	})

	model := resp.ModelVersion
	if model == "" {
		model = tierCfg.Model
	}
	return &GenerateResponse{
		Text:      text,
		Model:     model,
		Sources:   sources,
		LatencyMs: latency,
	}, nil
}

func (c *geminiClient) buildWireRequest(req GenerateRequest, tierCfg TierConfig) geminiWireRequest {
	contents := make([]geminiContent, 0, len(req.History)+1)
	for _, turn := range req.History {
		contents = append(contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: req.UserPrompt}},
	})

	body := geminiWireRequest{Contents: contents}

	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemPrompt}},
		}
	}

	genCfg := &geminiGenerationConfig{}
	if req.ResponseSchema != nil {
		genCfg.ResponseMimeType = "application/json"
		genCfg.ResponseSchema = req.ResponseSchema
	}
	if tierCfg.ThinkingBudget > 0 {
		genCfg.ThinkingConfig = &geminiThinkingConfig{ThinkingBudget: tierCfg.ThinkingBudget}
	}
	if genCfg.ResponseMimeType != "" || genCfg.ThinkingConfig != nil {
		body.GenerationConfig = genCfg
	}

	if req.EnableSearch {
		body.Tools = append(body.Tools, geminiTool{GoogleSearch: &struct{}{}})
	}
	if req.EnableMaps {
		body.Tools = append(body.Tools, geminiTool{GoogleMaps: &struct{}{}})
	}

	return body
}

func (c *geminiClient) doRequest(ctx context.Context, model string, body geminiWireRequest) (*geminiWireResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.Endpoint, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: %s", ErrQuota, strings.TrimSpace(string(respBody)))
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp geminiWireResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("gemini API error %s: %s", resp.Error.Status, resp.Error.Message)
	}

	return &resp, nil
}

func (c *geminiClient) mapError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(err) {
		return ErrUnavailable
	}
	return err
}

// flattenResponse concatenates all text parts of the first candidate
// and collects any web grounding citations.
func flattenResponse(resp *geminiWireResponse) (string, []Source) {
	if len(resp.Candidates) == 0 {
		return "", nil
	}
	cand := resp.Candidates[0]

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		b.WriteString(part.Text)
	}

	var sources []Source
	if cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" {
				sources = append(sources, Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
			}
		}
	}

	return strings.TrimSpace(b.String()), sources
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	return false
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoAPIKey):
		return "NO_API_KEY"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrQuota):
		return "QUOTA"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
