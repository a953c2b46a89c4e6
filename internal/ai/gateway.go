package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chiru-app/chiru/internal/model"
)

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 1024
	apiBaseURL       = "https://generativelanguage.googleapis.com/v1beta/models"
)

// Fixed responses surfaced to the user instead of structured errors. The
// assistant degrades to friendly text; it never fails a UI interaction.
const (
	OfflineMessage = "AI Assistant is offline. Please configure your API key in Settings."
	ErrorMessage   = "I'm having trouble connecting right now. Please try again later."
)

// Gateway talks to the Gemini generateContent API on behalf of the
// assistant panel and the note rewriter.
type Gateway struct {
	apiKey    string
	model     string
	maxTokens int
	baseURL   string
	client    *http.Client
}

// New creates a gateway with the given configuration.
func New(apiKey, modelName string, maxTokens int) *Gateway {
	if modelName == "" {
		modelName = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Gateway{
		apiKey:    apiKey,
		model:     modelName,
		maxTokens: maxTokens,
		baseURL:   apiBaseURL,
		client:    &http.Client{},
	}
}

// SetAPIKey swaps the key at runtime, after the user edits it in settings.
func (g *Gateway) SetAPIKey(key string) {
	g.apiKey = key
}

// Online reports whether an API key is configured.
func (g *Gateway) Online() bool {
	return g.apiKey != ""
}

// SummarizeProgress builds a snapshot of the user's tracked data, asks the
// coach for a short motivational summary, and returns the prose. Without
// an API key it returns OfflineMessage; on any transport or API failure it
// returns ErrorMessage.
func (g *Gateway) SummarizeProgress(ctx context.Context, doc model.AppData, now time.Time) string {
	if g.apiKey == "" {
		return OfflineMessage
	}

	snapshot, err := json.MarshalIndent(buildSnapshot(doc, now), "", "  ")
	if err != nil {
		return ErrorMessage
	}

	prompt := fmt.Sprintf(`You are Chiru, a friendly and encouraging AI productivity coach.
A user is tracking their progress on subjects, habits, videos, and to-do lists.
Based on the following data, provide a short, motivational summary of their recent activity (in about 2-3 sentences) and then give one specific, actionable piece of advice to help them stay on track or improve.
Focus on any overdue tasks if they exist.
Address the user directly ("You're doing great..."). Keep the tone positive and empowering. The entire response should be under 75 words.
Format your response in Markdown.

User's Progress Data:
%s`, snapshot)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return ErrorMessage
	}
	return text
}

// RewriteText asks the writing assistant to transform a note per the
// user's instruction and returns the rewritten text verbatim. Without an
// API key it returns OfflineMessage; failures return ErrorMessage.
func (g *Gateway) RewriteText(ctx context.Context, original, instruction string) string {
	if g.apiKey == "" {
		return OfflineMessage
	}

	prompt := fmt.Sprintf(`You are an expert writing assistant. A user has provided text from their notes and a prompt for how to modify it.
Rewrite the text based on the user's instructions.
Respond ONLY with the rewritten text, without any preamble, titles, or explanations.

USER'S PROMPT:
%q

ORIGINAL TEXT:
---
%s
---`, instruction, original)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return ErrorMessage
	}
	return text
}

// generate makes a single request to the Gemini generateContent API.
func (g *Gateway) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := apiRequest{
		Contents: []apiContent{
			{Parts: []apiPart{{Text: prompt}}},
		},
		GenerationConfig: &apiGenerationConfig{
			MaxOutputTokens: g.maxTokens,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, url, bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result apiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// --- Gemini API types ---

type apiRequest struct {
	Contents         []apiContent         `json:"contents"`
	GenerationConfig *apiGenerationConfig `json:"generationConfig,omitempty"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

type apiGenerationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type apiResponse struct {
	Candidates []struct {
		Content      apiContent `json:"content"`
		FinishReason string     `json:"finishReason"`
	} `json:"candidates"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
