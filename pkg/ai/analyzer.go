package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/johnquangdev/interview-practice/pkg/config"
)

// AnalyzePath is the analysis endpoint served by the API
const AnalyzePath = "/v1/ai/analyze"

// AnalyzeClient is a minimal client for the response analysis endpoint
type AnalyzeClient struct {
	secret  string
	baseURL string
	client  *http.Client
}

// NewAnalyzeClient creates an analysis client using values from the scoring config
func NewAnalyzeClient(cfg *config.ScoringConfig) *AnalyzeClient {
	base := "http://localhost:8080"
	var secret string
	if cfg != nil {
		if cfg.RemoteURL != "" {
			base = cfg.RemoteURL
		}
		secret = cfg.Secret
	}

	return &AnalyzeClient{
		secret:  secret,
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// AnalyzeRequest is the shape for analysis requests
type AnalyzeRequest struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// ContentAnalysis grades what was said
type ContentAnalysis struct {
	Clarity      int `json:"clarity"`
	Completeness int `json:"completeness"`
	Relevance    int `json:"relevance"`
	Structure    int `json:"structure"`
}

// DeliveryAnalysis grades how it was said
type DeliveryAnalysis struct {
	Confidence   int `json:"confidence"`
	Pace         int `json:"pace"`
	Articulation int `json:"articulation"`
}

// AnalyzeResponse is the analysis result
type AnalyzeResponse struct {
	ResponseID       string           `json:"responseId"`
	ContentAnalysis  ContentAnalysis  `json:"contentAnalysis"`
	DeliveryAnalysis DeliveryAnalysis `json:"deliveryAnalysis"`
	Suggestions      []string         `json:"suggestions"`
	OverallScore     int              `json:"overallScore"`
}

// StatusError is returned when the endpoint answers with a non-2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analyze endpoint returned status %d", e.StatusCode)
}

// Temporary reports whether a retry may succeed
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Analyze sends one question and answer for grading
func (a *AnalyzeClient) Analyze(ctx context.Context, question, response string) (*AnalyzeResponse, error) {
	b, err := json.Marshal(AnalyzeRequest{Question: question, Response: response})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+AnalyzePath, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.secret != "" {
		req.Header.Set(SignatureHeader, Sign(a.secret, b))
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	// The API wraps payloads in a {code, message, data} envelope
	var envelope struct {
		Data *AnalyzeResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("empty response from analyze endpoint")
	}
	return envelope.Data, nil
}
