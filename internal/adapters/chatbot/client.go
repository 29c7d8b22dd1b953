// Package chatbot is the HTTP client for the chatbot service. The wire
// format is fixed by the existing service: POST /api/chatbot with the
// message, user email, trailing conversation history and language, answered
// by {success, response} or {error}.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/ports"
)

// historyLimit caps the conversation context sent per request, matching
// what the original client sent.
const historyLimit = 10

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type response struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Error    string `json:"error"`
	Details  string `json:"details"`
}

// Send issues one chatbot request. Every failure mode — network error,
// non-2xx status, success=false — comes back as a TransportError: shown to
// the user, never fatal, never retried.
func (c *Client) Send(ctx context.Context, req ports.ChatRequest) (string, error) {
	if len(req.History) > historyLimit {
		req.History = req.History[len(req.History)-historyLimit:]
	}
	if req.Language == "" {
		req.Language = "en"
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &domain.TransportError{Op: "chatbot request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chatbot", bytes.NewReader(body))
	if err != nil {
		return "", &domain.TransportError{Op: "chatbot request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &domain.TransportError{Op: "chatbot request", Err: err}
	}
	defer httpResp.Body.Close()

	var resp response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", &domain.TransportError{Op: "chatbot response", Err: err}
	}

	if httpResp.StatusCode != http.StatusOK || !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = resp.Details
		}
		if msg == "" {
			msg = fmt.Sprintf("status %d", httpResp.StatusCode)
		}
		return "", &domain.TransportError{Op: "chatbot", Err: fmt.Errorf("%s", msg)}
	}
	return resp.Response, nil
}
