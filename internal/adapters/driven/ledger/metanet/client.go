// Package metanet provides the ledger adapter backed by a local
// MetaNet wallet client speaking JSON over HTTP. The wallet anchors
// submitted payloads on the ledger and serves previously anchored
// entries back as tokens.
package metanet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driven"
	"github.com/Fletch-Industries/immutify/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Ledger = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:3301"
	DefaultTimeout = 30 * time.Second

	// walletRate throttles calls against the local wallet process.
	// The wallet serialises signing internally; hammering it only
	// queues work.
	walletRate = 4 // requests per second
)

// Config holds configuration for the MetaNet wallet client.
type Config struct {
	// BaseURL is the wallet API base URL (default: http://localhost:3301).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client talks to the local wallet over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewClient creates a new wallet client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(rate.Limit(walletRate), 1),
	}
}

// submitRequest is the wallet's createAction request format.
type submitRequest struct {
	Message string `json:"message"`
}

// submitResponse is the wallet's createAction response format. The
// two expected variants are a txid or an error; anything else is a
// protocol error.
type submitResponse struct {
	TxID  string `json:"txid"`
	Error string `json:"error"`
}

// Submit anchors the payload on the ledger and returns the
// transaction ID. Once the request has been sent the submission
// cannot be retracted; ctx only bounds the wait for a response.
func (c *Client) Submit(ctx context.Context, payload string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	jsonBody, err := json.Marshal(submitRequest{Message: payload})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/createAction",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrLedgerProtocol, err)
	}

	var result submitResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrLedgerProtocol, resp.StatusCode, truncate(body))
	}
	if result.Error != "" {
		return "", &domain.RejectedError{Reason: result.Error}
	}
	if resp.StatusCode != http.StatusOK || result.TxID == "" {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrLedgerProtocol, resp.StatusCode, truncate(body))
	}

	logger.Debug("wallet accepted payload, txid %s", result.TxID)
	return result.TxID, nil
}

// listRequest is the wallet's listOutputs request format.
type listRequest struct {
	Limit         int    `json:"limit"`
	Skip          int    `json:"skip,omitempty"`
	Order         string `json:"order,omitempty"`
	MessageFilter string `json:"messageFilter,omitempty"`
}

// tokenEntry is one entry in the wallet's listOutputs response.
type tokenEntry struct {
	Message       string `json:"message"`
	TxID          string `json:"txid"`
	OutputIndex   int    `json:"outputIndex"`
	LockingScript string `json:"outputScript"`
	Satoshis      int64  `json:"satoshis"`
}

// ListTokens returns ledger entries matching the query.
func (c *Client) ListTokens(ctx context.Context, query domain.TokenQuery) ([]domain.LedgerToken, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(listRequest{
		Limit:         query.Limit,
		Skip:          query.Skip,
		Order:         string(query.Order),
		MessageFilter: query.MessageFilter,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/listOutputs",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrLedgerProtocol, err)
	}

	var entries []tokenEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		// Not a token array; the only other expected shape is a
		// structured error object.
		var failure submitResponse
		if err := json.Unmarshal(body, &failure); err == nil && failure.Error != "" {
			return nil, &domain.RejectedError{Reason: failure.Error}
		}
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrLedgerProtocol, resp.StatusCode, truncate(body))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrLedgerProtocol, resp.StatusCode)
	}

	tokens := make([]domain.LedgerToken, len(entries))
	for i, e := range entries {
		tokens[i] = domain.LedgerToken{
			Message:       e.Message,
			TxID:          e.TxID,
			OutputIndex:   e.OutputIndex,
			LockingScript: e.LockingScript,
			Satoshis:      e.Satoshis,
		}
	}

	logger.Debug("wallet returned %d tokens (limit %d, skip %d)", len(tokens), query.Limit, query.Skip)
	return tokens, nil
}

// truncate bounds an error body for inclusion in messages.
func truncate(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
