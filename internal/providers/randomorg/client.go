package randomorg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
)

const METHOD_NAME = "generateSignedIntegers"

var ErrNoAPIKeys = errors.New("no API keys configured")

// SignedRandom is the signed random object returned by the random.org API.
// Field order matters: the serialized form must match what random.org signed
// so that third parties can verify the signature against these exact bytes.
type SignedRandom struct {
	Method         string `json:"method"`
	HashedAPIKey   string `json:"hashedApiKey"`
	N              int    `json:"n"`
	Min            int    `json:"min"`
	Max            int    `json:"max"`
	Replacement    bool   `json:"replacement"`
	Base           int    `json:"base"`
	Data           []int  `json:"data"`
	CompletionTime string `json:"completionTime"`
	SerialNumber   int64  `json:"serialNumber"`
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      string    `json:"id"`
}

type rpcParams struct {
	APIKey      string `json:"apiKey"`
	N           int    `json:"n"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Replacement bool   `json:"replacement"`
}

type rpcResponse struct {
	JSONRPC string     `json:"jsonrpc"`
	Result  *rpcResult `json:"result"`
	Error   *rpcError  `json:"error"`
	ID      string     `json:"id"`
}

type rpcResult struct {
	Random       SignedRandom `json:"random"`
	Signature    string       `json:"signature"`
	BitsUsed     int          `json:"bitsUsed"`
	BitsLeft     int64        `json:"bitsLeft"`
	RequestsLeft int64        `json:"requestsLeft"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Client defines the interface for drawing signed random integers to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/randomorg_client.go -package=mocks -mock_names=Client=MockRandomOrgClient
type Client interface {
	// Draw requests winnerCount distinct integers in [1, maxSlot] and retries
	// until it succeeds or ctx is cancelled
	Draw(ctx context.Context, winnerCount int, maxSlot int) (*domain.DrawResult, error)

	// Usage reports request consumption against the current day's allowance
	Usage() domain.CredentialUsage
}

// RandomOrgClient implements Client against the random.org signed JSON-RPC API
type RandomOrgClient struct {
	httpClient    adapter.HTTPClient
	json          adapter.JSON
	clock         adapter.Clock
	apiURL        string
	apiKeys       []string
	retryInterval time.Duration
	dailyLimit    int
	resetHourUTC  int

	mu        sync.Mutex
	keyIndex  int
	usage     map[string]int
	lastReset time.Time
}

// NewClient creates a new random.org client
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, clock adapter.Clock, apiURL string, apiKeys []string, retryInterval time.Duration, dailyLimit int, resetHourUTC int) *RandomOrgClient {
	return &RandomOrgClient{
		httpClient:    httpClient,
		json:          json,
		clock:         clock,
		apiURL:        apiURL,
		apiKeys:       apiKeys,
		retryInterval: retryInterval,
		dailyLimit:    dailyLimit,
		resetHourUTC:  resetHourUTC,
		usage:         make(map[string]int),
		lastReset:     clock.Now(),
	}
}

// Draw requests winnerCount distinct integers in [1, maxSlot]. Keys are tried
// in rotation and every failed attempt waits retryInterval before moving to
// the next key, indefinitely, until ctx is cancelled.
func (c *RandomOrgClient) Draw(ctx context.Context, winnerCount int, maxSlot int) (*domain.DrawResult, error) {
	if len(c.apiKeys) == 0 {
		return nil, ErrNoAPIKeys
	}
	if winnerCount < 1 || maxSlot < winnerCount {
		return nil, fmt.Errorf("%w: cannot draw %d winners from %d slots", domain.ErrInvalidParameters, winnerCount, maxSlot)
	}

	start := c.clock.Now()
	attempt := 0

	for {
		attempt++

		key := c.nextKey()
		result, err := c.drawOnce(ctx, key, winnerCount, maxSlot)
		if err == nil {
			c.recordSuccess(key)
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		logger.Warn("random.org draw attempt failed, waiting before next key",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("elapsed", c.clock.Now().Sub(start)),
			zap.Duration("retry_interval", c.retryInterval))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(c.retryInterval):
		}
	}
}

// Usage reports request consumption against the current day's allowance. The
// limit applies per key, so Requests carries the busiest key's count.
func (c *RandomOrgClient) Usage() domain.CredentialUsage {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maybeResetUsage(c.clock.Now())
	requests := 0
	for _, n := range c.usage {
		if n > requests {
			requests = n
		}
	}
	return domain.CredentialUsage{
		Requests:    requests,
		LimitPerKey: c.dailyLimit,
	}
}

// nextKey returns the next API key in rotation
func (c *RandomOrgClient) nextKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.apiKeys[c.keyIndex%len(c.apiKeys)]
	c.keyIndex++
	return key
}

// recordSuccess counts a completed request against the key that served it.
// Failed attempts do not consume the key's allowance.
func (c *RandomOrgClient) recordSuccess(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maybeResetUsage(c.clock.Now())
	c.usage[key]++
}

// maybeResetUsage zeroes the counters once the daily reset hour has passed.
// Callers must hold c.mu.
func (c *RandomOrgClient) maybeResetUsage(now time.Time) {
	nowUTC := now.UTC()
	boundary := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), c.resetHourUTC, 0, 0, 0, time.UTC)
	if nowUTC.Before(boundary) {
		boundary = boundary.AddDate(0, 0, -1)
	}
	if c.lastReset.UTC().Before(boundary) {
		c.usage = make(map[string]int)
		c.lastReset = now
	}
}

// drawOnce performs a single generateSignedIntegers call with the given key
func (c *RandomOrgClient) drawOnce(ctx context.Context, apiKey string, winnerCount int, maxSlot int) (*domain.DrawResult, error) {
	request := rpcRequest{
		JSONRPC: "2.0",
		Method:  METHOD_NAME,
		Params: rpcParams{
			APIKey:      apiKey,
			N:           winnerCount,
			Min:         1,
			Max:         maxSlot,
			Replacement: false,
		},
		ID: uuid.NewString(),
	}

	body, err := c.json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, c.apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to call random.org API: %w", err)
	}

	var response rpcResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal random.org response: %w", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("random.org API error %d: %s", response.Error.Code, response.Error.Message)
	}
	if response.Result == nil {
		return nil, errors.New("random.org response carries neither result nor error")
	}

	random := response.Result.Random
	if err := validateRandom(&random, winnerCount, maxSlot); err != nil {
		return nil, err
	}

	// Re-serialize the signed object so the stored bytes match the declared
	// field order and round-trip verification stays byte stable.
	verification, err := c.json.Marshal(random)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal signed random object: %w", err)
	}

	return &domain.DrawResult{
		Numbers:        random.Data,
		Verification:   verification,
		Signature:      response.Result.Signature,
		CompletionTime: random.CompletionTime,
	}, nil
}

// validateRandom rejects responses whose signed parameters do not match the request
func validateRandom(random *SignedRandom, winnerCount int, maxSlot int) error {
	if random.Method != METHOD_NAME {
		return fmt.Errorf("unexpected method in signed response: %q", random.Method)
	}
	if random.N != winnerCount || random.Min != 1 || random.Max != maxSlot || random.Replacement {
		return fmt.Errorf("signed parameters do not match request: n=%d min=%d max=%d replacement=%t",
			random.N, random.Min, random.Max, random.Replacement)
	}
	if len(random.Data) != winnerCount {
		return fmt.Errorf("expected %d numbers, got %d", winnerCount, len(random.Data))
	}
	for _, n := range random.Data {
		if n < 1 || n > maxSlot {
			return fmt.Errorf("number %d outside [1, %d]", n, maxSlot)
		}
	}
	return nil
}
