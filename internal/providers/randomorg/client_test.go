package randomorg_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/mocks"
	"github.com/raffleworks/raffle-coordinator/internal/providers/randomorg"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const testAPIURL = "https://api.random.org/json-rpc/4/invoke"

// fakeClock lets tests advance time and observe waits without sleeping
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.Advance(d)
	ch := make(chan time.Time, 1)
	ch <- c.Now()
	return ch
}

func successResponse(t *testing.T, n, min, max int, data []int) []byte {
	t.Helper()
	resp := map[string]interface{}{
		"jsonrpc": "2.0",
		"result": map[string]interface{}{
			"random": map[string]interface{}{
				"method":         "generateSignedIntegers",
				"hashedApiKey":   "oT3AdLMVZKajz0pgW/8Z+t5sGZkqQSOnAi1aB8Li0tXgWf8LolrgdQ1wn9sKx1ehxhUZmhwUIpAtM8QeRbn51Q==",
				"n":              n,
				"min":            min,
				"max":            max,
				"replacement":    false,
				"base":           10,
				"data":           data,
				"completionTime": "2026-01-02 10:20:30Z",
				"serialNumber":   4053,
			},
			"signature":    "c2lnbmF0dXJl",
			"bitsUsed":     30,
			"bitsLeft":     199970,
			"requestsLeft": 998,
		},
		"id": "test",
	}
	body, err := json.Marshal(resp)
	require.NoError(t, err)
	return body
}

func decodeRequest(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var req map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &req))
	return req
}

func TestRandomOrgClient_Draw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	clock := newFakeClock(time.Date(2026, 1, 2, 10, 20, 0, 0, time.UTC))

	client := randomorg.NewClient(
		mockHTTPClient, adapter.NewJSON(), clock,
		testAPIURL, []string{"key-1"}, 5*time.Minute, 1000, 9)

	mockHTTPClient.EXPECT().
		Post(gomock.Any(), testAPIURL, "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
			req := decodeRequest(t, body)
			assert.Equal(t, "2.0", req["jsonrpc"])
			assert.Equal(t, "generateSignedIntegers", req["method"])
			params := req["params"].(map[string]interface{})
			assert.Equal(t, "key-1", params["apiKey"])
			assert.Equal(t, float64(3), params["n"])
			assert.Equal(t, float64(1), params["min"])
			assert.Equal(t, float64(100), params["max"])
			assert.Equal(t, false, params["replacement"])
			return successResponse(t, 3, 1, 100, []int{5, 17, 42}), nil
		})

	result, err := client.Draw(context.Background(), 3, 100)

	require.NoError(t, err)
	assert.Equal(t, []int{5, 17, 42}, result.Numbers)
	assert.Equal(t, "c2lnbmF0dXJl", result.Signature)
	assert.Equal(t, "2026-01-02 10:20:30Z", result.CompletionTime)

	// The verification bytes must keep the field order random.org signed
	expected := `{"method":"generateSignedIntegers",` +
		`"hashedApiKey":"oT3AdLMVZKajz0pgW/8Z+t5sGZkqQSOnAi1aB8Li0tXgWf8LolrgdQ1wn9sKx1ehxhUZmhwUIpAtM8QeRbn51Q==",` +
		`"n":3,"min":1,"max":100,"replacement":false,"base":10,"data":[5,17,42],` +
		`"completionTime":"2026-01-02 10:20:30Z","serialNumber":4053}`
	assert.Equal(t, expected, string(result.Verification))
}

func TestRandomOrgClient_Draw_KeyRotationAndRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	clock := newFakeClock(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))

	client := randomorg.NewClient(
		mockHTTPClient, adapter.NewJSON(), clock,
		testAPIURL, []string{"key-1", "key-2"}, 5*time.Minute, 1000, 9)

	var keysSeen []string
	call := 0
	mockHTTPClient.EXPECT().
		Post(gomock.Any(), testAPIURL, "application/json", gomock.Any()).
		Times(3).
		DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
			req := decodeRequest(t, body)
			keysSeen = append(keysSeen, req["params"].(map[string]interface{})["apiKey"].(string))
			call++
			switch call {
			case 1:
				return []byte(`{"jsonrpc":"2.0","error":{"code":402,"message":"allowance exceeded"},"id":"x"}`), nil
			case 2:
				return nil, errors.New("connection refused")
			default:
				return successResponse(t, 2, 1, 50, []int{9, 31}), nil
			}
		})

	result, err := client.Draw(context.Background(), 2, 50)

	require.NoError(t, err)
	assert.Equal(t, []int{9, 31}, result.Numbers)
	// Both keys tried and the rotation wraps back to the first
	assert.Equal(t, []string{"key-1", "key-2", "key-1"}, keysSeen)
	// Two attempts failed and the client waited one retry interval after each
	assert.Equal(t, time.Date(2026, 1, 2, 10, 10, 0, 0, time.UTC), clock.Now())
	// Only the completed request counts against the daily allowance
	assert.Equal(t, 1, client.Usage().Requests)
}

func TestRandomOrgClient_Draw_WaitsAfterEveryFailedAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	clock := newFakeClock(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))

	client := randomorg.NewClient(
		mockHTTPClient, adapter.NewJSON(), clock,
		testAPIURL, []string{"key-1", "key-2", "key-3"}, 5*time.Minute, 1000, 9)

	var keysSeen []string
	call := 0
	mockHTTPClient.EXPECT().
		Post(gomock.Any(), testAPIURL, "application/json", gomock.Any()).
		Times(4).
		DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
			req := decodeRequest(t, body)
			keysSeen = append(keysSeen, req["params"].(map[string]interface{})["apiKey"].(string))
			call++
			if call < 4 {
				return nil, errors.New("connection refused")
			}
			return successResponse(t, 1, 1, 10, []int{7}), nil
		})

	result, err := client.Draw(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, []int{7}, result.Numbers)
	assert.Equal(t, []string{"key-1", "key-2", "key-3", "key-1"}, keysSeen)
	// Three failures, so three retry intervals elapsed before the success
	assert.Equal(t, time.Date(2026, 1, 2, 10, 15, 0, 0, time.UTC), clock.Now())
}

func TestRandomOrgClient_Draw_MismatchedSignedParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	clock := newFakeClock(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))

	client := randomorg.NewClient(
		mockHTTPClient, adapter.NewJSON(), clock,
		testAPIURL, []string{"key-1"}, time.Minute, 1000, 9)

	call := 0
	mockHTTPClient.EXPECT().
		Post(gomock.Any(), testAPIURL, "application/json", gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, _ string, _ string, _ io.Reader) ([]byte, error) {
			call++
			if call == 1 {
				// Signed object claims a different range than requested
				return successResponse(t, 2, 1, 999, []int{9, 31}), nil
			}
			return successResponse(t, 2, 1, 50, []int{9, 31}), nil
		})

	result, err := client.Draw(context.Background(), 2, 50)

	require.NoError(t, err)
	assert.Equal(t, []int{9, 31}, result.Numbers)
}

func TestRandomOrgClient_Draw_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	clock := newFakeClock(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))

	client := randomorg.NewClient(
		mockHTTPClient, adapter.NewJSON(), clock,
		testAPIURL, []string{"key-1"}, time.Minute, 1000, 9)

	ctx, cancel := context.WithCancel(context.Background())

	mockHTTPClient.EXPECT().
		Post(gomock.Any(), testAPIURL, "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, _ io.Reader) ([]byte, error) {
			cancel()
			return nil, errors.New("connection reset")
		})

	result, err := client.Draw(ctx, 1, 10)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandomOrgClient_Draw_InvalidParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	clock := newFakeClock(time.Now())

	client := randomorg.NewClient(
		mockHTTPClient, adapter.NewJSON(), clock,
		testAPIURL, []string{"key-1"}, time.Minute, 1000, 9)

	_, err := client.Draw(context.Background(), 0, 10)
	assert.Error(t, err)

	_, err = client.Draw(context.Background(), 5, 3)
	assert.Error(t, err)
}

func TestRandomOrgClient_Usage_DailyReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	// The day before the reset boundary
	clock := newFakeClock(time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC))

	client := randomorg.NewClient(
		mockHTTPClient, adapter.NewJSON(), clock,
		testAPIURL, []string{"key-1"}, time.Minute, 1000, 9)

	mockHTTPClient.EXPECT().
		Post(gomock.Any(), testAPIURL, "application/json", gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, _ string, _ string, _ io.Reader) ([]byte, error) {
			return successResponse(t, 1, 1, 10, []int{7}), nil
		})

	_, err := client.Draw(context.Background(), 1, 10)
	require.NoError(t, err)
	_, err = client.Draw(context.Background(), 1, 10)
	require.NoError(t, err)

	usage := client.Usage()
	assert.Equal(t, 2, usage.Requests)
	assert.Equal(t, 1000, usage.LimitPerKey)

	// Before the reset hour next morning the counter still stands
	clock.Advance(12 * time.Hour) // 2026-01-02 08:00 UTC
	assert.Equal(t, 2, client.Usage().Requests)

	// Past 09:00 UTC the allowance resets lazily
	clock.Advance(2 * time.Hour) // 2026-01-02 10:00 UTC
	assert.Equal(t, 0, client.Usage().Requests)
}
