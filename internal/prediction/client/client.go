// Package client calls a remote prediction service over HTTP. It satisfies
// prediction.UseCase so callers can swap it for the in-process use case.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"scheduling-intelligence/internal/middleware"
	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/prediction"
)

const DefaultTimeout = 5 * time.Second

// Client fetches predictions from GET {baseURL}/api/v1/predictions.
type Client struct {
	baseURL     string
	ownerHeader string
	httpClient  *http.Client
}

// New creates a Client that sends the owner id in ownerHeader (X-Owner-ID
// when empty). A non-positive timeout takes DefaultTimeout.
func New(baseURL, ownerHeader string, timeout time.Duration) *Client {
	if ownerHeader == "" {
		ownerHeader = middleware.DefaultOwnerHeader
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		ownerHeader: ownerHeader,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      struct {
		Predictions []prediction.Prediction `json:"predictions"`
	} `json:"data"`
}

// Predict returns prediction.ErrRemoteUnavailable for transport failures,
// non-2xx responses and error envelopes.
func (c *Client) Predict(ctx context.Context, sc model.Scope, input prediction.PredictInput) (prediction.PredictOutput, error) {
	q := url.Values{}
	if input.LookaheadDays > 0 {
		q.Set("days", strconv.Itoa(input.LookaheadDays))
	}
	endpoint := c.baseURL + "/api/v1/predictions"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return prediction.PredictOutput{}, fmt.Errorf("%w: build request: %v", prediction.ErrRemoteUnavailable, err)
	}
	req.Header.Set(c.ownerHeader, sc.UserID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return prediction.PredictOutput{}, fmt.Errorf("%w: %v", prediction.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return prediction.PredictOutput{}, fmt.Errorf("%w: status %d", prediction.ErrRemoteUnavailable, resp.StatusCode)
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return prediction.PredictOutput{}, fmt.Errorf("%w: decode: %v", prediction.ErrRemoteUnavailable, err)
	}
	if body.ErrorCode != 0 {
		return prediction.PredictOutput{}, fmt.Errorf("%w: %s", prediction.ErrRemoteUnavailable, body.Message)
	}

	return prediction.PredictOutput{Predictions: body.Data.Predictions}, nil
}
