// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

const (
	evaluatePath = "/api/evaluate"
	suggestPath  = "/api/suggest"
	// Error bodies are only used for the message, no need to read more.
	maxErrorBody = 4 * 1024
)

var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrEmptySuggestion = errors.New("suggestion service returned an empty password")
)

// Evaluator scores a password remotely.
type Evaluator interface {
	Evaluate(ctx context.Context, password string) (advisor.Evaluation, error)
}

// Suggester fetches a generated strong password.
type Suggester interface {
	Suggest(ctx context.Context) (advisor.Suggestion, error)
}

// RequestError is a non-success response from one of the services.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP error %d", e.StatusCode)
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	// Retries only covers transport errors and 5xx/429 responses. Zero disables them.
	Retries int
}

// Client talks to the evaluation and suggestion endpoints of the advisor service.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

func New(opts Options) *Client {
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    initHttpClient(opts),
	}
}

func initHttpClient(opts Options) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.RetryMax = opts.Retries
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 1 * time.Second
	client.ErrorHandler = passResponse

	client.HTTPClient = &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          10,
			IdleConnTimeout:       30 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ForceAttemptHTTP2:     true,
		},
	}

	return client
}

// passResponse hands the last response back once retries are exhausted, so the status
// code reaches the caller instead of a generic "giving up" error.
func passResponse(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// Evaluate sends the password to the evaluation service.
func (c *Client) Evaluate(ctx context.Context, password string) (advisor.Evaluation, error) {
	var result advisor.Evaluation
	if password == "" {
		return result, ErrEmptyPassword
	}

	body, err := json.Marshal(advisor.EvaluationRequest{Password: password})
	if err != nil {
		return result, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, evaluatePath, body)
	if err != nil {
		return result, err
	}

	if err = c.do(req, "evaluate", &result); err != nil {
		return result, err
	}

	return result, nil
}

// Suggest asks the suggestion service for a strong password.
func (c *Client) Suggest(ctx context.Context) (advisor.Suggestion, error) {
	var result advisor.Suggestion
	req, err := c.newRequest(ctx, http.MethodGet, suggestPath, nil)
	if err != nil {
		return result, err
	}

	if err = c.do(req, "suggest", &result); err != nil {
		return result, err
	}

	if result.SuggestedPassword == "" {
		return result, ErrEmptySuggestion
	}

	return result, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*retryablehttp.Request, error) {
	var raw interface{}
	if body != nil {
		raw = body
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, raw)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("User-Agent", "pwd-advisor/1.0")
	return req, nil
}

func (c *Client) do(req *retryablehttp.Request, op string, out interface{}) error {
	timer := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", op, err)
	}

	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing %s response body", op)
		}
	}(res.Body)

	log.Debug().
		Str("request_id", req.Header.Get("X-Request-ID")).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(timer)).
		Msgf("%s request complete", op)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RequestError{Op: op, StatusCode: res.StatusCode, Message: errorMessage(res.Body)}
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", op, err)
	}

	return nil
}

// errorMessage extracts the detail from either a {"error": "..."} body or plain text.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}

	return strings.TrimSpace(string(raw))
}
