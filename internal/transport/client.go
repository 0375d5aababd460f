// Package transport is the single point of outbound HTTP communication.
// Every service module goes through one Client; there are no retries and
// no caching here — failures surface to the caller unchanged.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/RoomLink-Network/client_layer/internal/metrics"
	"github.com/RoomLink-Network/client_layer/pkg/logger"
)

const maxResponseBytes = 8 << 20

// Client is the configured HTTP client shared by all service modules.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	headers    map[string]string
	log        *logger.Logger
}

// Config holds transport configuration.
type Config struct {
	// BaseURL is the backend root, e.g. https://api.roomlink.example.
	BaseURL string
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
	// RequestsPerSecond caps outbound request rate. Zero disables the cap.
	RequestsPerSecond float64
	// Headers are attached to every request (API keys, client ids).
	Headers map[string]string
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
	Log        *logger.Logger
}

// New creates a transport client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond)+1)
	}

	log := cfg.Log
	if log == nil {
		log = logger.NewDefault("transport")
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		limiter:    limiter,
		headers:    headers,
		log:        log,
	}, nil
}

// RequestOptions carry per-call extras.
type RequestOptions struct {
	Query  url.Values
	Header http.Header
}

// Request performs one HTTP call. A non-nil body is sent as JSON; a
// non-nil out receives the decoded, envelope-normalized response payload.
func (c *Client) Request(ctx context.Context, method, path string, body, out any, opts *RequestOptions) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecode, Message: "encode request body", Err: err}
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, reader, contentType, out, opts)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, out any, opts *RequestOptions) error {
	return c.Request(ctx, http.MethodGet, path, nil, out, opts)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPost, path, body, out, nil)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPut, path, body, out, nil)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPatch, path, body, out, nil)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Request(ctx, http.MethodDelete, path, nil, out, nil)
}

// UploadFile carries one multipart file part.
type UploadFile struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

// Upload performs a multipart POST with one file part plus form fields.
func (c *Client) Upload(ctx context.Context, path string, file UploadFile, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return &Error{Kind: KindDecode, Message: "write form field", Err: err}
		}
	}

	partHeader := make(map[string][]string)
	partHeader["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.FileName)}
	if file.ContentType != "" {
		partHeader["Content-Type"] = []string{file.ContentType}
	}
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return &Error{Kind: KindDecode, Message: "create multipart part", Err: err}
	}
	if _, err := part.Write(file.Data); err != nil {
		return &Error{Kind: KindDecode, Message: "write multipart payload", Err: err}
	}
	if err := writer.Close(); err != nil {
		return &Error{Kind: KindDecode, Message: "finalize multipart body", Err: err}
	}

	return c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any, opts *RequestOptions) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Kind: KindNetwork, Message: "rate limit wait", Err: err}
		}
	}

	target := c.baseURL + path
	if opts != nil && len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "create request", Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if opts != nil {
		for k, vs := range opts.Header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	done := metrics.RequestStarted()
	defer done()
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, 0, time.Since(started))
		return &Error{Kind: KindNetwork, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	metrics.ObserveRequest(method, resp.StatusCode, time.Since(started))

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "read response body", Err: err}
	}

	if resp.StatusCode >= 400 {
		return &Error{Kind: KindStatus, Status: resp.StatusCode, Message: errorMessage(payload, resp.StatusCode)}
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	return decodePayload(payload, out)
}

// decodePayload normalizes the backend's inconsistent envelopes: a full
// `{statusCode,status,message,data}` envelope, a bare `{data}` wrapper,
// or an unwrapped payload all decode into the same target.
func decodePayload(payload []byte, out any) error {
	body := gjson.ParseBytes(payload)
	if body.IsObject() {
		if data := body.Get("data"); data.Exists() && (body.Get("statusCode").Exists() || body.Get("status").Exists()) {
			return unmarshalInto([]byte(data.Raw), out)
		}
		if data := body.Get("data"); data.Exists() && len(body.Map()) == 1 {
			return unmarshalInto([]byte(data.Raw), out)
		}
	}
	return unmarshalInto(payload, out)
}

func unmarshalInto(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindDecode, Message: "decode response", Err: err}
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error body.
func errorMessage(payload []byte, status int) string {
	body := gjson.ParseBytes(payload)
	for _, key := range []string{"message", "error", "detail"} {
		if v := body.Get(key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	if msg := strings.TrimSpace(string(payload)); msg != "" && len(msg) <= 512 {
		return msg
	}
	return http.StatusText(status)
}
