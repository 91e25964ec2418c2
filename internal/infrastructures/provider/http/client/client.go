package client

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
	"unicode/utf8"

	derr "github.com/ozzus/tours-gateway/internal/domain/errors"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider/auth"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider/dto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultTimeout = 15 * time.Second

	searchPath   = "/activity.json/search"
	activityPath = "/activity.json/"

	maxBodyBytes    = 10 << 20
	maxMessageBytes = 1 << 10
)

type Client struct {
	baseURL    string
	auth       *auth.Scheme
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(baseURL string, scheme *auth.Scheme, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		auth:       scheme,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search issues one POST /activity.json/search.
func (c *Client) Search(ctx context.Context, search dto.SearchRequest) (dto.SearchResponse, error) {
	payload, err := json.Marshal(search)
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("marshal search request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, searchPath, payload)
	if err != nil {
		return dto.SearchResponse{}, err
	}

	resp, err := dto.DecodeSearchResponse(body)
	if err != nil {
		return dto.SearchResponse{}, invalidPayload(err)
	}
	return resp, nil
}

// GetActivity issues one GET /activity.json/{id}.
func (c *Client) GetActivity(ctx context.Context, id string) (dto.RawActivity, error) {
	body, err := c.do(ctx, http.MethodGet, activityPath+url.PathEscape(id), nil)
	if err != nil {
		return dto.RawActivity{}, err
	}

	if !json.Valid(body) {
		return dto.RawActivity{}, invalidPayload(dto.ErrInvalidPayload)
	}
	return dto.DecodeActivity(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	ctx, span := otel.Tracer("tours-gateway/provider").Start(ctx, method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("http.method", method))

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		c.auth.Apply(req)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upErr := c.transportError(err)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, upErr.Message)
		return nil, upErr
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		upErr := c.transportError(err)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, upErr.Message)
		return nil, upErr
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		span.SetStatus(otelcodes.Error, resp.Status)
		return nil, &derr.UpstreamError{
			Status:  resp.StatusCode,
			Message: upstreamMessage(resp, body),
		}
	}

	return body, nil
}

func (c *Client) transportError(err error) *derr.UpstreamError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return &derr.UpstreamError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("upstream request timed out after %s", c.timeout),
			Err:     err,
		}
	case errors.Is(err, context.Canceled):
		return &derr.UpstreamError{
			Status:  http.StatusInternalServerError,
			Message: "upstream request canceled",
			Err:     err,
		}
	default:
		return &derr.UpstreamError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("upstream request failed: %v", err),
			Err:     err,
		}
	}
}

func invalidPayload(err error) *derr.UpstreamError {
	return &derr.UpstreamError{
		Status:  http.StatusBadGateway,
		Message: dto.ErrInvalidPayload.Error(),
		Err:     err,
	}
}

// upstreamMessage prefers a message/error string from a JSON body, then the
// raw body text, then the status line.
func upstreamMessage(resp *http.Response, body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"message", "error", "errorMessage"} {
			if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
				return truncate(strings.TrimSpace(s), maxMessageBytes)
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return truncate(text, maxMessageBytes)
	}

	if resp.Status != "" {
		return resp.Status
	}
	return http.StatusText(resp.StatusCode)
}

// truncate cuts s to at most limit bytes, backing off only over a rune split by
// the cut. Invalid bytes earlier in s are kept as they are.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && cut > limit-utf8.UTFMax && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
