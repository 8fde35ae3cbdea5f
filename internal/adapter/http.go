package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/models"
	"github.com/go-resty/resty/v2"
)

type httpProfileClient struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPProfileClient constructs an HTTP/REST implementation of
// [ProfileClient]. It normalises and validates the base URL and configures
// the underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPProfileClient(address string, timeout time.Duration, logger *logger.Logger) (ProfileClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid profile api address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpProfileClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ProfileClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpProfileClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ProfileClient].
func (h *httpProfileClient) Token() string {
	return h.token
}

// GetProfile implements [ProfileClient]. It GETs /api/profile and decodes
// the profile out of the response's data envelope.
func (h *httpProfileClient) GetProfile(ctx context.Context) (models.Profile, error) {
	resp, err := h.authedRequest(ctx).Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var envelope struct {
		Data models.Profile `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}

	return envelope.Data, nil
}

// UpdateProfile implements [ProfileClient]. It PUTs the request body to
// PUT /api/profile. Returns [ErrConflict] (wrapped) on HTTP 409 and
// [ErrValidation] (wrapped) on HTTP 400.
func (h *httpProfileClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/profile")
	if err != nil {
		return fmt.Errorf("update profile request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [ProfileClient]. It GETs /api/version and returns
// the plain-text body.
func (h *httpProfileClient) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpProfileClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
