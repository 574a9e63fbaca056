// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath = "/api/auth/register"
	loginPath    = "/api/auth/login"
	versionPath  = "/api/version/"
	examplesPath = "/api/examples/"
	examplePath  = "/api/examples/{id}/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. Every response is logged at debug level.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("api response")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. The token is read from the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, registerPath, user)
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, loginPath, user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) error {
	resp, err := send(h.client.R().SetContext(ctx).SetBody(user), resty.MethodPost, path, path)
	if err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	version, err := fetch[models.VersionResponse](h.client.R().SetContext(ctx), resty.MethodGet, versionPath, "version")
	return version.Version, err
}

// ListExamples implements [ServerAdapter].
func (h *httpServerAdapter) ListExamples(ctx context.Context, page int) (models.ExampleListResponse, error) {
	req := h.authedRequest(ctx).SetQueryParam("page", strconv.Itoa(page))
	return fetch[models.ExampleListResponse](req, resty.MethodGet, examplesPath, "list examples")
}

// GetExample implements [ServerAdapter].
func (h *httpServerAdapter) GetExample(ctx context.Context, id int64) (models.ExampleResponse, error) {
	return fetch[models.ExampleResponse](h.itemRequest(ctx, id), resty.MethodGet, examplePath, "get example")
}

// CreateExample implements [ServerAdapter].
func (h *httpServerAdapter) CreateExample(ctx context.Context, req models.ExampleCreateRequest) (models.ExampleResponse, error) {
	return fetch[models.ExampleResponse](h.authedRequest(ctx).SetBody(req), resty.MethodPost, examplesPath, "create example")
}

// UpdateExample implements [ServerAdapter]. It sends PATCH, so only the
// non-nil fields of req change.
func (h *httpServerAdapter) UpdateExample(ctx context.Context, id int64, req models.ExampleUpdateRequest) (models.ExampleResponse, error) {
	return fetch[models.ExampleResponse](h.itemRequest(ctx, id).SetBody(req), resty.MethodPatch, examplePath, "update example")
}

// DeleteExample implements [ServerAdapter].
func (h *httpServerAdapter) DeleteExample(ctx context.Context, id int64) error {
	_, err := send(h.itemRequest(ctx, id), resty.MethodDelete, examplePath, "delete example")
	return err
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) itemRequest(ctx context.Context, id int64) *resty.Request {
	return h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(id, 10))
}

// send executes req and turns transport failures and non-2xx statuses
// into errors. op names the call in transport errors.
func send(req *resty.Request, method, path, op string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	return resp, mapHTTPError(resp)
}

// fetch is send for calls answering with a JSON body of type T.
func fetch[T any](req *resty.Request, method, path, op string) (T, error) {
	var result T
	if _, err := send(req.SetResult(&result), method, path, op); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
