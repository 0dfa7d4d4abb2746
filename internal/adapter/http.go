// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"stockroom/internal/logger"
	"stockroom/models"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and installs a
// cookie jar so the session cookie set at registration or login rides along
// on every later call.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetAllowGetMethodPayload(true)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// call performs one API request and decodes the success body into out.
func (h *httpServerAdapter) call(ctx context.Context, method, path string, body, out any) error {
	request := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if body != nil {
		request.SetBody(body)
	}

	resp, err := request.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err := mapAPIError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}

	return nil
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, error) {
	var response models.RegisterResponse
	err := h.call(ctx, resty.MethodPost, "/api/users/register", request, &response)
	return response, err
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var response models.LoginResponse
	err := h.call(ctx, resty.MethodPost, "/api/users/login", request, &response)
	return response, err
}

func (h *httpServerAdapter) Logout(ctx context.Context) (models.LogoutResponse, error) {
	var response models.LogoutResponse
	err := h.call(ctx, resty.MethodGet, "/api/users/logout", nil, &response)
	return response, err
}

func (h *httpServerAdapter) AddProduct(ctx context.Context, request models.ProductRequest) (models.ExecResult, error) {
	var result models.ExecResult
	err := h.call(ctx, resty.MethodPost, "/api/products", request, &result)
	return result, err
}

func (h *httpServerAdapter) ListProducts(ctx context.Context, email string) ([]models.Product, error) {
	var products []models.Product
	err := h.call(ctx, resty.MethodGet, "/api/products", models.OwnerRequest{Email: email}, &products)
	return products, err
}

func (h *httpServerAdapter) AddRaw(ctx context.Context, request models.RawRequest) (models.ExecResult, error) {
	var result models.ExecResult
	err := h.call(ctx, resty.MethodPost, "/api/raws", request, &result)
	return result, err
}

func (h *httpServerAdapter) ListRaws(ctx context.Context, email string) ([]models.Raw, error) {
	var raws []models.Raw
	err := h.call(ctx, resty.MethodGet, "/api/raws", models.OwnerRequest{Email: email}, &raws)
	return raws, err
}

func (h *httpServerAdapter) AssignProduct(ctx context.Context, request models.AssignProductRequest) (models.ExecResult, error) {
	var result models.ExecResult
	err := h.call(ctx, resty.MethodPut, "/api/raws", request, &result)
	return result, err
}

func (h *httpServerAdapter) AddPurchase(ctx context.Context, request models.PurchaseRequest) (models.ExecResult, error) {
	var result models.ExecResult
	err := h.call(ctx, resty.MethodPost, "/api/purchases", request, &result)
	return result, err
}

func (h *httpServerAdapter) ListPurchases(ctx context.Context, email string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := h.call(ctx, resty.MethodGet, "/api/purchases", models.OwnerRequest{Email: email}, &purchases)
	return purchases, err
}
