// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stockroom/internal/logger"
	"stockroom/internal/service"
	"stockroom/internal/session"
	"stockroom/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements its service interface with overridable method fields,
// so every test case wires exactly the behaviour it needs.

type mockAuthService struct {
	registerFn func(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, string, error)
	loginFn    func(ctx context.Context, request models.LoginRequest) (models.LoginResponse, string, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, string, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, string, error) {
	return m.loginFn(ctx, request)
}

type mockProductService struct {
	addProductFn   func(ctx context.Context, request models.ProductRequest, token string) (models.ExecResult, error)
	listProductsFn func(ctx context.Context, email, token string) ([]models.Product, error)
}

func (m *mockProductService) AddProduct(ctx context.Context, request models.ProductRequest, token string) (models.ExecResult, error) {
	return m.addProductFn(ctx, request, token)
}

func (m *mockProductService) ListProducts(ctx context.Context, email, token string) ([]models.Product, error) {
	return m.listProductsFn(ctx, email, token)
}

type mockRawService struct {
	addRawFn        func(ctx context.Context, request models.RawRequest, token string) (models.ExecResult, error)
	listRawsFn      func(ctx context.Context, email, token string) ([]models.Raw, error)
	assignProductFn func(ctx context.Context, request models.AssignProductRequest, token string) (models.ExecResult, error)
}

func (m *mockRawService) AddRaw(ctx context.Context, request models.RawRequest, token string) (models.ExecResult, error) {
	return m.addRawFn(ctx, request, token)
}

func (m *mockRawService) ListRaws(ctx context.Context, email, token string) ([]models.Raw, error) {
	return m.listRawsFn(ctx, email, token)
}

func (m *mockRawService) AssignProduct(ctx context.Context, request models.AssignProductRequest, token string) (models.ExecResult, error) {
	return m.assignProductFn(ctx, request, token)
}

type mockPurchaseService struct {
	addPurchaseFn   func(ctx context.Context, request models.PurchaseRequest, token string) (models.ExecResult, error)
	listPurchasesFn func(ctx context.Context, email, token string) ([]models.Purchase, error)
}

func (m *mockPurchaseService) AddPurchase(ctx context.Context, request models.PurchaseRequest, token string) (models.ExecResult, error) {
	return m.addPurchaseFn(ctx, request, token)
}

func (m *mockPurchaseService) ListPurchases(ctx context.Context, email, token string) ([]models.Purchase, error) {
	return m.listPurchasesFn(ctx, email, token)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSignKey = "test-sign-key"

// newTestHandler builds a Handler over the given services with a fixed
// cookie signing key.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, session.NewCookieCodec(testSignKey), logger.Nop())
}

// jsonBody serialises v to a JSON request body.
func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// attachSession adds a properly signed session cookie carrying token to req.
func attachSession(t *testing.T, req *http.Request, token string) {
	t.Helper()

	rec := httptest.NewRecorder()
	session.NewCookieCodec(testSignKey).Set(rec, token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	req.AddCookie(cookies[0])
}

// sessionCookie returns the session cookie set on the response, or nil.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

// decodeBody unmarshals the recorded response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
