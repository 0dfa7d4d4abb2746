// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/service"
	"stockroom/models"
)

func TestAddRaw_NumberLinkIsRequested(t *testing.T) {
	raws := &mockRawService{
		addRawFn: func(_ context.Context, request models.RawRequest, _ string) (models.ExecResult, error) {
			require.True(t, request.ProductID.Valid)
			assert.Equal(t, int64(3), request.ProductID.ID)
			return models.ExecResult{InsertID: 11, AffectedRows: 1}, nil
		},
	}
	h := newTestHandler(t, &service.Services{RawService: raws})

	body := `{"email":"john@example.com","item_id":200,"item_name":"Steel","image_url":"u","product_id":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/raws", strings.NewReader(body))
	attachSession(t, req, "token-1")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"insertId":11,"affectedRows":1}`, rec.Body.String())
}

// Only a JSON number requests a product link: a string (or null, or absence)
// must reach the service as "no link", not as a decoding error.
func TestAddRaw_StringLinkMeansNoLink(t *testing.T) {
	raws := &mockRawService{
		addRawFn: func(_ context.Context, request models.RawRequest, _ string) (models.ExecResult, error) {
			assert.False(t, request.ProductID.Valid)
			return models.ExecResult{InsertID: 12, AffectedRows: 1}, nil
		},
	}
	h := newTestHandler(t, &service.Services{RawService: raws})

	body := `{"email":"john@example.com","item_id":200,"item_name":"Steel","image_url":"u","product_id":"3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/raws", strings.NewReader(body))
	attachSession(t, req, "token-1")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAddRaw_AlreadyExists(t *testing.T) {
	raws := &mockRawService{
		addRawFn: func(context.Context, models.RawRequest, string) (models.ExecResult, error) {
			return models.ExecResult{}, service.ErrRawAlreadyExists
		},
	}
	h := newTestHandler(t, &service.Services{RawService: raws})

	req := httptest.NewRequest(http.MethodPost, "/api/raws", jsonBody(t, models.RawRequest{
		Email: "john@example.com", ItemID: 200,
	}))
	attachSession(t, req, "token-1")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"raw":"Raw already exists","error":true}`, rec.Body.String())
}

func TestListRaws_LinkRendering(t *testing.T) {
	raws := &mockRawService{
		listRawsFn: func(context.Context, string, string) ([]models.Raw, error) {
			return []models.Raw{
				{RawID: 1, ItemID: 200, ItemName: "Steel", ImageURL: "u", ProductID: models.Link(3), UserID: 1},
				{RawID: 2, ItemID: 201, ItemName: "Copper", ImageURL: "u", UserID: 1},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{RawService: raws})

	req := httptest.NewRequest(http.MethodGet, "/api/raws", jsonBody(t, models.OwnerRequest{Email: "john@example.com"}))
	attachSession(t, req, "token-1")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"raw_id":1,"item_id":200,"item_name":"Steel","image_url":"u","product_id":3,"user_id":1},
		{"raw_id":2,"item_id":201,"item_name":"Copper","image_url":"u","product_id":null,"user_id":1}
	]`, rec.Body.String())
}

func TestAssignProduct_Success(t *testing.T) {
	raws := &mockRawService{
		assignProductFn: func(_ context.Context, request models.AssignProductRequest, token string) (models.ExecResult, error) {
			assert.Equal(t, "token-1", token)
			assert.Equal(t, int64(7), request.RawID)
			require.True(t, request.ProductID.Valid)
			return models.ExecResult{AffectedRows: 1}, nil
		},
	}
	h := newTestHandler(t, &service.Services{RawService: raws})

	req := httptest.NewRequest(http.MethodPut, "/api/raws", jsonBody(t, models.AssignProductRequest{
		RawID: 7, ProductID: models.Link(3),
	}))
	attachSession(t, req, "token-1")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"insertId":0,"affectedRows":1}`, rec.Body.String())
}

func TestAssignProduct_RawNotFound(t *testing.T) {
	raws := &mockRawService{
		assignProductFn: func(context.Context, models.AssignProductRequest, string) (models.ExecResult, error) {
			return models.ExecResult{}, service.ErrRawNotFound
		},
	}
	h := newTestHandler(t, &service.Services{RawService: raws})

	req := httptest.NewRequest(http.MethodPut, "/api/raws", jsonBody(t, models.AssignProductRequest{RawID: 99}))
	attachSession(t, req, "token-1")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"raw":"Raw not found","error":true}`, rec.Body.String())
}
