// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusOK)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteJSON_StatusPassthrough(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, []int{1, 2, 3}, http.StatusCreated)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
