package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "не найдено")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "не найдено", body.Error)
}

func TestRespondJSON_UnencodableBody(t *testing.T) {
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		RespondJSON(rec, http.StatusOK, map[string]interface{}{"ch": make(chan int)})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Body.String())
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInternalError)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ion"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "Ion", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age":3}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)
}
