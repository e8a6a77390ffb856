package export_link

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/link", strings.NewReader(body))
	newHandler().Handle(rec, req)
	return rec
}

func TestHandle_BuildsLink(t *testing.T) {
	rec := post(`{"serviceId":"cut","date":"2024-05-01","time":"10:20"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body LinkResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Empty)

	u, err := url.Parse(body.URL)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", u.Host)
	assert.Equal(t, "20240501T102000Z/20240501T110500Z", u.Query().Get("dates"))
	assert.Equal(t, "Stylist: None.", u.Query().Get("details"))
}

func TestHandle_IncompleteGivesPlaceholder(t *testing.T) {
	rec := post(`{"serviceId":"cut"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body LinkResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Empty)
	assert.Equal(t, "#", body.URL)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(`not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"date":"01.05.2024"}`).Code)
	assert.Equal(t, http.StatusNotFound, post(`{"serviceId":"perm","date":"2024-05-01","time":"10:00"}`).Code)
}
