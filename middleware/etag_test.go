package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/racefinder/models"
)

func TestDatasetVersion(t *testing.T) {
	a, err := DatasetVersion([]models.Race{{ID: "a", Name: "A"}})
	require.NoError(t, err)
	again, err := DatasetVersion([]models.Race{{ID: "a", Name: "A"}})
	require.NoError(t, err)
	b, err := DatasetVersion([]models.Race{{ID: "a", Name: "B"}})
	require.NoError(t, err)

	assert.Equal(t, a, again)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 32)
}

func TestETag(t *testing.T) {
	e := echo.New()
	mw := ETag("v1", func() string { return "2025-03-10" })
	handler := mw(func(c echo.Context) error { return c.String(http.StatusOK, "body") })
	const tag = `"v1-2025-03-10"`

	tests := []struct {
		name        string
		method      string
		ifNoneMatch string
		wantStatus  int
		wantTag     string
	}{
		{"first get", http.MethodGet, "", http.StatusOK, tag},
		{"matching tag", http.MethodGet, tag, http.StatusNotModified, tag},
		{"weak matching tag", http.MethodGet, "W/" + tag, http.StatusNotModified, tag},
		{"one of several", http.MethodGet, `"old", ` + tag, http.StatusNotModified, tag},
		{"stale tag", http.MethodGet, `"v1-2025-03-09"`, http.StatusOK, tag},
		{"post untouched", http.MethodPost, tag, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/races", nil)
			if tt.ifNoneMatch != "" {
				req.Header.Set(headerIfNoneMatch, tt.ifNoneMatch)
			}
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTag, rec.Header().Get(headerETag))
		})
	}
}
