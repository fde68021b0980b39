package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloHandler_Variants(t *testing.T) {
	tests := []struct {
		variant     string
		contentType string
		body        string
	}{
		{variant: "lec1", contentType: "text/plain", body: "Hello World from NodeJs server  "},
		{variant: "lec3", contentType: "text/html", body: "Hello World!"},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			h, err := NewHelloHandler(tt.variant)
			require.NoError(t, err)

			for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(method, "/anything/at/all", nil))

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestNewHelloHandler_UnknownVariant(t *testing.T) {
	_, err := NewHelloHandler("lec2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lec2")
}
