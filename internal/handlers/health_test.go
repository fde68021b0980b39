package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alfagnish/userlist/internal/users"
	"github.com/stretchr/testify/assert"
)

func TestHealth_ReportsUserCount(t *testing.T) {
	reg := users.NewRegistry(users.SeedUsers()...)
	h := NewHealthHandler(reg)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","users":2}`, rec.Body.String())
}
