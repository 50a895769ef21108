package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSwaggerRoutes_ServesDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupSwaggerRoutes(r, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"basePath": "/api/v1"`)
	assert.Contains(t, w.Body.String(), `"/orders"`)
}

func TestSetupSwaggerRoutes_HiddenInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupSwaggerRoutes(r, &config.Config{IsProduction: true})

	req, _ := http.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
