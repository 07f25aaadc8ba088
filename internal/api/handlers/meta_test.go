package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"albion-backend/internal/schema"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMetaRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registry, err := schema.Load()
	require.NoError(t, err)
	handler := NewMetaHandler(registry)

	router := gin.New()
	router.GET("/meta", handler.GetEntities)
	router.GET("/meta/:entity", handler.GetEntityFields)
	return router
}

func TestGetEntities(t *testing.T) {
	router := setupMetaRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/meta", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Entities []string `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Entities, "order")
	assert.Contains(t, resp.Entities, "machine")
}

func TestGetEntityFields(t *testing.T) {
	router := setupMetaRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/meta/shift", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Entity string                   `json:"entity"`
		Fields []schema.FieldDescriptor `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "shift", resp.Entity)
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "shift_name", resp.Fields[0].Fieldname)
}

func TestGetEntityFieldsUnknown(t *testing.T) {
	router := setupMetaRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/meta/warehouse", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown entity")
}
