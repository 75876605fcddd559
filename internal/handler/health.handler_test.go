package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamjuaness/mi-boleta/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	pingErr error
}

func (f *fakeDB) Connect() error                 { return nil }
func (f *fakeDB) Close() error                   { return nil }
func (f *fakeDB) Ping() error                    { return f.pingErr }
func (f *fakeDB) GetType() database.DatabaseType { return database.MongoDBNoSQL }
func (f *fakeDB) IsConnected() bool              { return f.pingErr == nil }

func newHealthRouter(db database.Database) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthHandler(db).Check)
	return r
}

func TestHealthCheckOK(t *testing.T) {
	r := newHealthRouter(&fakeDB{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "mongodb:up", body["database"])
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	r := newHealthRouter(&fakeDB{pingErr: assert.AnError})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "mongodb:down", body["database"])
}
