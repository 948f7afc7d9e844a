package catalog_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/castpage/catalog-api/api"
	"github.com/castpage/catalog-api/api/types"
	"github.com/castpage/catalog-api/internal/database"
	"github.com/castpage/catalog-api/internal/models"
	"github.com/castpage/catalog-api/internal/services/episodes"
	"github.com/castpage/catalog-api/internal/services/session"
	"github.com/castpage/catalog-api/internal/services/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const adminPassword = "integration-password"

type IntegrationTestSuite struct {
	t      *testing.T
	db     *gorm.DB
	deps   *types.Dependencies
	router *gin.Engine
	token  string
}

func setupIntegrationTestSuite(t *testing.T) *IntegrationTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(
		&models.Episode{},
		&models.FeaturedEpisode{},
	)
	require.NoError(t, err, "Failed to migrate test database")

	deps := &types.Dependencies{
		DB:             &database.DB{DB: db},
		EpisodeService: episodes.NewService(episodes.NewRepository(db)),
		SessionService: session.NewService(session.NewCodec("integration-secret"), adminPassword),
		ObjectStore:    storage.NewLocalStore(t.TempDir(), "/uploads"),
		MaxImageWidth:  1600,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	cleanupInitialized := &sync.Once{}

	err = api.RegisterRoutes(router, deps, rateLimiters, cleanupStop, cleanupInitialized)
	require.NoError(t, err, "Failed to register routes")

	suite := &IntegrationTestSuite{
		t:      t,
		db:     db,
		deps:   deps,
		router: router,
	}
	suite.login()
	return suite
}

func (suite *IntegrationTestSuite) login() {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, session.AdminUsername, adminPassword)
	w := suite.request(http.MethodPost, "/api/v1/admin/login", []byte(body), false)
	require.Equal(suite.t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var response types.LoginResponse
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &response))
	suite.token = response.Token
}

func (suite *IntegrationTestSuite) request(method, path string, body []byte, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestCatalogLifecycle(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	// Create an episode through the admin panel
	create := []byte(`{
		"title": "Costco",
		"company": "Costco",
		"duration": "3h 20m",
		"description": "The story of the membership warehouse",
		"date": "2023-01-15"
	}`)
	w := suite.request(http.MethodPost, "/api/v1/admin/episodes", create, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created types.EpisodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "costco", created.Episode.Slug)

	// The public catalog sees it without credentials
	w = suite.request(http.MethodGet, "/api/v1/episodes/costco", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	// Feature it
	w = suite.request(http.MethodPost, "/api/v1/admin/featured", []byte(`{"slug":"costco"}`), true)
	require.Equal(t, http.StatusOK, w.Code)

	var featured types.FeaturedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
	assert.Equal(t, []string{"costco"}, featured.FeaturedSlugs)

	// The public list carries the featured slug
	w = suite.request(http.MethodGet, "/api/v1/episodes", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var listing types.EpisodeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing.Episodes, 1)
	assert.Equal(t, []string{"costco"}, listing.FeaturedSlugs)

	// Delete it; the featured entry goes with it
	w = suite.request(http.MethodDelete, "/api/v1/admin/episodes", []byte(`{"slug":"costco"}`), true)
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/episodes", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	listing = types.EpisodeListResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Empty(t, listing.Episodes)
	assert.Empty(t, listing.FeaturedSlugs)
}

func TestAdminEndpointsRejectAnonymousRequests(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	paths := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/api/v1/admin/episodes"},
		{method: http.MethodDelete, path: "/api/v1/admin/episodes"},
		{method: http.MethodPost, path: "/api/v1/admin/featured"},
		{method: http.MethodPost, path: "/api/v1/admin/upload"},
		{method: http.MethodGet, path: "/api/v1/admin/export"},
		{method: http.MethodPost, path: "/api/v1/admin/import"},
	}

	for _, tt := range paths {
		w := suite.request(tt.method, tt.path, []byte(`{}`), false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestImportExportAgainstDatabase(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	doc := []byte(`{
		"episodes": [
			{"slug":"costco","title":"Costco","company":"Costco","duration":"3h","description":"d","date":"2023-01-15"},
			{"slug":"lvmh","title":"LVMH","company":"LVMH","duration":"2h","description":"d","date":"2024-03-01"}
		],
		"featuredSlugs": ["lvmh"]
	}`)

	w := suite.request(http.MethodPost, "/api/v1/admin/import", doc, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var imported types.ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &imported))
	assert.True(t, imported.Success)
	assert.Equal(t, 2, imported.Imported)

	w = suite.request(http.MethodGet, "/api/v1/admin/export", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var exported episodes.ExportDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exported))
	require.Len(t, exported.Episodes, 2)
	// Export is date-descending
	assert.Equal(t, "lvmh", exported.Episodes[0].Slug)
	assert.Equal(t, []string{"lvmh"}, exported.FeaturedSlugs)
}

func TestUnknownRouteReturnsStructured404(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	w := suite.request(http.MethodGet, "/api/v1/nope", nil, false)
	require.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "/api/v1/nope", response["path"])
}
