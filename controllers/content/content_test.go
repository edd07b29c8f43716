package contentController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"edusphere/config"
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	"edusphere/routers/adminRoutes"
	"edusphere/routers/contentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:      "test-secret",
		UploadDir:   t.TempDir(),
		ContentFile: filepath.Join(t.TempDir(), "content.json"),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	require.NoError(t, database.InitPageContent(config.AppConfig.ContentFile))

	app := fiber.New()
	contentRoutes.SetupContentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	token, err := middleware.GenerateJWT(0, "Administrator", "ADMIN", "admin@gmail.com")
	require.NoError(t, err)
	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestUpdateContentMergesFields(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/api/content/home", token, fiber.Map{
		"title":       "Welcome",
		"subtitle":    "Learn anything",
		"description": "Original description",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// A later patch only touches the title; everything else must survive.
	resp, parsed := doJSON(t, app, http.MethodPut, "/api/content/home", token, fiber.Map{"title": "X"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var content models.Content
	require.NoError(t, json.Unmarshal(parsed.Data, &content))
	assert.Equal(t, "X", content.Title)
	assert.Equal(t, "Learn anything", content.Subtitle)
	assert.Equal(t, "Original description", content.Description)

	resp, parsed = doJSON(t, app, http.MethodGet, "/api/content/home", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(parsed.Data, &content))
	assert.Equal(t, "X", content.Title)
	assert.Equal(t, "Learn anything", content.Subtitle)
}

func TestUpdateContentExtraKeys(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/api/content/features", token, fiber.Map{
		"title":    "Why Us",
		"features": []string{"live classes", "certificates"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Nested values replace wholesale, no deep merge.
	resp, parsed := doJSON(t, app, http.MethodPut, "/api/content/features", token, fiber.Map{
		"features": []string{"mentorship"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var content models.Content
	require.NoError(t, json.Unmarshal(parsed.Data, &content))
	assert.Equal(t, "Why Us", content.Title)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(content.Extra, &extra))
	assert.Equal(t, []interface{}{"mentorship"}, extra["features"])
}

func TestUpdateContentRequiresAdmin(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/content/home", bytes.NewBufferString(`{"title":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetContentNotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/content/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPageContentSeededDefaults(t *testing.T) {
	app, token := setupApp(t)

	resp, parsed := doJSON(t, app, http.MethodGet, "/api/admin/page-content", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(parsed.Data, &doc))
	for _, page := range []string{"home", "about", "contact", "features", "testimonials"} {
		assert.Contains(t, doc, page)
	}
	assert.Equal(t, "About EduSphere", doc["about"]["title"])
}

func TestUpdatePageContent(t *testing.T) {
	app, token := setupApp(t)

	resp, parsed := doJSON(t, app, http.MethodPut, "/api/admin/page-content", token, fiber.Map{
		"page":  "home",
		"title": "A New Welcome",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var section map[string]interface{}
	require.NoError(t, json.Unmarshal(parsed.Data, &section))
	assert.Equal(t, "A New Welcome", section["title"])
	assert.NotEmpty(t, section["description"]) // untouched keys survive

	resp, _ = doJSON(t, app, http.MethodPut, "/api/admin/page-content", token, fiber.Map{
		"page":  "no-such-page",
		"title": "X",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
