package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"edusphere/config"
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	"edusphere/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		UploadDir: t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{BodyLimit: 8 * 1024 * 1024})
	courseRoutes.SetupCourseRoutes(app)

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

func createCourse(t *testing.T, app *fiber.App, token string) models.Course {
	t.Helper()

	payload := fiber.Map{
		"title":       "Intro to Algebra",
		"description": "Linear equations and beyond",
		"category":    "Mathematics",
		"price":       4999,
		"duration":    "8 weeks",
	}
	resp, parsed := doJSON(t, app, http.MethodPost, "/api/courses", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, json.Unmarshal(parsed.Data, &course))
	return course
}

func TestCreateCourseDefaults(t *testing.T) {
	app, token := setupApp(t)

	course := createCourse(t, app, token)
	assert.True(t, course.IsActive)
	assert.Equal(t, 0, course.StudentCount)
	assert.Equal(t, "4.8", course.Rating)
	assert.Equal(t, 4999, course.Price)
}

func TestCreateCourseRequiresAdmin(t *testing.T) {
	app, _ := setupApp(t)

	payload := fiber.Map{"title": "X", "description": "Y", "category": "Z", "price": 1, "duration": "1 week"}

	req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	userToken, err := middleware.GenerateJWT(7, "Jane", models.RoleStudent, "jane@example.com")
	require.NoError(t, err)
	resp2, _ := doJSON(t, app, http.MethodPost, "/api/courses", userToken, payload)
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestCreateCourseValidation(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/courses", token, fiber.Map{"title": "no description"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListCoursesExcludesSoftDeleted(t *testing.T) {
	app, token := setupApp(t)

	kept := createCourse(t, app, token)
	dropped := createCourse(t, app, token)

	resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/courses/%d", dropped.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, parsed := doJSON(t, app, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(parsed.Data, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, kept.ID, courses[0].ID)

	// Direct fetch still returns the soft-deleted record.
	resp, parsed = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d", dropped.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var course models.Course
	require.NoError(t, json.Unmarshal(parsed.Data, &course))
	assert.False(t, course.IsActive)
}

func TestDeleteCourseNotFound(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/courses/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateCoursePartialJSON(t *testing.T) {
	app, token := setupApp(t)
	course := createCourse(t, app, token)

	resp, parsed := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/courses/%d", course.ID), token, fiber.Map{"price": 2999})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Course
	require.NoError(t, json.Unmarshal(parsed.Data, &updated))
	assert.Equal(t, 2999, updated.Price)
	assert.Equal(t, course.Title, updated.Title) // untouched fields survive
	assert.Equal(t, course.Duration, updated.Duration)
}

func TestUpdateCourseMultipart(t *testing.T) {
	app, token := setupApp(t)
	course := createCourse(t, app, token)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("price", "1599"))
	require.NoError(t, w.WriteField("studentCount", "42"))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="cover.jpg"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/courses/%d", course.ID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	var updated models.Course
	require.NoError(t, json.Unmarshal(parsed.Data, &updated))
	assert.Equal(t, 1599, updated.Price)
	assert.Equal(t, 42, updated.StudentCount)
	assert.Contains(t, updated.ImageURL, "/uploads/courses/")
	assert.Equal(t, course.Title, updated.Title)
}

func TestUpdateCourseRejectsNonImage(t *testing.T) {
	app, token := setupApp(t)
	course := createCourse(t, app, token)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="cover.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/courses/%d", course.ID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
