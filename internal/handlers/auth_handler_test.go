package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/config"
	"github.com/adititiwari16/Recruitbotai/internal/middleware"
	"github.com/adititiwari16/Recruitbotai/internal/models"
)

type fakeUserRepo struct {
	byID map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range f.byID {
		if existing.Email == user.Email {
			return apperrors.Validation("email is already registered")
		}
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.byID[user.ID] = user
	return nil
}

func newAuthApp(t *testing.T) (*fiber.App, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	auth := middleware.NewSessionAuth(config.SessionConfig{
		CookieName: "test_session",
		Expiration: time.Hour,
	}, users)
	handler := NewAuthHandler(users, auth)
	userHandler := NewUserHandler(users)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Post("/auth/register", handler.HandleRegister)
	app.Post("/auth/login", handler.HandleLogin)
	app.Post("/auth/logout", auth.RequireAuth(), handler.HandleLogout)
	app.Get("/users/me", auth.RequireAuth(), userHandler.HandleMe)
	return app, users
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "test_session" {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestRegisterAndMe(t *testing.T) {
	app, users := newAuthApp(t)

	resp := postJSON(t, app, "/auth/register", models.RegisterRequest{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "correct horse",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, models.RoleCandidate, created.Role)

	// The password hash must never leave the server.
	stored := users.byID[created.ID]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "correct horse")

	// Registration logs the user in.
	cookie := sessionCookie(t, resp)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(cookie)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newAuthApp(t)

	cases := []models.RegisterRequest{
		{Name: "", Email: "a@b.com", Password: "longenough"},
		{Name: "Ada", Email: "not-an-email", Password: "longenough"},
		{Name: "Ada", Email: "a@b.com", Password: "short"},
		{Name: "Ada", Email: "a@b.com", Password: "longenough", Role: "admin"},
	}
	for _, tc := range cases {
		resp := postJSON(t, app, "/auth/register", tc)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := newAuthApp(t)

	req := models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}
	resp := postJSON(t, app, "/auth/register", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/register", req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, _ := newAuthApp(t)

	resp := postJSON(t, app, "/auth/register", models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", models.LoginRequest{
		Email: "ada@example.com", Password: "correct horse",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	sessionCookie(t, resp)

	resp = postJSON(t, app, "/auth/login", models.LoginRequest{
		Email: "ada@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", models.LoginRequest{
		Email: "nobody@example.com", Password: "correct horse",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMeRequiresSession(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	app, _ := newAuthApp(t)

	resp := postJSON(t, app, "/auth/register", models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cookie := sessionCookie(t, resp)

	resp = postJSON(t, app, "/auth/logout", fiber.Map{}, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(cookie)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, meResp.StatusCode)
}
