package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ISHAsolanki/property-final/handlers"
	"github.com/ISHAsolanki/property-final/models"
	"github.com/ISHAsolanki/property-final/store"
)

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserStore) Count(context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type authEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func postAuth(t *testing.T, e *echo.Echo, path, body string) (*httptest.ResponseRecorder, authEnvelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var env authEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	return rec, env
}

func TestRegisterFirstAdminOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	fake := &fakeUserStore{}
	e := newTestEcho()
	ac := handlers.NewAuthControllerWith(fake)
	e.POST("/api/auth/register", ac.Register)

	body := `{"email":"admin@example.com","password":"secret1","name":"Admin"}`
	rec, env := postAuth(t, e, "/api/auth/register", body)
	if rec.Code != http.StatusCreated || !env.Success || env.Token == "" {
		t.Fatalf("first register: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec, env = postAuth(t, e, "/api/auth/register",
		`{"email":"second@example.com","password":"secret1","name":"Second"}`)
	if rec.Code != http.StatusForbidden || env.Success {
		t.Errorf("second register: status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	fake := &fakeUserStore{}
	e := newTestEcho()
	ac := handlers.NewAuthControllerWith(fake)
	e.POST("/api/auth/register", ac.Register)
	e.POST("/api/auth/login", ac.Login)

	postAuth(t, e, "/api/auth/register",
		`{"email":"admin@example.com","password":"secret1","name":"Admin"}`)

	rec, env := postAuth(t, e, "/api/auth/login",
		`{"email":"admin@example.com","password":"secret1"}`)
	if rec.Code != http.StatusOK || !env.Success || env.Token == "" {
		t.Fatalf("login: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec, env = postAuth(t, e, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong-pass"}`)
	if rec.Code != http.StatusUnauthorized || env.Success {
		t.Errorf("bad password: status %d, body %s", rec.Code, rec.Body.String())
	}
	if env.Message != "Invalid email or password" {
		t.Errorf("message = %q", env.Message)
	}
}
