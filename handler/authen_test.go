package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroll_cms/client"
	"metroll_cms/helper"
	"metroll_cms/model"
	"metroll_cms/service"
	"metroll_cms/validate"
)

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*model.Session)}
}

func (s *memoryStore) Get(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, helper.ErrSessionNotFound
	}
	return sess, nil
}

func (s *memoryStore) Save(ctx context.Context, sess *model.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memoryStore) Destroy(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func TestLoginHandler_SetsCookieAndAnswersAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accountId":"acc-1","email":"admin@metroll.local","role":"ADMIN"}`))
	}))
	defer upstream.Close()

	store := newMemoryStore()
	auth := service.NewAuthService(client.New(upstream.URL), store, time.Hour)
	h := &AuthHandler{Auth: auth}

	app := fiber.New()
	app.Post("/auth/login", validate.Login(), h.Login)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"idToken":"id-123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Account struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"account"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "login success", body.Message)
	assert.Equal(t, "acc-1", body.Account.ID)
	assert.Equal(t, "ADMIN", body.Account.Role)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "session cookie must be set")
	assert.True(t, cookie.HttpOnly)

	claim, err := helper.ParseSessionToken(cookie.Value)
	require.NoError(t, err)
	_, err = store.Get(context.Background(), claim.SessionID)
	assert.NoError(t, err, "cookie points at a live session")
}

func TestLoginHandler_MissingToken(t *testing.T) {
	h := &AuthHandler{}
	app := fiber.New()
	app.Post("/auth/login", validate.Login(), h.Login)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginHandler_UpstreamRejection(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid identity token"}`))
	}))
	defer upstream.Close()

	auth := service.NewAuthService(client.New(upstream.URL), newMemoryStore(), time.Hour)
	h := &AuthHandler{Auth: auth}

	app := fiber.New()
	app.Post("/auth/login", validate.Login(), h.Login)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"idToken":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "redirect")
}
