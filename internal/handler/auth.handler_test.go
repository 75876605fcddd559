package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamjuaness/mi-boleta/internal/model"
	"github.com/iamjuaness/mi-boleta/internal/model/response"
	"github.com/iamjuaness/mi-boleta/internal/token"
	"github.com/iamjuaness/mi-boleta/internal/user"
	"github.com/iamjuaness/mi-boleta/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeStore struct {
	users map[string]*user.User
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *token.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hashed, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeStore{users: map[string]*user.User{
		"u1@example.com": {
			IDUser:       "42",
			Email:        "u1@example.com",
			Name:         "Juan",
			Role:         user.RoleClient,
			PasswordHash: string(hashed),
			Active:       true,
		},
	}}

	codec := token.NewCodec([]byte(testSecret))
	issuer := token.NewIssuer(codec, time.Hour)
	verifier := token.NewVerifier(codec)
	refresher := token.NewRefresher(verifier, issuer, 5*time.Minute)

	h := NewAuthHandler(store, issuer, refresher, time.Hour)

	r := gin.New()
	r.POST("/api/auth/login",
		validation.Validate[model.LoginRequest, any, any](), h.Login)
	r.POST("/api/auth/refresh",
		validation.Validate[model.RefreshRequest, any, any](), h.Refresh)

	return r, codec
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFromResponse(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var res response.ResponseData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	data, ok := res.Data.(map[string]any)
	require.True(t, ok, "response data should be a token payload")
	tokenString, ok := data["token"].(string)
	require.True(t, ok, "token field missing")
	return tokenString
}

func TestLogin_Success(t *testing.T) {
	r, codec := newAuthRouter(t)

	w := postJSON(r, "/api/auth/login", model.LoginRequest{
		Email:    "u1@example.com",
		Password: "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	claims, err := codec.Decode(tokenFromResponse(t, w))
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", claims.Subject)
	assert.Equal(t, user.RoleClient, claims.Role)
	assert.Equal(t, "Juan", claims.Name)
	assert.Equal(t, "42", claims.IDUser)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/auth/login", model.LoginRequest{
		Email:    "u1@example.com",
		Password: "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/auth/login", model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_RejectsInvalidPayload(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/auth/login", gin.H{"email": "not-an-email", "password": "supersecret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/auth/login", gin.H{"email": "u1@example.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefresh_FarFromExpiryReturnsSameToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	login := postJSON(r, "/api/auth/login", model.LoginRequest{
		Email:    "u1@example.com",
		Password: "supersecret",
	})
	require.Equal(t, http.StatusOK, login.Code)
	issued := tokenFromResponse(t, login)

	w := postJSON(r, "/api/auth/refresh", model.RefreshRequest{Token: issued})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, issued, tokenFromResponse(t, w))
}

func TestRefresh_InvalidToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/auth/refresh", model.RefreshRequest{Token: "not.a.token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
