package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/iamjuaness/mi-boleta/internal/constant"
	"github.com/iamjuaness/mi-boleta/internal/policy"
	"github.com/iamjuaness/mi-boleta/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestRouter(t *testing.T) (*gin.Engine, *token.Issuer, *token.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec := token.NewCodec([]byte(testSecret))
	issuer := token.NewIssuer(codec, time.Hour)
	verifier := token.NewVerifier(codec)

	r := gin.New()
	r.Use(NewRequestAuthorizer(verifier).Authenticate())
	r.Use(Authorize(policy.Routes()))

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/api/events/1", ok)
	r.POST("/api/cart/items", ok)
	r.GET("/api/admin/users/u1", ok)
	r.GET("/api/auth/me", func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		require.NotNil(t, principal)
		c.JSON(http.StatusOK, principal)
	})

	return r, issuer, codec
}

func do(r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginThenAccessScenario(t *testing.T) {
	r, issuer, _ := newTestRouter(t)

	clientToken, err := issuer.Issue("u1", token.Attributes{Role: "CLIENT"})
	require.NoError(t, err)

	// CLIENT reaches the CLIENT-restricted route.
	w := do(r, http.MethodPost, "/api/cart/items", "Bearer "+clientToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// The same principal is refused on the ADMIN-restricted route.
	w = do(r, http.MethodGet, "/api/admin/users/u1", "Bearer "+clientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := issuer.Issue("a1", token.Attributes{Role: "ADMIN"})
	require.NoError(t, err)
	w = do(r, http.MethodGet, "/api/admin/users/u1", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMissingHeaderScenario(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// Authenticated-only route without a header is denied.
	w := do(r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The public route stays open.
	w = do(r, http.MethodGet, "/api/events/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNonBearerSchemeTreatedAsAbsent(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/auth/me", "Basic abcdef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/events/1", "Basic abcdef")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedTokenDoesNotBlockPublicRoutes(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// A garbage token must not take down public routes, only protected ones.
	w := do(r, http.MethodGet, "/api/events/1", "Bearer not.a.token")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/auth/me", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredTokenGetsDistinctStatus(t *testing.T) {
	r, _, codec := newTestRouter(t)

	now := time.Now()
	expired, err := codec.Encode(&token.Claims{
		Role: "CLIENT",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	})
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/api/auth/me", "Bearer "+expired)
	assert.Equal(t, constant.StatusTokenExpired, w.Code)
}

func TestPrincipalCarriesSubjectAndAuthority(t *testing.T) {
	r, issuer, _ := newTestRouter(t)

	tokenString, err := issuer.Issue("u1@example.com", token.Attributes{Role: "CLIENT"})
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/api/auth/me", "Bearer "+tokenString)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subject":"u1@example.com","role":"CLIENT"}`, w.Body.String())
}

func TestWrongSecretTokenRejected(t *testing.T) {
	r, _, _ := newTestRouter(t)

	otherCodec := token.NewCodec([]byte("ffffffffffffffffffffffffffffffff"))
	otherIssuer := token.NewIssuer(otherCodec, time.Hour)
	foreign, err := otherIssuer.Issue("u1", token.Attributes{Role: "ADMIN"})
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/api/admin/users/u1", "Bearer "+foreign)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
