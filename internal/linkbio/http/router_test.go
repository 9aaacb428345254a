package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	linkhttp "github.com/veerabala/linkbio/internal/linkbio/http"
	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/internal/linkbio/store/drivers/sqlite"
	"github.com/veerabala/linkbio/pkg/jwtx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

func newTestRouter(t *testing.T) *linkhttp.Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hs, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	settings := &service.SettingsService{Store: st}

	router := linkhttp.NewRouter("test", st, slogx.New(slogx.Config{Service: "linkbio", Level: "error"}))
	router.AuthService = &service.AuthService{Store: st, Signer: hs, Verifier: hs, TokenTTL: time.Minute}
	router.LinkService = &service.LinkService{Store: st}
	router.SettingsService = settings
	router.ProfileService = &service.ProfileService{Store: st}
	router.ProductService = &service.ProductService{Store: st}
	router.ApplyRoutes()
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func registerAndLogin(t *testing.T, router http.Handler, username string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/register", "", map[string]string{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "s3cret",
		"full_name": "Test " + username,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	form := url.Values{"username": {username}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, req)
	require.Equal(t, http.StatusOK, loginRec.Code, loginRec.Body.String())

	var body map[string]any
	decodeBody(t, loginRec, &body)
	require.Equal(t, "bearer", body["token_type"])
	require.Len(t, body, 2)

	token, ok := body["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestRootGreeting(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	require.Equal(t, "Hello, World!", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/register", "", map[string]string{
		"username": "ab",
		"email":    "not-an-email",
		"password": "x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body linkhttp.ErrorResponse
	decodeBody(t, rec, &body)
	require.Equal(t, "invalid_request", body.Error)
}

func TestRegisterConflict(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret",
	}
	rec := doJSON(t, router, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestTokenRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "alice")

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersMe(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice")

	rec := doJSON(t, router, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body linkhttp.UserResponse
	decodeBody(t, rec, &body)
	require.Equal(t, "alice", body.Username)
	require.Equal(t, "alice@example.com", body.Email)

	// Missing, malformed and forged tokens all get the same 401.
	require.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodGet, "/users/me", "", nil).Code)
	require.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodGet, "/users/me", "garbage", nil).Code)
}

func TestLinksEndToEnd(t *testing.T) {
	router := newTestRouter(t)
	alice := registerAndLogin(t, router, "alice")
	bob := registerAndLogin(t, router, "bob")

	rec := doJSON(t, router, http.MethodPost, "/links", alice, map[string]string{
		"title": "Blog",
		"url":   "https://alice.example",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created linkhttp.LinkResponse
	decodeBody(t, rec, &created)
	require.NotZero(t, created.ID)

	// Bob cannot touch Alice's link; it reads as missing.
	rec = doJSON(t, router, http.MethodDelete, "/links/1", bob, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/links/1", alice, map[string]string{
		"title": "Blog v2",
		"url":   "https://alice.example/v2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated linkhttp.LinkResponse
	decodeBody(t, rec, &updated)
	require.Equal(t, "Blog v2", updated.Title)

	rec = doJSON(t, router, http.MethodGet, "/links", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []linkhttp.LinkResponse
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)

	rec = doJSON(t, router, http.MethodDelete, "/links/1", alice, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/links", alice, nil)
	decodeBody(t, rec, &list)
	require.Empty(t, list)

	// Invalid link body is rejected before it reaches storage.
	rec = doJSON(t, router, http.MethodPost, "/links", alice, map[string]string{
		"title": "No URL",
		"url":   "not a url",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsEndToEnd(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice")

	rec := doJSON(t, router, http.MethodGet, "/settings/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings linkhttp.SettingsResponse
	decodeBody(t, rec, &settings)
	require.Equal(t, "ocean", settings.Theme)
	require.Equal(t, "[]", settings.FeaturedLinks)

	rec = doJSON(t, router, http.MethodPatch, "/settings/me", token, map[string]any{
		"theme":      "neon",
		"show_icons": false,
		"bogus":      "ignored",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	decodeBody(t, rec, &settings)
	require.Equal(t, "neon", settings.Theme)
	require.False(t, settings.ShowIcons)
	require.Equal(t, "list", settings.Layout)
}

func TestPublicProfileAndSettings(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice")

	rec := doJSON(t, router, http.MethodPost, "/links", token, map[string]string{
		"title": "Blog",
		"url":   "https://alice.example",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Both public reads need no token.
	rec = doJSON(t, router, http.MethodGet, "/profile/alice", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile linkhttp.ProfileResponse
	decodeBody(t, rec, &profile)
	require.Equal(t, "alice", profile.Username)
	require.Len(t, profile.Links, 1)
	require.Equal(t, "ocean", profile.Settings.Theme)

	rec = doJSON(t, router, http.MethodGet, "/setting/alice", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings linkhttp.SettingsResponse
	decodeBody(t, rec, &settings)
	require.Equal(t, "ocean", settings.Theme)

	require.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/profile/nobody", "", nil).Code)
	require.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/setting/nobody", "", nil).Code)
}

func TestProductsEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	// Create is singular /product; only the list route is plural.
	rec := doJSON(t, router, http.MethodPost, "/product", "", map[string]any{
		"id": 1, "name": "Laptop", "price": 999.99, "quantity": 10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/product", "", map[string]any{
		"id": 1, "name": "Dup", "price": 1, "quantity": 1,
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/products", "", map[string]any{
		"id": 2, "name": "Stray", "price": 1, "quantity": 1,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/product/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var product linkhttp.ProductResponse
	decodeBody(t, rec, &product)
	require.Equal(t, "Laptop", product.Name)

	rec = doJSON(t, router, http.MethodPut, "/product/1", "", map[string]any{
		"name": "Laptop", "price": 899.99, "quantity": 9,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &product)
	require.Equal(t, 899.99, product.Price)

	rec = doJSON(t, router, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []linkhttp.ProductResponse
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)

	require.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/product/42", "", nil).Code)
	require.Equal(t, http.StatusNoContent, doJSON(t, router, http.MethodDelete, "/product/1", "", nil).Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health linkhttp.HealthResponse
	decodeBody(t, rec, &health)
	require.Equal(t, "ok", health.Status)

	rec = doJSON(t, router, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &health)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
}
