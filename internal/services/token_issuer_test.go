package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"heartlink/config"
	heartlink_errors "heartlink/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testIssuer(ttlDays int, env string) *TokenIssuer {
	return NewTokenIssuer(&config.Config{
		JWTSecret:    "test-secret",
		TokenTTLDays: ttlDays,
		Environment:  env,
	})
}

func TestIssueAndParse_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := testIssuer(7, "development")
	userID := uuid.New()

	tok, err := issuer.Issue(userID)
	require.NoError(t, err)

	got, err := issuer.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	issuer := testIssuer(-1, "development")

	tok, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = issuer.Parse(tok)
	require.ErrorIs(t, err, heartlink_errors.ErrUnauthorized)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := testIssuer(7, "development").Issue(uuid.New())
	require.NoError(t, err)

	other := NewTokenIssuer(&config.Config{JWTSecret: "other-secret", TokenTTLDays: 7})
	_, err = other.Parse(tok)
	require.ErrorIs(t, err, heartlink_errors.ErrUnauthorized)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	issuer := testIssuer(7, "development")

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := issuer.Parse(tok)
		require.ErrorIs(t, err, heartlink_errors.ErrUnauthorized)
	}
}

func TestAttach_CookieAttributes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	issuer := testIssuer(7, "development")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	issuer.Attach(c, "token-value")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	require.Equal(t, SessionCookieName, cookie.Name)
	require.Equal(t, "token-value", cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.False(t, cookie.Secure)
	// Max-age matches the full token validity window, in seconds.
	require.Equal(t, 7*24*60*60, cookie.MaxAge)
}

func TestAttach_SecureInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	issuer := testIssuer(7, "production")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	issuer.Attach(c, "token-value")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.True(t, cookies[0].Secure)
}

func TestClear_ExpiresCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	issuer := testIssuer(7, "development")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	issuer.Clear(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	require.Equal(t, SessionCookieName, cookie.Name)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
}
