package services

import (
	"net/http"
	"time"

	"heartlink/config"
	heartlink_errors "heartlink/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer creates and verifies session tokens and owns the cookie policy.
// Cookie max-age always equals the token TTL and the Secure flag is decided
// once at construction, so call sites cannot diverge.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenTTLDays) * 24 * time.Hour,
		secure: cfg.IsProduction(),
	}
}

// Issue signs a token bound to userID, expiring after the configured TTL.
func (t *TokenIssuer) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies the signature and expiry and returns the bound user id.
func (t *TokenIssuer) Parse(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, heartlink_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, heartlink_errors.ErrUnauthorized
		}
		return t.secret, nil
	})
	if err != nil {
		return uuid.Nil, heartlink_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, heartlink_errors.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, heartlink_errors.ErrUnauthorized
	}

	return userID, nil
}

// Attach sets the session cookie on the response. HttpOnly keeps the token
// away from scripts; SameSite=Strict withholds it on cross-site navigations.
func (t *TokenIssuer) Attach(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, int(t.ttl.Seconds()), "/", "", t.secure, true)
}

// Clear overwrites the session cookie with an immediately-expired empty value.
func (t *TokenIssuer) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", t.secure, true)
}
