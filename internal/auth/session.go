package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// SessionCookieName is the cookie carrying the admin session token. The name
// is kept from the original site so existing sessions survive the rewrite.
const SessionCookieName = "admin_session"

// SessionTTL bounds an admin session to 24 hours; there is no refresh.
const SessionTTL = 24 * time.Hour

// JwtIssuer identifies tokens minted by this service.
const JwtIssuer = "synurix"

var SECRET_KEY = os.Getenv("SECRET_KEY")

// ErrNoSession is reported when a protected request carries no session cookie
// or an invalid/expired one.
var ErrNoSession = errors.New("no valid admin session")

// IssueSessionToken mints the opaque session token set on successful login.
// It carries no user identity because only one administrator exists; the
// subject is fixed and the JTI only makes tokens distinguishable in logs.
func IssueSessionToken() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    JwtIssuer,
		Subject:   "admin",
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	})

	signed, err := token.SignedString([]byte(SECRET_KEY))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateSessionToken checks signature, expiry and issuer of a session token.
func ValidateSessionToken(encoded string) error {
	token, err := jwt.ParseWithClaims(encoded, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isValid := token.Method.(*jwt.SigningMethodHMAC); !isValid {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(SECRET_KEY), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrNoSession
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Issuer != JwtIssuer {
		return ErrNoSession
	}
	return nil
}

// SessionFromRequest validates the session cookie on the request.
func SessionFromRequest(c *gin.Context) error {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return ErrNoSession
	}
	if err := ValidateSessionToken(cookie); err != nil {
		return ErrNoSession
	}
	return nil
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}

// SetSessionCookie attaches the session token to the response. HttpOnly keeps
// it away from scripts; Secure is enabled in production; SameSite=Lax and
// Path=/ match the original site's cookie.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(SessionTTL.Seconds()), "/", "", secureCookies(), true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secureCookies(), true)
}
