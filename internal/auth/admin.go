// Package auth implements the single-administrator credential check and the
// session cookie it issues. There are no user accounts: one configured
// credential pair guards the whole admin surface.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/hamedazad/synurix/internal/utilities"
)

// ErrInvalidCredentials is returned on any credential mismatch. It never says
// which half was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AdminCredentials holds the configured administrator identity. The values
// come from the environment, never from code.
type AdminCredentials struct {
	Username     string
	Password     string // plain comparison value, development setups
	PasswordHash string // bcrypt hash, preferred in production
}

// LoadCredentialsFromEnv reads ADMIN_USERNAME plus either ADMIN_PASSWORD_HASH
// (preferred) or ADMIN_PASSWORD.
func LoadCredentialsFromEnv() (AdminCredentials, error) {
	creds := AdminCredentials{
		Username:     os.Getenv("ADMIN_USERNAME"),
		Password:     os.Getenv("ADMIN_PASSWORD"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	if creds.Username == "" || (creds.Password == "" && creds.PasswordHash == "") {
		return AdminCredentials{}, errors.New("admin credentials not configured: set ADMIN_USERNAME and ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	return creds, nil
}

// Authenticate compares the submitted pair against the configured one. Both
// halves are always evaluated so response time does not reveal which one
// failed, and string comparison happens over fixed-length digests.
func (creds AdminCredentials) Authenticate(username, password string) error {
	userDigest := sha256.Sum256([]byte(username))
	wantUserDigest := sha256.Sum256([]byte(creds.Username))
	userOK := subtle.ConstantTimeCompare(userDigest[:], wantUserDigest[:]) == 1

	var passOK bool
	if creds.PasswordHash != "" {
		passOK = utilities.VerifyPassword(password, creds.PasswordHash)
	} else {
		passDigest := sha256.Sum256([]byte(password))
		wantPassDigest := sha256.Sum256([]byte(creds.Password))
		passOK = subtle.ConstantTimeCompare(passDigest[:], wantPassDigest[:]) == 1
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// AdminAuthHandler holds the configured credentials for the login endpoints.
type AdminAuthHandler struct {
	Creds AdminCredentials
}

// NewAdminAuthHandler creates the handler bound to the given credentials.
func NewAdminAuthHandler(creds AdminCredentials) *AdminAuthHandler {
	return &AdminAuthHandler{Creds: creds}
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler handles admin login by verifying the credential pair
// @Summary Admin login
// @Description Verifies the configured administrator credentials and sets the session cookie
// @Tags Admin
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} utilities.SubmitResponse
// @Failure 400 {object} utilities.ErrorResponse "Username or password not provided"
// @Failure 401 {object} utilities.ErrorResponse "Credential mismatch"
// @Router /admin/login [post]
func (ah *AdminAuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Username and password must be provided"))
		return
	}

	if err := ah.Creds.Authenticate(info.Username, info.Password); err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Fail("Invalid username or password"))
		return
	}

	token, err := IssueSessionToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Fail("Failed to create session"))
		return
	}

	SetSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler clears the session cookie
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Success 200 {object} utilities.SubmitResponse
// @Router /admin/logout [post]
func (ah *AdminAuthHandler) LogoutHandler(c *gin.Context) {
	ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
