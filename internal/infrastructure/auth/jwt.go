package auth

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
)

// SessionClaims claims carried by the session token issued by the external
// authentication flow. The role is represented two ways for legacy reasons:
// the upstream data model migrated from the Admin flag to the Role tag and
// tokens of both generations are still in circulation.
type SessionClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Admin bool   `json:"is_admin,omitempty"`

	jwt.StandardClaims
}

// TimeRemaining remaining time before the token gets expired
func (tk *SessionClaims) TimeRemaining() time.Duration {
	exp := time.Unix(tk.ExpiresAt, 0)
	now := time.Now()

	if exp.Before(now) {
		return 0
	}
	return exp.Sub(now)
}

// JWTUtil validates session tokens; this service never signs one, the
// external authentication flow owns the write side of the session.
type JWTUtil struct {
	secret    []byte
	tokenName string
	method    jwt.SigningMethod
}

// NewJWTUtil create a JWTUtil instance
func NewJWTUtil(method, secret, tokenName string) *JWTUtil {
	var signMethod jwt.SigningMethod
	switch method {
	case "HS256":
		signMethod = jwt.SigningMethodHS256
	case "HS512":
		signMethod = jwt.SigningMethodHS512
	case "ES256":
		signMethod = jwt.SigningMethodES256
	default:
		signMethod = jwt.SigningMethodHS256
	}
	return &JWTUtil{
		method:    signMethod,
		secret:    []byte(secret),
		tokenName: tokenName,
	}
}

// Validate validate token string with secret and return SessionClaims
func (ju *JWTUtil) Validate(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return ju.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return token.Claims.(*SessionClaims), nil
}

// ExtractToken get token string from request, empty when the cookie is absent
func (ju *JWTUtil) ExtractToken(c echo.Context) (string, error) {
	token, err := c.Cookie(ju.tokenName)
	if err != nil {
		return "", err
	}
	return token.Value, nil
}

// ClearClientToken clear client cookie
func (ju *JWTUtil) ClearClientToken(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     ju.tokenName,
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now(),
	})
}

// SetContextToken set claims in App context
func (ju *JWTUtil) SetContextToken(c echo.Context, token *SessionClaims) {
	c.Set(ju.tokenName, token)
}

// GetContextToken get claims from App context
func (ju *JWTUtil) GetContextToken(c echo.Context) *SessionClaims {
	v, ok := c.Get(ju.tokenName).(*SessionClaims)
	if ok {
		return v
	}
	return nil
}
