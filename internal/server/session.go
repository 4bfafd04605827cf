package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alexkim/job-recommender/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "jobrec_session"

// SessionClaims are the JWT claims bound to a logged-in user.
type SessionClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionService issues and validates the signed cookie session tokens.
type SessionService struct {
	config *config.SessionConfig
}

// NewSessionService creates a session service with the given configuration.
func NewSessionService(cfg *config.SessionConfig) *SessionService {
	return &SessionService{
		config: cfg,
	}
}

// GenerateToken generates a signed session token for the given user.
func (s *SessionService) GenerateToken(userID int64, username string) (string, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.ExpirationHours) * time.Hour)

	claims := &SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a session token and returns the claims.
func (s *SessionService) ValidateToken(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}

// IssueCookie writes the session cookie for the given user.
func (s *SessionService) IssueCookie(w http.ResponseWriter, userID int64, username string) error {
	token, err := s.GenerateToken(userID, username)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   s.config.ExpirationHours * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie removes the session cookie.
func (s *SessionService) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest reads and validates the session cookie on a request.
// Returns nil if the request carries no valid session.
func (s *SessionService) FromRequest(r *http.Request) *SessionClaims {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	claims, err := s.ValidateToken(cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}
