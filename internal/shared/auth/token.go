package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultTokenTTL is the lifetime of a session token.
	DefaultTokenTTL = 7 * 24 * time.Hour
	// ResetTokenTTL is the lifetime of a password-reset token.
	ResetTokenTTL = time.Hour

	purposeSession = "session"
	purposeReset   = "password_reset"
)

var (
	ErrMissingSecret  = errors.New("jwt secret not configured")
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token expired")
)

// SessionClaim is the verified identity carried by a token.
type SessionClaim struct {
	OwnerID   int64
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Purpose  string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 tokens with an injected secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithTTL overrides the session token lifetime.
func WithTTL(ttl time.Duration) TokenOption {
	return func(s *TokenService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the clock used for issuing and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewTokenService(secret string, opts ...TokenOption) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	s := &TokenService{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a session token for the owner.
func (s *TokenService) Issue(ownerID int64, username string) (string, error) {
	return s.issue(ownerID, username, purposeSession, s.ttl)
}

// IssueReset signs a short-lived token that only VerifyReset accepts.
func (s *TokenService) IssueReset(ownerID int64, username string) (string, error) {
	return s.issue(ownerID, username, purposeReset, ResetTokenTTL)
}

// Verify checks signature and expiry and returns the session claim.
// Failures are ErrMalformedToken or ErrExpiredToken.
func (s *TokenService) Verify(token string) (SessionClaim, error) {
	return s.verify(token, purposeSession)
}

// VerifyReset is Verify for password-reset tokens.
func (s *TokenService) VerifyReset(token string) (SessionClaim, error) {
	return s.verify(token, purposeReset)
}

func (s *TokenService) issue(ownerID int64, username, purpose string, ttl time.Duration) (string, error) {
	if ownerID <= 0 {
		return "", errors.New("owner id is required")
	}
	now := s.now().UTC()
	claims := tokenClaims{
		UserID:   ownerID,
		Username: username,
		Purpose:  purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(ownerID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) verify(token, purpose string) (SessionClaim, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return SessionClaim{}, ErrMalformedToken
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// the parser checks the signature before claims, so an expiry error
		// implies the token was authentic
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaim{}, ErrExpiredToken
		}
		return SessionClaim{}, ErrMalformedToken
	}
	if !parsed.Valid || claims.UserID <= 0 || claims.ExpiresAt == nil {
		return SessionClaim{}, ErrMalformedToken
	}
	if claims.Purpose != purpose && !(purpose == purposeSession && claims.Purpose == "") {
		return SessionClaim{}, ErrMalformedToken
	}

	out := SessionClaim{
		OwnerID:   claims.UserID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
