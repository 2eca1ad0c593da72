package service

import (
	"context"
	"fmt"
	"time"

	"lifeboard/internal/logger"
	"lifeboard/internal/models"
	"lifeboard/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService issues signed tokens backed by server-side session rows.
// The row is what makes logout a real revocation: a syntactically valid
// token whose row is gone resolves to anonymous.
type SessionService struct {
	sessions   repository.Sessions
	signingKey []byte
	ttl        time.Duration
}

func NewSessionService(sessions repository.Sessions, signingKey string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		sessions:   sessions,
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Claims defines the JWT payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	UserID    int    `json:"user_id"`
}

// Start creates a session row for the user and returns the signed token.
func (s *SessionService) Start(ctx context.Context, userID int) (string, error) {
	now := time.Now()
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl).UTC(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		SessionID: sess.ID,
		UserID:    userID,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Resolve returns the user behind a token. Missing, malformed, expired or
// revoked tokens all resolve to ErrUnauthenticated.
func (s *SessionService) Resolve(ctx context.Context, token string) (int, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return 0, err
	}
	if sess == nil {
		return 0, ErrUnauthenticated
	}
	if sess.Expired(time.Now()) {
		// lazy purge; the sweeper catches the rest
		_ = s.sessions.Delete(ctx, sess.ID)
		return 0, ErrUnauthenticated
	}
	return sess.UserID, nil
}

// End revokes the session behind a token. Unknown or already-ended tokens
// are not an error.
func (s *SessionService) End(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

// Sweep periodically removes expired session rows until ctx is cancelled.
func (s *SessionService) Sweep(ctx context.Context, interval time.Duration) {
	log := logger.Get(logger.InfoLevel)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.sessions.DeleteExpired(ctx, time.Now())
			if err != nil {
				log.Errorw("session_sweep_failed", "err", err)
				continue
			}
			if n > 0 {
				log.Infow("session_sweep", "purged", n)
			}
		}
	}
}

func (s *SessionService) parseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
