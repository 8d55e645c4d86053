package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

const tokenIssuer = "jobboard"

type SessionService interface {
	// Start records a session for u and returns it with its signed token.
	Start(ctx context.Context, u *models.User) (*models.Session, string, error)
	// Resolve verifies token and loads its session.
	Resolve(ctx context.Context, token string) (*models.Session, error)
	End(ctx context.Context, sessionID string) error
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Role models.UserRole `json:"role"`
}

type sessionService struct {
	sessions repositories.SessionRepository
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionService(sessions repositories.SessionRepository, secret string, ttl time.Duration) SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionService{sessions: sessions, secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *sessionService) Start(ctx context.Context, u *models.User) (*models.Session, string, error) {
	const op = "SessionService.Start"

	if u == nil || u.ID == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "user is required", nil)
	}
	if len(s.secret) == 0 {
		return nil, "", utils.E(utils.CodeInternal, op, "session secret is not configured", nil)
	}

	now := s.now().UTC()
	sess := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    u.ID,
		User:      *u,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.SessionID,
			Subject:   u.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
		Role: u.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to sign session token", err)
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to store session", err)
	}
	return sess, token, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	const op = "SessionService.Resolve"

	if token == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "missing token", nil)
	}

	claims := &sessionClaims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || tok == nil || !tok.Valid {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid token", err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid token", nil)
	}

	sess, err := s.sessions.GetBySessionID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "session has ended", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load session", err)
	}
	if sess.UserID != claims.Subject {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid token", nil)
	}
	return sess, nil
}

func (s *sessionService) End(ctx context.Context, sessionID string) error {
	const op = "SessionService.End"

	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to end session", err)
	}
	return nil
}
