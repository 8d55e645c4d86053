package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

type AuthResult struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	SessionID string       `json:"session_id"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     models.UserRole
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	EndSession(ctx context.Context, sessionID string) error
	// CurrentUser never fails: a missing, invalid or ended session yields nil.
	CurrentUser(ctx context.Context, token string) *models.User
}

type AuthOptions struct {
	// CheckPasswords makes Authenticate compare bcrypt hashes for users that
	// registered with a password. Off by default: lookup is by email only.
	CheckPasswords bool
}

type authService struct {
	users    repositories.UserRepository
	sessions SessionService
	latency  *Latency
	log      logrus.FieldLogger
	opts     AuthOptions
}

func NewAuthService(users repositories.UserRepository, sessions SessionService, latency *Latency, log logrus.FieldLogger, opts AuthOptions) AuthService {
	return &authService{users: users, sessions: sessions, latency: latency, log: log, opts: opts}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	const op = "AuthService.Register"

	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if in.Email == "" || in.Name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email and name are required", nil)
	}
	if !in.Role.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "role must be employer or job_seeker", nil)
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	// Duplicate emails are accepted; Authenticate picks the earliest.
	u := &models.User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		Name:      in.Name,
		Role:      in.Role,
		Avatar:    models.DefaultAvatar,
		CreatedAt: time.Now().UTC(),
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
		}
		u.PasswordHash = hash
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	res, err := s.startSession(ctx, op, u)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	return res, nil
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	const op = "AuthService.Authenticate"

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}
	if s.opts.CheckPasswords && u.PasswordHash != "" {
		if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
	}

	return s.startSession(ctx, op, u)
}

func (s *authService) startSession(ctx context.Context, op string, u *models.User) (*AuthResult, error) {
	sess, token, err := s.sessions.Start(ctx, u)
	if err != nil {
		return nil, utils.E(utils.CodeOf(err), op, "failed to start session", err)
	}
	return &AuthResult{User: u, Token: token, SessionID: sess.SessionID, ExpiresAt: sess.ExpiresAt}, nil
}

func (s *authService) EndSession(ctx context.Context, sessionID string) error {
	const op = "AuthService.EndSession"

	if err := s.sessions.End(ctx, sessionID); err != nil {
		return err
	}
	return s.latency.wait(ctx, op)
}

func (s *authService) CurrentUser(ctx context.Context, token string) *models.User {
	sess, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil
	}
	u := sess.User
	return &u
}
