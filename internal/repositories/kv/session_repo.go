// Package kv keeps session records in a key-value cache such as Redis.
package kv

import (
	"context"
	"time"

	"github.com/yoockh/jobboard/internal/cache"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

const sessionKeyPrefix = "session:"

type sessionRepo struct {
	c cache.Cache
}

func NewSessionRepo(c cache.Cache) repositories.SessionRepository {
	return &sessionRepo{c: c}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }

func (r *sessionRepo) Create(ctx context.Context, s *models.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	var ttl time.Duration
	if !s.ExpiresAt.IsZero() {
		ttl = time.Until(s.ExpiresAt)
		if ttl <= 0 {
			return nil
		}
	}
	return r.c.SetJSON(ctx, sessionKey(s.SessionID), s, ttl)
}

func (r *sessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Session, error) {
	var s models.Session
	hit, err := r.c.GetJSON(ctx, sessionKey(sessionID), &s)
	if err != nil {
		return nil, err
	}
	if !hit || s.Expired(time.Now()) {
		return nil, utils.ErrNotFound
	}
	return &s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	return r.c.Del(ctx, sessionKey(sessionID))
}
