package memory

import (
	"context"
	"sync"
	"time"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

// SessionRepo keeps sessions in a map. Expired entries are dropped on read
// and by PurgeExpired.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

var _ repositories.SessionRepository = (*SessionRepo)(nil)

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: map[string]models.Session{}}
}

func (r *SessionRepo) Create(ctx context.Context, s *models.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.SessionID]; ok {
		return utils.ErrConflict
	}
	r.sessions[s.SessionID] = *s
	return nil
}

func (r *SessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, utils.ErrNotFound
	}
	if s.Expired(time.Now()) {
		_ = r.Delete(ctx, sessionID)
		return nil, utils.ErrNotFound
	}
	return &s, nil
}

func (r *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// PurgeExpired removes every session expired at now and reports how many.
func (r *SessionRepo) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
