package workers

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// ExpiredPurger is a session store that has to be swept by hand. Redis and
// Mongo expire sessions themselves.
type ExpiredPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// SessionSweeper periodically removes expired sessions from an ExpiredPurger.
type SessionSweeper struct {
	Sessions ExpiredPurger
	Interval time.Duration
	Logger   logrus.FieldLogger

	now func() time.Time
}

func (s *SessionSweeper) Start(ctx context.Context) error {
	if s.Sessions == nil {
		return errors.New("SessionSweeper missing dependency: Sessions must be set")
	}
	if s.Interval <= 0 {
		s.Interval = 5 * time.Minute
	}
	if s.Logger == nil {
		s.Logger = logrus.New()
	}
	if s.now == nil {
		s.now = time.Now
	}

	go s.run(ctx)
	return nil
}

func (s *SessionSweeper) run(ctx context.Context) {
	t := time.NewTicker(s.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one purge pass and returns the number of removed sessions.
func (s *SessionSweeper) Sweep(ctx context.Context) int {
	now := time.Now
	if s.now != nil {
		now = s.now
	}

	n, err := s.Sessions.PurgeExpired(ctx, now())
	if err != nil {
		s.log().WithError(err).Warn("session sweep failed")
		return 0
	}
	if n > 0 {
		s.log().WithField("removed", n).Debug("expired sessions removed")
	}
	return n
}

func (s *SessionSweeper) log() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}
